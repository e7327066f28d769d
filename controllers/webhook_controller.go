package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahezzat120/task-manager-pro/config"
)

// WebhookController receives WhatsApp Business webhook callbacks.
// Payloads are only logged for now; notification delivery is not wired.
type WebhookController struct {
	VerifyToken string
}

// Verify answers the WhatsApp webhook verification handshake.
func (wc *WebhookController) Verify(c *gin.Context) {
	if wc.VerifyToken == "" || c.Query("hub_verify_token") != wc.VerifyToken {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	c.String(http.StatusOK, c.Query("hub_challenge"))
}

// Receive accepts a webhook delivery and logs it.
func (wc *WebhookController) Receive(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payload"})
		return
	}

	config.Logger.Infow("whatsapp webhook received", "payload", payload)

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
