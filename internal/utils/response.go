package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, data gin.H) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   msg,
	})
}

// XML writes a voice markup document. Telephony webhooks always get HTTP 200;
// failures are voiced in the markup itself, never signalled by status code.
func XML(c *gin.Context, doc string) {
	c.Data(http.StatusOK, "application/xml", []byte(doc))
}
