package chat

import (
	"github.com/gin-gonic/gin"
)

// registers the chat relay route
func RegisterRoutes(router gin.IRouter, relay Responder) {
	router.POST("/chat", ChatHandler(relay))
}
