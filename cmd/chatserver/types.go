package main

import (
	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/internal/config"
	"github.com/loomwear/server/internal/relay"
)

// holds all dependencies and state for the chat relay service
type Server struct {
	config *config.ChatConfig
	relay  *relay.Relay
	router *gin.Engine
}
