package main

import (
	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/internal/config"
	"github.com/loomwear/server/internal/llm"
	"github.com/loomwear/server/internal/relay"
)

// creates and configures a new chat relay server instance
func NewServer(cfg *config.ChatConfig) *Server {
	client := llm.NewOllamaClient(llm.OllamaConfig{
		Host:  cfg.OllamaHost,
		Model: cfg.ChatModel,
	})

	// the same model serves both stages: classification first, then
	// generation, sequentially within one request
	relayCore := relay.New(client, client)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config: cfg,
		relay:  relayCore,
		router: gin.Default(),
	}

	RegisterRoutes(server.router, server)

	return server
}
