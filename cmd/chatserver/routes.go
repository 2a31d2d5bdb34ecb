package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/api/rest/chat"
	"github.com/loomwear/server/api/rest/health"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{server.config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// each request costs two model calls, keep the rate modest
	rate := limiter.Rate{Period: time.Minute, Limit: 20}
	router.Use(mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)))

	router.GET("/health", health.Handler("chat"))
	router.GET("/ping", health.PingHandler)

	chat.RegisterRoutes(router, server.relay)
}
