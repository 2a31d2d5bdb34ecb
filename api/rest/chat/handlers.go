package chat

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loomwear/server/internal/errors"
	"github.com/loomwear/server/internal/logger"
)

// ChatHandler godoc
// @Summary Chat with the store assistant
// @Description Classify the message and stream a response as newline-delimited JSON chunks
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChunkResponse "Stream of response_chunk objects"
// @Failure 400 {object} errors.ErrorResponse
// @Router /chat [post]
func ChatHandler(relay Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		c.Header("Content-Type", "application/x-ndjson")
		c.Header("Cache-Control", "no-cache")
		c.Status(http.StatusOK)

		encoder := json.NewEncoder(c.Writer)

		// the request context cancels the upstream call when the client
		// disconnects mid-stream
		err := relay.Respond(c.Request.Context(), req.Message, func(chunk string) error {
			// Encode appends the newline that frames each chunk
			if err := encoder.Encode(ChunkResponse{ResponseChunk: chunk}); err != nil {
				return err
			}

			c.Writer.Flush()

			return nil
		})

		// once streaming has started there is no rollback; the stream
		// just ends where it ends
		if err != nil {
			logger.ErrorErr(err, "chat stream terminated early")
		}
	}
}
