package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
)

const headerRequestID = "X-Request-ID"

// requestID tags each request so its log lines can be correlated.
func (s *implServer) requestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(headerRequestID, id)
	c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
	return c.Next()
}
