package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"auralearn/internal/tutor"
)

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// Chat handles POST /api/chat. The responder is an external collaborator;
// a real language-model client can be swapped in behind the same contract.
func Chat(responder tutor.Responder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeDetail(c, fiber.StatusBadRequest, "invalid request body")
		}
		if req.UserID == "" {
			req.UserID = "default"
		}

		reply, err := responder.Reply(c.UserContext(), req.Message, req.UserID)
		if err != nil {
			return writeDetail(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return c.JSON(fiber.Map{
			"response":  reply,
			"timestamp": time.Now().UTC(),
		})
	}
}
