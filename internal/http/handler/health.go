package handler

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"auralearn/internal/storage"
)

// Root handles GET /.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Auralearn API"})
	}
}

// HealthCheck probes the storage backend by writing and removing a tiny
// object. The probe key lives outside the uploads prefix.
func HealthCheck(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		key := ".healthcheck"
		if _, err := store.Put(ctx, key, strings.NewReader("ok"), storage.PutObjectOptions{Size: 2}); err != nil {
			return writeDetail(c, fiber.StatusServiceUnavailable, "storage unavailable")
		}
		if err := store.Delete(ctx, key); err != nil {
			return writeDetail(c, fiber.StatusServiceUnavailable, "storage unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
