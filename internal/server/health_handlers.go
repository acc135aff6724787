package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// LivenessCheck reports that the process is up. It never touches
// dependencies, so a wedged database cannot cause a restart loop.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessCheck reports whether the server can serve traffic. The database
// is required; Redis is optional and only degrades caching when absent.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx := c.UserContext()
	checks := fiber.Map{}
	ready := true

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		checks["database"] = "unreachable"
		ready = false
	} else {
		checks["database"] = "ok"
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unreachable"
		} else {
			checks["redis"] = "ok"
		}
	} else {
		checks["redis"] = "disabled"
	}

	status := fiber.StatusOK
	state := "ready"
	if !ready {
		status = fiber.StatusServiceUnavailable
		state = "unavailable"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": state,
		"checks": checks,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
