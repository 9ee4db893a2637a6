package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

// SessionCookie names the cookie that carries the session id.
const SessionCookie = "payflow_session"

const (
	localSession   = "session"
	localSessionID = "session_id"
)

// Sessions attaches the caller's workflow session, starting a new one (and
// setting the cookie) for unknown or missing ids.
func Sessions(registry *workflow.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := c.Cookies(SessionCookie)
		id, session := registry.Acquire(presented)
		if id != presented {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(localSession, session)
		c.Locals(localSessionID, id)
		return c.Next()
	}
}

// CurrentSession returns the session attached by Sessions.
func CurrentSession(c *fiber.Ctx) *workflow.Session {
	s, _ := c.Locals(localSession).(*workflow.Session)
	return s
}

func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(localSessionID).(string)
	return id
}

// RequireStep sends the caller to the page of the furthest step they have
// reached when step is not reachable yet. State is never modified.
func RequireStep(step workflow.Step) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := CurrentSession(c)
		if session == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No session"})
		}
		if to, redirect := session.Guard(step); redirect {
			return c.Redirect(to.Path(), fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
