package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"agendaapi/internal/service"
	"agendaapi/internal/validator"
)

// Services groups the resource services exposed over HTTP.
type Services struct {
	Users       service.UserService
	Departments service.DepartmentService
	Roles       service.RoleService
	Contacts    service.ContactService
	Events      service.EventService
	Configs     service.ConfigService
	Sessions    service.SessionService
}

// Probe is a named backend reachability check used by /health.
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
}

const probeTimeout = 2 * time.Second

// RegisterRoutes attaches health probes and every resource to app.
func RegisterRoutes(app *fiber.App, svcs Services, probes []Probe) {
	app.Get("/health", HealthCheck(probes))
	app.Get("/healthz", LivenessProbe())

	v := validator.New()
	RegisterResource(app, "/users", svcs.Users, Int64ID, v)
	RegisterResource(app, "/departments", svcs.Departments, Int64ID, v)
	RegisterResource(app, "/roles", svcs.Roles, Int64ID, v)
	RegisterResource(app, "/contacts", svcs.Contacts, StringID, v)
	RegisterResource(app, "/events", svcs.Events, StringID, v)
	RegisterResource(app, "/config", svcs.Configs, StringID, v)
	RegisterResource(app, "/sessions", svcs.Sessions, StringID, v)
}

// HealthCheck pings every backing store and answers 503 when any of them is
// unreachable.
func HealthCheck(probes []Probe) fiber.Handler {
	return func(c *fiber.Ctx) error {
		checks := make(fiber.Map, len(probes))
		healthy := true
		for _, p := range probes {
			ctx, cancel := context.WithTimeout(c.UserContext(), probeTimeout)
			err := p.Ping(ctx)
			cancel()
			if err != nil {
				healthy = false
				checks[p.Name] = "down"
				continue
			}
			checks[p.Name] = "up"
		}

		if !healthy {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unhealthy", "checks": checks})
		}
		return c.JSON(fiber.Map{"status": "healthy", "checks": checks})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
