package http

import (
	"context"
	"errors"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/input"
	"weather-insight/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

const (
	// Banner is the plain-text body of the root route
	Banner = "Google Calendar + Weather backend running!"
	// SessionCookie is the cookie holding the session ID
	SessionCookie = "session_id"
)

// HealthChecker is anything the health route can ping
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Services bundles the use cases the handler drives
type Services struct {
	Auth     input.AuthService
	Calendar input.CalendarService
	Weather  input.WeatherService
	Insight  input.InsightService
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv          Services
	sessions     *session.Store
	health       HealthChecker
	validator    validator.Validator
	clientOrigin string
}

// New func - Creates new HTTP handler
func New(srv Services, sessions *session.Store, health HealthChecker, clientOrigin string) *HTTPHandler {
	return &HTTPHandler{
		srv:          srv,
		sessions:     sessions,
		health:       health,
		validator:    validator.New(),
		clientOrigin: clientOrigin,
	}
}

// Register func - Mounts every route on app
func (hdl *HTTPHandler) Register(app fiber.Router) {
	app.Get("/", hdl.Root)
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/api")
	{
		calendar := api.Group("/calendar")
		calendar.Get("/auth", hdl.BeginAuth)
		calendar.Get("/oauth2callback", hdl.OAuthCallback)
		calendar.Get("/events", hdl.ListEvents)
		calendar.Post("/logout", hdl.Logout)

		api.Get("/weather", hdl.CurrentWeather)

		ai := api.Group("/ai")
		ai.Post("/", hdl.GenerateInsight)
		ai.Post("/analyze", hdl.AnalyzeEvents)
	}
}

// Root func
func (hdl *HTTPHandler) Root(c *fiber.Ctx) error {
	return c.SendString(Banner)
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Pings the credential store
// @Tags Health
// @Success 200 {object} ResponseBody
// @Failure 503 {object} ResponseBody
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if err := hdl.health.Ping(c.UserContext()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(ResponseBody{Status: ServiceUnavailable})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// sessionID returns the ID carried by the caller's session cookie, or "" when
// the request has none. The ID is used even when the session store no longer
// knows it: credentials kept by a durable credential store outlive it.
func (hdl *HTTPHandler) sessionID(c *fiber.Ctx) (string, error) {
	if c.Cookies(SessionCookie) == "" {
		return "", nil
	}
	sess, err := hdl.sessions.Get(c)
	if err != nil {
		return "", err
	}
	return sess.ID(), nil
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// upstreamStatus maps a service error to an HTTP status and message.
// Provider status errors pass through with their own status and message.
func upstreamStatus(err error) (int, string) {
	var upstream *domain.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return upstream.Status, upstream.Message
	case errors.Is(err, domain.ErrInvalidQuery):
		return fiber.StatusBadRequest, msgLocationRequired
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, msgNotLoggedIn
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}
