package http

import (
	"errors"
	"strings"

	"weather-insight/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const sessionKeyConnected = "calendar_connected"

// BeginAuth func
// BeginAuth godoc
// @Summary Calendar consent URL
// @Description Returns the Google consent URL. The redirect path comes back on the callback.
// @Tags Calendar
// @Param redirect query string false "Path to return to after login"
// @Success 200 {object} AuthURLResponse
// @Router /api/calendar/auth [get]
// @Produce json
func (hdl *HTTPHandler) BeginAuth(c *fiber.Ctx) error {
	var request AuthRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
	}
	return c.JSON(AuthURLResponse{URL: hdl.srv.Auth.Begin(request.Redirect)})
}

// OAuthCallback func
// OAuthCallback godoc
// @Summary OAuth2 callback
// @Description Exchanges the authorization code, binds the credentials to the session cookie and redirects to the client
// @Tags Calendar
// @Param code query string true "Authorization code"
// @Param state query string false "Redirect path"
// @Success 302
// @Failure 500 {object} ErrorResponse
// @Router /api/calendar/oauth2callback [get]
func (hdl *HTTPHandler) OAuthCallback(c *fiber.Ctx) error {
	var request CallbackRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgAuthFailed)
	}
	if request.Error != "" {
		logrus.Warnf("OAuth2 consent was not granted: %s", request.Error)
	}

	var states []string
	for _, v := range c.Context().QueryArgs().PeekMulti("state") {
		states = append(states, string(v))
	}

	sess, err := hdl.sessions.Get(c)
	if err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgAuthFailed)
	}

	previousID := ""
	if c.Cookies(SessionCookie) != "" {
		previousID = sess.ID()
	}
	// credentials are only ever bound to an ID issued here
	if err := sess.Regenerate(); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgAuthFailed)
	}

	path, err := hdl.srv.Auth.Complete(c.UserContext(), sess.ID(), request.Code, states)
	if err != nil {
		logrus.Errorf("Error exchanging code for token: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, msgAuthFailed)
	}
	if previousID != "" {
		if err := hdl.srv.Auth.Logout(c.UserContext(), previousID); err != nil {
			logrus.Warnf("Failed to drop credentials of the previous session: %v", err)
		}
	}

	sess.Set(sessionKeyConnected, true)
	if err := sess.Save(); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgAuthFailed)
	}

	return c.Redirect(successRedirect(hdl.clientOrigin, path), fiber.StatusFound)
}

// ListEvents func
// ListEvents godoc
// @Summary Today's calendar events
// @Description Lists the primary calendar's events from now until the end of the day
// @Tags Calendar
// @Success 200 {array} object
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/calendar/events [get]
// @Produce json
func (hdl *HTTPHandler) ListEvents(c *fiber.Ctx) error {
	sessionID, err := hdl.sessionID(c)
	if err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgEventsFailed)
	}

	events, err := hdl.srv.Calendar.ListTodayEvents(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return errorJSON(c, fiber.StatusUnauthorized, msgNotLoggedIn)
		}
		logrus.Errorf("Error fetching events: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, msgEventsFailed)
	}
	return c.JSON(events)
}

// Logout func
// Logout godoc
// @Summary Disconnect the calendar
// @Description Forgets the session's credentials and ends the session
// @Tags Calendar
// @Success 200 {object} SuccessResponse
// @Router /api/calendar/logout [post]
// @Produce json
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	sess, err := hdl.sessions.Get(c)
	if err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusInternalServerError, msgInternalError)
	}

	if c.Cookies(SessionCookie) != "" {
		if err := hdl.srv.Auth.Logout(c.UserContext(), sess.ID()); err != nil {
			logrus.Errorln(err)
			return errorJSON(c, fiber.StatusInternalServerError, msgInternalError)
		}
	}
	if err := sess.Destroy(); err != nil {
		logrus.Errorln(err)
	}
	return c.JSON(SuccessResponse{Success: true})
}

// successRedirect appends success=true to the client path, keeping any query it already has
func successRedirect(clientOrigin, path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return strings.TrimRight(clientOrigin, "/") + path + separator + "success=true"
}
