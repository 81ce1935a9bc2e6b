package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CurrentWeather func
// CurrentWeather godoc
// @Summary Current weather
// @Description Looks up current conditions by city name or by coordinates (imperial units)
// @Tags Weather
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/weather [get]
// @Produce json
func (hdl *HTTPHandler) CurrentWeather(c *fiber.Ctx) error {
	var request WeatherRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusBadRequest, msgLocationRequired)
	}

	snapshot, err := hdl.srv.Weather.CurrentWeather(c.UserContext(), request.toDomain())
	if err != nil {
		status, message := upstreamStatus(err)
		if status >= fiber.StatusInternalServerError {
			logrus.Errorf("Weather lookup failed: %v", err)
		}
		return errorJSON(c, status, message)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(snapshot)
}
