package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GenerateInsight func
// GenerateInsight godoc
// @Summary Free-text insight
// @Description Forwards a prompt to the generative-text provider
// @Tags AI
// @Accept application/json
// @Param PromptRequest body PromptRequest true "Prompt"
// @Success 200 {object} InsightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai [post]
// @Produce json
func (hdl *HTTPHandler) GenerateInsight(c *fiber.Ctx) error {
	var request PromptRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusBadRequest, msgPromptRequired)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Warnln(hdl.validator.Messages(err))
		return errorJSON(c, fiber.StatusBadRequest, msgPromptRequired)
	}

	insight, err := hdl.srv.Insight.Generate(c.UserContext(), request.Prompt)
	if err != nil {
		status, message := upstreamStatus(err)
		logrus.Errorf("Insight prompt error: %v", err)
		return errorJSON(c, status, message)
	}
	return c.JSON(InsightResponse{Insight: insight})
}

// AnalyzeEvents func
// AnalyzeEvents godoc
// @Summary Calendar analysis
// @Description Summarizes a list of calendar events into an insight
// @Tags AI
// @Accept application/json
// @Param AnalyzeRequest body AnalyzeRequest true "Events"
// @Success 200 {object} InsightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/ai/analyze [post]
// @Produce json
func (hdl *HTTPHandler) AnalyzeEvents(c *fiber.Ctx) error {
	var request AnalyzeRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return errorJSON(c, fiber.StatusBadRequest, msgInvalidEvents)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		logrus.Warnln(hdl.validator.Messages(err))
		return errorJSON(c, fiber.StatusBadRequest, msgInvalidEvents)
	}

	insight, err := hdl.srv.Insight.AnalyzeEvents(c.UserContext(), request.Events)
	if err != nil {
		status, message := upstreamStatus(err)
		if status == fiber.StatusBadRequest {
			message = msgInvalidEvents
		}
		logrus.Errorf("Insight event analysis error: %v", err)
		return errorJSON(c, status, message)
	}
	return c.JSON(InsightResponse{Insight: insight})
}
