package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/api/metrics"
	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// AIHandler proxies plant-disease detection and farming-advice requests.
// Both routes answer 200 even when the external provider is down: the
// advisor service substitutes local fallback content.
type AIHandler struct {
	advisor  ports.AdvisorService
	activity ActivityRecorder
}

func NewAIHandler(advisor ports.AdvisorService, activity ActivityRecorder) *AIHandler {
	return &AIHandler{advisor: advisor, activity: activity}
}

// DetectDisease handles POST /api/ai/detect-disease.
//
// @Summary      Identify a plant disease from a photo
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      detectDiseaseRequest  true  "Base64-encoded image"
// @Success      200   {object}  detectDiseaseResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/ai/detect-disease [post]
func (h *AIHandler) DetectDisease(c echo.Context) error {
	var req detectDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.advisor.DetectDisease(c.Request().Context(), req.ImageBase64)
	if err != nil {
		return err
	}

	outcome := "live"
	if !result.Recognized {
		outcome = "fallback"
	}
	metrics.AIRequestsTotal.WithLabelValues("detect_disease", outcome).Inc()
	h.recordActivity(c, domain.ActivityDiseaseChecked, result.PlantName)

	return c.JSON(http.StatusOK, detectDiseaseResponse{
		Success:    true,
		Recognized: result.Recognized,
		PlantName:  result.PlantName,
		Confidence: result.Confidence,
		IsHealthy:  result.IsHealthy,
		Treatment:  result.Treatment,
		Message:    result.Message,
	})
}

// FarmingAdvice handles POST /api/ai/farming-advice.
//
// @Summary      Ask for farming advice
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      farmingAdviceRequest  true  "Question and optional context"
// @Success      200   {object}  farmingAdviceResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/ai/farming-advice [post]
func (h *AIHandler) FarmingAdvice(c echo.Context) error {
	var req farmingAdviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.advisor.FarmingAdvice(c.Request().Context(), req.Question, req.Context)
	if err != nil {
		return err
	}

	metrics.AIRequestsTotal.WithLabelValues("farming_advice", result.Source).Inc()
	h.recordActivity(c, domain.ActivityAdviceRequested, "")

	return c.JSON(http.StatusOK, farmingAdviceResponse{
		Success:  true,
		Response: result.Response,
		Source:   result.Source,
	})
}

// recordActivity attributes the entry to the caller when a token was sent;
// the AI routes also work anonymously.
func (h *AIHandler) recordActivity(c echo.Context, kind, subject string) {
	actorID, _ := c.Get("user_id").(string)
	if actorID == "" {
		actorID = "anonymous"
	}
	h.activity.Record(ports.ActivityInput{
		Kind:      kind,
		ActorID:   actorID,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
