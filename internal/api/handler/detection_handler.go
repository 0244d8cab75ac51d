package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// DetectionHandler proxies the detection forms to the external classifier.
type DetectionHandler struct {
	service ports.DetectionService
}

func NewDetectionHandler(service ports.DetectionService) *DetectionHandler {
	return &DetectionHandler{service: service}
}

type detectRequest struct {
	Content string `json:"content" validate:"required"`
}

type detectResponse struct {
	Kind       string  `json:"kind"`
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
}

// Detect handles POST /dashboard/detect/:kind for kind ∈ {email,url,file}.
//
// @Summary      Classify a sample
// @Tags         detections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string         true  "Detection kind (email, url, file)"
// @Param        body  body      detectRequest  true  "Sample to classify"
// @Success      200   {object}  detectResponse
// @Failure      400   {object}  map[string]string
// @Router       /dashboard/detect/{kind} [post]
func (h *DetectionHandler) Detect(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	kind := domain.DetectionKind(c.Param("kind"))
	switch kind {
	case domain.DetectionEmail, domain.DetectionURL, domain.DetectionFile:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown detection kind"})
	}

	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.service.Detect(c.Request().Context(), ports.DetectionInput{
		UserID:  profile.ID,
		Kind:    kind,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detectResponse{
		Kind:       string(kind),
		Verdict:    string(result.Verdict),
		Confidence: result.Confidence,
	})
}
