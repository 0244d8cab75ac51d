package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

// DashboardHandler serves the protected dashboard surface. Which routes a
// caller can reach is decided entirely by the middleware chain; handlers
// only render content for the already-authorized profile.
type DashboardHandler struct {
	detections ports.DetectionService
}

func NewDashboardHandler(detections ports.DetectionService) *DashboardHandler {
	return &DashboardHandler{detections: detections}
}

type navItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// compositionResponse describes the one experience tree mounted for the
// resolved role.
type compositionResponse struct {
	Tree string          `json:"tree"`
	User *domain.Profile `json:"user"`
	Nav  []navItem       `json:"nav"`
}

var individualNav = []navItem{
	{Label: "Overview", Path: "/dashboard/overview"},
	{Label: "My Detections", Path: "/dashboard/detections"},
	{Label: "Scan Email", Path: "/dashboard/detect/email"},
	{Label: "Scan URL", Path: "/dashboard/detect/url"},
	{Label: "Scan File", Path: "/dashboard/detect/file"},
	{Label: "Account", Path: "/dashboard/account"},
}

var businessNav = []navItem{
	{Label: "Overview", Path: "/dashboard/overview"},
	{Label: "Detections", Path: "/dashboard/detections"},
	{Label: "Scan Email", Path: "/dashboard/detect/email"},
	{Label: "Scan URL", Path: "/dashboard/detect/url"},
	{Label: "Scan File", Path: "/dashboard/detect/file"},
	{Label: "Analytics", Path: "/dashboard/analytics"},
	{Label: "Team", Path: "/dashboard/team"},
}

// Composition handles GET /dashboard: exactly one of the two experience
// trees for the resolved role. The middleware guarantees the role is in
// the closed set by the time this runs.
//
// @Summary      Dashboard composition for the resolved role
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  compositionResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Composition(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	resp := compositionResponse{Tree: string(profile.Role), User: profile}
	switch profile.Role {
	case domain.RoleBusiness:
		resp.Nav = businessNav
	default:
		resp.Nav = individualNav
	}
	return c.JSON(http.StatusOK, resp)
}

type overviewResponse struct {
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	DetectionsCount int64     `json:"detectionsCount"`
	LastLogin       time.Time `json:"lastLogin"`
}

// Overview handles GET /dashboard/overview. Reachable by every role; it
// is the guard-free fallback every denial view points at.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Router       /dashboard/overview [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, overviewResponse{
		Name:            profile.Name,
		Role:            string(profile.Role),
		DetectionsCount: profile.DetectionsCount,
		LastLogin:       profile.LastLogin,
	})
}

type detectionsResponse struct {
	DetectionsCount int64               `json:"detectionsCount"`
	Recent          []*domain.Detection `json:"recent"`
}

// Detections handles GET /dashboard/detections.
//
// @Summary      Recent detections for the current user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  detectionsResponse
// @Router       /dashboard/detections [get]
func (h *DashboardHandler) Detections(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	recent, err := h.detections.ListRecent(c.Request().Context(), profile.ID, 20)
	if err != nil {
		return err
	}
	if recent == nil {
		recent = []*domain.Detection{}
	}

	return c.JSON(http.StatusOK, detectionsResponse{
		DetectionsCount: profile.DetectionsCount,
		Recent:          recent,
	})
}

type analyticsResponse struct {
	TotalDetections int64          `json:"totalDetections"`
	ByVerdict       map[string]int `json:"byVerdict"`
	Period          string         `json:"period"`
}

// Analytics handles GET /dashboard/analytics (business accounts only;
// enforced by the route guard).
//
// @Summary      Detection analytics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analyticsResponse
// @Failure      403  {object}  middleware.DenialResponse
// @Router       /dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	recent, err := h.detections.ListRecent(c.Request().Context(), profile.ID, 100)
	if err != nil {
		return err
	}

	byVerdict := make(map[string]int)
	for _, d := range recent {
		byVerdict[string(d.Verdict)]++
	}

	return c.JSON(http.StatusOK, analyticsResponse{
		TotalDetections: profile.DetectionsCount,
		ByVerdict:       byVerdict,
		Period:          "30d",
	})
}

type teamResponse struct {
	Organization string `json:"organization"`
	OwnerEmail   string `json:"ownerEmail"`
	SeatsUsed    int    `json:"seatsUsed"`
}

// Team handles GET /dashboard/team (business accounts only).
//
// @Summary      Team settings
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  teamResponse
// @Failure      403  {object}  middleware.DenialResponse
// @Router       /dashboard/team [get]
func (h *DashboardHandler) Team(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, teamResponse{
		Organization: profile.Name,
		OwnerEmail:   profile.Email,
		SeatsUsed:    1,
	})
}

type accountResponse struct {
	User *domain.Profile `json:"user"`
	Plan string          `json:"plan"`
}

// Account handles GET /dashboard/account (individual accounts only).
//
// @Summary      Account settings
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Failure      403  {object}  middleware.DenialResponse
// @Router       /dashboard/account [get]
func (h *DashboardHandler) Account(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, accountResponse{User: profile, Plan: "personal"})
}
