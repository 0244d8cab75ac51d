package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the unprotected surface: the login landing and
// the public articles. These paths never pass the edge gate, which is
// exactly the point — the gate matches only the protected group.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type loginPageResponse struct {
	Title string `json:"title"`
	Form  string `json:"form"`
}

// LoginPage handles GET /login, the destination of every session-failure
// redirect.
func (h *ContentHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, loginPageResponse{
		Title: "Sign in to VeriScan",
		Form:  "POST /auth/login",
	})
}

type articleResponse struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Article handles GET /articles/:slug.
func (h *ContentHandler) Article(c echo.Context) error {
	slug := c.Param("slug")
	return c.JSON(http.StatusOK, articleResponse{
		Slug:  slug,
		Title: "VeriScan articles",
		Body:  "Public content is served without any session checks.",
	})
}
