package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the HTML shells for the page routes. The frontend owns
// the real UI; these exist so the access gate has routes to protect.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("TrainTrack | Dashboard"))
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("TrainTrack | Log in"))
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.HTML(http.StatusOK, pageShell("TrainTrack | Register"))
}

func pageShell(title string) string {
	return `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>` + title + `</title></head>
<body><div id="app"></div></body>
</html>
`
}
