package handlers

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed static/index.html
var indexPage []byte

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HandleIndex serves the upload form. Its script posts to /api/v1/recommend
// and swaps the returned fragment into the results region.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexPage)
}
