package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// unescapeParam decodes a path parameter that may contain encoded characters
// (titles routinely carry spaces and punctuation).
func unescapeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
