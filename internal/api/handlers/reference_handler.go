package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/refdata"
)

// ReferenceHandler serves the static lookup tables.
type ReferenceHandler struct {
	now func() time.Time
}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{now: time.Now}
}

func (h *ReferenceHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Instagram Content Creator API"})
}

func (h *ReferenceHandler) Niches(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"niches": refdata.Niches()})
}

func (h *ReferenceHandler) Hashtags(c *fiber.Ctx) error {
	niche := c.Params("niche")
	tags, ok := refdata.Hashtags(niche)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Niche not found"})
	}
	return c.JSON(fiber.Map{"niche": niche, "hashtags": tags})
}

func (h *ReferenceHandler) Tips(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": refdata.TipCategories(),
		"tips":       refdata.AllTips(),
	})
}

func (h *ReferenceHandler) TipsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	tips, ok := refdata.Tips(category)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(fiber.Map{"category": category, "tips": tips})
}

func (h *ReferenceHandler) ContentMix(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": refdata.MixCategories(),
		"ideas":      refdata.AllMixIdeas(),
	})
}

func (h *ReferenceHandler) ContentMixByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	ideas, ok := refdata.MixIdeas(category)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return c.JSON(fiber.Map{
		"category":     category,
		"content_type": refdata.MixContentType(category),
		"ideas":        ideas,
	})
}

func (h *ReferenceHandler) Seasonal(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"current_month": strings.ToLower(h.now().Month().String()),
		"seasonal":      refdata.AllSeasonal(),
	})
}

func (h *ReferenceHandler) SeasonalByMonth(c *fiber.Ctx) error {
	month := strings.ToLower(c.Params("month"))
	ideas, ok := refdata.Seasonal(month)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Month not found"})
	}
	return c.JSON(fiber.Map{"month": month, "ideas": ideas})
}
