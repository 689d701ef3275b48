package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/service"
	"github.com/maheshrc27/shutterpost/internal/transfer"
)

type GenerationHandler struct {
	s service.GenerationService
}

func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{s: service}
}

func (h *GenerationHandler) GenerateCaption(c *fiber.Ctx) error {
	req := transfer.NewCaptionRequest()
	if err := parseBody(c, req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	caption, err := h.s.Caption(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(caption)
}

func (h *GenerationHandler) GenerateImage(c *fiber.Ctx) error {
	req := transfer.NewImageRequest()
	if err := parseBody(c, req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	img, err := h.s.Image(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(img)
}

func (h *GenerationHandler) GenerateIdeas(c *fiber.Ctx) error {
	req := transfer.NewIdeasRequest()
	if err := parseBody(c, req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ideas, err := h.s.Ideas(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ideas": ideas})
}

func (h *GenerationHandler) GenerateTips(c *fiber.Ctx) error {
	req := transfer.NewListRequest()
	if err := parseBody(c, req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tips, err := h.s.Tips(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"tips": tips})
}

func (h *GenerationHandler) GenerateContentMix(c *fiber.Ctx) error {
	req := transfer.NewListRequest()
	if err := parseBody(c, req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ideas, err := h.s.MixIdeas(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ideas": ideas})
}
