package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/service"
	"github.com/maheshrc27/shutterpost/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var cc transfer.ContentCreation
	if err := c.BodyParser(&cc); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.s.Create(c.Context(), &cc)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ContentHandler) ListContent(c *fiber.Ctx) error {
	items, err := h.s.List(c.Context(), models.ContentFilter{
		Status: c.Query("status"),
		Niche:  c.Query("niche"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"content": items})
}

func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	item, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	var cc transfer.ContentCreation
	if err := c.BodyParser(&cc); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.s.Update(c.Context(), c.Params("id"), &cc); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Content updated successfully"})
}

func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	if err := h.s.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Content deleted successfully"})
}
