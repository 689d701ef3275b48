package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/service"
	"github.com/maheshrc27/shutterpost/internal/transfer"
)

type MediaHandler struct {
	s service.MediaService
}

func NewMediaHandler(service service.MediaService) *MediaHandler {
	return &MediaHandler{s: service}
}

func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}

	f, err := file.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := h.s.Upload(c.Context(), &transfer.MediaUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *MediaHandler) GetMedia(c *fiber.Ctx) error {
	blob, err := h.s.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blob)
}
