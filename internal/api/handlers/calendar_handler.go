package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/service"
	"github.com/maheshrc27/shutterpost/internal/transfer"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(service service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: service}
}

// SchedulePost reads query parameters first; a JSON body fills whatever
// the query left empty.
func (h *CalendarHandler) SchedulePost(c *fiber.Ctx) error {
	var req transfer.ScheduleRequest
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, "Invalid query parameters")
	}

	var body transfer.ScheduleRequest
	if err := parseBody(c, &body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ContentID == "" {
		req.ContentID = body.ContentID
	}
	if req.ScheduledDate == "" {
		req.ScheduledDate = body.ScheduledDate
	}
	if req.ScheduledTime == "" {
		req.ScheduledTime = body.ScheduledTime
	}

	post, err := h.s.Schedule(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":        "Post scheduled successfully",
		"scheduled_post": post,
	})
}

func (h *CalendarHandler) GetCalendar(c *fiber.Ctx) error {
	entries, err := h.s.Calendar(c.Context(), c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"calendar": entries})
}

func (h *CalendarHandler) CancelScheduledPost(c *fiber.Ctx) error {
	if err := h.s.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Scheduled post cancelled"})
}
