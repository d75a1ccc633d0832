package analytics

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/auth"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	start, end, err := parseRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return err
	}

	sum, err := h.Service.Summarize(auth.RequestContext(c), userID, start, end)
	if err != nil {
		return err
	}

	return c.JSON(sum)
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	startDate = strings.TrimSpace(startDate)
	endDate = strings.TrimSpace(endDate)

	if startDate == "" {
		return time.Time{}, time.Time{}, apperr.Invalid("startDate", "required")
	}
	if endDate == "" {
		return time.Time{}, time.Time{}, apperr.Invalid("endDate", "required")
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Invalid("startDate", "must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Invalid("endDate", "must be YYYY-MM-DD")
	}

	return start, end, nil
}
