package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/asfiqazi/expense-tracker/internal/analytics"
	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/auth"
)

type Handler struct {
	Analytics *analytics.Service
	Users     auth.UserStore
}

func NewHandler(svc *analytics.Service, users auth.UserStore) *Handler {
	return &Handler{Analytics: svc, Users: users}
}

// SpendReport serves GET /api/expenses/report?startDate&endDate as a PDF.
// The range defaults to the last 30 days when omitted.
func (h *Handler) SpendReport(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from := strings.TrimSpace(c.Query("startDate"))
	to := strings.TrimSpace(c.Query("endDate"))
	if from == "" || to == "" {
		end := time.Now().UTC()
		from = end.AddDate(0, 0, -29).Format("2006-01-02")
		to = end.Format("2006-01-02")
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return apperr.Invalid("startDate", "must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return apperr.Invalid("endDate", "must be YYYY-MM-DD")
	}

	ctx := auth.RequestContext(c)
	sum, err := h.Analytics.Summarize(ctx, userID, start, end)
	if err != nil {
		return err
	}

	displayName := userID
	if u, err := h.Users.UserByID(ctx, userID); err == nil {
		displayName = u.Name
	}

	pdfBytes, err := BuildSpendPDF(displayName, from, to, sum)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="expenses_%s_%s.pdf"`, from, to))
	return c.Send(pdfBytes)
}
