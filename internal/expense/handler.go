package expense

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/auth"
	"github.com/asfiqazi/expense-tracker/internal/category"
)

type Handler struct {
	Store      Store
	Categories category.Store
}

func NewHandler(store Store, categories category.Store) *Handler {
	return &Handler{Store: store, Categories: categories}
}

// draftToExpense validates the draft, checks that the category belongs to
// the owner, and builds the record to persist.
func (h *Handler) draftToExpense(ctx context.Context, ownerID string, d *Draft) (*Expense, error) {
	date, err := ValidateDraft(d)
	if err != nil {
		return nil, err
	}

	if _, err := h.Categories.CategoryByID(ctx, ownerID, d.CategoryID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Invalid("categoryId", "unknown category")
		}
		return nil, err
	}

	return &Expense{
		UserID:        ownerID,
		Name:          d.Name,
		Amount:        d.Amount.Decimal,
		Date:          date,
		Description:   d.Description,
		CategoryID:    d.CategoryID,
		PaymentMethod: d.PaymentMethod,
	}, nil
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var draft Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	ctx := auth.RequestContext(c)
	exp, err := h.draftToExpense(ctx, userID, &draft)
	if err != nil {
		return err
	}

	created, err := h.Store.Insert(ctx, exp)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	filter, err := ParseFilter(
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("categoryId"),
		c.Query("paymentMethod"),
		c.Query("search"),
	)
	if err != nil {
		return err
	}

	items, err := h.Store.List(auth.RequestContext(c), userID, filter)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

func (h *Handler) GetExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	exp, err := h.Store.Get(auth.RequestContext(c), userID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(exp)
}

func (h *Handler) UpdateExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var draft Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	ctx := auth.RequestContext(c)
	exp, err := h.draftToExpense(ctx, userID, &draft)
	if err != nil {
		return err
	}

	updated, err := h.Store.Update(ctx, userID, c.Params("id"), exp)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	if err := h.Store.Delete(auth.RequestContext(c), userID, c.Params("id")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
