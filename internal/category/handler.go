package category

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/asfiqazi/expense-tracker/internal/apperr"
	"github.com/asfiqazi/expense-tracker/internal/auth"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return apperr.Invalid("name", "required")
	}

	cat, err := h.Store.CreateCategory(auth.RequestContext(c), userID, req.Name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Store.CategoriesByUser(auth.RequestContext(c), userID)
	if err != nil {
		return err
	}

	return c.JSON(items)
}
