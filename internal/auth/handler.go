package auth

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	Service *Service
	Issuer  *Issuer
}

func NewHandler(service *Service, issuer *Issuer) *Handler {
	return &Handler{Service: service, Issuer: issuer}
}

func (h *Handler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Service.Register(RequestContext(c), body.Email, body.Name, body.Password)
	if err != nil {
		return err
	}

	return h.respondWithToken(c, fiber.StatusCreated, user)
}

func (h *Handler) Signin(c *fiber.Ctx) error {
	var body signinRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Service.Verify(RequestContext(c), body.Email, body.Password)
	if err != nil {
		return err
	}

	return h.respondWithToken(c, fiber.StatusOK, user)
}

func (h *Handler) respondWithToken(c *fiber.Ctx, status int, user *User) error {
	token, err := h.Issuer.IssueToken(user.ID, user.Email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.Status(status).JSON(authResponse{
		AccessToken: token,
		User: userPayload{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
