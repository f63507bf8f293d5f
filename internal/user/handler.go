package user

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service *Service
	secret  []byte
	ttl     time.Duration
}

func NewHandler(service *Service, secret string, ttl time.Duration) *Handler {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Handler{service: service, secret: []byte(secret), ttl: ttl}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
	app.Get("/api/v1/session", h.getSession)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-out", h.logout)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(Credentials)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	admin, err := h.service.Login(c.UserContext(), *payload)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	claims := jwt.MapClaims{
		"username": admin.Username,
		"exp":      time.Now().Add(h.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"admin":   admin,
		"token":   signed,
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"loggedIn": h.service.LoggedIn(c.UserContext())})
}

// RequireSession rejects requests unless a token was verified upstream and
// the persisted session flag is still set.
func RequireSession(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := GetUsernameFromCtx(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if !svc.LoggedIn(c.UserContext()) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "session expired"})
		}
		return c.Next()
	}
}

// GetUsernameFromCtx extracts the username claim from the JWT token stored
// in `c.Locals("user")`.
func GetUsernameFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	name, ok := claims["username"].(string)
	if !ok || name == "" {
		return "", fiber.ErrUnauthorized
	}
	return name, nil
}
