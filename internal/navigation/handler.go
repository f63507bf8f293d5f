package navigation

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/kriuke-snack/internal/notice"
)

// Notices exposes the visible toast.
type Notices interface {
	Current() notice.Notice
}

type Handler struct {
	router  *Router
	notices Notices
}

func NewHandler(r *Router, n Notices) *Handler {
	return &Handler{router: r, notices: n}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/view", h.getView)
	app.Post("/api/v1/view/navigate", h.navigate)
	app.Post("/api/v1/view/detail/:id", h.showDetail)
	app.Post("/api/v1/view/menu", h.toggleMenu)
	app.Post("/api/v1/view/share/:id", h.openShare)
	app.Delete("/api/v1/view/share", h.closeShare)
	app.Post("/api/v1/view/ecommerce/:id", h.openEcommerce)
	app.Delete("/api/v1/view/ecommerce", h.closeEcommerce)
	app.Get("/api/v1/notice", h.getNotice)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/view/modal", h.openModal)
	app.Delete("/api/v1/view/modal", h.closeModal)
	app.Post("/api/v1/view/admin/new", h.newProduct)
	app.Post("/api/v1/view/admin/edit/:id", h.editProduct)
	app.Post("/api/v1/view/admin/dashboard", h.dashboard)
}

type navigateRequest struct {
	Page string `json:"page"`
}

type modalRequest struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
}

func (h *Handler) state(c *fiber.Ctx) error {
	return c.JSON(h.router.View(c.UserContext()))
}

func (h *Handler) getView(c *fiber.Ctx) error {
	return h.state(c)
}

func (h *Handler) navigate(c *fiber.Ctx) error {
	payload := new(navigateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	page, err := ParsePage(payload.Page)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	h.router.Navigate(c.UserContext(), page)
	return h.state(c)
}

func (h *Handler) showDetail(c *fiber.Ctx) error {
	h.router.ShowDetail(c.UserContext(), strings.Clone(c.Params("id")))
	return h.state(c)
}

func (h *Handler) toggleMenu(c *fiber.Ctx) error {
	h.router.ToggleMenu()
	return h.state(c)
}

func (h *Handler) openShare(c *fiber.Ctx) error {
	h.router.OpenShare(strings.Clone(c.Params("id")))
	return h.state(c)
}

func (h *Handler) closeShare(c *fiber.Ctx) error {
	h.router.CloseShare()
	return h.state(c)
}

func (h *Handler) openEcommerce(c *fiber.Ctx) error {
	h.router.OpenEcommerce(strings.Clone(c.Params("id")))
	return h.state(c)
}

func (h *Handler) closeEcommerce(c *fiber.Ctx) error {
	h.router.CloseEcommerce()
	return h.state(c)
}

func (h *Handler) getNotice(c *fiber.Ctx) error {
	if h.notices == nil {
		return c.JSON(notice.Notice{})
	}
	return c.JSON(h.notices.Current())
}

func (h *Handler) openModal(c *fiber.Ctx) error {
	payload := new(modalRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	m, err := ParseModal(payload.Kind, payload.Target)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.router.OpenModal(m); err != nil {
		if errors.Is(err, ErrNoTarget) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return h.state(c)
}

func (h *Handler) closeModal(c *fiber.Ctx) error {
	h.router.CloseModal()
	return h.state(c)
}

func (h *Handler) newProduct(c *fiber.Ctx) error {
	h.router.NewProduct()
	return h.state(c)
}

func (h *Handler) editProduct(c *fiber.Ctx) error {
	h.router.EditProduct(strings.Clone(c.Params("id")))
	return h.state(c)
}

func (h *Handler) dashboard(c *fiber.Ctx) error {
	h.router.BackToDashboard()
	return h.state(c)
}
