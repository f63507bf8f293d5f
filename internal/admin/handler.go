package admin

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/kriuke-snack/internal/category"
	"github.com/wichananm65/kriuke-snack/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/products", h.listProducts)
	app.Get("/api/v1/admin/products/new/form", h.newForm)
	app.Get("/api/v1/admin/products/:id/form", h.editForm)
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/products/:id", h.updateProduct)
	app.Delete("/api/v1/admin/products/:id", h.deleteProduct)
	app.Post("/api/v1/view/modal/confirm", h.confirmModal)
	app.Get("/api/v1/admin/export", h.export)
	app.Get("/api/v1/admin/snapshot", h.snapshot)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.Products(c.UserContext()))
}

func (h *Handler) newForm(c *fiber.Ctx) error {
	form, err := h.service.Form(c.UserContext(), "")
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

func (h *Handler) editForm(c *fiber.Ctx) error {
	form, err := h.service.Form(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(form)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	form := new(ProductForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	saved, err := h.service.SaveProduct(c.UserContext(), *form, "")
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": MsgCreated, "product": product.NewView(saved)})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	form := new(ProductForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	saved, err := h.service.SaveProduct(c.UserContext(), *form, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": MsgUpdated, "product": product.NewView(saved)})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": MsgDeleted})
}

func (h *Handler) confirmModal(c *fiber.Ctx) error {
	if err := h.service.ConfirmOpen(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ok"})
}

func (h *Handler) export(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.Export(c.UserContext(), &buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kriuke-products.xlsx"`)
	return c.Send(buf.Bytes())
}

func (h *Handler) snapshot(c *fiber.Ctx) error {
	snap, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(snap)
}

func writeError(c *fiber.Ctx, err error) error {
	var ves ValidationError
	switch {
	case errors.As(err, &ves):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	case errors.Is(err, ErrDiscountNotLower), errors.Is(err, category.ErrEmptyName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, category.ErrReserved):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, product.ErrNotFound), errors.Is(err, category.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
