package product

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/:id", h.getProduct)
}

type listResponse struct {
	Category string     `json:"category"`
	Query    string     `json:"query"`
	Products []View     `json:"products"`
	Empty    EmptyState `json:"empty,omitempty"`
}

// getProducts filters by ?category= and ?q=.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	f := Filter{Category: c.Query("category", AllCategories), Query: c.Query("q")}
	res := h.service.List(c.UserContext(), f)
	return c.JSON(listResponse{
		Category: f.Category,
		Query:    f.Query,
		Products: NewViews(res.Products),
		Empty:    res.Empty,
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	v, err := h.service.Detail(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(v)
}
