// Category HTTP handlers.
//
// Besides the generic CRUD routes, this file exposes:
//   - GET /categories/name/{name}
//   - GET /categories/active?active=true|false
//   - GET /categories/search?q=term
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// CategoryService defines the category operations consumed by HTTP handlers.
type CategoryService interface {
	CRUD[domain.Category, uint]
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindByActive(ctx context.Context, active bool) ([]domain.Category, error)
	SearchByName(ctx context.Context, term string) ([]domain.Category, error)
}

// CategoryRequest is the JSON payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name" binding:"notblank,max=100" example:"Books"`
	Description string `json:"description" binding:"max=500" example:"Printed and digital books"`
	// Active defaults to true when omitted.
	Active *bool `json:"active" example:"true"`
}

// CategoryResponse is the JSON representation of a category.
type CategoryResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Books"`
	Description string `json:"description" example:"Printed and digital books"`
	Active      bool   `json:"active" example:"true"`
}

func toCategory(r *CategoryRequest) *domain.Category {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.Category{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Active:      active,
	}
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, Active: c.Active}
}

// CategoryHandler serves /categories.
type CategoryHandler struct {
	*Resource[domain.Category, uint, CategoryRequest, CategoryResponse]
	svc CategoryService
}

// NewCategoryHandler constructs the category handler bound to svc.
func NewCategoryHandler(svc CategoryService, opt Options) *CategoryHandler {
	return &CategoryHandler{
		Resource: &Resource[domain.Category, uint, CategoryRequest, CategoryResponse]{
			Name:           "categories",
			Svc:            svc,
			ParseKey:       ParseID,
			FormatKey:      FormatID,
			KeyOf:          func(c *domain.Category) uint { return c.ID },
			ToEntity:       toCategory,
			ToResponse:     toCategoryResponse,
			MaxPageSize:    opt.MaxPageSize,
			DB:             opt.DB,
			IdempotencyTTL: opt.IdempotencyTTL,
		},
		svc: svc,
	}
}

// Register mounts the category routes under g.
func (h *CategoryHandler) Register(g *gin.RouterGroup) {
	rg := h.Mount(g)
	rg.GET("/name/:name", h.FindByName)
	rg.GET("/active", h.FindByActive)
	rg.GET("/search", h.Search)
}

// FindByName godoc
// @ID          findCategoryByName
// @Summary     Find a category by name
// @Tags        Categories
// @Produce     json
// @Param       name  path  string  true  "Exact category name"  example(Books)
// @Success     200  {object}  handlers.CategoryResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/name/{name} [get]
func (h *CategoryHandler) FindByName(c *gin.Context) {
	cat, err := h.svc.FindByName(c.Request.Context(), c.Param("name"))
	h.respondOne(c, cat, err)
}

// FindByActive godoc
// @ID          findCategoriesByActive
// @Summary     List active or inactive categories
// @Tags        Categories
// @Produce     json
// @Param       active  query  bool  true  "Active flag"
// @Success     200  {array}   handlers.CategoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid flag"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/active [get]
func (h *CategoryHandler) FindByActive(c *gin.Context) {
	active, good := queryBool(c, "active")
	if !good {
		return
	}
	items, err := h.svc.FindByActive(c.Request.Context(), active)
	h.respondList(c, items, err)
}

// Search godoc
// @ID          searchCategories
// @Summary     Search categories by name
// @Description Case-insensitive substring match on the category name.
// @Tags        Categories
// @Produce     json
// @Param       q  query  string  true  "Search term"  example(book)
// @Success     200  {array}   handlers.CategoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing term"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/search [get]
func (h *CategoryHandler) Search(c *gin.Context) {
	q, good := requiredQuery(c, "q")
	if !good {
		return
	}
	items, err := h.svc.SearchByName(c.Request.Context(), q)
	h.respondList(c, items, err)
}
