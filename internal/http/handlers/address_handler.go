// Address HTTP handlers.
//
// Besides the generic CRUD routes, this file exposes:
//   - GET /addresses/city/{city}
//   - GET /addresses/zip/{zipCode}
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// AddressService defines the address operations consumed by HTTP handlers.
type AddressService interface {
	CRUD[domain.Address, uint]
	FindByCity(ctx context.Context, city string) ([]domain.Address, error)
	FindByZipCode(ctx context.Context, zip string) ([]domain.Address, error)
}

// AddressRequest is the JSON payload for creating or updating an address.
type AddressRequest struct {
	Street  string `json:"street" binding:"notblank,max=255" example:"221B Baker Street"`
	City    string `json:"city" binding:"notblank,max=100" example:"London"`
	ZipCode string `json:"zipCode" binding:"required,zipcode" example:"12345"`
}

// AddressResponse is the JSON representation of an address.
type AddressResponse struct {
	ID      uint   `json:"id" example:"1"`
	Street  string `json:"street" example:"221B Baker Street"`
	City    string `json:"city" example:"London"`
	ZipCode string `json:"zipCode" example:"12345"`
}

func toAddress(r *AddressRequest) *domain.Address {
	return &domain.Address{
		Street:  strings.TrimSpace(r.Street),
		City:    strings.TrimSpace(r.City),
		ZipCode: r.ZipCode,
	}
}

func toAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{ID: a.ID, Street: a.Street, City: a.City, ZipCode: a.ZipCode}
}

// AddressHandler serves /addresses.
type AddressHandler struct {
	*Resource[domain.Address, uint, AddressRequest, AddressResponse]
	svc AddressService
}

// NewAddressHandler constructs the address handler bound to svc.
func NewAddressHandler(svc AddressService, opt Options) *AddressHandler {
	return &AddressHandler{
		Resource: &Resource[domain.Address, uint, AddressRequest, AddressResponse]{
			Name:           "addresses",
			Svc:            svc,
			ParseKey:       ParseID,
			FormatKey:      FormatID,
			KeyOf:          func(a *domain.Address) uint { return a.ID },
			ToEntity:       toAddress,
			ToResponse:     toAddressResponse,
			MaxPageSize:    opt.MaxPageSize,
			DB:             opt.DB,
			IdempotencyTTL: opt.IdempotencyTTL,
		},
		svc: svc,
	}
}

// Register mounts the address routes under g.
func (h *AddressHandler) Register(g *gin.RouterGroup) {
	rg := h.Mount(g)
	rg.GET("/city/:city", h.FindByCity)
	rg.GET("/zip/:zipCode", h.FindByZipCode)
}

// FindByCity godoc
// @ID          findAddressesByCity
// @Summary     Find addresses by city
// @Description Returns every address in the given city (exact match).
// @Tags        Addresses
// @Produce     json
// @Param       city  path  string  true  "City"  example(London)
// @Success     200  {array}   handlers.AddressResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /addresses/city/{city} [get]
func (h *AddressHandler) FindByCity(c *gin.Context) {
	items, err := h.svc.FindByCity(c.Request.Context(), c.Param("city"))
	h.respondList(c, items, err)
}

// FindByZipCode godoc
// @ID          findAddressesByZipCode
// @Summary     Find addresses by ZIP code
// @Tags        Addresses
// @Produce     json
// @Param       zipCode  path  string  true  "ZIP code"  example(12345)
// @Success     200  {array}   handlers.AddressResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /addresses/zip/{zipCode} [get]
func (h *AddressHandler) FindByZipCode(c *gin.Context) {
	items, err := h.svc.FindByZipCode(c.Request.Context(), c.Param("zipCode"))
	h.respondList(c, items, err)
}
