// User HTTP handlers. A user owns its posts and its optional address; the
// JSON shape carries both as plain ids (addressId, postIds).
//
// Besides the generic CRUD routes, this file exposes:
//   - GET /users/email/{email}
//   - GET /users/age-range?min=N&max=M
//   - GET /users/search?name=term
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// UserService defines the user operations consumed by HTTP handlers.
type UserService interface {
	CRUD[domain.User, uint]
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByAgeBetween(ctx context.Context, minAge, maxAge int) ([]domain.User, error)
	SearchByName(ctx context.Context, term string) ([]domain.User, error)
}

// UserRequest is the JSON payload for creating or updating a user.
type UserRequest struct {
	Name  string `json:"name" binding:"notblank,max=100" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required,email,max=255" example:"ada@example.com"`
	Age   int    `json:"age" binding:"min=0,max=150" example:"36"`
	// AddressID references an existing address; null or omitted clears it.
	AddressID *uint `json:"addressId" binding:"omitempty,min=1" example:"1"`
	// PostIDs is the complete list of posts the user owns. Omit it to leave
	// posts untouched; [] deletes all of the user's posts.
	PostIDs []uint `json:"postIds" binding:"omitempty,dive,min=1"`
}

// UserResponse is the JSON representation of a user.
type UserResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"Ada Lovelace"`
	Email     string `json:"email" example:"ada@example.com"`
	Age       int    `json:"age" example:"36"`
	AddressID *uint  `json:"addressId" example:"1"`
	PostIDs   []uint `json:"postIds"`
}

func toUser(r *UserRequest) *domain.User {
	u := &domain.User{
		Name:      strings.TrimSpace(r.Name),
		Email:     r.Email,
		Age:       r.Age,
		AddressID: r.AddressID,
	}
	if r.PostIDs != nil {
		u.Posts = make([]domain.Post, 0, len(r.PostIDs))
		for _, id := range r.PostIDs {
			u.Posts = append(u.Posts, domain.Post{ID: id})
		}
	}
	return u
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		AddressID: u.AddressID,
		PostIDs:   u.PostIDs(),
	}
}

// UserHandler serves /users.
type UserHandler struct {
	*Resource[domain.User, uint, UserRequest, UserResponse]
	svc UserService
}

// NewUserHandler constructs the user handler bound to svc.
func NewUserHandler(svc UserService, opt Options) *UserHandler {
	return &UserHandler{
		Resource: &Resource[domain.User, uint, UserRequest, UserResponse]{
			Name:           "users",
			Svc:            svc,
			ParseKey:       ParseID,
			FormatKey:      FormatID,
			KeyOf:          func(u *domain.User) uint { return u.ID },
			ToEntity:       toUser,
			ToResponse:     toUserResponse,
			MaxPageSize:    opt.MaxPageSize,
			DB:             opt.DB,
			IdempotencyTTL: opt.IdempotencyTTL,
		},
		svc: svc,
	}
}

// Register mounts the user routes under g.
func (h *UserHandler) Register(g *gin.RouterGroup) {
	rg := h.Mount(g)
	rg.GET("/email/:email", h.FindByEmail)
	rg.GET("/age-range", h.FindByAgeBetween)
	rg.GET("/search", h.SearchByName)
}

// FindByEmail godoc
// @ID          findUserByEmail
// @Summary     Find a user by email
// @Tags        Users
// @Produce     json
// @Param       email  path  string  true  "Email"  example(ada@example.com)
// @Success     200  {object}  handlers.UserResponse
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/email/{email} [get]
func (h *UserHandler) FindByEmail(c *gin.Context) {
	u, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	h.respondOne(c, u, err)
}

// FindByAgeBetween godoc
// @ID          findUsersByAge
// @Summary     List users within an age range
// @Description Both bounds are inclusive.
// @Tags        Users
// @Produce     json
// @Param       min  query  int  true  "Minimum age"  example(18)
// @Param       max  query  int  true  "Maximum age"  example(65)
// @Success     200  {array}   handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid bound"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/age-range [get]
func (h *UserHandler) FindByAgeBetween(c *gin.Context) {
	minAge, good := queryInt(c, "min")
	if !good {
		return
	}
	maxAge, good := queryInt(c, "max")
	if !good {
		return
	}
	items, err := h.svc.FindByAgeBetween(c.Request.Context(), minAge, maxAge)
	h.respondList(c, items, err)
}

// SearchByName godoc
// @ID          searchUsers
// @Summary     Search users by name
// @Description Case-insensitive substring match on the name.
// @Tags        Users
// @Produce     json
// @Param       name  query  string  true  "Search term"  example(ada)
// @Success     200  {array}   handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing term"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/search [get]
func (h *UserHandler) SearchByName(c *gin.Context) {
	term, good := requiredQuery(c, "name")
	if !good {
		return
	}
	items, err := h.svc.SearchByName(c.Request.Context(), term)
	h.respondList(c, items, err)
}
