// Post HTTP handlers.
//
// Besides the generic CRUD routes, this file exposes:
//   - GET /posts/author/{authorId}
//   - GET /posts/search?title=term
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PostService defines the post operations consumed by HTTP handlers.
type PostService interface {
	CRUD[domain.Post, uint]
	FindByAuthor(ctx context.Context, authorID uint) ([]domain.Post, error)
	SearchByTitle(ctx context.Context, term string) ([]domain.Post, error)
}

// PostRequest is the JSON payload for creating or updating a post.
type PostRequest struct {
	Title   string `json:"title" binding:"notblank,max=200" example:"Hello, world"`
	Content string `json:"content" binding:"notblank" example:"First post."`
	// AuthorID references an existing user.
	AuthorID uint `json:"authorId" binding:"required" example:"1"`
}

// PostResponse is the JSON representation of a post.
type PostResponse struct {
	ID       uint   `json:"id" example:"1"`
	Title    string `json:"title" example:"Hello, world"`
	Content  string `json:"content" example:"First post."`
	AuthorID uint   `json:"authorId" example:"1"`
}

func toPost(r *PostRequest) *domain.Post {
	return &domain.Post{
		Title:    strings.TrimSpace(r.Title),
		Content:  r.Content,
		AuthorID: r.AuthorID,
	}
}

func toPostResponse(p *domain.Post) PostResponse {
	return PostResponse{ID: p.ID, Title: p.Title, Content: p.Content, AuthorID: p.AuthorID}
}

// PostHandler serves /posts.
type PostHandler struct {
	*Resource[domain.Post, uint, PostRequest, PostResponse]
	svc PostService
}

// NewPostHandler constructs the post handler bound to svc.
func NewPostHandler(svc PostService, opt Options) *PostHandler {
	return &PostHandler{
		Resource: &Resource[domain.Post, uint, PostRequest, PostResponse]{
			Name:           "posts",
			Svc:            svc,
			ParseKey:       ParseID,
			FormatKey:      FormatID,
			KeyOf:          func(p *domain.Post) uint { return p.ID },
			ToEntity:       toPost,
			ToResponse:     toPostResponse,
			MaxPageSize:    opt.MaxPageSize,
			DB:             opt.DB,
			IdempotencyTTL: opt.IdempotencyTTL,
		},
		svc: svc,
	}
}

// Register mounts the post routes under g.
func (h *PostHandler) Register(g *gin.RouterGroup) {
	rg := h.Mount(g)
	rg.GET("/author/:authorId", h.FindByAuthor)
	rg.GET("/search", h.SearchByTitle)
}

// FindByAuthor godoc
// @ID          findPostsByAuthor
// @Summary     List the posts of a user
// @Tags        Posts
// @Produce     json
// @Param       authorId  path  int  true  "Author (user) ID"  minimum(1) example(1)
// @Success     200  {array}   handlers.PostResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid author id"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/author/{authorId} [get]
func (h *PostHandler) FindByAuthor(c *gin.Context) {
	authorID, err := ParseID(c.Param("authorId"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.svc.FindByAuthor(c.Request.Context(), authorID)
	h.respondList(c, items, err)
}

// SearchByTitle godoc
// @ID          searchPosts
// @Summary     Search posts by title
// @Description Case-insensitive substring match on the title.
// @Tags        Posts
// @Produce     json
// @Param       title  query  string  true  "Search term"  example(hello)
// @Success     200  {array}   handlers.PostResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing term"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /posts/search [get]
func (h *PostHandler) SearchByTitle(c *gin.Context) {
	term, good := requiredQuery(c, "title")
	if !good {
		return
	}
	items, err := h.svc.SearchByTitle(c.Request.Context(), term)
	h.respondList(c, items, err)
}
