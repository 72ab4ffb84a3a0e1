// Generic resource controller.
//
// Resource exposes the same REST surface for every entity:
//   - POST   /{resource}                 (create, 201 + Location, Idempotency-Key replay)
//   - GET    /{resource}                 (list all, weak ETag / 304)
//   - GET    /{resource}/paginated       (page envelope + X-Total-Count)
//   - GET    /{resource}/count           ({"count": n})
//   - GET    /{resource}/{id}            (read)
//   - GET    /{resource}/{id}/exists     ({"exists": bool})
//   - PUT    /{resource}/{id}            (update)
//   - DELETE /{resource}/{id}            (delete, 204)
//
// Handlers are transport-thin: they parse and validate input, call the
// service, and translate results into HTTP responses. Entity-specific finder
// routes are added next to these by the per-entity files.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tbourn/go-crud-backend/internal/http/middleware"
	"github.com/tbourn/go-crud-backend/internal/repo"
	"github.com/tbourn/go-crud-backend/internal/services"
	"github.com/tbourn/go-crud-backend/internal/utils"
)

// CRUD is the service contract a Resource drives. services.CRUDService and
// every per-entity service embedding it satisfy it.
//
// Implementations must be safe for concurrent use and honor ctx.
type CRUD[E any, K services.Key] interface {
	Create(ctx context.Context, e *E) (*E, error)
	GetByID(ctx context.Context, k K) (*E, error)
	GetAll(ctx context.Context) ([]E, error)
	GetPage(ctx context.Context, p utils.Pageable) (utils.Page[E], error)
	Update(ctx context.Context, k K, e *E) (*E, error)
	Delete(ctx context.Context, k K) error
	ExistsByID(ctx context.Context, k K) (bool, error)
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (int64, *time.Time, error)
}

// Resource binds a CRUD service to its routes. E is the entity, K its key,
// Req the request DTO and Resp the response DTO.
type Resource[E any, K services.Key, Req any, Resp any] struct {
	// Name is the collection path segment ("categories").
	Name string
	Svc  CRUD[E, K]

	// ParseKey converts the {id} path segment. Its error message is returned
	// to the client with a 400.
	ParseKey   func(string) (K, error)
	FormatKey  func(K) string
	KeyOf      func(*E) K
	ToEntity   func(*Req) *E
	ToResponse func(*E) Resp

	// MaxPageSize bounds ?size= on /paginated. Zero means 100.
	MaxPageSize int

	// DB stores Idempotency-Key records; nil disables idempotent replay.
	DB             *gorm.DB
	IdempotencyTTL time.Duration
}

// Mount registers the CRUD routes under g and returns the resource group so
// callers can add finder routes.
func (r *Resource[E, K, Req, Resp]) Mount(g *gin.RouterGroup) *gin.RouterGroup {
	rg := g.Group("/" + r.Name)
	rg.POST("", r.Create)
	rg.GET("", r.List)
	rg.GET("/paginated", r.Page)
	rg.GET("/count", r.Count)
	rg.GET("/:id", r.Get)
	rg.GET("/:id/exists", r.Exists)
	rg.PUT("/:id", r.Update)
	rg.DELETE("/:id", r.Delete)
	return rg
}

// Create validates the body, creates the entity and answers 201 with a
// Location header. A request repeating an Idempotency-Key already used on
// this route within the TTL gets the originally created resource back
// (Idempotency-Replayed: true) and nothing is inserted.
func (r *Resource[E, K, Req, Resp]) Create(c *gin.Context) {
	ctx := c.Request.Context()
	idemKey, hasKey := middleware.GetIdempotencyKey(c)
	track := hasKey && r.DB != nil

	// stale is set when the key is live but its resource is gone.
	stale := false
	if track && middleware.IsReplay(c) {
		if e, ok := r.replayed(c, idemKey); ok {
			c.Header("Idempotency-Replayed", "true")
			r.created(c, e)
			return
		}
		stale = true
	}

	var req Req
	if !bindJSON(c, &req) {
		return
	}
	e, err := r.Svc.Create(ctx, r.ToEntity(&req))
	if err != nil {
		respondError(c, err)
		return
	}

	if track {
		r.remember(c, idemKey, r.FormatKey(r.KeyOf(e)), stale)
	}
	r.created(c, e)
}

// remember stores which resource idemKey created. Failures are logged and
// never fail the request: the resource already exists.
func (r *Resource[E, K, Req, Resp]) remember(c *gin.Context, idemKey, resourceID string, stale bool) {
	ctx, now := c.Request.Context(), time.Now().UTC()
	var err error
	if stale {
		err = repo.RebindIdempotency(ctx, r.DB, c.FullPath(), idemKey, resourceID, r.IdempotencyTTL, now)
	}
	if !stale || errors.Is(err, repo.ErrNotFound) {
		_, err = repo.CreateIdempotency(ctx, r.DB, c.FullPath(), idemKey, resourceID, http.StatusCreated, r.IdempotencyTTL, now)
	}
	if err != nil && !errors.Is(err, repo.ErrDuplicate) {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record not stored")
	}
}

// replayed resolves a stored idempotency record to the resource it created.
// A record whose resource has since been deleted is not replayed.
func (r *Resource[E, K, Req, Resp]) replayed(c *gin.Context, key string) (*E, bool) {
	ctx := c.Request.Context()
	rec, err := repo.GetIdempotency(ctx, r.DB, c.FullPath(), key, time.Now().UTC())
	if err != nil {
		return nil, false
	}
	k, err := r.ParseKey(rec.ResourceID)
	if err != nil {
		return nil, false
	}
	e, err := r.Svc.GetByID(ctx, k)
	if err != nil {
		return nil, false
	}
	return e, true
}

func (r *Resource[E, K, Req, Resp]) created(c *gin.Context, e *E) {
	loc := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + url.PathEscape(r.FormatKey(r.KeyOf(e)))
	c.Header("Location", loc)
	ok(c, http.StatusCreated, r.ToResponse(e))
}

// List returns every entity. It sets a weak ETag derived from the table's
// row count and latest modification, and answers 304 when If-None-Match
// matches.
func (r *Resource[E, K, Req, Resp]) List(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if count, maxTS, err := r.Svc.Stats(ctx); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.UnixNano()
		}
		etag := fmt.Sprintf(`W/"%s:%d:%d"`, r.Name, count, ts)
		c.Header("ETag", etag)
		if etagMatches(c.GetHeader("If-None-Match"), etag) {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, err := r.Svc.GetAll(ctx)
	r.respondList(c, items, err)
}

// Page returns one page of entities. Query: page (0-based, default 0),
// size (1..MaxPageSize, default 20) and any number of
// sort=property[,property...][,asc|desc].
func (r *Resource[E, K, Req, Resp]) Page(c *gin.Context) {
	p, err := parsePageable(c, r.MaxPageSize)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	page, err := r.Svc.GetPage(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("X-Total-Count", strconv.FormatInt(page.TotalElements, 10))
	ok(c, http.StatusOK, utils.MapPage(page, r.ToResponse))
}

// Count returns the number of stored entities.
func (r *Resource[E, K, Req, Resp]) Count(c *gin.Context) {
	n, err := r.Svc.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, CountResponse{Count: n})
}

// Get returns the entity stored under {id}.
func (r *Resource[E, K, Req, Resp]) Get(c *gin.Context) {
	k, good := r.key(c)
	if !good {
		return
	}
	e, err := r.Svc.GetByID(c.Request.Context(), k)
	r.respondOne(c, e, err)
}

// Exists reports whether {id} is stored.
func (r *Resource[E, K, Req, Resp]) Exists(c *gin.Context) {
	k, good := r.key(c)
	if !good {
		return
	}
	found, err := r.Svc.ExistsByID(c.Request.Context(), k)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ExistsResponse{Exists: found})
}

// Update validates the body and replaces the mutable fields of {id}.
func (r *Resource[E, K, Req, Resp]) Update(c *gin.Context) {
	k, good := r.key(c)
	if !good {
		return
	}
	var req Req
	if !bindJSON(c, &req) {
		return
	}
	e, err := r.Svc.Update(c.Request.Context(), k, r.ToEntity(&req))
	r.respondOne(c, e, err)
}

// Delete removes {id} and answers 204 with an empty body.
func (r *Resource[E, K, Req, Resp]) Delete(c *gin.Context) {
	k, good := r.key(c)
	if !good {
		return
	}
	if err := r.Svc.Delete(c.Request.Context(), k); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}

func (r *Resource[E, K, Req, Resp]) key(c *gin.Context) (K, bool) {
	k, err := r.ParseKey(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return k, false
	}
	return k, true
}

func (r *Resource[E, K, Req, Resp]) respondOne(c *gin.Context, e *E, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, r.ToResponse(e))
}

func (r *Resource[E, K, Req, Resp]) respondList(c *gin.Context, items []E, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]Resp, 0, len(items))
	for i := range items {
		out = append(out, r.ToResponse(&items[i]))
	}
	ok(c, http.StatusOK, out)
}

//
// Helpers
//

var errInvalidID = errors.New(MsgInvalidID)

// ParseID parses a surrogate key. Zero, negative and malformed values are
// rejected.
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n == 0 {
		return 0, errInvalidID
	}
	return uint(n), nil
}

// FormatID renders a surrogate key.
func FormatID(id uint) string { return strconv.FormatUint(uint64(id), 10) }

// ParseNaturalKey accepts any non-blank path segment.
func ParseNaturalKey(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New(MsgInvalidKey)
	}
	return s, nil
}

// parsePageable reads page, size and sort. Unparseable page or size values
// fall back to their defaults; out-of-range values, including a page whose
// offset would overflow, are rejected.
func parsePageable(c *gin.Context, maxSize int) (utils.Pageable, error) {
	if maxSize <= 0 {
		maxSize = 100
	}
	p := utils.Pageable{
		Page: utils.AtoiDefault(c.Query("page"), 0),
		Size: utils.AtoiDefault(c.Query("size"), utils.DefaultPageSize),
	}
	if p.Page < 0 || p.Size < 1 || p.Size > maxSize || p.Page > math.MaxInt/p.Size {
		return p, fmt.Errorf(MsgInvalidPageRequest, maxSize)
	}
	for _, raw := range c.QueryArray("sort") {
		orders, err := parseSort(raw)
		if err != nil {
			return p, err
		}
		p.Sort = append(p.Sort, orders...)
	}
	return p, nil
}

// parseSort parses "prop[,prop...][,asc|desc]". An empty value sorts nothing.
func parseSort(raw string) ([]utils.Order, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	desc := false
	if n := len(parts); n > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[n-1])) {
		case "desc":
			desc = true
			parts = parts[:n-1]
		case "asc":
			parts = parts[:n-1]
		}
	}
	out := make([]utils.Order, 0, len(parts))
	for _, prop := range parts {
		prop = strings.TrimSpace(prop)
		if prop == "" {
			return nil, fmt.Errorf(MsgInvalidSort, raw)
		}
		out = append(out, utils.Order{Property: prop, Desc: desc})
	}
	return out, nil
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}
