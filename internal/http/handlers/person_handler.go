// Person HTTP handlers. Persons are keyed by their CIN (national identity
// card number), so {id} is a string here.
//
// Besides the generic CRUD routes, this file exposes:
//   - GET /persons/email/{email}
//   - GET /persons/phone/{phone}
//   - GET /persons/search?lastName=term
//   - GET /persons/born-between?from=YYYY-MM-DD&to=YYYY-MM-DD
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-crud-backend/internal/domain"
)

// PersonService defines the person operations consumed by HTTP handlers.
type PersonService interface {
	CRUD[domain.Person, string]
	FindByEmail(ctx context.Context, email string) (*domain.Person, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*domain.Person, error)
	SearchByLastName(ctx context.Context, term string) ([]domain.Person, error)
	FindBornBetween(ctx context.Context, from, to time.Time) ([]domain.Person, error)
}

// PersonRequest is the JSON payload for creating or updating a person.
// On update the cin in the body is ignored; the path key wins.
type PersonRequest struct {
	CIN         string `json:"cin" binding:"required,cin" example:"AB123456"`
	FirstName   string `json:"firstName" binding:"notblank,max=50" example:"Ada"`
	LastName    string `json:"lastName" binding:"notblank,max=50" example:"Lovelace"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02,pastdate" example:"1815-12-10"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone" example:"+441234567890"`
	Email       string `json:"email" binding:"required,email,max=255" example:"ada@example.com"`
}

// PersonResponse is the JSON representation of a person.
type PersonResponse struct {
	CIN         string `json:"cin" example:"AB123456"`
	FirstName   string `json:"firstName" example:"Ada"`
	LastName    string `json:"lastName" example:"Lovelace"`
	DateOfBirth string `json:"dateOfBirth" example:"1815-12-10"`
	PhoneNumber string `json:"phoneNumber" example:"+441234567890"`
	Email       string `json:"email" example:"ada@example.com"`
}

func toPerson(r *PersonRequest) *domain.Person {
	// Already validated by the datetime rule.
	dob, _ := time.Parse(DateLayout, r.DateOfBirth)
	return &domain.Person{
		CIN:         strings.TrimSpace(r.CIN),
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		DateOfBirth: dob,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

func toPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		CIN:         p.CIN,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth.UTC().Format(DateLayout),
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
	}
}

// PersonHandler serves /persons.
type PersonHandler struct {
	*Resource[domain.Person, string, PersonRequest, PersonResponse]
	svc PersonService
}

// NewPersonHandler constructs the person handler bound to svc.
func NewPersonHandler(svc PersonService, opt Options) *PersonHandler {
	return &PersonHandler{
		Resource: &Resource[domain.Person, string, PersonRequest, PersonResponse]{
			Name:           "persons",
			Svc:            svc,
			ParseKey:       ParseNaturalKey,
			FormatKey:      func(cin string) string { return cin },
			KeyOf:          func(p *domain.Person) string { return p.CIN },
			ToEntity:       toPerson,
			ToResponse:     toPersonResponse,
			MaxPageSize:    opt.MaxPageSize,
			DB:             opt.DB,
			IdempotencyTTL: opt.IdempotencyTTL,
		},
		svc: svc,
	}
}

// Register mounts the person routes under g.
func (h *PersonHandler) Register(g *gin.RouterGroup) {
	rg := h.Mount(g)
	rg.GET("/email/:email", h.FindByEmail)
	rg.GET("/phone/:phone", h.FindByPhoneNumber)
	rg.GET("/search", h.SearchByLastName)
	rg.GET("/born-between", h.FindBornBetween)
}

// FindByEmail godoc
// @ID          findPersonByEmail
// @Summary     Find a person by email
// @Tags        Persons
// @Produce     json
// @Param       email  path  string  true  "Email"  example(ada@example.com)
// @Success     200  {object}  handlers.PersonResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Person not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /persons/email/{email} [get]
func (h *PersonHandler) FindByEmail(c *gin.Context) {
	p, err := h.svc.FindByEmail(c.Request.Context(), c.Param("email"))
	h.respondOne(c, p, err)
}

// FindByPhoneNumber godoc
// @ID          findPersonByPhone
// @Summary     Find a person by phone number
// @Tags        Persons
// @Produce     json
// @Param       phone  path  string  true  "Phone number"  example(+441234567890)
// @Success     200  {object}  handlers.PersonResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Person not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /persons/phone/{phone} [get]
func (h *PersonHandler) FindByPhoneNumber(c *gin.Context) {
	p, err := h.svc.FindByPhoneNumber(c.Request.Context(), c.Param("phone"))
	h.respondOne(c, p, err)
}

// SearchByLastName godoc
// @ID          searchPersons
// @Summary     Search persons by last name
// @Description Case-insensitive substring match on the last name.
// @Tags        Persons
// @Produce     json
// @Param       lastName  query  string  true  "Search term"  example(love)
// @Success     200  {array}   handlers.PersonResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing term"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /persons/search [get]
func (h *PersonHandler) SearchByLastName(c *gin.Context) {
	term, good := requiredQuery(c, "lastName")
	if !good {
		return
	}
	items, err := h.svc.SearchByLastName(c.Request.Context(), term)
	h.respondList(c, items, err)
}

// FindBornBetween godoc
// @ID          findPersonsBornBetween
// @Summary     List persons born within a date range
// @Description Both bounds are inclusive.
// @Tags        Persons
// @Produce     json
// @Param       from  query  string  true  "First day (YYYY-MM-DD)"  format(date) example(1800-01-01)
// @Param       to    query  string  true  "Last day (YYYY-MM-DD)"   format(date) example(1899-12-31)
// @Success     200  {array}   handlers.PersonResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid date"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /persons/born-between [get]
func (h *PersonHandler) FindBornBetween(c *gin.Context) {
	from, good := queryDate(c, "from")
	if !good {
		return
	}
	to, good := queryDate(c, "to")
	if !good {
		return
	}
	items, err := h.svc.FindBornBetween(c.Request.Context(), from, to)
	h.respondList(c, items, err)
}
