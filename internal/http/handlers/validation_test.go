package handlers

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validAddress() AddressRequest {
	return AddressRequest{Street: "221B Baker Street", City: "London", ZipCode: "12345"}
}

func validCategory() CategoryRequest {
	return CategoryRequest{Name: "Books", Description: "Printed books", Active: ptr(true)}
}

func validPerson() PersonRequest {
	return PersonRequest{
		CIN:         "AB123456",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1815-12-10",
		PhoneNumber: "+441234567890",
		Email:       "ada@example.com",
	}
}

func validPost() PostRequest {
	return PostRequest{Title: "Hello", Content: "First post.", AuthorID: 1}
}

func validUser() UserRequest {
	return UserRequest{Name: "Ada", Email: "ada@example.com", Age: 36, AddressID: ptr(uint(1)), PostIDs: []uint{1, 2}}
}

// Each row breaks exactly one rule of an otherwise valid request.
var validationRules = []struct {
	name  string
	field string
	tag   string
	dto   func() any
}{
	{"address street blank", "street", "notblank", func() any { r := validAddress(); r.Street = "   "; return r }},
	{"address street too long", "street", "max", func() any { r := validAddress(); r.Street = strings.Repeat("s", 256); return r }},
	{"address city blank", "city", "notblank", func() any { r := validAddress(); r.City = ""; return r }},
	{"address city too long", "city", "max", func() any { r := validAddress(); r.City = strings.Repeat("c", 101); return r }},
	{"address zip missing", "zipCode", "required", func() any { r := validAddress(); r.ZipCode = ""; return r }},
	{"address zip malformed", "zipCode", "zipcode", func() any { r := validAddress(); r.ZipCode = "1234"; return r }},

	{"category name blank", "name", "notblank", func() any { r := validCategory(); r.Name = " "; return r }},
	{"category name too long", "name", "max", func() any { r := validCategory(); r.Name = strings.Repeat("n", 101); return r }},
	{"category description too long", "description", "max", func() any { r := validCategory(); r.Description = strings.Repeat("d", 501); return r }},

	{"person cin missing", "cin", "required", func() any { r := validPerson(); r.CIN = ""; return r }},
	{"person cin malformed", "cin", "cin", func() any { r := validPerson(); r.CIN = "AB-1"; return r }},
	{"person first name blank", "firstName", "notblank", func() any { r := validPerson(); r.FirstName = "\t"; return r }},
	{"person last name too long", "lastName", "max", func() any { r := validPerson(); r.LastName = strings.Repeat("l", 51); return r }},
	{"person birth date missing", "dateOfBirth", "required", func() any { r := validPerson(); r.DateOfBirth = ""; return r }},
	{"person birth date malformed", "dateOfBirth", "datetime", func() any { r := validPerson(); r.DateOfBirth = "10/12/1815"; return r }},
	{"person birth date in future", "dateOfBirth", "pastdate", func() any {
		r := validPerson()
		r.DateOfBirth = time.Now().UTC().AddDate(1, 0, 0).Format(DateLayout)
		return r
	}},
	{"person phone malformed", "phoneNumber", "phone", func() any { r := validPerson(); r.PhoneNumber = "12-34"; return r }},
	{"person email malformed", "email", "email", func() any { r := validPerson(); r.Email = "not-an-email"; return r }},

	{"post title blank", "title", "notblank", func() any { r := validPost(); r.Title = ""; return r }},
	{"post title too long", "title", "max", func() any { r := validPost(); r.Title = strings.Repeat("t", 201); return r }},
	{"post content blank", "content", "notblank", func() any { r := validPost(); r.Content = "  "; return r }},
	{"post author missing", "authorId", "required", func() any { r := validPost(); r.AuthorID = 0; return r }},

	{"user name blank", "name", "notblank", func() any { r := validUser(); r.Name = ""; return r }},
	{"user email missing", "email", "required", func() any { r := validUser(); r.Email = ""; return r }},
	{"user email malformed", "email", "email", func() any { r := validUser(); r.Email = "ada@"; return r }},
	{"user age negative", "age", "min", func() any { r := validUser(); r.Age = -1; return r }},
	{"user age too high", "age", "max", func() any { r := validUser(); r.Age = 151; return r }},
	{"user address zero", "addressId", "min", func() any { r := validUser(); r.AddressID = ptr(uint(0)); return r }},
	{"user post id zero", "postIds[1]", "min", func() any { r := validUser(); r.PostIDs = []uint{3, 0}; return r }},
}

func TestValidation_ValidRequestsPass(t *testing.T) {
	require.NoError(t, RegisterValidators())

	for _, dto := range []any{validAddress(), validCategory(), validPerson(), validPost(), validUser()} {
		assert.NoError(t, binding.Validator.ValidateStruct(dto), "%T", dto)
	}
	// Optional relations may be absent.
	u := validUser()
	u.AddressID, u.PostIDs = nil, nil
	assert.NoError(t, binding.Validator.ValidateStruct(u))
}

func TestValidation_Rules(t *testing.T) {
	require.NoError(t, RegisterValidators())

	for _, rule := range validationRules {
		t.Run(rule.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(rule.dto())
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %T", err)
			require.Len(t, verrs, 1, verrs.Error())
			assert.Equal(t, rule.tag, verrs[0].Tag())

			fields := fieldErrors(verrs)
			assert.Equal(t, rule.field, fields[0].Field)
			assert.NotEmpty(t, fields[0].Message)
			assert.NotContains(t, fields[0].Message, "Key: '", "untranslated message")
		})
	}
}

func TestValidation_CustomMessages(t *testing.T) {
	require.NoError(t, RegisterValidators())

	r := validAddress()
	r.Street = " "
	var verrs validator.ValidationErrors
	require.True(t, errors.As(binding.Validator.ValidateStruct(r), &verrs))
	assert.Equal(t, "street must not be blank", fieldErrors(verrs)[0].Message)
}

func TestPastDate(t *testing.T) {
	require.NoError(t, RegisterValidators())

	today := time.Now().UTC().Format(DateLayout)
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(DateLayout)

	p := validPerson()
	p.DateOfBirth = yesterday
	assert.NoError(t, binding.Validator.ValidateStruct(p))

	p.DateOfBirth = today
	assert.Error(t, binding.Validator.ValidateStruct(p))
}
