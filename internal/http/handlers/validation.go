// Package handlers – request validation.
//
// Request DTOs declare their rules with `binding` struct tags, evaluated by
// gin's go-playground/validator engine. RegisterValidators extends that engine
// once per process with:
//
//   - JSON field names in error reports ("zipCode", not "ZipCode")
//   - custom rules: notblank, zipcode, phone, cin, pastdate
//   - English messages via universal-translator
//
// bindJSON turns binding failures into the two 400 responses of the API:
// "Validation failed" with one entry per field, or "Malformed JSON request".
package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
)

// DateLayout is the wire format of calendar dates (dateOfBirth, from, to).
const DateLayout = "2006-01-02"

var (
	zipCodeRE = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	phoneRE   = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	cinRE     = regexp.MustCompile(`^[A-Za-z0-9]{4,20}$`)
)

var (
	validatorOnce sync.Once
	validatorErr  error
	translator    ut.Translator
)

// customRules are the validators registered on top of validator's built-ins,
// with their English message. {0} is the JSON field name.
var customRules = []struct {
	tag  string
	fn   validator.Func
	text string
}{
	{"notblank", validators.NotBlank, "{0} must not be blank"},
	{"zipcode", matches(zipCodeRE), "{0} must be a valid ZIP code (12345 or 12345-6789)"},
	{"phone", matches(phoneRE), "{0} must be a valid phone number (7 to 15 digits, optional leading +)"},
	{"cin", matches(cinRE), "{0} must be 4 to 20 letters or digits"},
	{"pastdate", pastDate, "{0} must be a date in the past"},
}

// RegisterValidators configures gin's validator engine. It is safe to call
// more than once; only the first call has an effect.
func RegisterValidators() error {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		locale := en.New()
		translator, _ = ut.New(locale, locale).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
			validatorErr = err
			return
		}

		for _, r := range customRules {
			if err := v.RegisterValidation(r.tag, r.fn); err != nil {
				validatorErr = err
				return
			}
			text := r.text
			tag := r.tag
			err := v.RegisterTranslation(tag, translator,
				func(t ut.Translator) error { return t.Add(tag, text, true) },
				func(t ut.Translator, fe validator.FieldError) string {
					msg, _ := t.T(tag, fe.Field())
					return msg
				})
			if err != nil {
				validatorErr = err
				return
			}
		}
	})
	return validatorErr
}

// bindJSON decodes and validates the request body into dst. On failure it
// writes the 400 response and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fail(c, http.StatusBadRequest, MsgValidationFailed, fieldErrors(verrs)...)
		return false
	}
	fail(c, http.StatusBadRequest, MsgMalformedJSON)
	return false
}

// fieldErrors converts validator errors into API field errors, in struct
// field order.
func fieldErrors(verrs validator.ValidationErrors) []apierror.FieldError {
	out := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if translator != nil {
			msg = fe.Translate(translator)
		}
		out = append(out, apierror.FieldError{Field: fieldPath(fe), Message: msg})
	}
	return out
}

// fieldPath returns the JSON path of fe without the struct name
// ("postIds[1]" rather than "UserRequest.postIds[1]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// pastDate accepts a YYYY-MM-DD string strictly before today (UTC).
func pastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return d.Before(today)
}
