package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-crud-backend/internal/http/apierror"
	"github.com/tbourn/go-crud-backend/internal/http/middleware"
	"github.com/tbourn/go-crud-backend/internal/services"
)

// withLogger installs a request-scoped logger writing to buf, the way
// middleware.Logger does in the real pipeline.
func withLogger(buf *bytes.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		lg := zerolog.New(buf).With().Str("request_id", "rid-500").Logger()
		c.Set("logger", &lg)
		c.Next()
	}
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRespondError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		logged  bool
	}{
		{"not found", services.NotFound("Category", "id", 9), http.StatusNotFound, "Category not found with id: 9", false},
		{"invalid argument", services.InvalidArgument("Unknown sort property: %s", "x"), http.StatusBadRequest, "Unknown sort property: x", false},
		{"bad request", services.BadRequest("Person already exists with cin: %s", "AB12"), http.StatusBadRequest, "Person already exists with cin: AB12", false},
		{"persistence error", errors.New("UNIQUE constraint failed: users.email"), http.StatusInternalServerError, MsgUnexpected, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			r := gin.New()
			r.Use(withLogger(&logs))
			r.GET("/api/users/:id", func(c *gin.Context) { respondError(c, tc.err) })

			w := serve(r, http.MethodGet, "/api/users/3")
			require.Equal(t, tc.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.status, resp.Status)
			assert.Equal(t, http.StatusText(tc.status), resp.Error)
			assert.Equal(t, tc.message, resp.Message)
			assert.Equal(t, "/api/users/3", resp.Path)
			assert.NotContains(t, w.Body.String(), "UNIQUE", "internal detail leaked")

			if !tc.logged {
				assert.Empty(t, logs.String())
				return
			}
			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &line), "exactly one log line: %s", logs.String())
			assert.Equal(t, "error", line["level"])
			assert.Equal(t, "rid-500", line["request_id"])
			assert.Equal(t, "/api/users/:id", line["route"])
			assert.Contains(t, line["error"], "UNIQUE constraint failed")
		})
	}
}

func TestFail_AndSuccessHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/missing", func(c *gin.Context) { Fail(c, http.StatusNotFound, "nope") })
	r.POST("/fields", func(c *gin.Context) {
		fail(c, http.StatusBadRequest, MsgValidationFailed, apierror.FieldError{Field: "name", Message: "must not be blank"})
	})
	r.GET("/ok", func(c *gin.Context) { ok(c, http.StatusCreated, gin.H{"id": 1}) })
	r.DELETE("/gone", func(c *gin.Context) { noContent(c) })

	t.Run("Fail omits empty field errors", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/missing")
		require.Equal(t, http.StatusNotFound, w.Code)
		var er ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
		assert.Equal(t, "Not Found", er.Error)
		assert.Equal(t, "nope", er.Message)
		assert.Equal(t, "/missing", er.Path)
		assert.NotContains(t, w.Body.String(), `"errors"`)
	})

	t.Run("field errors", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/fields")
		require.Equal(t, http.StatusBadRequest, w.Code)
		var er ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
		assert.Equal(t, []apierror.FieldError{{Field: "name", Message: "must not be blank"}}, er.Errors)
	})

	t.Run("ok", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ok")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1}`, w.Body.String())
	})

	t.Run("noContent", func(t *testing.T) {
		w := serve(r, http.MethodDelete, "/gone")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, w.Body.Len())
	})
}

func TestMsgUnexpected_SharedWithRecovery(t *testing.T) {
	assert.Equal(t, middleware.MsgUnexpected, MsgUnexpected)
}
