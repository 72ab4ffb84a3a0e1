package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options carries the settings shared by every resource.
type Options struct {
	MaxPageSize    int
	DB             *gorm.DB // idempotency records; nil disables replay
	IdempotencyTTL time.Duration
}

// requiredQuery returns the query parameter name, or writes a 400 when it is
// absent. An empty value counts as present.
func requiredQuery(c *gin.Context, name string) (string, bool) {
	v, present := c.GetQuery(name)
	if !present {
		fail(c, http.StatusBadRequest, fmt.Sprintf(MsgMissingQueryParam, name))
		return "", false
	}
	return v, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw, present := requiredQuery(c, name)
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf(MsgInvalidInteger, name))
		return 0, false
	}
	return n, true
}

func queryBool(c *gin.Context, name string) (bool, bool) {
	raw, present := requiredQuery(c, name)
	if !present {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf(MsgInvalidBoolean, name))
		return false, false
	}
	return b, true
}

func queryDate(c *gin.Context, name string) (time.Time, bool) {
	raw, present := requiredQuery(c, name)
	if !present {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf(MsgInvalidDate, name))
		return time.Time{}, false
	}
	return d, true
}
