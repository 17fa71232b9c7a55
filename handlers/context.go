// handlers/context.go
package handlers

import (
	"fmt"
	"strconv"
	"time"

	"myadvisor/models"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// currentUser returns the authenticated user placed in the context by the
// auth middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	value, ok := c.Get("user")
	if !ok {
		return models.User{}, false
	}
	usr, ok := value.(models.User)
	return usr, ok
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// parseDateRange reads optional start/end query parameters ("2006-01-02"),
// defaulting to a seven-day window beginning today.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", raw)
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", raw)
		}
		end = parsed
	}
	return start, end, nil
}
