package helpers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ParseDuration parses a duration string, falling back to a default on error
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// ParseIDParam extracts a positive int64 path parameter
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseLimitQuery extracts a bounded "limit" query parameter
func ParseLimitQuery(c *gin.Context, fallback, max int) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(fallback))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
