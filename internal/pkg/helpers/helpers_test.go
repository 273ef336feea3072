package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("nonsense", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	c.Params = gin.Params{{Key: "id", Value: "zero"}}
	_, ok = ParseIDParam(c, "id")
	assert.False(t, ok)

	c.Params = gin.Params{{Key: "id", Value: "-3"}}
	_, ok = ParseIDParam(c, "id")
	assert.False(t, ok)
}

func TestParseLimitQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?limit=10", nil)
	assert.Equal(t, 10, ParseLimitQuery(c, 20, 50))

	// gin caches parsed query params per context, so each request needs a
	// fresh context
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?limit=500", nil)
	assert.Equal(t, 50, ParseLimitQuery(c, 20, 50))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, 20, ParseLimitQuery(c, 20, 50))
}
