// ABOUTME: Tests for logger initialization and Gin middleware.
package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", &buf)
	t.Cleanup(func() { Init("info") })

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	buf.Reset()
	InitWithWriter("bogus", &buf)
	Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

func TestGetSharesConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", &buf)
	t.Cleanup(func() { Init("info") })

	sub := Get().With().Str("component", "http").Logger()
	_, err := sub.Write([]byte("tls handshake error"))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "tls handshake error", entry["message"])
}

func TestGinLogger(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", &buf)
	t.Cleanup(func() { Init("info") })

	router := gin.New()
	router.Use(GinLogger())
	router.GET("/missing", func(c *gin.Context) {
		c.Set(RequestIDKey, "req-1")
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(404), entry["status"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestGinRecovery(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", &buf)
	t.Cleanup(func() { Init("info") })

	router := gin.New()
	router.Use(GinRecovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
}
