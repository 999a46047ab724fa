package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobsearch-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logs, restore := telemetry.CaptureLogs()
	defer restore()

	router := gin.New()
	router.Use(RequestID(), Auth("dev"), Logging())
	router.GET("/jobs/trending", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/jobs/trending", nil)
	req.Header.Set("X-Guest-Id", "guest1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	entries := logs.FilterMessage("request.complete").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()

	required := []string{"request_id", "user_id", "is_guest", "route", "path", "status", "duration_ms"}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if fields["user_id"] != "guest:guest1" {
		t.Fatalf("unexpected user_id: %v", fields["user_id"])
	}
	if fields["route"] != "/jobs/trending" {
		t.Fatalf("unexpected route: %v", fields["route"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", fields["status"])
	}
}

func TestLoggingSkipsPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logs, restore := telemetry.CaptureLogs()
	defer restore()

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.OPTIONS("/jobs/search", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/jobs/search", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if n := logs.FilterMessage("request.complete").Len(); n != 0 {
		t.Fatalf("expected no request logs for preflight, got %d", n)
	}
}
