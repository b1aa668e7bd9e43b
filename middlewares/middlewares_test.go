package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tableorder/pkg/logger"
	"tableorder/utils"
)

func newRouter(secret string, buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logger.NewWithWriter("test", buf, logger.ParseLevel("debug"))))
	r.GET("/me", SessionMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, utils.CurrentSessionID(c))
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	token, err := utils.GenerateSessionToken("sess-1", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	other, _ := utils.GenerateSessionToken("sess-1", "other", time.Hour)

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"bearer", "/me", "Bearer " + token, http.StatusOK},
		{"query", "/me?token=" + token, "", http.StatusOK},
		{"missing", "/me", "", http.StatusUnauthorized},
		{"wrong secret", "/me", "Bearer " + other, http.StatusUnauthorized},
		{"not bearer", "/me", token, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter("secret", &bytes.Buffer{})
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.status == http.StatusOK && w.Body.String() != "sess-1" {
				t.Errorf("session = %q", w.Body.String())
			}
		})
	}
}

func TestRequestLoggerPropagatesID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter("secret", &buf)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "req-42" {
		t.Errorf("response id = %q", got)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-42" || entry["action"] != "http_request" {
		t.Errorf("entry = %v", entry)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("no request id generated")
	}
}
