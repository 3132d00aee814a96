package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aibridge-srv/config"
	"aibridge-srv/pkg/encrypter"
	pkgJWT "aibridge-srv/pkg/jwt"
	"aibridge-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, ...any)          {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, ...any)           {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, ...any)           {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, ...any)          {}
func (nopLogger) Errorf(context.Context, string, ...any) {}
func (nopLogger) Fatal(context.Context, ...any)          {}
func (nopLogger) Fatalf(context.Context, string, ...any) {}

var _ log.Logger = nopLogger{}

func serve(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes through when nothing is configured", func(t *testing.T) {
		m := New(nopLogger{}, nil, &config.Config{}, nil)
		router := gin.New()
		router.GET("/x", m.Auth(), okHandler)

		w := serve(router, http.MethodGet, "/x", nil)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("requires a bearer token when JWT is configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.JWT.SecretKey = "0123456789abcdef0123456789abcdef"
		manager, err := pkgJWT.New(pkgJWT.Config{SecretKey: cfg.JWT.SecretKey, TTL: time.Hour})
		if err != nil {
			t.Fatalf("jwt.New failed: %v", err)
		}
		m := New(nopLogger{}, manager, cfg, nil)
		router := gin.New()
		router.GET("/x", m.Auth(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"service": c.GetString("service_name")})
		})

		t.Run("missing header", func(t *testing.T) {
			w := serve(router, http.MethodGet, "/x", nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})

		t.Run("garbage token", func(t *testing.T) {
			w := serve(router, http.MethodGet, "/x", map[string]string{"Authorization": "Bearer junk"})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})

		t.Run("valid token sets the service name", func(t *testing.T) {
			token, err := manager.GenerateToken("flow-runner")
			if err != nil {
				t.Fatalf("GenerateToken failed: %v", err)
			}
			w := serve(router, http.MethodGet, "/x", map[string]string{"Authorization": "Bearer " + token})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if body["service"] != "flow-runner" {
				t.Errorf("service = %v, want flow-runner", body["service"])
			}
		})
	})
}

func TestServiceAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	enc := encrypter.New("0123456789abcdef")
	cfg := &config.Config{}
	cfg.InternalConfig.ServiceKeys = map[string]string{"flow-runner": "key-1"}
	m := New(nopLogger{}, nil, cfg, enc)

	router := gin.New()
	router.GET("/x", m.Auth(), okHandler)

	t.Run("accepts a valid encrypted key", func(t *testing.T) {
		serviceKey, err := enc.Encrypt("flow-runner:key-1")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		w := serve(router, http.MethodGet, "/x", map[string]string{"X-Service-Key": serviceKey})
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/x", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects an unknown service", func(t *testing.T) {
		serviceKey, _ := enc.Encrypt("stranger:key-1")
		w := serve(router, http.MethodGet, "/x", map[string]string{"X-Service-Key": serviceKey})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		serviceKey, _ := enc.Encrypt("flow-runner:wrong")
		w := serve(router, http.MethodGet, "/x", map[string]string{"X-Service-Key": serviceKey})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("rejects an undecryptable key", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/x", map[string]string{"X-Service-Key": "not-encrypted"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery(nopLogger{}, nil))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(router, http.MethodGet, "/panic", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("HTTP status = %d, want 200 (business status in the body)", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["status"] != float64(500) {
		t.Errorf("status = %v, want 500", body["status"])
	}
	if body["detail"] != "boom" {
		t.Errorf("detail = %v, want boom", body["detail"])
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("permissive outside production", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(DefaultCORSConfig("development")))
		router.GET("/x", okHandler)

		w := serve(router, http.MethodGet, "/x", map[string]string{"Origin": "https://somewhere.example"})
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://somewhere.example" {
			t.Errorf("Allow-Origin = %q, want the caller origin", got)
		}
	})

	t.Run("strict in production", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(DefaultCORSConfig("production")))
		router.GET("/x", okHandler)

		w := serve(router, http.MethodGet, "/x", map[string]string{"Origin": "https://somewhere.example"})
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("answers preflight with 204", func(t *testing.T) {
		router := gin.New()
		router.Use(CORS(DefaultCORSConfig("development")))
		router.POST("/x", okHandler)

		w := serve(router, http.MethodOptions, "/x", map[string]string{"Origin": "https://somewhere.example"})
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}
