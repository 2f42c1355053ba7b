package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spendwise/backend/internal/application/adapter"
)

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *stubTokenService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func authTestRouter(tokenService adapter.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(tokenService).Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		email, _ := GetUserEmailFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID.String(), "email": email})
	})
	return router
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	valid := &stubTokenService{claims: &adapter.TokenClaims{
		UserID:    userID,
		Email:     "jdoe@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}}

	t.Run("passes a valid bearer token through", func(t *testing.T) {
		router := authTestRouter(valid)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")

		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		router := authTestRouter(valid)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		router := authTestRouter(valid)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		router := authTestRouter(&stubTokenService{err: errors.New("expired")})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")

		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func rateLimitTestRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("blocks after the attempt limit", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		router := rateLimitTestRouter(NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i+1, rec.Code)
			}
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
	})

	t.Run("tracks clients separately", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		router := rateLimitTestRouter(NewRateLimiterWithConfig(client, 1, time.Minute))

		first := httptest.NewRequest(http.MethodPost, "/login", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(httptest.NewRecorder(), first)

		rec := httptest.NewRecorder()
		second := httptest.NewRequest(http.MethodPost, "/login", nil)
		second.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(rec, second)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for a different client, got %d", rec.Code)
		}
	})

	t.Run("window expiry unblocks the client", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		router := rateLimitTestRouter(NewRateLimiterWithConfig(client, 1, time.Minute))

		blocked := func() int {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(rec, req)
			return rec.Code
		}

		blocked()
		if code := blocked(); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}

		mr.FastForward(2 * time.Minute)
		if code := blocked(); code != http.StatusOK {
			t.Fatalf("expected 200 after the window, got %d", code)
		}
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
		router := rateLimitTestRouter(limiter)

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(httptest.NewRecorder(), req)

		if err := limiter.Reset(context.Background(), "10.0.0.1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rec := httptest.NewRecorder()
		again := httptest.NewRequest(http.MethodPost, "/login", nil)
		again.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(rec, again)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 after reset, got %d", rec.Code)
		}
	})

	t.Run("fails open when redis is down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		router := rateLimitTestRouter(NewRateLimiterWithConfig(client, 1, time.Minute))
		mr.Close()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 when redis is unreachable, got %d", rec.Code)
		}
	})
}
