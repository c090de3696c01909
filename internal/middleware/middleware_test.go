package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/domain"
	"github.com/anzallkiyteb-cell/bey/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"employee_id": c.GetString("employee_id"),
			"role":        c.GetString("role"),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid bearer token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "u-1",
			"employee_id": "e-1",
			"role":        "manager",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","employee_id":"e-1","role":"manager"}`, w.Body.String())
	})

	t.Run("cookie token and employee fallback", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-2"})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()

		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":"u-2"`)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		authRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u-1"}).SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		authRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	enforceFn func(req domain.EnforceRequest) (bool, error)
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func rbacRouter(svc middleware.RBACService, employeeID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if employeeID != "" {
			c.Set("employee_id", employeeID)
			c.Set("role", "cashier")
		}
	})
	r.POST("/pay", middleware.RBACAuthorize(svc, "payroll", "pay"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, "e-1", req.EmployeeID)
			assert.Equal(t, "cashier", req.Role)
			assert.Equal(t, "payroll", req.Resource)
			assert.Equal(t, "pay", req.Action)
			return true, nil
		}}
		w := httptest.NewRecorder()
		rbacRouter(svc, "e-1").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("forbidden names the capability", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, nil }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "e-1").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "payroll:pay")
	})

	t.Run("enforcer error", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return false, errors.New("boom") }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "e-1").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("no identity", func(t *testing.T) {
		svc := &fakeRBAC{enforceFn: func(domain.EnforceRequest) (bool, error) { return true, nil }}
		w := httptest.NewRecorder()
		rbacRouter(svc, "").ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/pay", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func idempotencyRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id_validated", "u-1") })
	r.Use(middleware.Idempotency(rdb, zap.NewNop()))
	r.POST("/ledger", func(c *gin.Context) {
		*calls++
		c.Data(http.StatusCreated, "application/json", []byte(`{"ok":true}`))
	})
	return r, mock
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/ledger:u-1:k-1"
	lockKey := cacheKey + ":lock"

	t.Run("first call runs and caches", func(t *testing.T) {
		calls := 0
		r, mock := idempotencyRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/ledger", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips the handler", func(t *testing.T) {
		calls := 0
		r, mock := idempotencyRouter(t, &calls)
		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		req := httptest.NewRequest(http.MethodPost, "/ledger", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Zero(t, calls)
	})

	t.Run("in-flight duplicate", func(t *testing.T) {
		calls := 0
		r, mock := idempotencyRouter(t, &calls)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/ledger", nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Zero(t, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		calls := 0
		r, mock := idempotencyRouter(t, &calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ledger", nil))

		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", c.GetHeader("X-User")) })
	r.GET("/x", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("a"))
	assert.Equal(t, http.StatusTooManyRequests, do("a"))
	assert.Equal(t, http.StatusOK, do("b"))
	assert.Equal(t, http.StatusOK, do(""))
	assert.Equal(t, http.StatusOK, do(""))
}
