package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotencyRouter(rdb *redis.Client, handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create", Idempotency(rdb), func(c *gin.Context) {
		if handled != nil {
			*handled = true
		}
		c.JSON(http.StatusCreated, gin.H{
			"lock":  c.GetString(IdempotencyLockKey),
			"cache": c.GetString(IdempotencyCacheKey),
		})
	})
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCompletedRequest(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/create::key-1").SetVal(`{"_id":"p1"}`)

	handled := false
	w := postWithKey(idempotencyRouter(rdb, &handled), "key-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), "p1")
	assert.False(t, handled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_RejectsInFlightDuplicate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/create::key-1").RedisNil()
	mock.ExpectSetNX("idemp:/create::key-1:lock", "locked", 30*time.Second).SetVal(false)

	handled := false
	w := postWithKey(idempotencyRouter(rdb, &handled), "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already being processed")
	assert.False(t, handled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("idemp:/create::key-1").RedisNil()
	mock.ExpectSetNX("idemp:/create::key-1:lock", "locked", 30*time.Second).SetVal(true)

	handled := false
	w := postWithKey(idempotencyRouter(rdb, &handled), "key-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handled)
	assert.Contains(t, w.Body.String(), "idemp:/create::key-1:lock")
	assert.Contains(t, w.Body.String(), `"cache":"idemp:/create::key-1"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeySkipsRedis(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	handled := false
	w := postWithKey(idempotencyRouter(rdb, &handled), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handled)
	require.NoError(t, mock.ExpectationsWereMet())
}
