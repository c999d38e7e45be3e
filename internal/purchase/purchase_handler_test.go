package purchase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"go-bms/internal/domain"
	"go-bms/internal/middleware"
)

type fakeService struct {
	createFn func(ctx context.Context, req CreatePurchaseRequest, clientID, productID string, actor domain.CurrentUser) (bson.M, error)
}

func (f *fakeService) Create(ctx context.Context, req CreatePurchaseRequest, clientID, productID string, actor domain.CurrentUser) (bson.M, error) {
	return f.createFn(ctx, req, clientID, productID, actor)
}
func (f *fakeService) GetAll(ctx context.Context, actor domain.CurrentUser, page int) ([]Purchase, int64, error) {
	return nil, 0, nil
}
func (f *fakeService) GetByID(ctx context.Context, id string) (bson.M, error) { return nil, nil }
func (f *fakeService) Update(ctx context.Context, id string, req UpdatePurchaseRequest) (bson.M, error) {
	return nil, nil
}
func (f *fakeService) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	return "", nil
}

func TestCreatePurchase_ReleasesLockAndCachesResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	cacheKey := "idemp:/create-purchase/:clientId:u1:key-1"
	lockKey := cacheKey + ":lock"
	mock.Regexp().ExpectSet(cacheKey, `.+`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	svc := &fakeService{
		createFn: func(ctx context.Context, req CreatePurchaseRequest, clientID, productID string, actor domain.CurrentUser) (bson.M, error) {
			assert.Equal(t, "c1", clientID)
			return bson.M{"_id": "p1"}, nil
		},
	}
	handler := NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/create-purchase/:clientId", func(c *gin.Context) {
		c.Set(domain.ContextKey, domain.CurrentUser{UserID: "u1", CompanyID: "co1"})
		c.Set(middleware.IdempotencyCacheKey, cacheKey)
		c.Set(middleware.IdempotencyLockKey, lockKey)
		c.Next()
	}, handler.CreatePurchase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-purchase/c1",
		strings.NewReader(`{"totalAmount":100}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "p1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePurchase_NoIdempotencyContextSkipsRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	svc := &fakeService{
		createFn: func(ctx context.Context, req CreatePurchaseRequest, clientID, productID string, actor domain.CurrentUser) (bson.M, error) {
			return bson.M{"_id": "p2"}, nil
		},
	}
	handler := NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/create-purchase/:clientId", func(c *gin.Context) {
		c.Set(domain.ContextKey, domain.CurrentUser{UserID: "u1", CompanyID: "co1"})
		c.Next()
	}, handler.CreatePurchase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-purchase/c1",
		strings.NewReader(`{"totalAmount":50}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
