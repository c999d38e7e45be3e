package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeExister struct {
	known map[string]bool
	err   error
}

func (f *fakeExister) Exists(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.known[id], nil
}

func productRefsRouter(store Exister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.POST("/purchases", VerifyProductRefs(store), handler)
	r.POST("/purchases/:productId", VerifyProductRefs(store), handler)
	return r
}

func TestVerifyProductRefs_PathProduct(t *testing.T) {
	store := &fakeExister{known: map[string]bool{"p1": true}}
	r := productRefsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases/p1", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/purchases/missing", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No product found!")
}

func TestVerifyProductRefs_BodyList(t *testing.T) {
	store := &fakeExister{known: map[string]bool{"p1": true, "p2": true}}
	r := productRefsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases",
		strings.NewReader(`{"products":["p1","p2"]}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyProductRefs_FirstMissingInInputOrder(t *testing.T) {
	store := &fakeExister{known: map[string]bool{"p1": true}}
	r := productRefsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases",
		strings.NewReader(`{"products":["p1","gone1","gone2"]}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No product found with ID: gone1!")
}

func TestVerifyProductRefs_PathAndBodyConflict(t *testing.T) {
	store := &fakeExister{known: map[string]bool{"p1": true, "p2": true}}
	r := productRefsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/purchases/p1",
		strings.NewReader(`{"products":["p2"]}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong, please try again")
}
