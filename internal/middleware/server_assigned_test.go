package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serverAssignedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/things", ForbidServerAssigned(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestForbidServerAssigned_CleanPayload(t *testing.T) {
	r := serverAssignedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{"name":"ok"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForbidServerAssigned_EmptyBody(t *testing.T) {
	r := serverAssignedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForbidServerAssigned_RejectsReservedFields(t *testing.T) {
	tests := []struct {
		body    string
		message string
	}{
		{`{"purchases":[]}`, "You can not set the purchases field!"},
		{`{"createdBy":"abc"}`, "You can not set the createdBy field!"},
		{`{"company":"abc"}`, "You can not set the company field!"},
	}

	for _, tt := range tests {
		r := serverAssignedRouter()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(tt.body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code, "body %s", tt.body)
		assert.Contains(t, w.Body.String(), tt.message)
	}
}

func TestForbidServerAssigned_MultipartCleanPayload(t *testing.T) {
	r := serverAssignedRouter()
	w := postMultipart(r, "/things", map[string]string{"name": "ok"}, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestForbidServerAssigned_MultipartReservedField(t *testing.T) {
	r := serverAssignedRouter()
	w := postMultipart(r, "/things", map[string]string{"company": "abc"}, false)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "You can not set the company field!")
}
