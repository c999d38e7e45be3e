package middleware

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coordinateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/companies", RequireCoordinatePair(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRequireCoordinatePair_BothPresent(t *testing.T) {
	w := postJSON(coordinateRouter(), `{"latitude":37.98,"longitude":23.72}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireCoordinatePair_BothAbsent(t *testing.T) {
	w := postJSON(coordinateRouter(), `{"name":"acme"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireCoordinatePair_LoneLatitude(t *testing.T) {
	w := postJSON(coordinateRouter(), `{"latitude":37.98}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Add longitude!")
}

func TestRequireCoordinatePair_LoneLongitude(t *testing.T) {
	w := postJSON(coordinateRouter(), `{"longitude":23.72}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Add latitude!")
}

func TestRequireCoordinatePair_ZeroValuesStillCount(t *testing.T) {
	w := postJSON(coordinateRouter(), `{"latitude":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Add longitude!")
}

func postMultipart(r *gin.Engine, path string, fields map[string]string, withLogo bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if withLogo {
		part, _ := mw.CreateFormFile("logo", "logo.png")
		_, _ = part.Write([]byte("png-bytes"))
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestRequireCoordinatePair_MultipartPair(t *testing.T) {
	w := postMultipart(coordinateRouter(), "/companies",
		map[string]string{"latitude": "37.98", "longitude": "23.72"}, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireCoordinatePair_MultipartLoneLatitude(t *testing.T) {
	w := postMultipart(coordinateRouter(), "/companies",
		map[string]string{"latitude": "37.98"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Add longitude!")
}

func TestRequireCoordinatePair_MultipartUploadReachesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/companies", RequireCoordinatePair(), ForbidServerAssigned(), func(c *gin.Context) {
		logo, err := c.FormFile("logo")
		require.NoError(t, err)
		assert.Equal(t, "logo.png", logo.Filename)
		assert.Equal(t, "acme", c.PostForm("name"))
		c.Status(http.StatusCreated)
	})

	w := postMultipart(r, "/companies",
		map[string]string{"name": "acme", "latitude": "37.98", "longitude": "23.72"}, true)
	assert.Equal(t, http.StatusCreated, w.Code)
}
