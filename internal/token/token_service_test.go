package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bms/internal/domain"
)

type fakeUserSource struct {
	cu  domain.CurrentUser
	err error
}

func (f *fakeUserSource) CurrentUser(ctx context.Context, userID string) (domain.CurrentUser, error) {
	return f.cu, f.err
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestReattachTokens_SetsCookiesAndStoresRefresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet("refresh:user-1", `.+`, 7*24*time.Hour).SetVal("OK")

	users := &fakeUserSource{cu: domain.CurrentUser{
		UserID: "user-1",
		Role:   domain.RoleOwner,
		Email:  "owner@example.com",
	}}

	svc := NewService(users, rdb)
	c, w := testContext()

	err := svc.ReattachTokens(c, "user-1", false)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	cookies := w.Result().Cookies()
	names := map[string]bool{}
	for _, ck := range cookies {
		names[ck.Name] = true
	}
	assert.True(t, names[AccessCookie])
	assert.True(t, names[RefreshCookie])
	assert.Empty(t, w.Header().Get("X-Access-Token"))
}

func TestReattachTokens_AutomatedClientGetsHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet("refresh:user-1", `.+`, 7*24*time.Hour).SetVal("OK")

	users := &fakeUserSource{cu: domain.CurrentUser{UserID: "user-1", Role: domain.RoleEmploy}}
	svc := NewService(users, rdb)
	c, w := testContext()

	err := svc.ReattachTokens(c, "user-1", true)
	require.NoError(t, err)
	assert.NotEmpty(t, w.Header().Get("X-Access-Token"))
}

func TestExpireSession_DropsRefreshAndExpiresCookies(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("refresh:user-1").SetVal(1)

	svc := NewService(&fakeUserSource{}, rdb)
	c, w := testContext()

	svc.ExpireSession(c, "user-1")
	require.NoError(t, mock.ExpectationsWereMet())

	for _, ck := range w.Result().Cookies() {
		assert.Equal(t, "logout", ck.Value, "cookie %s", ck.Name)
		assert.Equal(t, 1, ck.MaxAge)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet("refresh:user-1", `.+`, 7*24*time.Hour).SetVal("OK")

	users := &fakeUserSource{cu: domain.CurrentUser{
		UserID:    "user-1",
		Role:      domain.RoleSeniorEmploy,
		CompanyID: "company-1",
		Email:     "senior@example.com",
	}}

	svc := NewService(users, rdb)
	c, _ := testContext()

	require.NoError(t, svc.ReattachTokens(c, "user-1", true))
	access := c.Writer.Header().Get("X-Access-Token")
	require.NotEmpty(t, access)

	claims, err := svc.Parse(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleSeniorEmploy, claims.Role)
	assert.Equal(t, "company-1", claims.CompanyID)
}

func TestParse_RejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeUserSource{}, nil)
	_, err := svc.Parse("not.a.token")
	assert.Error(t, err)
}
