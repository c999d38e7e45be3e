package token

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"go-bms/internal/domain"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"

	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

// Claims is the JWT payload carried by both access and refresh tokens.
type Claims struct {
	UserID    string      `json:"user_id"`
	Role      domain.Role `json:"role"`
	CompanyID string      `json:"company_id,omitempty"`
	Email     string      `json:"email"`
	Image     string      `json:"image"`
	jwt.RegisteredClaims
}

// UserSource resolves the identity snapshot embedded in fresh tokens.
type UserSource interface {
	CurrentUser(ctx context.Context, userID string) (domain.CurrentUser, error)
}

//go:generate mockgen -source=token_service.go -destination=mock/token_service_mock.go -package=mock
type Service interface {
	// ReattachTokens reissues the auth cookies for userID. Automated
	// clients additionally receive the access token in a header so
	// they do not need a cookie jar.
	ReattachTokens(c *gin.Context, userID string, isAutomatedClient bool) error
	// ExpireSession replaces the access cookie with an already-expired
	// sentinel and drops the stored refresh token.
	ExpireSession(c *gin.Context, userID string)
	Parse(tokenString string) (*Claims, error)
}

type service struct {
	users UserSource
	rdb   *redis.Client
}

func NewService(users UserSource, rdb *redis.Client) Service {
	return &service{users: users, rdb: rdb}
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func refreshKey(userID string) string {
	return "refresh:" + userID
}

func (s *service) sign(cu domain.CurrentUser, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    cu.UserID,
		Role:      cu.Role,
		CompanyID: cu.CompanyID,
		Email:     cu.Email,
		Image:     cu.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func (s *service) ReattachTokens(c *gin.Context, userID string, isAutomatedClient bool) error {
	cu, err := s.users.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	access, err := s.sign(cu, accessTTL)
	if err != nil {
		return err
	}

	refresh, err := s.sign(cu, refreshTTL)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(c.Request.Context(), refreshKey(userID), refresh, refreshTTL).Err(); err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AccessCookie, access, int(accessTTL.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshCookie, refresh, int(refreshTTL.Seconds()), "/", "", true, true)

	if isAutomatedClient {
		c.Header("X-Access-Token", access)
	}

	return nil
}

func (s *service) ExpireSession(c *gin.Context, userID string) {
	if userID != "" {
		_ = s.rdb.Del(c.Request.Context(), refreshKey(userID)).Err()
	}

	c.SetSameSite(http.SameSiteNoneMode)
	// One-second lifetime, value "logout": the cookie is gone on the
	// next request either way.
	c.SetCookie(AccessCookie, "logout", 1, "/", "", true, true)
	c.SetCookie(RefreshCookie, "logout", 1, "/", "", true, true)
}

func (s *service) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
