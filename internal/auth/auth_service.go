package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	autherrors "go-bms/internal/auth/errors"
	"go-bms/internal/domain"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/validate"
	"go-bms/internal/user"
	usererrors "go-bms/internal/user/errors"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Register creates an uncategorized account and returns its id.
	Register(ctx context.Context, req RegisterRequest) (string, error)
	// Login verifies the credentials and returns the account id.
	Login(ctx context.Context, req LoginRequest) (string, error)
}

type service struct {
	users user.Repository
}

func NewService(users user.Repository) Service {
	return &service{users: users}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	l := contextutil.GetLogger(ctx, nil)

	if !validate.PhoneNumber(req.Phone) {
		return "", apperror.BadRequest("The phone number must be 10 digits!")
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return "", usererrors.ErrEmailInUse
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	u := &user.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		Role:      domain.RoleUncategorized,
		Image:     domain.DefaultProfileImage,
	}

	id, err := s.users.Create(ctx, u)
	if err != nil {
		l.Error("failed to create user", zap.Error(err))
		return "", err
	}

	return id, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", autherrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", autherrors.ErrInvalidCredentials
	}

	return u.ID.Hex(), nil
}
