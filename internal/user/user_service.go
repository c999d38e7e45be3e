package user

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-bms/internal/domain"
	"go-bms/internal/imagestore"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	usererrors "go-bms/internal/user/errors"
)

// PageSize is the fixed page size for user listings.
const PageSize = 10

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	CurrentUser(ctx context.Context, userID string) (domain.CurrentUser, error)
	GetAll(ctx context.Context, page int, search string) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest, actor domain.CurrentUser, image *multipart.FileHeader) (UserResponse, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error

	// ChangeRole is the self-service role change reachable over HTTP;
	// SetRole is the internal primitive other services compose with.
	ChangeRole(ctx context.Context, id, role string, actor domain.CurrentUser) (domain.Role, error)
	SetRole(ctx context.Context, id string, role domain.Role) error

	AddToCompany(ctx context.Context, userID, companyID string, role domain.Role) (UserResponse, error)
	RemoveFromCompany(ctx context.Context, userID string, actor domain.CurrentUser) error

	// Detach demotes a user to uncategorized and clears the company
	// reference without actor checks; company teardown composes on it.
	Detach(ctx context.Context, userID string) error
}

// CompanyRelater keeps the company's employee list in step with the
// user's company reference. Wired from the company repository.
type CompanyRelater interface {
	PushEmployee(ctx context.Context, companyID string, userID primitive.ObjectID) error
	PullEmployee(ctx context.Context, companyID string, userID primitive.ObjectID) error
}

type service struct {
	repo      Repository
	images    imagestore.Service
	companies CompanyRelater
}

func NewService(repo Repository, images imagestore.Service, companies ...CompanyRelater) Service {
	var relater CompanyRelater
	if len(companies) > 0 {
		relater = companies[0]
	}
	return &service{repo: repo, images: images, companies: relater}
}

func (s *service) findUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, usererrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) CurrentUser(ctx context.Context, userID string) (domain.CurrentUser, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return domain.CurrentUser{}, err
	}

	cu := domain.CurrentUser{
		UserID: u.ID.Hex(),
		Role:   u.Role,
		Email:  u.Email,
		Image:  u.Image,
	}
	if u.Company != nil {
		cu.CompanyID = u.Company.Hex()
	}
	return cu, nil
}

func (s *service) GetAll(ctx context.Context, page int, search string) ([]UserResponse, int64, error) {
	users, total, err := s.repo.FindPage(ctx, search, page, PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest, actor domain.CurrentUser, image *multipart.FileHeader) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.Email != "" {
		existing, err := s.repo.FindByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return UserResponse{}, err
		}
		if existing != nil && existing.ID.Hex() != id {
			return UserResponse{}, usererrors.ErrEmailInUse
		}
	}

	set := bson.M{}
	if req.FirstName != "" {
		set["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		set["lastName"] = req.LastName
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}

	if image != nil {
		if actor.Image != domain.DefaultProfileImage {
			if err := s.images.DeleteImages(ctx, []string{actor.Image}); err != nil {
				l.Error("failed to delete previous profile image", zap.Error(err))
				return UserResponse{}, err
			}
		}
		ref, err := s.images.HandleSingleImage(ctx, image)
		if err != nil {
			return UserResponse{}, err
		}
		set["image"] = ref
	}

	if len(set) > 0 {
		if err := s.repo.UpdateFields(ctx, id, set); err != nil {
			l.Error("failed to update user", zap.Error(err))
			return UserResponse{}, err
		}
	}

	u, err := s.findUser(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	l := contextutil.GetLogger(ctx, nil)

	if actor.Role == domain.RoleOwner {
		return "", usererrors.ErrOwnerMustDeleteCompany
	}

	u, err := s.findUser(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete user", zap.Error(err))
		return "", err
	}

	if u.Image != domain.DefaultProfileImage {
		if err := s.images.DeleteImages(ctx, []string{u.Image}); err != nil {
			l.Error("failed to delete profile image", zap.Error(err))
		}
	}

	return fmt.Sprintf("The user %s %s, has been deleted.", u.FirstName, u.LastName), nil
}

func (s *service) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return usererrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdateFields(ctx, id, bson.M{"password": string(hashed)})
}

func (s *service) ChangeRole(ctx context.Context, id, role string, actor domain.CurrentUser) (domain.Role, error) {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return "", err
	}

	targetCompany := ""
	if u.Company != nil {
		targetCompany = u.Company.Hex()
	}
	if targetCompany != actor.CompanyID {
		return "", usererrors.ErrCannotChangeRole
	}

	if role == "" {
		return "", usererrors.ErrRoleRequired
	}

	resolved, ok := domain.ParseRole(role)
	if !ok {
		return "", usererrors.ErrInvalidRole
	}

	if err := s.SetRole(ctx, id, resolved); err != nil {
		return "", err
	}
	return resolved, nil
}

func (s *service) SetRole(ctx context.Context, id string, role domain.Role) error {
	return s.repo.UpdateFields(ctx, id, bson.M{"role": role})
}

func (s *service) AddToCompany(ctx context.Context, userID, companyID string, role domain.Role) (UserResponse, error) {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}

	if u.Company != nil {
		return UserResponse{}, usererrors.ErrAlreadyEmployed
	}

	companyOID, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		return UserResponse{}, apperror.BadRequest("Invalid company ID")
	}

	if role == "" {
		role = domain.RoleEmploy
	}

	if err := s.repo.UpdateFields(ctx, userID, bson.M{
		"role":    role,
		"company": companyOID,
	}); err != nil {
		return UserResponse{}, err
	}

	// Owners are referenced on the company document directly, not in
	// the employee list.
	if role != domain.RoleOwner && s.companies != nil {
		if err := s.companies.PushEmployee(ctx, companyID, u.ID); err != nil {
			return UserResponse{}, err
		}
	}

	updated, err := s.findUser(ctx, userID)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*updated), nil
}

func (s *service) RemoveFromCompany(ctx context.Context, userID string, actor domain.CurrentUser) error {
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if u.Company == nil {
		return usererrors.ErrNotEmployed
	}
	if u.Company.Hex() != actor.CompanyID {
		return usererrors.ErrDifferentCompany
	}

	if s.companies != nil {
		if err := s.companies.PullEmployee(ctx, u.Company.Hex(), u.ID); err != nil {
			return err
		}
	}

	return s.Detach(ctx, userID)
}

func (s *service) Detach(ctx context.Context, userID string) error {
	if err := s.SetRole(ctx, userID, domain.RoleUncategorized); err != nil {
		return err
	}
	return s.repo.ClearCompany(ctx, userID)
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Image:     u.Image,
		Phone:     u.Phone,
	}
	if u.Company != nil {
		resp.Company = u.Company.Hex()
	}
	return resp
}
