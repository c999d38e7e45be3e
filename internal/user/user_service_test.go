package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"go-bms/internal/domain"
	"go-bms/internal/imagestore"
	"go-bms/internal/user"
	usererrors "go-bms/internal/user/errors"
	"go-bms/internal/user/mock"
)

type fakeRelater struct {
	pushed []string
	pulled []string
	err    error
}

func (f *fakeRelater) PushEmployee(ctx context.Context, companyID string, userID primitive.ObjectID) error {
	f.pushed = append(f.pushed, companyID)
	return f.err
}

func (f *fakeRelater) PullEmployee(ctx context.Context, companyID string, userID primitive.ObjectID) error {
	f.pulled = append(f.pulled, companyID)
	return f.err
}

func newUser(role domain.Role, companyID *primitive.ObjectID) *user.User {
	return &user.User{
		ID:        primitive.NewObjectID(),
		FirstName: "Maria",
		LastName:  "Papadaki",
		Email:     "maria@example.com",
		Role:      role,
		Image:     domain.DefaultProfileImage,
		Company:   companyID,
	}
}

func TestDelete_OwnerMustDeleteCompanyFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	actor := domain.CurrentUser{UserID: "abc", Role: domain.RoleOwner}
	_, err := svc.Delete(context.Background(), "abc", actor)

	assert.ErrorIs(t, err, usererrors.ErrOwnerMustDeleteCompany)
}

func TestDelete_ReturnsNamedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	u := newUser(domain.RoleEmploy, nil)
	id := u.ID.Hex()

	repo.EXPECT().FindByID(gomock.Any(), id).Return(u, nil)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	msg, err := svc.Delete(context.Background(), id, domain.CurrentUser{UserID: id, Role: domain.RoleEmploy})
	require.NoError(t, err)
	assert.Equal(t, "The user Maria Papadaki, has been deleted.", msg)
}

func TestUpdate_EmailCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	other := newUser(domain.RoleEmploy, nil)
	repo.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").Return(other, nil)

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(),
		user.UpdateUserRequest{Email: "taken@example.com"}, domain.CurrentUser{}, nil)

	assert.ErrorIs(t, err, usererrors.ErrEmailInUse)
}

func TestChangePassword_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	u := newUser(domain.RoleEmploy, nil)
	u.Password = string(hash)

	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	err := svc.ChangePassword(context.Background(), u.ID.Hex(), "wrong", "newpass")
	assert.ErrorIs(t, err, usererrors.ErrPasswordMismatch)
}

func TestChangeRole_CrossCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	otherCompany := primitive.NewObjectID()
	u := newUser(domain.RoleEmploy, &otherCompany)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	actor := domain.CurrentUser{CompanyID: primitive.NewObjectID().Hex(), Role: domain.RoleOwner}
	_, err := svc.ChangeRole(context.Background(), u.ID.Hex(), "seniorEmploy", actor)

	assert.ErrorIs(t, err, usererrors.ErrCannotChangeRole)
}

func TestChangeRole_MissingRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	companyOID := primitive.NewObjectID()
	u := newUser(domain.RoleEmploy, &companyOID)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	actor := domain.CurrentUser{CompanyID: companyOID.Hex(), Role: domain.RoleOwner}
	_, err := svc.ChangeRole(context.Background(), u.ID.Hex(), "", actor)

	assert.ErrorIs(t, err, usererrors.ErrRoleRequired)
}

func TestAddToCompany_AlreadyEmployed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	elsewhere := primitive.NewObjectID()
	u := newUser(domain.RoleEmploy, &elsewhere)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	_, err := svc.AddToCompany(context.Background(), u.ID.Hex(), primitive.NewObjectID().Hex(), "")
	assert.ErrorIs(t, err, usererrors.ErrAlreadyEmployed)
}

func TestAddToCompany_DefaultsToEmployAndPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	relater := &fakeRelater{}
	svc := user.NewService(repo, imagestore.Noop{}, relater)

	u := newUser(domain.RoleUncategorized, nil)
	companyID := primitive.NewObjectID().Hex()

	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), u.ID.Hex(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set bson.M) error {
			assert.Equal(t, domain.RoleEmploy, set["role"])
			return nil
		})
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	_, err := svc.AddToCompany(context.Background(), u.ID.Hex(), companyID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{companyID}, relater.pushed)
}

func TestAddToCompany_OwnerSkipsEmployeeList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	relater := &fakeRelater{}
	svc := user.NewService(repo, imagestore.Noop{}, relater)

	u := newUser(domain.RoleUncategorized, nil)
	companyID := primitive.NewObjectID().Hex()

	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), u.ID.Hex(), gomock.Any()).Return(nil)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	_, err := svc.AddToCompany(context.Background(), u.ID.Hex(), companyID, domain.RoleOwner)
	require.NoError(t, err)
	assert.Empty(t, relater.pushed)
}

func TestRemoveFromCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	relater := &fakeRelater{}
	svc := user.NewService(repo, imagestore.Noop{}, relater)

	companyOID := primitive.NewObjectID()
	u := newUser(domain.RoleEmploy, &companyOID)

	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)
	repo.EXPECT().UpdateFields(gomock.Any(), u.ID.Hex(), bson.M{"role": domain.RoleUncategorized}).Return(nil)
	repo.EXPECT().ClearCompany(gomock.Any(), u.ID.Hex()).Return(nil)

	actor := domain.CurrentUser{CompanyID: companyOID.Hex(), Role: domain.RoleOwner}
	err := svc.RemoveFromCompany(context.Background(), u.ID.Hex(), actor)
	require.NoError(t, err)
	assert.Equal(t, []string{companyOID.Hex()}, relater.pulled)
}

func TestRemoveFromCompany_NotEmployed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	u := newUser(domain.RoleUncategorized, nil)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	err := svc.RemoveFromCompany(context.Background(), u.ID.Hex(), domain.CurrentUser{})
	assert.ErrorIs(t, err, usererrors.ErrNotEmployed)
}

func TestRemoveFromCompany_DifferentCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	companyOID := primitive.NewObjectID()
	u := newUser(domain.RoleEmploy, &companyOID)
	repo.EXPECT().FindByID(gomock.Any(), u.ID.Hex()).Return(u, nil)

	actor := domain.CurrentUser{CompanyID: primitive.NewObjectID().Hex()}
	err := svc.RemoveFromCompany(context.Background(), u.ID.Hex(), actor)
	assert.ErrorIs(t, err, usererrors.ErrDifferentCompany)
}

func TestGetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := user.NewService(repo, imagestore.Noop{})

	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, mongo.ErrNoDocuments)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}
