package accountant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	accountanterrors "go-bms/internal/accountant/errors"
	"go-bms/internal/domain"
)

type fakeRepo struct {
	created         *Accountant
	createFn        func(ctx context.Context, a *Accountant) (string, error)
	findByIDFn      func(ctx context.Context, id string) (*Accountant, error)
	findByCompanyFn func(ctx context.Context, companyID string) (*Accountant, error)
	findPopulatedFn func(ctx context.Context, id string) (bson.M, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, a *Accountant) (string, error) {
	f.created = a
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Accountant, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByCompany(ctx context.Context, companyID string) (*Accountant, error) {
	return f.findByCompanyFn(ctx, companyID)
}
func (f *fakeRepo) FindPopulatedByID(ctx context.Context, id string) (bson.M, error) {
	return f.findPopulatedFn(ctx, id)
}
func (f *fakeRepo) UpdateFields(ctx context.Context, id string, set bson.M) error { return nil }
func (f *fakeRepo) Delete(ctx context.Context, id string) error                   { return f.deleteFn(ctx, id) }
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error)           { return true, nil }

type fakeLinker struct {
	calls []*primitive.ObjectID
}

func (f *fakeLinker) SetAccountant(ctx context.Context, companyID string, accountantID *primitive.ObjectID) error {
	f.calls = append(f.calls, accountantID)
	return nil
}

func testActor() domain.CurrentUser {
	return domain.CurrentUser{
		UserID:    primitive.NewObjectID().Hex(),
		CompanyID: primitive.NewObjectID().Hex(),
		Role:      domain.RoleOwner,
	}
}

func validRequest() CreateAccountantRequest {
	return CreateAccountantRequest{
		FirstName: "Giorgos",
		LastName:  "Alexiou",
		Email:     "giorgos@example.com",
		Phone:     "6900000000",
		AFM:       "123456789",
	}
}

func TestCreate_LinksCompany(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Accountant) (string, error) {
			return primitive.NewObjectID().Hex(), nil
		},
		findByCompanyFn: func(ctx context.Context, companyID string) (*Accountant, error) {
			return nil, mongo.ErrNoDocuments
		},
		findPopulatedFn: func(ctx context.Context, id string) (bson.M, error) {
			return bson.M{"_id": id}, nil
		},
	}
	linker := &fakeLinker{}
	svc := NewService(repo, linker)

	actor := testActor()
	_, err := svc.Create(context.Background(), validRequest(), actor)
	require.NoError(t, err)

	assert.Equal(t, actor.CompanyID, repo.created.Company.Hex())
	require.Len(t, linker.calls, 1)
	require.NotNil(t, linker.calls[0])
}

func TestCreate_CompanyAlreadyHasAccountant(t *testing.T) {
	repo := &fakeRepo{
		findByCompanyFn: func(ctx context.Context, companyID string) (*Accountant, error) {
			return &Accountant{ID: primitive.NewObjectID()}, nil
		},
	}
	svc := NewService(repo, &fakeLinker{})

	_, err := svc.Create(context.Background(), validRequest(), testActor())
	assert.ErrorIs(t, err, accountanterrors.ErrAlreadyHasAccountant)
}

func TestCreate_FieldValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeLinker{})

	req := validRequest()
	req.Phone = "12"
	_, err := svc.Create(context.Background(), req, testActor())
	assert.ErrorIs(t, err, accountanterrors.ErrInvalidPhone)

	req = validRequest()
	req.AFM = "12345"
	_, err = svc.Create(context.Background(), req, testActor())
	assert.ErrorIs(t, err, accountanterrors.ErrInvalidTaxID)
}

func TestDelete_ClearsCompanyReference(t *testing.T) {
	companyOID := primitive.NewObjectID()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Accountant, error) {
			return &Accountant{
				ID:        primitive.NewObjectID(),
				FirstName: "Giorgos",
				LastName:  "Alexiou",
				Company:   companyOID,
			}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	linker := &fakeLinker{}
	svc := NewService(repo, linker)

	msg, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), testActor())
	require.NoError(t, err)
	assert.Equal(t, "The accountant Giorgos Alexiou, has been deleted.", msg)
	require.Len(t, linker.calls, 1)
	assert.Nil(t, linker.calls[0])
}

func TestGet_NoAccountant(t *testing.T) {
	repo := &fakeRepo{
		findByCompanyFn: func(ctx context.Context, companyID string) (*Accountant, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewService(repo, &fakeLinker{})

	_, err := svc.Get(context.Background(), testActor())
	assert.ErrorIs(t, err, accountanterrors.ErrAccountantNotFound)
}
