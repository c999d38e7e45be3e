package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	clienterrors "go-bms/internal/client/errors"
	"go-bms/internal/domain"
)

type fakeRepo struct {
	created         *Client
	createFn        func(ctx context.Context, c *Client) (string, error)
	findByIDFn      func(ctx context.Context, id string) (*Client, error)
	findPopulatedFn func(ctx context.Context, id string) (bson.M, error)
	updateFieldsFn  func(ctx context.Context, id string, set bson.M) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, c *Client) (string, error) {
	f.created = c
	return f.createFn(ctx, c)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Client, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindPopulatedByID(ctx context.Context, id string) (bson.M, error) {
	return f.findPopulatedFn(ctx, id)
}
func (f *fakeRepo) FindPageByCompany(ctx context.Context, companyID, search string, page, limit int) ([]Client, int64, error) {
	return nil, 0, nil
}
func (f *fakeRepo) UpdateFields(ctx context.Context, id string, set bson.M) error {
	return f.updateFieldsFn(ctx, id, set)
}
func (f *fakeRepo) PushPurchase(ctx context.Context, id string, purchaseID primitive.ObjectID) error {
	return nil
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }
func (f *fakeRepo) Exists(ctx context.Context, id string) (bool, error) { return true, nil }

type fakeRelater struct {
	pushed []string
	pulled []string
}

func (f *fakeRelater) PushClient(ctx context.Context, companyID string, clientID primitive.ObjectID) error {
	f.pushed = append(f.pushed, companyID)
	return nil
}

func (f *fakeRelater) PullClient(ctx context.Context, companyID string, clientID primitive.ObjectID) error {
	f.pulled = append(f.pulled, companyID)
	return nil
}

func testActor() domain.CurrentUser {
	return domain.CurrentUser{
		UserID:    primitive.NewObjectID().Hex(),
		CompanyID: primitive.NewObjectID().Hex(),
		Role:      domain.RoleEmploy,
	}
}

func TestCreate_InvalidPhone(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeRelater{})

	_, err := svc.Create(context.Background(),
		CreateClientRequest{FirstName: "Nikos", LastName: "Ioannou", Phone: "12345"}, testActor())

	assert.ErrorIs(t, err, clienterrors.ErrInvalidPhone)
}

func TestCreate_AssignsActorRefsAndLinksCompany(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, c *Client) (string, error) {
			return primitive.NewObjectID().Hex(), nil
		},
		findPopulatedFn: func(ctx context.Context, id string) (bson.M, error) {
			return bson.M{"_id": id}, nil
		},
	}
	relater := &fakeRelater{}
	svc := NewService(repo, relater)

	actor := testActor()
	_, err := svc.Create(context.Background(),
		CreateClientRequest{FirstName: "Nikos", LastName: "Ioannou", Phone: "6912345678"}, actor)

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, repo.created.CreatedBy.Hex())
	assert.Equal(t, actor.CompanyID, repo.created.Company.Hex())
	assert.Equal(t, []string{actor.CompanyID}, relater.pushed)
}

func TestDelete_UnlinksAndNamesClient(t *testing.T) {
	companyOID := primitive.NewObjectID()
	clientOID := primitive.NewObjectID()

	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Client, error) {
			return &Client{ID: clientOID, FirstName: "Nikos", LastName: "Ioannou", Company: companyOID}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	relater := &fakeRelater{}
	svc := NewService(repo, relater)

	msg, err := svc.Delete(context.Background(), clientOID.Hex(), testActor())
	require.NoError(t, err)
	assert.Equal(t, "The client Nikos Ioannou, has been deleted.", msg)
	assert.Equal(t, []string{companyOID.Hex()}, relater.pulled)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findPopulatedFn: func(ctx context.Context, id string) (bson.M, error) {
			return nil, mongo.ErrNoDocuments
		},
	}
	svc := NewService(repo, &fakeRelater{})

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
}
