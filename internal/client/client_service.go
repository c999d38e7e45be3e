package client

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	clienterrors "go-bms/internal/client/errors"
	"go-bms/internal/domain"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/validate"
)

const PageSize = 10

// CompanyRelater registers newly created clients on the company doc.
type CompanyRelater interface {
	PushClient(ctx context.Context, companyID string, clientID primitive.ObjectID) error
	PullClient(ctx context.Context, companyID string, clientID primitive.ObjectID) error
}

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateClientRequest, actor domain.CurrentUser) (bson.M, error)
	GetAll(ctx context.Context, actor domain.CurrentUser, page int, search string) ([]Client, int64, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) (bson.M, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
}

type service struct {
	repo      Repository
	companies CompanyRelater
}

func NewService(repo Repository, companies CompanyRelater) Service {
	return &service{repo: repo, companies: companies}
}

func (s *service) Create(ctx context.Context, req CreateClientRequest, actor domain.CurrentUser) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if !validate.PhoneNumber(req.Phone) {
		return nil, clienterrors.ErrInvalidPhone
	}

	creatorOID, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return nil, err
	}
	companyOID, err := primitive.ObjectIDFromHex(actor.CompanyID)
	if err != nil {
		return nil, err
	}

	c := &Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedBy: creatorOID,
		Company:   companyOID,
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		l.Error("failed to create client", zap.Error(err))
		return nil, err
	}

	clientOID, _ := primitive.ObjectIDFromHex(id)
	if err := s.companies.PushClient(ctx, actor.CompanyID, clientOID); err != nil {
		return nil, err
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context, actor domain.CurrentUser, page int, search string) ([]Client, int64, error) {
	return s.repo.FindPageByCompany(ctx, actor.CompanyID, search, page, PageSize)
}

func (s *service) GetByID(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.repo.FindPopulatedByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, clienterrors.ErrClientNotFound
	}
	return doc, err
}

func (s *service) Update(ctx context.Context, id string, req UpdateClientRequest) (bson.M, error) {
	if !validate.PhoneNumber(req.Phone) {
		return nil, clienterrors.ErrInvalidPhone
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
	if req.Address != "" {
		set["address"] = req.Address
	}

	if len(set) > 0 {
		if err := s.repo.UpdateFields(ctx, id, set); err != nil {
			return nil, err
		}
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", clienterrors.ErrClientNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}

	if err := s.companies.PullClient(ctx, c.Company.Hex(), c.ID); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to unlink client from company", zap.Error(err))
	}

	return fmt.Sprintf("The client %s %s, has been deleted.", c.FirstName, c.LastName), nil
}
