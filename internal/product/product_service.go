package product

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"go-bms/internal/domain"
	producterrors "go-bms/internal/product/errors"
	"go-bms/internal/shared/contextutil"
)

const PageSize = 10

// CompanyRelater registers newly created products on the company doc.
type CompanyRelater interface {
	PushProduct(ctx context.Context, companyID string, productID primitive.ObjectID) error
	PullProduct(ctx context.Context, companyID string, productID primitive.ObjectID) error
}

//go:generate mockgen -source=product_service.go -destination=mock/product_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProductRequest, actor domain.CurrentUser) (bson.M, error)
	GetAll(ctx context.Context, actor domain.CurrentUser, page int, search string) ([]Product, int64, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (bson.M, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
}

type service struct {
	repo      Repository
	companies CompanyRelater
}

func NewService(repo Repository, companies CompanyRelater) Service {
	return &service{repo: repo, companies: companies}
}

func (s *service) Create(ctx context.Context, req CreateProductRequest, actor domain.CurrentUser) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.Price <= 0 {
		return nil, producterrors.ErrInvalidPrice
	}

	creatorOID, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return nil, err
	}
	companyOID, err := primitive.ObjectIDFromHex(actor.CompanyID)
	if err != nil {
		return nil, err
	}

	p := &Product{
		Name:      req.Name,
		Price:     req.Price,
		CreatedBy: creatorOID,
		Company:   companyOID,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		l.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	productOID, _ := primitive.ObjectIDFromHex(id)
	if err := s.companies.PushProduct(ctx, actor.CompanyID, productOID); err != nil {
		return nil, err
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context, actor domain.CurrentUser, page int, search string) ([]Product, int64, error) {
	return s.repo.FindPageByCompany(ctx, actor.CompanyID, search, page, PageSize)
}

func (s *service) GetByID(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.repo.FindPopulatedByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, producterrors.ErrProductNotFound
	}
	return doc, err
}

func (s *service) Update(ctx context.Context, id string, req UpdateProductRequest) (bson.M, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, producterrors.ErrInvalidPrice
		}
		set["price"] = *req.Price
	}

	if len(set) > 0 {
		if err := s.repo.UpdateFields(ctx, id, set); err != nil {
			return nil, err
		}
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", producterrors.ErrProductNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}

	if err := s.companies.PullProduct(ctx, p.Company.Hex(), p.ID); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to unlink product from company", zap.Error(err))
	}

	return fmt.Sprintf("The product %s, has been deleted.", p.Name), nil
}
