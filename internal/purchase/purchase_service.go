package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"go-bms/internal/domain"
	"go-bms/internal/events"
	purchaseerrors "go-bms/internal/purchase/errors"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/validate"
)

const PageSize = 10

// ClientRelater appends a purchase id to the client doc.
type ClientRelater interface {
	PushPurchase(ctx context.Context, clientID string, purchaseID primitive.ObjectID) error
}

// ProductRelater appends a purchase id to a product doc.
type ProductRelater interface {
	PushPurchase(ctx context.Context, productID string, purchaseID primitive.ObjectID) error
}

// CompanyRelater registers purchases on the company doc.
type CompanyRelater interface {
	PushPurchase(ctx context.Context, companyID string, purchaseID primitive.ObjectID) error
	PullPurchase(ctx context.Context, companyID string, purchaseID primitive.ObjectID) error
}

//go:generate mockgen -source=purchase_service.go -destination=mock/purchase_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePurchaseRequest, clientID, productID string, actor domain.CurrentUser) (bson.M, error)
	GetAll(ctx context.Context, actor domain.CurrentUser, page int) ([]Purchase, int64, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	Update(ctx context.Context, id string, req UpdatePurchaseRequest) (bson.M, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
}

type service struct {
	repo      Repository
	clients   ClientRelater
	products  ProductRelater
	companies CompanyRelater
	publisher EventPublisher
}

func NewService(
	repo Repository,
	clients ClientRelater,
	products ProductRelater,
	companies CompanyRelater,
	publisher EventPublisher,
) Service {
	if publisher == nil {
		publisher = NoopEventPublisher{}
	}
	return &service{
		repo:      repo,
		clients:   clients,
		products:  products,
		companies: companies,
		publisher: publisher,
	}
}

func parseDateField(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, ok := validate.ParseDate(raw)
	if !ok {
		return nil, apperror.BadRequest(
			fmt.Sprintf("%s is not a valid date, please use the format YYYY/MM/DD.", raw))
	}
	return &t, nil
}

func (s *service) Create(
	ctx context.Context,
	req CreatePurchaseRequest,
	clientID, productID string,
	actor domain.CurrentUser,
) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.TotalAmount <= 0 {
		return nil, purchaseerrors.ErrInvalidTotalAmount
	}

	productIDs := req.Products
	if productID != "" {
		productIDs = []string{productID}
	}
	if len(productIDs) == 0 {
		return nil, purchaseerrors.ErrNoProducts
	}

	status := StatusPending
	if req.Status != "" {
		parsed, ok := ParseStatus(req.Status)
		if !ok {
			return nil, purchaseerrors.ErrInvalidStatus
		}
		status = parsed
	}

	payment := PaymentCash
	if req.PaymentMethod != "" {
		parsed, ok := ParsePaymentMethod(req.PaymentMethod)
		if !ok {
			return nil, purchaseerrors.ErrInvalidPaymentMethod
		}
		payment = parsed
	}

	date, err := parseDateField(req.Date)
	if err != nil {
		return nil, err
	}

	clientOID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, err
	}
	creatorOID, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return nil, err
	}
	companyOID, err := primitive.ObjectIDFromHex(actor.CompanyID)
	if err != nil {
		return nil, err
	}

	productOIDs := make([]primitive.ObjectID, 0, len(productIDs))
	for _, id := range productIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, purchaseerrors.ErrNoProducts
		}
		productOIDs = append(productOIDs, oid)
	}

	p := &Purchase{
		TotalAmount:   req.TotalAmount,
		Status:        status,
		PaymentMethod: payment,
		Date:          date,
		Client:        clientOID,
		Products:      productOIDs,
		CreatedBy:     creatorOID,
		Company:       companyOID,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		l.Error("failed to create purchase", zap.Error(err))
		return nil, err
	}
	purchaseOID, _ := primitive.ObjectIDFromHex(id)

	if err := s.clients.PushPurchase(ctx, clientID, purchaseOID); err != nil {
		return nil, err
	}
	for _, pid := range productIDs {
		if err := s.products.PushPurchase(ctx, pid, purchaseOID); err != nil {
			return nil, err
		}
	}
	if err := s.companies.PushPurchase(ctx, actor.CompanyID, purchaseOID); err != nil {
		return nil, err
	}

	event := events.PurchaseCreatedEvent{
		EventType:   "purchase.created",
		PurchaseID:  id,
		CompanyID:   actor.CompanyID,
		ClientID:    clientID,
		TotalAmount: req.TotalAmount,
		OccurredAt:  time.Now(),
	}
	if err := s.publisher.PublishPurchaseCreated(ctx, event); err != nil {
		l.Error("failed to publish purchase created event",
			zap.String("purchase_id", id), zap.Error(err))
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context, actor domain.CurrentUser, page int) ([]Purchase, int64, error) {
	return s.repo.FindPageByCompany(ctx, actor.CompanyID, page, PageSize)
}

func (s *service) GetByID(ctx context.Context, id string) (bson.M, error) {
	doc, err := s.repo.FindPopulatedByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, purchaseerrors.ErrPurchaseNotFound
	}
	return doc, err
}

func (s *service) Update(ctx context.Context, id string, req UpdatePurchaseRequest) (bson.M, error) {
	set := bson.M{}

	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, purchaseerrors.ErrInvalidTotalAmount
		}
		set["totalAmount"] = *req.TotalAmount
	}
	if req.Status != "" {
		parsed, ok := ParseStatus(req.Status)
		if !ok {
			return nil, purchaseerrors.ErrInvalidStatus
		}
		set["status"] = parsed
	}
	if req.PaymentMethod != "" {
		parsed, ok := ParsePaymentMethod(req.PaymentMethod)
		if !ok {
			return nil, purchaseerrors.ErrInvalidPaymentMethod
		}
		set["paymentMethod"] = parsed
	}
	if req.Date != "" {
		date, err := parseDateField(req.Date)
		if err != nil {
			return nil, err
		}
		set["date"] = date
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
		return "", purchaseerrors.ErrPurchaseNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}

	if err := s.companies.PullPurchase(ctx, p.Company.Hex(), p.ID); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to unlink purchase from company", zap.Error(err))
	}

	return "The purchase has been deleted.", nil
}
