package company

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	companyerrors "go-bms/internal/company/errors"
	"go-bms/internal/domain"
	"go-bms/internal/events"
	"go-bms/internal/imagestore"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/validate"
	"go-bms/internal/user"
)

// UserBinder is the slice of the user service this package composes
// with: attach users to a company and detach them again.
type UserBinder interface {
	AddToCompany(ctx context.Context, userID, companyID string, role domain.Role) (user.UserResponse, error)
	Detach(ctx context.Context, userID string) error
}

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, actor domain.CurrentUser) (bson.M, error)
	Create(ctx context.Context, req CreateCompanyRequest, actor domain.CurrentUser, logo *multipart.FileHeader) (bson.M, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest, logo *multipart.FileHeader) (bson.M, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
}

type service struct {
	repo      Repository
	users     UserBinder
	images    imagestore.Service
	publisher EventPublisher
}

func NewService(repo Repository, users UserBinder, images imagestore.Service, publisher EventPublisher) Service {
	if publisher == nil {
		publisher = NoopEventPublisher{}
	}
	return &service{repo: repo, users: users, images: images, publisher: publisher}
}

func validateFields(afm string, lat, lng *float64) error {
	if afm != "" && !validate.TaxID(afm) {
		return companyerrors.ErrInvalidTaxID
	}
	if lat != nil && !validate.Latitude(*lat) {
		return companyerrors.ErrInvalidLatitude
	}
	if lng != nil && !validate.Longitude(*lng) {
		return companyerrors.ErrInvalidLongitude
	}
	return nil
}

func (s *service) Get(ctx context.Context, actor domain.CurrentUser) (bson.M, error) {
	if actor.CompanyID == "" {
		return nil, companyerrors.ErrCompanyNotFound
	}

	doc, err := s.repo.FindPopulatedByID(ctx, actor.CompanyID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, companyerrors.ErrCompanyNotFound
	}
	return doc, err
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest, actor domain.CurrentUser, logo *multipart.FileHeader) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if actor.CompanyID != "" {
		return nil, companyerrors.ErrAlreadyHasCompany
	}

	if err := validateFields(req.AFM, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	ownerOID, err := primitive.ObjectIDFromHex(actor.UserID)
	if err != nil {
		return nil, err
	}

	c := &Company{
		Name:      req.Name,
		Address:   req.Address,
		AFM:       req.AFM,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Owner:     ownerOID,
	}

	if logo != nil {
		ref, err := s.images.HandleSingleImage(ctx, logo)
		if err != nil {
			return nil, err
		}
		c.Logo = ref
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		l.Error("failed to create company", zap.Error(err))
		return nil, err
	}

	// The creator becomes the owner; tokens are reissued by the handler.
	if _, err := s.users.AddToCompany(ctx, actor.UserID, id, domain.RoleOwner); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishCompanyLifecycle(ctx, events.CompanyLifecycleEvent{
		EventType:  events.CompanyCreated,
		CompanyID:  id,
		OwnerID:    actor.UserID,
		OccurredAt: time.Now(),
	}); err != nil {
		l.Warn("failed to publish company created event", zap.Error(err))
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest, logo *multipart.FileHeader) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if err := validateFields(req.AFM, req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Address != "" {
		set["address"] = req.Address
	}
	if req.AFM != "" {
		set["afm"] = req.AFM
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Latitude != nil && req.Longitude != nil {
		set["latitude"] = *req.Latitude
		set["longitude"] = *req.Longitude
	}

	if logo != nil {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.Logo != "" {
			if err := s.images.DeleteImages(ctx, []string{existing.Logo}); err != nil {
				l.Error("failed to delete previous logo", zap.Error(err))
				return nil, err
			}
		}
		ref, err := s.images.HandleSingleImage(ctx, logo)
		if err != nil {
			return nil, err
		}
		set["logo"] = ref
	}

	if len(set) > 0 {
		if err := s.repo.UpdateFields(ctx, id, set); err != nil {
			l.Error("failed to update company", zap.Error(err))
			return nil, err
		}
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	l := contextutil.GetLogger(ctx, nil)

	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", companyerrors.ErrCompanyNotFound
	}
	if err != nil {
		return "", err
	}

	if c.Owner.Hex() != actor.UserID {
		return "", companyerrors.ErrNotCompanyOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete company", zap.Error(err))
		return "", err
	}

	// Detach the staff; employee documents survive without a company.
	for _, employeeID := range c.Employees {
		if err := s.users.Detach(ctx, employeeID.Hex()); err != nil {
			l.Error("failed to detach employee",
				zap.String("employee_id", employeeID.Hex()), zap.Error(err))
		}
	}
	if err := s.users.Detach(ctx, c.Owner.Hex()); err != nil {
		l.Error("failed to detach owner", zap.Error(err))
	}

	if c.Logo != "" {
		if err := s.images.DeleteImages(ctx, []string{c.Logo}); err != nil {
			l.Error("failed to delete company logo", zap.Error(err))
		}
	}

	if err := s.publisher.PublishCompanyLifecycle(ctx, events.CompanyLifecycleEvent{
		EventType:  events.CompanyDeleted,
		CompanyID:  id,
		OwnerID:    actor.UserID,
		OccurredAt: time.Now(),
	}); err != nil {
		l.Warn("failed to publish company deleted event", zap.Error(err))
	}

	return "The company " + c.Name + ", has been deleted.", nil
}
