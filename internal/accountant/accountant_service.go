package accountant

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	accountanterrors "go-bms/internal/accountant/errors"
	"go-bms/internal/domain"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/validate"
)

// CompanyLinker maintains the single accountant reference on the
// company doc. A nil id clears the reference.
type CompanyLinker interface {
	SetAccountant(ctx context.Context, companyID string, accountantID *primitive.ObjectID) error
}

//go:generate mockgen -source=accountant_service.go -destination=mock/accountant_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAccountantRequest, actor domain.CurrentUser) (bson.M, error)
	Get(ctx context.Context, actor domain.CurrentUser) (bson.M, error)
	Update(ctx context.Context, id string, req UpdateAccountantRequest) (bson.M, error)
	Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error)
}

type service struct {
	repo      Repository
	companies CompanyLinker
}

func NewService(repo Repository, companies CompanyLinker) Service {
	return &service{repo: repo, companies: companies}
}

func (s *service) Create(ctx context.Context, req CreateAccountantRequest, actor domain.CurrentUser) (bson.M, error) {
	l := contextutil.GetLogger(ctx, nil)

	if !validate.PhoneNumber(req.Phone) {
		return nil, accountanterrors.ErrInvalidPhone
	}
	if !validate.TaxID(req.AFM) {
		return nil, accountanterrors.ErrInvalidTaxID
	}

	if _, err := s.repo.FindByCompany(ctx, actor.CompanyID); err == nil {
		return nil, accountanterrors.ErrAlreadyHasAccountant
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
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

	a := &Accountant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		AFM:       req.AFM,
		CreatedBy: creatorOID,
		Company:   companyOID,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		l.Error("failed to create accountant", zap.Error(err))
		return nil, err
	}

	accountantOID, _ := primitive.ObjectIDFromHex(id)
	if err := s.companies.SetAccountant(ctx, actor.CompanyID, &accountantOID); err != nil {
		return nil, err
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Get(ctx context.Context, actor domain.CurrentUser) (bson.M, error) {
	a, err := s.repo.FindByCompany(ctx, actor.CompanyID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, accountanterrors.ErrAccountantNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.repo.FindPopulatedByID(ctx, a.ID.Hex())
}

func (s *service) Update(ctx context.Context, id string, req UpdateAccountantRequest) (bson.M, error) {
	if !validate.PhoneNumber(req.Phone) {
		return nil, accountanterrors.ErrInvalidPhone
	}
	if req.AFM != "" && !validate.TaxID(req.AFM) {
		return nil, accountanterrors.ErrInvalidTaxID
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
	if req.AFM != "" {
		set["afm"] = req.AFM
	}

	if len(set) > 0 {
		if err := s.repo.UpdateFields(ctx, id, set); err != nil {
			return nil, err
		}
	}

	return s.repo.FindPopulatedByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, actor domain.CurrentUser) (string, error) {
	a, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", accountanterrors.ErrAccountantNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}

	if err := s.companies.SetAccountant(ctx, a.Company.Hex(), nil); err != nil {
		contextutil.GetLogger(ctx, nil).Error("failed to unlink accountant from company", zap.Error(err))
	}

	return fmt.Sprintf("The accountant %s %s, has been deleted.", a.FirstName, a.LastName), nil
}
