package services

import (
	"time"

	"logistik_backend/internal/email"
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
	"logistik_backend/internal/services/dto"
	"logistik_backend/pkg/apperrors"
)

// PageSize is the fixed page size for package listings.
const PageSize = 20

type PackageService interface {
	Create(userID string, req *dto.CreatePackageRequest) (*models.Package, error)
	FindByID(id string) (*models.Package, error)
	// Submit moves an owned Pending package to In Transit, schedules its
	// autonomous progression and emails the primary recipient.
	Submit(packageID, ownerID string) (*models.Package, error)
	ListForUser(userID string, page int) (*dto.PackagesPage, error)
}

type PackageServiceImpl struct {
	packageRepo        repositories.PackageRepository
	emailProvider      email.Provider
	transitionInterval time.Duration
}

func NewPackageService(
	packageRepo repositories.PackageRepository,
	emailProvider email.Provider,
	transitionInterval time.Duration,
) PackageService {
	return &PackageServiceImpl{
		packageRepo:        packageRepo,
		emailProvider:      emailProvider,
		transitionInterval: transitionInterval,
	}
}

func (s *PackageServiceImpl) Create(userID string, req *dto.CreatePackageRequest) (*models.Package, error) {
	if !req.PickupDate.After(time.Now()) {
		return nil, apperrors.ValidationError([]apperrors.FieldError{
			{Field: "pickup_date", Message: "Must be a date in the future"},
		})
	}
	if req.SecondaryEmail != nil && *req.SecondaryEmail == req.PrimaryEmail {
		return nil, apperrors.ValidationError([]apperrors.FieldError{
			{Field: "secondary_email", Message: "Must differ from the primary email"},
		})
	}

	pkg := &models.Package{
		Name:           req.Name,
		Description:    req.Description,
		Status:         models.PackageStatusPending,
		PickupDate:     req.PickupDate,
		PrimaryEmail:   req.PrimaryEmail,
		SecondaryEmail: req.SecondaryEmail,
		// The public tracking code is its own id, distinct from the record id.
		TrackingCode: models.NewID(),
		UserID:       userID,
	}

	if err := s.packageRepo.Create(pkg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pkg, nil
}

func (s *PackageServiceImpl) FindByID(id string) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.NewNotFoundError("record does not exist")
		}
		return nil, apperrors.InternalError(err)
	}
	return pkg, nil
}

func (s *PackageServiceImpl) Submit(packageID, ownerID string) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(packageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPackageNotFound) {
			return nil, apperrors.NewNotFoundError("record does not exist")
		}
		return nil, apperrors.InternalError(err)
	}
	// Non-owners are told the package does not exist
	if pkg.UserID != ownerID {
		return nil, apperrors.NewNotFoundError("record does not exist")
	}

	if pkg.Status != models.PackageStatusPending {
		return nil, apperrors.NewInvalidStateError("you can only submit pending packages")
	}

	nextAt := time.Now().Add(s.transitionInterval)
	claimed, err := s.packageRepo.AdvanceStatus(packageID, models.PackageStatusPending, models.PackageStatusInTransit, &nextAt)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !claimed {
		// A concurrent submit won the conditional update
		return nil, apperrors.NewInvalidStateError("you can only submit pending packages")
	}

	pkg.Status = models.PackageStatusInTransit
	pkg.NextTransitionAt = &nextAt

	if err := s.emailProvider.Send(email.PackageConfirmation(pkg.PrimaryEmail, pkg.TrackingCode, pkg.PickupDate)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pkg, nil
}

func (s *PackageServiceImpl) ListForUser(userID string, page int) (*dto.PackagesPage, error) {
	if page < 1 {
		page = 1
	}

	packages, total, err := s.packageRepo.FindByUser(userID, page, PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + PageSize - 1) / PageSize)

	return &dto.PackagesPage{
		CurrentPage: page,
		Limit:       len(packages),
		Data:        packages,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}
