package repositories

import (
	"errors"
	"time"

	"logistik_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPackageNotFound = errors.New("package not found")

type PackageRepository interface {
	Create(pkg *models.Package) error
	FindByID(id string) (*models.Package, error)
	// FindByUser returns one page of the owner's packages, newest first,
	// plus the total count. Pages are 1-indexed; an out-of-range page
	// yields an empty slice, not an error.
	FindByUser(userID string, page, pageSize int) ([]models.Package, int64, error)
	// AdvanceStatus performs the conditional transition write: the row is
	// only updated when its status still equals from. claimed == false
	// means another writer got there first (or the row vanished).
	AdvanceStatus(id string, from, to models.PackageStatus, nextTransitionAt *time.Time) (claimed bool, err error)
	// FindDue returns packages whose scheduled transition time has passed.
	FindDue(now time.Time, limit int) ([]models.Package, error)
}

type PackageRepositoryImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &PackageRepositoryImpl{db: db}
}

func (r *PackageRepositoryImpl) Create(pkg *models.Package) error {
	return r.db.Create(pkg).Error
}

func (r *PackageRepositoryImpl) FindByID(id string) (*models.Package, error) {
	var pkg models.Package
	err := r.db.First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) FindByUser(userID string, page, pageSize int) ([]models.Package, int64, error) {
	var (
		packages []models.Package
		total    int64
	)

	offset := (page - 1) * pageSize

	// Page select and count must see the same state, so both reads run in
	// one transaction.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(pageSize).
			Offset(offset).
			Find(&packages).Error; err != nil {
			return err
		}

		return tx.Model(&models.Package{}).
			Where("user_id = ?", userID).
			Count(&total).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return packages, total, nil
}

func (r *PackageRepositoryImpl) AdvanceStatus(id string, from, to models.PackageStatus, nextTransitionAt *time.Time) (bool, error) {
	result := r.db.Model(&models.Package{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":             to,
			"next_transition_at": nextTransitionAt,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PackageRepositoryImpl) FindDue(now time.Time, limit int) ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Where("next_transition_at IS NOT NULL AND next_transition_at <= ?", now).
		Order("next_transition_at ASC").
		Limit(limit).
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}
