package certificaterepo

import (
	"context"
	"errors"

	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCertificateRepository implements ports.CertificateRepository using GORM.
type GormCertificateRepository struct {
	db *gorm.DB
}

func NewGormCertificateRepository(db *gorm.DB) *GormCertificateRepository {
	return &GormCertificateRepository{db: db}
}

// Add inserts a certificate. Duplicates are detected from the unique index
// violation only, so the database must be opened with TranslateError.
func (r *GormCertificateRepository) Add(
	ctx context.Context,
	c *certificate.Certificate,
) (*certificate.Certificate, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Omit("Request", "Collector").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewAlreadyExistsErrorWithCause("certificate for request", c.RequestID().String(), err)
		}
		return nil, errs.NewStorageError("insert certificate", err)
	}

	return toDomain(dto)
}

func (r *GormCertificateRepository) GetByRequest(
	ctx context.Context,
	requestID kernel.ID,
) (*certificate.Certificate, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto CertificateDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("certificate for request", requestID.String())
		}
		return nil, errs.NewStorageError("get certificate", err)
	}

	return toDomain(dto)
}
