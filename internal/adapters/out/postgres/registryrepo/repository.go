package registryrepo

import (
	"context"
	"errors"

	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/site"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSiteRepository implements ports.SiteRepository using GORM.
type GormSiteRepository struct {
	db *gorm.DB
}

func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// Add inserts a site. The database must be opened with TranslateError so the
// unique tax id index surfaces as gorm.ErrDuplicatedKey.
func (r *GormSiteRepository) Add(ctx context.Context, s *site.Site) (*site.Site, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	dto := siteFromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewAlreadyExistsErrorWithCause("site with cnpj", s.TaxID(), err)
		}
		return nil, errs.NewStorageError("insert site", err)
	}

	return siteToDomain(dto)
}

func (r *GormSiteRepository) Get(ctx context.Context, id kernel.ID) (*site.Site, error) {
	var dto SiteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("site", id.String())
		}
		return nil, errs.NewStorageError("get site", err)
	}
	return siteToDomain(dto)
}

func (r *GormSiteRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	return exists(ctx, r.db, &SiteDTO{}, id)
}

// GormCollectorRepository implements ports.CollectorRepository using GORM.
type GormCollectorRepository struct {
	db *gorm.DB
}

func NewGormCollectorRepository(db *gorm.DB) *GormCollectorRepository {
	return &GormCollectorRepository{db: db}
}

func (r *GormCollectorRepository) Add(ctx context.Context, c *collector.Collector) (*collector.Collector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := collectorFromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewAlreadyExistsErrorWithCause("collector with cnpj", c.TaxID(), err)
		}
		return nil, errs.NewStorageError("insert collector", err)
	}

	return collectorToDomain(dto)
}

func (r *GormCollectorRepository) Get(ctx context.Context, id kernel.ID) (*collector.Collector, error) {
	var dto CollectorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collector", id.String())
		}
		return nil, errs.NewStorageError("get collector", err)
	}
	return collectorToDomain(dto)
}

func (r *GormCollectorRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	return exists(ctx, r.db, &CollectorDTO{}, id)
}

func exists(ctx context.Context, db *gorm.DB, model any, id kernel.ID) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return false, errs.NewStorageError("check existence", err)
	}
	return count > 0, nil
}
