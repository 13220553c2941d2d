package requestrepo

import (
	"context"
	"errors"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements ports.RequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// Add inserts a new request. The returned request carries the ID assigned by
// the store.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) (*request.Request, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if aggregate.IsPersisted() {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", errors.New("request is already stored"))
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Site").Create(&dto).Error; err != nil {
		return nil, errs.NewStorageError("insert collection request", err)
	}

	return toDomain(dto)
}

// Get returns a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.ID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, errs.NewStorageError("get collection request", err)
	}

	return toDomain(dto)
}

// UpdateStatus runs UPDATE ... SET status = to WHERE id = ? AND status = from.
// Of two concurrent writers exactly one observes a single affected row.
func (r *GormRequestRepository) UpdateStatus(
	ctx context.Context,
	id kernel.ID,
	from, to request.Status,
) (int64, error) {
	if err := errors.Join(id.Validate(), from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", id.Int64(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return 0, errs.NewStorageError("update collection request status", result.Error)
	}

	return result.RowsAffected, nil
}
