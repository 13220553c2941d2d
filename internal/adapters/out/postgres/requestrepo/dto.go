// Package requestrepo persists collection requests and implements the
// conditional status update that guards lifecycle transitions.
package requestrepo

import (
	"time"

	"wastecollection/internal/adapters/out/postgres/registryrepo"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
)

// RequestDTO is the collection_requests row. Status is stored as text and
// constrained to the three lifecycle values.
type RequestDTO struct {
	ID         int64                 `gorm:"primaryKey;autoIncrement"`
	SiteID     int64                 `gorm:"column:site_id;not null;index"`
	Site       *registryrepo.SiteDTO `gorm:"foreignKey:SiteID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CreatedAt  time.Time             `gorm:"column:created_at;not null;index"`
	Status     string                `gorm:"column:status;type:varchar(16);not null;index;check:chk_collection_requests_status,status IN ('Pending','Accepted','Completed')"`
	WasteType  string                `gorm:"column:waste_type;not null"`
	QuantityKg float64               `gorm:"column:quantity_kg;not null;check:chk_collection_requests_quantity,quantity_kg > 0"`
}

func (RequestDTO) TableName() string {
	return "collection_requests"
}

func fromDomain(r *request.Request) RequestDTO {
	return RequestDTO{
		ID:         r.ID().Int64(),
		SiteID:     r.SiteID().Int64(),
		CreatedAt:  r.CreatedAt().UTC(),
		Status:     r.Status().String(),
		WasteType:  r.WasteType(),
		QuantityKg: r.QuantityKg(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return request.RestoreRequest(
		kernel.ID(dto.ID),
		kernel.ID(dto.SiteID),
		dto.WasteType,
		dto.QuantityKg,
		status,
		dto.CreatedAt,
	)
}
