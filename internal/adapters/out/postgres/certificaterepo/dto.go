// Package certificaterepo persists final disposal certificates. Uniqueness of
// the request reference and of the verification token is enforced by the
// store's unique indexes.
package certificaterepo

import (
	"time"

	"wastecollection/internal/adapters/out/postgres/registryrepo"
	"wastecollection/internal/adapters/out/postgres/requestrepo"
	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
)

type CertificateDTO struct {
	ID          int64                      `gorm:"primaryKey;autoIncrement"`
	RequestID   int64                      `gorm:"column:request_id;not null;uniqueIndex:uq_certificates_request_id"`
	Request     *requestrepo.RequestDTO    `gorm:"foreignKey:RequestID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	CollectorID int64                      `gorm:"column:collector_id;not null;index"`
	Collector   *registryrepo.CollectorDTO `gorm:"foreignKey:CollectorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	IssuedAt    time.Time                  `gorm:"column:issued_at;not null;index"`
	Token       string                     `gorm:"column:token;type:varchar(64);not null;uniqueIndex:uq_certificates_token"`
}

func (CertificateDTO) TableName() string {
	return "certificates"
}

func fromDomain(c *certificate.Certificate) CertificateDTO {
	return CertificateDTO{
		ID:          c.ID().Int64(),
		RequestID:   c.RequestID().Int64(),
		CollectorID: c.CollectorID().Int64(),
		IssuedAt:    c.IssuedAt().UTC(),
		Token:       c.Token(),
	}
}

func toDomain(dto CertificateDTO) (*certificate.Certificate, error) {
	return certificate.RestoreCertificate(
		kernel.ID(dto.ID),
		kernel.ID(dto.RequestID),
		kernel.ID(dto.CollectorID),
		dto.IssuedAt,
		dto.Token,
	)
}
