// Package dbtest provides an in-memory SQLite store and row builders for
// repository, query and HTTP tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wastecollection/internal/adapters/out/postgres"
	"wastecollection/internal/adapters/out/postgres/certificaterepo"
	"wastecollection/internal/adapters/out/postgres/registryrepo"
	"wastecollection/internal/adapters/out/postgres/requestrepo"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var sequence atomic.Int64

// NewSQLite returns a migrated in-memory database closed at test cleanup.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func address() registryrepo.AddressDTO {
	return registryrepo.AddressDTO{
		PostalCode: "74000-000",
		Street:     "Av. Anhanguera, 1000",
		District:   "Setor Central",
		City:       "Goiânia",
		State:      kernel.Jurisdiction,
	}
}

func taxID() string {
	n := sequence.Add(1)
	return fmt.Sprintf("%02d.%03d.%03d/0001-%02d", n%100, n%1000, n, n%97)
}

// SeedSite inserts a site and returns its ID.
func SeedSite(t *testing.T, db *gorm.DB, name string) kernel.ID {
	t.Helper()
	dto := registryrepo.SiteDTO{Name: name, TaxID: taxID(), Address: address()}
	require.NoError(t, db.Create(&dto).Error)
	return kernel.ID(dto.ID)
}

// SeedCollector inserts a collector and returns its ID.
func SeedCollector(t *testing.T, db *gorm.DB, name string) kernel.ID {
	t.Helper()
	dto := registryrepo.CollectorDTO{
		Name:    name,
		TaxID:   taxID(),
		License: "LIC-GO-" + strings.ToUpper(strings.ReplaceAll(name, " ", "-")),
		Address: address(),
	}
	require.NoError(t, db.Create(&dto).Error)
	return kernel.ID(dto.ID)
}

// SeedRequest inserts a request row in any status.
func SeedRequest(
	t *testing.T,
	db *gorm.DB,
	siteID kernel.ID,
	wasteType string,
	quantityKg float64,
	status request.Status,
	createdAt time.Time,
) kernel.ID {
	t.Helper()
	dto := requestrepo.RequestDTO{
		SiteID:     siteID.Int64(),
		CreatedAt:  createdAt.UTC(),
		Status:     status.String(),
		WasteType:  wasteType,
		QuantityKg: quantityKg,
	}
	require.NoError(t, db.Omit("Site").Create(&dto).Error)
	return kernel.ID(dto.ID)
}

// SeedCertificate inserts a certificate row with a unique token.
func SeedCertificate(t *testing.T, db *gorm.DB, requestID, collectorID kernel.ID, issuedAt time.Time) kernel.ID {
	t.Helper()
	dto := certificaterepo.CertificateDTO{
		RequestID:   requestID.Int64(),
		CollectorID: collectorID.Int64(),
		IssuedAt:    issuedAt.UTC(),
		Token:       fmt.Sprintf("%064x", sequence.Add(1)),
	}
	require.NoError(t, db.Omit("Request", "Collector").Create(&dto).Error)
	return kernel.ID(dto.ID)
}

// SeedCompleted inserts a Completed request together with its certificate.
func SeedCompleted(
	t *testing.T,
	db *gorm.DB,
	siteID, collectorID kernel.ID,
	wasteType string,
	quantityKg float64,
	issuedAt time.Time,
) kernel.ID {
	t.Helper()
	id := SeedRequest(t, db, siteID, wasteType, quantityKg, request.Completed, issuedAt.Add(-time.Hour))
	SeedCertificate(t, db, id, collectorID, issuedAt)
	return id
}
