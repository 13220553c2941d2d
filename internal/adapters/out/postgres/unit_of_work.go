// Package postgres provides the GORM backed Unit of Work and database setup
// for the waste collection store. The same code runs on PostgreSQL in
// production and on SQLite for local runs and fast tests.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	n, err := uow.RequestRepository().UpdateStatus(ctx, id, request.Accepted, request.Completed)
//	...
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op that returns
// gorm.ErrInvalidTransaction, so the deferred call is always safe.
package postgres

import (
	"context"

	"wastecollection/internal/adapters/out/postgres/certificaterepo"
	"wastecollection/internal/adapters/out/postgres/registryrepo"
	"wastecollection/internal/adapters/out/postgres/requestrepo"
	"wastecollection/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances bound to one *gorm.DB.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no active transaction. Instances are not
// safe for concurrent use; create one per command.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork implements ports.UnitOfWork on top of a GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) RequestRepository() ports.RequestRepository {
	return requestrepo.NewGormRequestRepository(uow.conn())
}

func (uow *GormUnitOfWork) CertificateRepository() ports.CertificateRepository {
	return certificaterepo.NewGormCertificateRepository(uow.conn())
}

func (uow *GormUnitOfWork) SiteRepository() ports.SiteRepository {
	return registryrepo.NewGormSiteRepository(uow.conn())
}

func (uow *GormUnitOfWork) CollectorRepository() ports.CollectorRepository {
	return registryrepo.NewGormCollectorRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
