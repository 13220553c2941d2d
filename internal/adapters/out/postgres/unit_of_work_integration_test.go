package postgres_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	postgres_adapter "wastecollection/internal/adapters/out/postgres"
	"wastecollection/internal/adapters/out/postgres/dbtest"
	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/core/ports"
	"wastecollection/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL server, where concurrent transactions actually interleave.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.OpenPostgres(dsn, nil)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	names := postgres_adapter.TableNames()
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, pq.QuoteIdentifier(name))
	}
	err := suite.db.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAcrossRepositories() {
	ctx := context.Background()
	siteID := dbtest.SeedSite(suite.T(), suite.db, "Laticínio Morrinhos")
	collectorID := dbtest.SeedCollector(suite.T(), suite.db, "Ambiental Centro-Oeste")
	requestID := dbtest.SeedRequest(suite.T(), suite.db, siteID, "Soro", 500, request.Accepted, time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	n, err := uow.RequestRepository().UpdateStatus(ctx, requestID, request.Accepted, request.Completed)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	cert := suite.newCertificate(requestID, collectorID, "1")
	_, err = uow.CertificateRepository().Add(ctx, cert)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.RequestRepository().Get(ctx, requestID)
	suite.Require().NoError(err)
	suite.Equal(request.Completed, got.Status())

	_, err = fresh.CertificateRepository().GetByRequest(ctx, requestID)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsStatusChange() {
	ctx := context.Background()
	siteID := dbtest.SeedSite(suite.T(), suite.db, "Laticínio Morrinhos")
	requestID := dbtest.SeedRequest(suite.T(), suite.db, siteID, "Soro", 500, request.Accepted, time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.RequestRepository().UpdateStatus(ctx, requestID, request.Accepted, request.Completed)
	suite.Require().NoError(err)

	// a certificate for an unknown collector violates the foreign key
	_, err = uow.CertificateRepository().Add(ctx, suite.newCertificate(requestID, 9999, "2"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrStorage)

	suite.Require().NoError(uow.Rollback(ctx))

	got, err := suite.factory.Create().RequestRepository().Get(ctx, requestID)
	suite.Require().NoError(err)
	suite.Equal(request.Accepted, got.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBeginFails() {
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitionsHaveOneWinner() {
	ctx := context.Background()
	siteID := dbtest.SeedSite(suite.T(), suite.db, "Têxtil Jaraguá")
	requestID := dbtest.SeedRequest(suite.T(), suite.db, siteID, "Retalhos", 90, request.Pending, time.Now())

	const writers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  int64
		failures []error
	)

	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			n, err := uow.RequestRepository().UpdateStatus(ctx, requestID, request.Pending, request.Accepted)
			if err == nil {
				err = uow.Commit(ctx)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			winners += n
		}()
	}
	wg.Wait()

	suite.Empty(failures)
	suite.Equal(int64(1), winners)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCertificatesForOneRequest() {
	ctx := context.Background()
	siteID := dbtest.SeedSite(suite.T(), suite.db, "Têxtil Jaraguá")
	collectorID := dbtest.SeedCollector(suite.T(), suite.db, "Coleta Norte")
	requestID := dbtest.SeedRequest(suite.T(), suite.db, siteID, "Retalhos", 90, request.Completed, time.Now())

	const writers = 5
	certs := make([]*certificate.Certificate, 0, writers)
	for i := range writers {
		certs = append(certs, suite.newCertificate(requestID, collectorID, string(rune('a'+i))))
	}

	results := make(chan error, writers)
	for _, cert := range certs {
		go func() {
			_, err := suite.factory.Create().CertificateRepository().Add(ctx, cert)
			results <- err
		}()
	}

	var ok, dup int
	for range writers {
		err := <-results
		switch {
		case err == nil:
			ok++
		case errs.KindOf(err) == errs.KindConflict:
			dup++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}

	suite.Equal(1, ok)
	suite.Equal(writers-1, dup)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCertificate(requestID, collectorID kernel.ID, salt string) *certificate.Certificate {
	token := strings.Repeat(hexOf(salt), 64)[:64]
	cert, err := certificate.NewCertificate(requestID, collectorID, time.Now(), token)
	suite.Require().NoError(err)
	return cert
}

func hexOf(s string) string {
	const digits = "0123456789abcdef"
	return string(digits[int(s[0])%16])
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
