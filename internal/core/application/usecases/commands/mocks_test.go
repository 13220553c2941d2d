package commands_test

import (
	"context"

	"wastecollection/internal/core/application/usecases/commands"
	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/core/domain/model/site"
	"wastecollection/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) (*request.Request, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.ID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id kernel.ID, from, to request.Status) (int64, error) {
	args := m.Called(ctx, id, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockCertificateRepository struct{ mock.Mock }

func (m *MockCertificateRepository) Add(ctx context.Context, c *certificate.Certificate) (*certificate.Certificate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificate.Certificate), args.Error(1)
}

func (m *MockCertificateRepository) GetByRequest(ctx context.Context, id kernel.ID) (*certificate.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificate.Certificate), args.Error(1)
}

type MockSiteRepository struct{ mock.Mock }

func (m *MockSiteRepository) Add(ctx context.Context, s *site.Site) (*site.Site, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*site.Site), args.Error(1)
}

func (m *MockSiteRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCollectorRepository struct{ mock.Mock }

func (m *MockCollectorRepository) Add(ctx context.Context, c *collector.Collector) (*collector.Collector, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collector.Collector), args.Error(1)
}

func (m *MockCollectorRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	return m.Called().Get(0).(ports.RequestRepository)
}

func (m *MockUoW) CertificateRepository() ports.CertificateRepository {
	return m.Called().Get(0).(ports.CertificateRepository)
}

func (m *MockUoW) SiteRepository() ports.SiteRepository {
	return m.Called().Get(0).(ports.SiteRepository)
}

func (m *MockUoW) CollectorRepository() ports.CollectorRepository {
	return m.Called().Get(0).(ports.CollectorRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	return m.Called().Get(0).(commands.RequestUoW)
}

type MockCompletionUoWFactory struct{ mock.Mock }

func (m *MockCompletionUoWFactory) Create() commands.CompletionUoW {
	return m.Called().Get(0).(commands.CompletionUoW)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	return m.Called().Get(0).(commands.RegistryUoW)
}

type MockCertificateIssuer struct{ mock.Mock }

func (m *MockCertificateIssuer) Issue(r *request.Request, collectorID kernel.ID) (*certificate.Certificate, error) {
	args := m.Called(r, collectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*certificate.Certificate), args.Error(1)
}
