// Package commands contains the operations that change the state of the waste
// collection store. Every handler follows the same pattern: validate the
// command, open a unit of work, apply domain rules, persist and commit.
package commands

import (
	"context"

	"wastecollection/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	CertificateRepoFactory interface {
		CertificateRepository() ports.CertificateRepository
	}

	SiteRepoFactory interface {
		SiteRepository() ports.SiteRepository
	}

	CollectorRepoFactory interface {
		CollectorRepository() ports.CollectorRepository
	}

	// RequestUoW serves create and accept, which touch requests and read
	// the site registry.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		SiteRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// CompletionUoW serves complete, where the status change and the
	// certificate insert share one transaction.
	CompletionUoW interface {
		TxManager
		RequestRepoFactory
		CertificateRepoFactory
		CollectorRepoFactory
	}

	CompletionUoWFactory interface {
		Create() CompletionUoW
	}

	// RegistryUoW serves site and collector registration.
	RegistryUoW interface {
		TxManager
		SiteRepoFactory
		CollectorRepoFactory
	}

	RegistryUoWFactory interface {
		Create() RegistryUoW
	}
)
