package ports

import (
	"context"

	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/site"
)

// SiteRepository persists registered industrial sites.
type SiteRepository interface {
	// Add inserts the site. A repeated tax id yields an AlreadyExistsError.
	Add(ctx context.Context, s *site.Site) (*site.Site, error)
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}

// CollectorRepository persists licensed collectors.
type CollectorRepository interface {
	// Add inserts the collector. A repeated tax id yields an AlreadyExistsError.
	Add(ctx context.Context, c *collector.Collector) (*collector.Collector, error)
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
