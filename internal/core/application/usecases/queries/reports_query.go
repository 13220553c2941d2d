package queries

import (
	"errors"
	"strings"
	"time"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/guard"
)

var (
	ErrGetOverviewReportQueryIsNotConstructed = errors.New(
		"GetOverviewReportQuery must be created via NewGetOverviewReportQuery constructor",
	)
	ErrGetWasteTypeReportQueryIsNotConstructed = errors.New(
		"GetWasteTypeReportQuery must be created via NewGetWasteTypeReportQuery constructor",
	)
	ErrGetSiteReportQueryIsNotConstructed = errors.New(
		"GetSiteReportQuery must be created via NewGetSiteReportQuery constructor",
	)
)

type GetOverviewReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOverviewReportQuery() GetOverviewReportQuery {
	return GetOverviewReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOverviewReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOverviewReportQueryIsNotConstructed)
}

// Overview is the system-wide summary. TotalKgCollected is zero, not absent,
// when nothing has been certified.
type Overview struct {
	TotalSites                int64
	TotalCollectors           int64
	TotalRequests             int64
	TotalCompletedCollections int64
	TotalKgCollected          float64
}

// GetWasteTypeReportQuery groups certified collections by waste type within
// an optional range of issue days.
type GetWasteTypeReportQuery struct {
	days kernel.DayRange

	guard guard.ConstructorGuard
}

// NewGetWasteTypeReportQuery parses the optional dataInicio and dataFim bounds
// (YYYY-MM-DD). Blank bounds leave that side open.
func NewGetWasteTypeReportQuery(from, to string) (GetWasteTypeReportQuery, error) {
	var (
		days           kernel.DayRange
		fromErr, toErr error
	)
	if strings.TrimSpace(from) != "" {
		var d kernel.Day
		if d, fromErr = kernel.ParseDay("dataInicio", strings.TrimSpace(from)); fromErr == nil {
			days.From = &d
		}
	}
	if strings.TrimSpace(to) != "" {
		var d kernel.Day
		if d, toErr = kernel.ParseDay("dataFim", strings.TrimSpace(to)); toErr == nil {
			days.To = &d
		}
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return GetWasteTypeReportQuery{}, err
	}

	return NewGetWasteTypeReportQueryForDays(days), nil
}

func NewGetWasteTypeReportQueryForDays(days kernel.DayRange) GetWasteTypeReportQuery {
	return GetWasteTypeReportQuery{days: days, guard: guard.NewConstructorGuard()}
}

func (q GetWasteTypeReportQuery) Validate() error {
	return q.guard.Validate(ErrGetWasteTypeReportQueryIsNotConstructed)
}

func (q GetWasteTypeReportQuery) Days() kernel.DayRange {
	return q.days
}

type WasteTypeTotals struct {
	WasteType        string
	TotalCollections int64
	TotalKg          float64
	FirstIssuedAt    time.Time
	LastIssuedAt     time.Time
}

type GetSiteReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSiteReportQuery() GetSiteReportQuery {
	return GetSiteReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSiteReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSiteReportQueryIsNotConstructed)
}

type SiteTotals struct {
	SiteID                    kernel.ID
	SiteName                  string
	TotalCompletedCollections int64
	TotalKg                   float64
}
