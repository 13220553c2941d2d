package http

import (
	"log/slog"
	"net/http"

	"wastecollection/internal/core/application/usecases/commands"
	"wastecollection/internal/core/application/usecases/queries"
	"wastecollection/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateRequest     commands.CreateRequestCommandHandler
	AcceptRequest     commands.AcceptRequestCommandHandler
	CompleteRequest   commands.CompleteRequestCommandHandler
	RegisterSite      commands.RegisterSiteCommandHandler
	RegisterCollector commands.RegisterCollectorCommandHandler

	ListRequestsBySite     queries.ListRequestsBySiteQueryHandler
	ListRequestsByStatus   queries.ListRequestsByStatusQueryHandler
	ListCertificatesBySite queries.ListCertificatesBySiteQueryHandler
	OverviewReport         queries.GetOverviewReportQueryHandler
	WasteTypeReport        queries.GetWasteTypeReportQueryHandler
	SiteReport             queries.GetSiteReportQueryHandler
	ListSites              queries.ListSitesQueryHandler
	ListCollectors         queries.ListCollectorsQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
// Handlers return domain errors unchanged; ErrorHandler turns them into
// responses.
type Server struct {
	h   Handlers
	log *slog.Logger
}

func NewServer(h Handlers, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{h: h, log: log.With("component", "http")}
}

var _ ServerInterface = (*Server)(nil)

func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateRequest handles POST /solicitacoes.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body NewRequest
	if err := ctx.Bind(&body); err != nil {
		return badBody(err)
	}

	cmd, err := commands.NewCreateRequestCommand(kernel.ID(body.SiteID), body.WasteType, body.QuantityKg)
	if err != nil {
		return err
	}

	r, err := s.h.CreateRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toRequest(r))
}

func (s *Server) ListPendingRequests(ctx echo.Context) error {
	views, err := s.h.ListRequestsByStatus.Handle(ctx.Request().Context(), queries.NewListPendingRequestsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRequestViews(views))
}

func (s *Server) ListAcceptedRequests(ctx echo.Context) error {
	views, err := s.h.ListRequestsByStatus.Handle(ctx.Request().Context(), queries.NewListAcceptedRequestsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRequestViews(views))
}

func (s *Server) ListRequestsBySite(ctx echo.Context, id int64) error {
	query, err := queries.NewListRequestsBySiteQuery(kernel.ID(id))
	if err != nil {
		return err
	}

	views, err := s.h.ListRequestsBySite.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRequestViews(views))
}

// AcceptRequest handles PUT /solicitacoes/:id/aceitar.
func (s *Server) AcceptRequest(ctx echo.Context, id int64) error {
	cmd, err := commands.NewAcceptRequestCommand(kernel.ID(id))
	if err != nil {
		return err
	}

	r, err := s.h.AcceptRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRequest(r))
}

// CompleteRequest handles POST /solicitacoes/:id/concluir.
func (s *Server) CompleteRequest(ctx echo.Context, id int64) error {
	var body CompleteRequest
	if err := ctx.Bind(&body); err != nil {
		return badBody(err)
	}

	cmd, err := commands.NewCompleteRequestCommand(kernel.ID(id), kernel.ID(body.CollectorID))
	if err != nil {
		return err
	}

	result, err := s.h.CompleteRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx.Request().Context(), "certificate issued",
		"request_id", result.Request.ID().Int64(),
		"collector_id", result.Certificate.CollectorID().Int64(),
		"certificate_id", result.Certificate.ID().Int64(),
	)

	return ctx.JSON(http.StatusOK, Completion{
		Request:     toRequest(result.Request),
		Certificate: toCertificate(result.Certificate),
	})
}

func (s *Server) ListCertificatesBySite(ctx echo.Context, id int64) error {
	query, err := queries.NewListCertificatesBySiteQuery(kernel.ID(id))
	if err != nil {
		return err
	}

	views, err := s.h.ListCertificatesBySite.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]SiteCertificate, len(views))
	for i, v := range views {
		response[i] = SiteCertificate{
			Certificate: Certificate{
				ID:          v.ID.Int64(),
				RequestID:   v.RequestID.Int64(),
				CollectorID: v.CollectorID.Int64(),
				IssuedAt:    v.IssuedAt,
				Token:       v.Token,
			},
			CollectorName: v.CollectorName,
			WasteType:     v.WasteType,
			QuantityKg:    v.QuantityKg,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetOverviewReport(ctx echo.Context) error {
	overview, err := s.h.OverviewReport.Handle(ctx.Request().Context(), queries.NewGetOverviewReportQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Overview{
		TotalSites:                overview.TotalSites,
		TotalCollectors:           overview.TotalCollectors,
		TotalRequests:             overview.TotalRequests,
		TotalCompletedCollections: overview.TotalCompletedCollections,
		TotalKgCollected:          overview.TotalKgCollected,
	})
}

// GetWasteTypeReport handles GET /relatorios/residuos.
func (s *Server) GetWasteTypeReport(ctx echo.Context, params GetWasteTypeReportParams) error {
	query, err := queries.NewGetWasteTypeReportQuery(deref(params.DataInicio), deref(params.DataFim))
	if err != nil {
		return err
	}

	report, err := s.h.WasteTypeReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]WasteTypeTotals, len(report))
	for i, row := range report {
		response[i] = WasteTypeTotals{
			WasteType:        row.WasteType,
			TotalCollections: row.TotalCollections,
			TotalKg:          row.TotalKg,
			FirstIssuedAt:    row.FirstIssuedAt,
			LastIssuedAt:     row.LastIssuedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) GetSiteReport(ctx echo.Context) error {
	report, err := s.h.SiteReport.Handle(ctx.Request().Context(), queries.NewGetSiteReportQuery())
	if err != nil {
		return err
	}

	response := make([]SiteTotals, len(report))
	for i, row := range report {
		response[i] = SiteTotals{
			SiteID:                    row.SiteID.Int64(),
			SiteName:                  row.SiteName,
			TotalCompletedCollections: row.TotalCompletedCollections,
			TotalKg:                   row.TotalKg,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) ListSites(ctx echo.Context) error {
	sites, err := s.h.ListSites.Handle(ctx.Request().Context(), queries.NewListSitesQuery())
	if err != nil {
		return err
	}

	response := make([]Site, len(sites))
	for i, v := range sites {
		response[i] = Site{ID: v.ID.Int64(), NewSite: newSiteFromEntry(v.RegistryEntry)}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterSite handles POST /industrias.
func (s *Server) RegisterSite(ctx echo.Context) error {
	var body NewSite
	if err := ctx.Bind(&body); err != nil {
		return badBody(err)
	}

	cmd, err := commands.NewRegisterSiteCommand(body.registration())
	if err != nil {
		return err
	}

	stored, err := s.h.RegisterSite.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toSite(stored))
}

func (s *Server) ListCollectors(ctx echo.Context) error {
	collectors, err := s.h.ListCollectors.Handle(ctx.Request().Context(), queries.NewListCollectorsQuery())
	if err != nil {
		return err
	}

	response := make([]Collector, len(collectors))
	for i, v := range collectors {
		response[i] = Collector{
			ID:           v.ID.Int64(),
			NewCollector: NewCollector{NewSite: newSiteFromEntry(v.RegistryEntry), License: v.License},
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterCollector handles POST /coletoras.
func (s *Server) RegisterCollector(ctx echo.Context) error {
	var body NewCollector
	if err := ctx.Bind(&body); err != nil {
		return badBody(err)
	}

	cmd, err := commands.NewRegisterCollectorCommand(body.registration(), body.License)
	if err != nil {
		return err
	}

	stored, err := s.h.RegisterCollector.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toCollector(stored))
}

func badBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
