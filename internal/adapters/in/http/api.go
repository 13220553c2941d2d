package http

import (
	"wastecollection/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists one method per operation of openapi.yaml.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (POST /solicitacoes)
	CreateRequest(ctx echo.Context) error
	// (GET /solicitacoes/pendentes)
	ListPendingRequests(ctx echo.Context) error
	// (GET /solicitacoes/aceitas)
	ListAcceptedRequests(ctx echo.Context) error
	// (GET /solicitacoes/industria/{id})
	ListRequestsBySite(ctx echo.Context, id int64) error
	// (PUT /solicitacoes/{id}/aceitar)
	AcceptRequest(ctx echo.Context, id int64) error
	// (POST /solicitacoes/{id}/concluir)
	CompleteRequest(ctx echo.Context, id int64) error
	// (GET /certificados/industria/{id})
	ListCertificatesBySite(ctx echo.Context, id int64) error
	// (GET /relatorios/visao-geral)
	GetOverviewReport(ctx echo.Context) error
	// (GET /relatorios/residuos)
	GetWasteTypeReport(ctx echo.Context, params GetWasteTypeReportParams) error
	// (GET /relatorios/industria)
	GetSiteReport(ctx echo.Context) error
	// (GET /industrias)
	ListSites(ctx echo.Context) error
	// (POST /industrias)
	RegisterSite(ctx echo.Context) error
	// (GET /coletoras/goias)
	ListCollectors(ctx echo.Context) error
	// (POST /coletoras)
	RegisterCollector(ctx echo.Context) error
}

// GetWasteTypeReportParams are the optional day bounds of the waste type
// report. They stay strings here; the query parses them so that a malformed
// value is reported with its field name.
type GetWasteTypeReportParams struct {
	DataInicio *string
	DataFim    *string
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context, paramName string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) CreateRequest(ctx echo.Context) error {
	return w.Handler.CreateRequest(ctx)
}

func (w *ServerInterfaceWrapper) ListPendingRequests(ctx echo.Context) error {
	return w.Handler.ListPendingRequests(ctx)
}

func (w *ServerInterfaceWrapper) ListAcceptedRequests(ctx echo.Context) error {
	return w.Handler.ListAcceptedRequests(ctx)
}

func (w *ServerInterfaceWrapper) ListRequestsBySite(ctx echo.Context) error {
	id, err := bindID(ctx, "industriaId")
	if err != nil {
		return err
	}
	return w.Handler.ListRequestsBySite(ctx, id)
}

func (w *ServerInterfaceWrapper) AcceptRequest(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AcceptRequest(ctx, id)
}

func (w *ServerInterfaceWrapper) CompleteRequest(ctx echo.Context) error {
	id, err := bindID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.CompleteRequest(ctx, id)
}

func (w *ServerInterfaceWrapper) ListCertificatesBySite(ctx echo.Context) error {
	id, err := bindID(ctx, "industriaId")
	if err != nil {
		return err
	}
	return w.Handler.ListCertificatesBySite(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOverviewReport(ctx echo.Context) error {
	return w.Handler.GetOverviewReport(ctx)
}

func (w *ServerInterfaceWrapper) GetWasteTypeReport(ctx echo.Context) error {
	var params GetWasteTypeReportParams

	if err := runtime.BindQueryParameter("form", true, false, "dataInicio", ctx.QueryParams(), &params.DataInicio); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dataInicio", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "dataFim", ctx.QueryParams(), &params.DataFim); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dataFim", err)
	}

	return w.Handler.GetWasteTypeReport(ctx, params)
}

func (w *ServerInterfaceWrapper) GetSiteReport(ctx echo.Context) error {
	return w.Handler.GetSiteReport(ctx)
}

func (w *ServerInterfaceWrapper) ListSites(ctx echo.Context) error {
	return w.Handler.ListSites(ctx)
}

func (w *ServerInterfaceWrapper) RegisterSite(ctx echo.Context) error {
	return w.Handler.RegisterSite(ctx)
}

func (w *ServerInterfaceWrapper) ListCollectors(ctx echo.Context) error {
	return w.Handler.ListCollectors(ctx)
}

func (w *ServerInterfaceWrapper) RegisterCollector(ctx echo.Context) error {
	return w.Handler.RegisterCollector(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router. Static segments such as
// /solicitacoes/pendentes take precedence over :id routes in echo.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.GetHealth)

	router.POST("/solicitacoes", w.CreateRequest)
	router.GET("/solicitacoes/pendentes", w.ListPendingRequests)
	router.GET("/solicitacoes/aceitas", w.ListAcceptedRequests)
	router.GET("/solicitacoes/industria/:id", w.ListRequestsBySite)
	router.PUT("/solicitacoes/:id/aceitar", w.AcceptRequest)
	router.POST("/solicitacoes/:id/concluir", w.CompleteRequest)

	router.GET("/certificados/industria/:id", w.ListCertificatesBySite)

	router.GET("/relatorios/visao-geral", w.GetOverviewReport)
	router.GET("/relatorios/residuos", w.GetWasteTypeReport)
	router.GET("/relatorios/industria", w.GetSiteReport)

	router.GET("/industrias", w.ListSites)
	router.POST("/industrias", w.RegisterSite)
	router.POST("/coletoras", w.RegisterCollector)
	router.GET("/coletoras/goias", w.ListCollectors)
}
