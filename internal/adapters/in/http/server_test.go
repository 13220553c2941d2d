package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"wastecollection/cmd"
	httpin "wastecollection/internal/adapters/in/http"
	"wastecollection/internal/adapters/out/postgres/dbtest"
	"wastecollection/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type api struct {
	e  *echo.Echo
	db *gorm.DB
}

func newAPI(t *testing.T) api {
	t.Helper()
	db := dbtest.NewSQLite(t)
	app := cmd.NewCompositionRoot(cmd.Config{DBDriver: cmd.DriverSQLite, Jurisdiction: kernel.Jurisdiction}, db, nil)

	e, err := httpin.NewEcho(httpin.NewServer(app.HTTPHandlers(), nil), nil)
	require.NoError(t, err)

	return api{e: e, db: db}
}

func (a api) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, contains string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[httpin.Error](t, rec)
	assert.Equal(t, status, body.Code)
	assert.Contains(t, body.Message, contains)
}

func TestHealth(t *testing.T) {
	rec := newAPI(t).do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLifecycle(t *testing.T) {
	a := newAPI(t)
	siteID := dbtest.SeedSite(t, a.db, "Metalúrgica Goiás")
	collectorID := dbtest.SeedCollector(t, a.db, "Coleta Verde")

	rec := a.do(t, http.MethodPost, "/solicitacoes",
		fmt.Sprintf(`{"industriaId":%d,"residuo":"Óleo Usado","quantidade_kg":120.5}`, siteID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[httpin.Request](t, rec)
	assert.Positive(t, created.ID)
	assert.Equal(t, siteID.Int64(), created.SiteID)
	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, "Óleo Usado", created.WasteType)
	assert.InDelta(t, 120.5, created.QuantityKg, 1e-9)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

	pending := decode[[]httpin.Request](t, a.do(t, http.MethodGet, "/solicitacoes/pendentes", ""))
	require.Len(t, pending, 1)
	assert.Equal(t, "Metalúrgica Goiás", pending[0].SiteName)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/solicitacoes/%d/concluir", created.ID),
		fmt.Sprintf(`{"coletoraId":%d}`, collectorID))
	requireError(t, rec, http.StatusBadRequest, `only "Accepted" request can be completed`)

	rec = a.do(t, http.MethodPut, fmt.Sprintf("/solicitacoes/%d/aceitar", created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Accepted", decode[httpin.Request](t, rec).Status)

	accepted := decode[[]httpin.Request](t, a.do(t, http.MethodGet, "/solicitacoes/aceitas", ""))
	require.Len(t, accepted, 1)
	assert.Empty(t, decode[[]httpin.Request](t, a.do(t, http.MethodGet, "/solicitacoes/pendentes", "")))

	rec = a.do(t, http.MethodPut, fmt.Sprintf("/solicitacoes/%d/aceitar", created.ID), "")
	requireError(t, rec, http.StatusBadRequest, `cannot accept request with status "Accepted"`)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/solicitacoes/%d/concluir", created.ID), `{"coletoraId":9999}`)
	requireError(t, rec, http.StatusNotFound, "9999")

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/solicitacoes/%d/concluir", created.ID),
		fmt.Sprintf(`{"coletoraId":%d}`, collectorID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completion := decode[httpin.Completion](t, rec)
	assert.Equal(t, "Completed", completion.Request.Status)
	assert.Equal(t, created.ID, completion.Certificate.RequestID)
	assert.Equal(t, collectorID.Int64(), completion.Certificate.CollectorID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), completion.Certificate.Token)

	rec = a.do(t, http.MethodPost, fmt.Sprintf("/solicitacoes/%d/concluir", created.ID),
		fmt.Sprintf(`{"coletoraId":%d}`, collectorID))
	requireError(t, rec, http.StatusBadRequest, `status "Completed"`)

	bySite := decode[[]httpin.Request](t, a.do(t, http.MethodGet, fmt.Sprintf("/solicitacoes/industria/%d", siteID), ""))
	require.Len(t, bySite, 1)
	assert.Equal(t, "Completed", bySite[0].Status)

	certificates := decode[[]httpin.SiteCertificate](t, a.do(t, http.MethodGet, fmt.Sprintf("/certificados/industria/%d", siteID), ""))
	require.Len(t, certificates, 1)
	assert.Equal(t, completion.Certificate.Token, certificates[0].Token)
	assert.Equal(t, "Coleta Verde", certificates[0].CollectorName)
	assert.Equal(t, "Óleo Usado", certificates[0].WasteType)
}

func TestRequestValidation(t *testing.T) {
	a := newAPI(t)
	siteID := dbtest.SeedSite(t, a.db, "Química Industrial")

	testCases := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		contains string
	}{
		{"missing site", http.MethodPost, "/solicitacoes", `{"residuo":"Lodo","quantidade_kg":10}`, http.StatusBadRequest, "industriaId"},
		{"wrong type", http.MethodPost, "/solicitacoes", `{"industriaId":"x","residuo":"Lodo","quantidade_kg":10}`, http.StatusBadRequest, "industriaId"},
		{"malformed json", http.MethodPost, "/solicitacoes", `{`, http.StatusBadRequest, "request body"},
		{"zero quantity", http.MethodPost, "/solicitacoes", fmt.Sprintf(`{"industriaId":%d,"residuo":"Lodo","quantidade_kg":0}`, siteID), http.StatusBadRequest, "quantidade_kg"},
		{"blank waste type", http.MethodPost, "/solicitacoes", fmt.Sprintf(`{"industriaId":%d,"residuo":"  ","quantidade_kg":5}`, siteID), http.StatusBadRequest, "residuo"},
		{"unknown site", http.MethodPost, "/solicitacoes", `{"industriaId":4242,"residuo":"Lodo","quantidade_kg":10}`, http.StatusBadRequest, "industriaId"},
		{"non numeric id", http.MethodPut, "/solicitacoes/abc/aceitar", "", http.StatusBadRequest, `"id"`},
		{"zero id", http.MethodPut, "/solicitacoes/0/aceitar", "", http.StatusBadRequest, "id"},
		{"unknown request", http.MethodPut, "/solicitacoes/999/aceitar", "", http.StatusNotFound, "999"},
		{"missing collector", http.MethodPost, "/solicitacoes/1/concluir", `{}`, http.StatusBadRequest, "coletoraId"},
		{"non numeric site", http.MethodGet, "/solicitacoes/industria/abc", "", http.StatusBadRequest, `"id"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireError(t, a.do(t, tc.method, tc.path, tc.body), tc.status, tc.contains)
		})
	}

	t.Run("nothing was stored", func(t *testing.T) {
		assert.Empty(t, decode[[]httpin.Request](t, a.do(t, http.MethodGet, "/solicitacoes/pendentes", "")))
	})

	t.Run("unknown site lists nothing", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/solicitacoes/industria/777", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

const siteBody = `{
	"nome": "Indústria Têxtil Goiana",
	"cnpj": "56.789.012/0001-34",
	"cep": "74400-000",
	"endereco": "Av. Contorno, 800",
	"bairro": "Jardim Goiás",
	"cidade": "Goiânia",
	"uf": "%s"
}`

func TestRegistry(t *testing.T) {
	a := newAPI(t)

	rec := a.do(t, http.MethodPost, "/industrias", fmt.Sprintf(siteBody, "go"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	site := decode[httpin.Site](t, rec)
	assert.Positive(t, site.ID)
	assert.Equal(t, "GO", site.State)

	requireError(t, a.do(t, http.MethodPost, "/industrias", fmt.Sprintf(siteBody, "GO")), http.StatusConflict, "56.789.012/0001-34")
	requireError(t, a.do(t, http.MethodPost, "/industrias", fmt.Sprintf(siteBody, "SP")), http.StatusBadRequest, "uf")

	sites := decode[[]httpin.Site](t, a.do(t, http.MethodGet, "/industrias", ""))
	require.Len(t, sites, 1)
	assert.Equal(t, "Indústria Têxtil Goiana", sites[0].Name)

	collectorBody := `{"nome":"Eco Coleta","cnpj":"76.543.210/0001-32","licenca_goias":"LIC-GO-2024-003",
		"cep":"75150-000","endereco":"Av. Goiás, 750","bairro":"Industrial","cidade":"Aparecida de Goiânia","uf":"GO"}`
	rec = a.do(t, http.MethodPost, "/coletoras", collectorBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "LIC-GO-2024-003", decode[httpin.Collector](t, rec).License)

	requireError(t, a.do(t, http.MethodPost, "/coletoras",
		`{"nome":"Sem Licença","cnpj":"1","cep":"1","endereco":"1","bairro":"1","cidade":"1","uf":"GO","licenca_goias":""}`),
		http.StatusBadRequest, "licenca_goias")

	collectors := decode[[]httpin.Collector](t, a.do(t, http.MethodGet, "/coletoras/goias", ""))
	require.Len(t, collectors, 1)
	assert.Equal(t, "Eco Coleta", collectors[0].Name)
}

func TestReports(t *testing.T) {
	a := newAPI(t)
	siteA := dbtest.SeedSite(t, a.db, "Site A")
	siteB := dbtest.SeedSite(t, a.db, "Site B")
	collector := dbtest.SeedCollector(t, a.db, "Collector")
	jan10 := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	jan20 := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	dbtest.SeedCompleted(t, a.db, siteA, collector, "Lodo", 100, jan10)
	dbtest.SeedCompleted(t, a.db, siteB, collector, "Lodo", 50, jan20)
	dbtest.SeedCompleted(t, a.db, siteB, collector, "Cinzas", 130, jan10)

	t.Run("overview", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/relatorios/visao-geral", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalIndustrias":2,"totalColetoras":1,"totalSolicitacoes":3,
			"totalColetasConcluidas":3,"totalKgColetado":280}`, rec.Body.String())
	})

	t.Run("waste types within one day", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/relatorios/residuos?dataInicio=2024-01-10&dataFim=2024-01-10", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		totals := decode[[]httpin.WasteTypeTotals](t, rec)
		require.Len(t, totals, 2)
		assert.Equal(t, "Cinzas", totals[0].WasteType)
		assert.Equal(t, "Lodo", totals[1].WasteType)
		assert.InDelta(t, 100, totals[1].TotalKg, 1e-9)
	})

	t.Run("waste types unbounded", func(t *testing.T) {
		totals := decode[[]httpin.WasteTypeTotals](t, a.do(t, http.MethodGet, "/relatorios/residuos", ""))

		require.Len(t, totals, 2)
		assert.Equal(t, "Lodo", totals[0].WasteType)
		assert.Equal(t, int64(2), totals[0].TotalCollections)
		assert.True(t, totals[0].FirstIssuedAt.Equal(jan10))
		assert.True(t, totals[0].LastIssuedAt.Equal(jan20))
	})

	t.Run("malformed day", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/relatorios/residuos?dataInicio=10-01-2024&dataFim=2024-13-01", "")

		requireError(t, rec, http.StatusBadRequest, "dataInicio")
		assert.Contains(t, decode[httpin.Error](t, rec).Message, "dataFim")
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		rec := a.do(t, http.MethodGet, "/relatorios/residuos?dataInicio=2024-02-01&dataFim=2024-01-01", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("sites", func(t *testing.T) {
		totals := decode[[]httpin.SiteTotals](t, a.do(t, http.MethodGet, "/relatorios/industria", ""))

		require.Len(t, totals, 2)
		assert.Equal(t, siteB.Int64(), totals[0].SiteID)
		assert.InDelta(t, 180, totals[0].TotalKg, 1e-9)
		assert.Equal(t, "Site A", totals[1].SiteName)
	})
}

func TestUnknownRoute(t *testing.T) {
	rec := newAPI(t).do(t, http.MethodGet, "/nao-existe", "")

	requireError(t, rec, http.StatusNotFound, "Not Found")
}

func TestStorageFailureIsGeneric(t *testing.T) {
	a := newAPI(t)
	sqlDB, err := a.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := a.do(t, http.MethodGet, "/relatorios/visao-geral", "")

	requireError(t, rec, http.StatusInternalServerError, "Internal Server Error")
	assert.NotContains(t, rec.Body.String(), "closed")
}

func TestSwaggerDocument(t *testing.T) {
	rec := newAPI(t).do(t, http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Waste Collection Tracking")
	assert.Contains(t, rec.Body.String(), "/solicitacoes/{id}/concluir")
}
