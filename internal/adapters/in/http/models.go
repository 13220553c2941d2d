package http

import (
	"time"

	"wastecollection/internal/core/application/usecases/commands"
	"wastecollection/internal/core/application/usecases/queries"
	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/core/domain/model/site"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewRequest struct {
	SiteID     int64   `json:"industriaId"`
	WasteType  string  `json:"residuo"`
	QuantityKg float64 `json:"quantidade_kg"`
}

type Request struct {
	ID         int64     `json:"id"`
	SiteID     int64     `json:"industriaId"`
	SiteName   string    `json:"industriaNome,omitempty"`
	CreatedAt  time.Time `json:"data"`
	Status     string    `json:"status"`
	WasteType  string    `json:"residuo"`
	QuantityKg float64   `json:"quantidade_kg"`
}

type CompleteRequest struct {
	CollectorID int64 `json:"coletoraId"`
}

type Certificate struct {
	ID          int64     `json:"id"`
	RequestID   int64     `json:"solicitacaoId"`
	CollectorID int64     `json:"coletoraId"`
	IssuedAt    time.Time `json:"dataEmissao"`
	Token       string    `json:"hashVerificacao"`
}

type SiteCertificate struct {
	Certificate
	CollectorName string  `json:"coletoraNome"`
	WasteType     string  `json:"residuo"`
	QuantityKg    float64 `json:"quantidade_kg"`
}

type Completion struct {
	Request     Request     `json:"solicitacao"`
	Certificate Certificate `json:"certificado"`
}

type Overview struct {
	TotalSites                int64   `json:"totalIndustrias"`
	TotalCollectors           int64   `json:"totalColetoras"`
	TotalRequests             int64   `json:"totalSolicitacoes"`
	TotalCompletedCollections int64   `json:"totalColetasConcluidas"`
	TotalKgCollected          float64 `json:"totalKgColetado"`
}

type WasteTypeTotals struct {
	WasteType        string    `json:"tipoResiduo"`
	TotalCollections int64     `json:"totalColetas"`
	TotalKg          float64   `json:"totalKg"`
	FirstIssuedAt    time.Time `json:"primeiraEmissao"`
	LastIssuedAt     time.Time `json:"ultimaEmissao"`
}

type SiteTotals struct {
	SiteID                    int64   `json:"industriaId"`
	SiteName                  string  `json:"industriaNome"`
	TotalCompletedCollections int64   `json:"totalColetasConcluidas"`
	TotalKg                   float64 `json:"totalKg"`
}

type NewSite struct {
	Name       string `json:"nome"`
	TaxID      string `json:"cnpj"`
	PostalCode string `json:"cep"`
	Street     string `json:"endereco"`
	District   string `json:"bairro"`
	City       string `json:"cidade"`
	State      string `json:"uf"`
}

type Site struct {
	ID int64 `json:"id"`
	NewSite
}

type NewCollector struct {
	NewSite
	License string `json:"licenca_goias"`
}

type Collector struct {
	ID int64 `json:"id"`
	NewCollector
}

func (s NewSite) registration() commands.RegistrationData {
	return commands.RegistrationData{
		Name:       s.Name,
		TaxID:      s.TaxID,
		PostalCode: s.PostalCode,
		Street:     s.Street,
		District:   s.District,
		City:       s.City,
		State:      s.State,
	}
}

func newSiteFromAddress(name, taxID string, a kernel.Address) NewSite {
	return NewSite{
		Name:       name,
		TaxID:      taxID,
		PostalCode: a.PostalCode(),
		Street:     a.Street(),
		District:   a.District(),
		City:       a.City(),
		State:      a.State(),
	}
}

func newSiteFromEntry(e queries.RegistryEntry) NewSite {
	return NewSite{
		Name:       e.Name,
		TaxID:      e.TaxID,
		PostalCode: e.PostalCode,
		Street:     e.Street,
		District:   e.District,
		City:       e.City,
		State:      e.State,
	}
}

func toRequest(r *request.Request) Request {
	return Request{
		ID:         r.ID().Int64(),
		SiteID:     r.SiteID().Int64(),
		CreatedAt:  r.CreatedAt(),
		Status:     r.Status().String(),
		WasteType:  r.WasteType(),
		QuantityKg: r.QuantityKg(),
	}
}

func toRequestViews(views []queries.RequestView) []Request {
	out := make([]Request, len(views))
	for i, v := range views {
		out[i] = Request{
			ID:         v.ID.Int64(),
			SiteID:     v.SiteID.Int64(),
			SiteName:   v.SiteName,
			CreatedAt:  v.CreatedAt,
			Status:     v.Status.String(),
			WasteType:  v.WasteType,
			QuantityKg: v.QuantityKg,
		}
	}
	return out
}

func toCertificate(c *certificate.Certificate) Certificate {
	return Certificate{
		ID:          c.ID().Int64(),
		RequestID:   c.RequestID().Int64(),
		CollectorID: c.CollectorID().Int64(),
		IssuedAt:    c.IssuedAt(),
		Token:       c.Token(),
	}
}

func toSite(s *site.Site) Site {
	return Site{ID: s.ID().Int64(), NewSite: newSiteFromAddress(s.Name(), s.TaxID(), s.Address())}
}

func toCollector(c *collector.Collector) Collector {
	return Collector{
		ID: c.ID().Int64(),
		NewCollector: NewCollector{
			NewSite: newSiteFromAddress(c.Name(), c.TaxID(), c.Address()),
			License: c.License(),
		},
	}
}
