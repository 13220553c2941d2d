// Package http exposes the collection tracking use cases over a JSON API.
//
// Routes and payloads are described by the embedded openapi.yaml, which
// also drives request validation and the Swagger UI at /swagger/. Field
// names on the wire keep the Portuguese names existing clients use
// (industriaId, residuo, quantidade_kg, ...).
package http
