package commands_test

import (
	"strings"
	"testing"
	"time"

	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func storedRequest(t *testing.T, id kernel.ID, status request.Status) *request.Request {
	t.Helper()
	r, err := request.RestoreRequest(id, 3, "Óleo usado", 120.5, status, createdAt)
	require.NoError(t, err)
	return r
}

func issuedCertificate(t *testing.T, requestID, collectorID kernel.ID) *certificate.Certificate {
	t.Helper()
	c, err := certificate.NewCertificate(requestID, collectorID, createdAt.Add(time.Hour), strings.Repeat("ab", 32))
	require.NoError(t, err)
	return c
}
