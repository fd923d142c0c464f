package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/server"
)

const sampleYAML = `
invoice:
  id: INV-2025-001
  issue_date: 2025-04-25
seller:
  name: Seller SAS
  vat_id: FR11123456782
  address:
    country: FR
buyer:
  name: Buyer GmbH
  address:
    country: DE
payment:
  currency: EUR
taxes:
  - calculated: "19.00"
    basis: "100.00"
    category: S
    rate: "19"
totals:
  lines: "100.00"
  tax_basis: "100.00"
  tax: "19.00"
  grand: "119.00"
  due: "119.00"
lines:
  - id: 1
    product:
      name: Widget
    price:
      net: "25.00"
    quantity: "4"
    unit: H87
    tax:
      category: S
      rate: "19"
    total: "100.00"
`

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func post(srv *server.Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestProfilesEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Profiles []server.ProfileInfo `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Profiles, 5)
	assert.Equal(t, "MINIMUM", response.Profiles[0].Name)
	assert.Contains(t, response.Profiles[0].URN, "minimum")
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/generate?profile=en16931", sampleYAML)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	xml := w.Body.String()
	assert.Contains(t, xml, "<rsm:CrossIndustryInvoice")
	assert.Contains(t, xml, "urn:cen.eu:en16931:2017")
	assert.Contains(t, xml, "INV-2025-001")
}

func TestGenerateEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/generate", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_UnknownProfile(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/generate?profile=ultra", sampleYAML)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateEndpoint_ExtendedRejected(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/generate?profile=extended", sampleYAML)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "EXTENDED")
}

func TestGenerateEndpoint_InconsistentTotals(t *testing.T) {
	srv := newTestServer()

	broken := strings.Replace(sampleYAML, `due: "119.00"`, `due: "100.00"`, 1)
	w := post(srv, "/api/v1/generate?profile=en16931", broken)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	require.NotEmpty(t, response.Issues)
	assert.Equal(t, "consistency", response.Issues[0].Kind)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/validate?profile=en16931", sampleYAML)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Equal(t, "EN16931", response.Profile)
	assert.Empty(t, response.Issues)
}

func TestValidateEndpoint_ProfileViolation(t *testing.T) {
	srv := newTestServer()

	// Line items are not allowed below BASIC, so MINIMUM must flag them.
	w := post(srv, "/api/v1/validate?profile=minimum", sampleYAML)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Valid)

	kinds := make(map[string]bool)
	for _, issue := range response.Issues {
		kinds[issue.Kind] = true
	}
	assert.True(t, kinds["profile"])
}

func TestValidateEndpoint_MalformedDocument(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/validate", "invoice: [unclosed")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemaEndpoint_Unconfigured(t *testing.T) {
	srv := newTestServer()

	w := post(srv, "/api/v1/validate/schema", "<x/>")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
