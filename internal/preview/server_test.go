package preview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehub/internal/models"
)

func okFetch(ctx context.Context) (*models.OccupancyReport, error) {
	return &models.OccupancyReport{
		ReportData: []models.UnitOccupancy{
			{UnitID: 1, UnitName: "A-1", WarehouseName: "North Depot", Status: models.UnitStatusOccupied},
		},
	}, nil
}

func failFetch(ctx context.Context) (*models.OccupancyReport, error) {
	return nil, errors.New("connection refused")
}

func TestPreviewServesHTMLReport(t *testing.T) {
	s := NewServer(okFetch, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "North Depot")
	assert.Contains(t, rec.Body.String(), "Warehouse Analysis")
}

func TestPreviewFetchFailure(t *testing.T) {
	s := NewServer(failFetch, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPreviewCSVDownload(t *testing.T) {
	s := NewServer(okFetch, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/occupancy.csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "North Depot")
}

func TestPreviewPDFDownload(t *testing.T) {
	s := NewServer(okFetch, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/occupancy.pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, len(rec.Body.Bytes()) > 0)
}

func TestPreviewHealth(t *testing.T) {
	s := NewServer(okFetch, 0)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
