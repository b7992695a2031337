package export

import (
	"encoding/csv"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehub/internal/models"
)

var exportedAt = time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

func exportRows() []models.UnitOccupancy {
	return []models.UnitOccupancy{
		{
			UnitID: 1, UnitName: "A-1", WarehouseName: "North Depot",
			Floor: "1", SizeSqft: 100, MonthlyRate: "100.00",
			Status: models.UnitStatusOccupied,
			Bookings: []models.BookingDetail{
				{
					BookingID: 11, CustomerName: "Acme Ltd",
					StartDate: "2026-01-01", EndDate: "2026-06-30",
					TotalAmount: "100", Status: models.BookingStatusActive,
					Payments: []models.PaymentDetail{
						{PaymentID: 21, Amount: "100", Method: "card", Status: models.PaymentStatusPaid, PaymentDate: "2026-01-05"},
					},
				},
			},
		},
		{
			UnitID: 2, UnitName: "A-2", WarehouseName: "North Depot",
			Floor: "2", SizeSqft: 50, MonthlyRate: "50.00",
			Status: models.UnitStatusOccupied,
			Bookings: []models.BookingDetail{
				{BookingID: 12, CustomerName: "Borealis GmbH", TotalAmount: "50", Status: models.BookingStatusActive},
			},
		},
		{
			UnitID: 3, UnitName: "B-1", WarehouseName: "South Depot",
			Floor: "1", SizeSqft: 200, MonthlyRate: "80.00",
			Status: models.UnitStatusAvailable,
		},
	}
}

func TestWorkbookHasAllSixSheets(t *testing.T) {
	f, err := Workbook(exportRows(), exportedAt)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		SheetSummary, SheetUnitDetails, SheetBookingDetails,
		SheetPaymentDetails, SheetWarehouseAnalysis, SheetCustomerAnalysis,
	}, f.GetSheetList())
}

func TestWorkbookSummarySheet(t *testing.T) {
	f, err := Workbook(exportRows(), exportedAt)
	require.NoError(t, err)
	defer f.Close()

	metric, err := f.GetCellValue(SheetSummary, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Occupied Units", metric)
	occupied, err := f.GetCellValue(SheetSummary, "B6")
	require.NoError(t, err)
	assert.Equal(t, "2", occupied)
}

func TestWorkbookWarehouseAnalysisSheet(t *testing.T) {
	f, err := Workbook(exportRows(), exportedAt)
	require.NoError(t, err)
	defer f.Close()

	// North Depot leads with the higher occupancy rate.
	name, err := f.GetCellValue(SheetWarehouseAnalysis, "A2")
	require.NoError(t, err)
	assert.Equal(t, "North Depot", name)
	revenue, err := f.GetCellValue(SheetWarehouseAnalysis, "F2")
	require.NoError(t, err)
	assert.Equal(t, "150", revenue)
	rate, err := f.GetCellValue(SheetWarehouseAnalysis, "D2")
	require.NoError(t, err)
	assert.Equal(t, "100.0%", rate)
}

func TestWorkbookUnitHeader(t *testing.T) {
	f, err := Workbook(nil, exportedAt)
	require.NoError(t, err)
	defer f.Close()

	head, err := f.GetCellValue(SheetUnitDetails, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", head)
}

func TestHTMLContainsAllSections(t *testing.T) {
	doc, err := HTML(exportRows(), exportedAt)
	require.NoError(t, err)

	for _, section := range []string{
		"Occupancy Summary", "Unit Details", "Booking Details",
		"Payment Details", "Warehouse Analysis", "Customer Analysis",
	} {
		assert.Contains(t, doc, "<h2>"+section+"</h2>")
	}
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "North Depot")
	assert.Contains(t, doc, "Acme Ltd")
	assert.Contains(t, doc, "$150.00")
	assert.Contains(t, doc, "#22C55E") // occupied badge color
	assert.Contains(t, doc, "05 Mar 2026, 10:00 AM")
}

func TestHTMLEscapesRowValues(t *testing.T) {
	rows := exportRows()
	rows[0].WarehouseName = `<script>alert("x")</script>`
	doc, err := HTML(rows, exportedAt)
	require.NoError(t, err)
	assert.NotContains(t, doc, "<script>alert")
}

func TestPDFOutput(t *testing.T) {
	out, err := PDF(exportRows(), exportedAt)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestCSVWarehouseAnalysis(t *testing.T) {
	out, err := CSV(exportRows())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Warehouse", records[0][1])
	assert.Equal(t, "North Depot", records[1][1])
	assert.Equal(t, "150.00", records[1][6])
	assert.Equal(t, "South Depot", records[2][1])
	assert.Equal(t, "0.0%", records[2][4])
}
