package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"warehub/internal/format"
	"warehub/internal/models"
	"warehub/internal/report"
)

// PDF renders the occupancy report: summary box, warehouse analysis, and the
// per-unit table.
func PDF(rows []models.UnitOccupancy, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "WareHub - Occupancy Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", format.DateTime(generatedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary Box
	s := report.BuildSummary(rows)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Occupancy Summary", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Warehouses: %d", s.TotalWarehouses), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Units: %d (%d occupied)", s.TotalUnits, s.OccupiedUnits), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Occupancy: %s", format.Percent(s.OccupancyRate)), "1", 1, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Revenue: %s", format.Currency(s.TotalRevenue)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Collected: %s", format.Currency(s.CollectedAmount)), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Pending: %s", format.Currency(s.PendingAmount)), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Warehouse Analysis
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Warehouse Analysis", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(55, 7, "Warehouse", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Units", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Occupied", "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, "Occupancy", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Revenue", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Rev/Sqft", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, w := range report.BuildWarehouseAnalysis(rows) {
		pdf.CellFormat(55, 6, format.Truncate(w.WarehouseName, 26), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%d", w.TotalUnits), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", w.OccupiedUnits), "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 6, format.Percent(w.OccupancyRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, format.Currency(w.TotalRevenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, format.Currency(w.RevenuePerSqft), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)

	// Unit Details
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Unit Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(45, 7, "Warehouse", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Unit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Floor", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Sqft", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(27, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Bookings", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, u := range report.BuildUnitDetails(rows) {
		pdf.CellFormat(45, 6, format.Truncate(u.WarehouseName, 22), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, u.UnitName, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, u.Floor, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.0f", u.SizeSqft), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, format.Currency(u.MonthlyRate), "1", 0, "R", false, 0, "")
		r, g, b := format.StatusRGB(u.Status)
		pdf.SetFillColor(r, g, b)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(27, 6, u.Status, "1", 0, "C", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", u.Bookings), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
