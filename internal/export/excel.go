// Package export turns the occupancy report rows into shareable artifacts:
// an Excel workbook, a standalone HTML document, a PDF, and a CSV. All
// adapters are pure functions of the report data.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"warehub/internal/format"
	"warehub/internal/models"
	"warehub/internal/report"
)

// Sheet names are a presentation contract shared with the HTML sections.
const (
	SheetSummary           = "Occupancy Summary"
	SheetUnitDetails       = "Unit Details"
	SheetBookingDetails    = "Booking Details"
	SheetPaymentDetails    = "Payment Details"
	SheetWarehouseAnalysis = "Warehouse Analysis"
	SheetCustomerAnalysis  = "Customer Analysis"
)

// Workbook builds the six-sheet occupancy workbook. The caller owns saving
// or streaming the returned file.
func Workbook(rows []models.UnitOccupancy, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}
	for _, name := range []string{
		SheetUnitDetails, SheetBookingDetails, SheetPaymentDetails,
		SheetWarehouseAnalysis, SheetCustomerAnalysis,
	} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
	}

	if err := writeSummarySheet(f, rows, generatedAt); err != nil {
		return nil, err
	}
	if err := writeUnitSheet(f, rows); err != nil {
		return nil, err
	}
	if err := writeBookingSheet(f, rows); err != nil {
		return nil, err
	}
	if err := writePaymentSheet(f, rows); err != nil {
		return nil, err
	}
	if err := writeWarehouseSheet(f, rows); err != nil {
		return nil, err
	}
	if err := writeCustomerSheet(f, rows); err != nil {
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummarySheet(f *excelize.File, rows []models.UnitOccupancy, generatedAt time.Time) error {
	s := report.BuildSummary(rows)
	lines := [][]interface{}{
		{"Occupancy Report", format.DateTime(generatedAt)},
		{},
		{"Metric", "Value"},
		{"Total Warehouses", s.TotalWarehouses},
		{"Total Units", s.TotalUnits},
		{"Occupied Units", s.OccupiedUnits},
		{"Available Units", s.AvailableUnits},
		{"Maintenance Units", s.MaintenanceUnits},
		{"Occupancy Rate", format.Percent(s.OccupancyRate)},
		{"Total Bookings", s.TotalBookings},
		{"Total Payments", s.TotalPayments},
		{"Total Revenue", format.Currency(s.TotalRevenue)},
		{"Collected Amount", format.Currency(s.CollectedAmount)},
		{"Pending Amount", format.Currency(s.PendingAmount)},
	}
	for i, line := range lines {
		if err := setRow(f, SheetSummary, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func writeUnitSheet(f *excelize.File, rows []models.UnitOccupancy) error {
	header := []interface{}{"Warehouse", "Unit", "Floor", "Size (sqft)", "Monthly Rate", "Status", "Bookings", "Revenue"}
	if err := setRow(f, SheetUnitDetails, 1, header); err != nil {
		return err
	}
	for i, u := range report.BuildUnitDetails(rows) {
		line := []interface{}{u.WarehouseName, u.UnitName, u.Floor, u.SizeSqft, u.MonthlyRate, u.Status, u.Bookings, u.Revenue}
		if err := setRow(f, SheetUnitDetails, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func writeBookingSheet(f *excelize.File, rows []models.UnitOccupancy) error {
	header := []interface{}{"Warehouse", "Unit", "Customer", "Start Date", "End Date", "Status", "Total Amount", "Paid Payments", "Pending Payments", "Amount Paid"}
	if err := setRow(f, SheetBookingDetails, 1, header); err != nil {
		return err
	}
	for i, b := range report.BuildBookingDetails(rows) {
		line := []interface{}{
			b.WarehouseName, b.UnitName, b.CustomerName,
			format.Date(b.StartDate), format.Date(b.EndDate), b.Status,
			b.TotalAmount, b.PaidCount, b.PendingCount, b.AmountPaid,
		}
		if err := setRow(f, SheetBookingDetails, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func writePaymentSheet(f *excelize.File, rows []models.UnitOccupancy) error {
	header := []interface{}{"Warehouse", "Unit", "Customer", "Booking ID", "Payment ID", "Amount", "Method", "Status", "Payment Date"}
	if err := setRow(f, SheetPaymentDetails, 1, header); err != nil {
		return err
	}
	for i, p := range report.BuildPaymentDetails(rows) {
		line := []interface{}{
			p.WarehouseName, p.UnitName, p.CustomerName, p.BookingID, p.PaymentID,
			p.Amount, p.Method, p.Status, format.Date(p.PaymentDate),
		}
		if err := setRow(f, SheetPaymentDetails, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func writeWarehouseSheet(f *excelize.File, rows []models.UnitOccupancy) error {
	header := []interface{}{"Warehouse", "Total Units", "Occupied Units", "Occupancy Rate", "Total Sqft", "Total Revenue", "Revenue / Sqft", "Floors In Use"}
	if err := setRow(f, SheetWarehouseAnalysis, 1, header); err != nil {
		return err
	}
	for i, w := range report.BuildWarehouseAnalysis(rows) {
		line := []interface{}{
			w.WarehouseName, w.TotalUnits, w.OccupiedUnits, format.Percent(w.OccupancyRate),
			w.TotalSqft, w.TotalRevenue, w.RevenuePerSqft, w.Floors,
		}
		if err := setRow(f, SheetWarehouseAnalysis, i+2, line); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomerSheet(f *excelize.File, rows []models.UnitOccupancy) error {
	header := []interface{}{"Customer", "Bookings", "Active Bookings", "Total Revenue", "Amount Paid", "Payment Methods", "Units"}
	if err := setRow(f, SheetCustomerAnalysis, 1, header); err != nil {
		return err
	}
	for i, c := range report.BuildCustomerAnalysis(rows) {
		line := []interface{}{
			c.CustomerName, c.Bookings, c.ActiveBookings, c.TotalRevenue,
			c.AmountPaid, c.PaymentMethods, c.Units,
		}
		if err := setRow(f, SheetCustomerAnalysis, i+2, line); err != nil {
			return err
		}
	}
	return nil
}
