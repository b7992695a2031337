package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehub/internal/models"
)

// sampleRows builds two warehouses: North Depot fully occupied (2/2 units,
// revenues 100 and 50), South Depot half occupied (1/2).
func sampleRows() []models.UnitOccupancy {
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
						{PaymentID: 22, Amount: "50", Method: "bank_transfer", Status: models.PaymentStatusPending, PaymentDate: "2026-02-05"},
					},
				},
			},
		},
		{
			UnitID: 2, UnitName: "A-2", WarehouseName: "North Depot",
			Floor: "2", SizeSqft: 50, MonthlyRate: "50.00",
			Status: models.UnitStatusOccupied,
			Bookings: []models.BookingDetail{
				{
					BookingID: 12, CustomerName: "Borealis GmbH",
					TotalAmount: "50", Status: models.BookingStatusCompleted,
					Payments: []models.PaymentDetail{
						{PaymentID: 23, Amount: "50", Method: "card", Status: models.PaymentStatusPaid, PaymentDate: "2026-01-20"},
					},
				},
			},
		},
		{
			UnitID: 3, UnitName: "B-1", WarehouseName: "South Depot",
			Floor: "1", SizeSqft: 200, MonthlyRate: "80.00",
			Status: models.UnitStatusOccupied,
			Bookings: []models.BookingDetail{
				{
					BookingID: 13, CustomerName: "Acme Ltd",
					TotalAmount: "80", Status: models.BookingStatusActive,
				},
			},
		},
		{
			UnitID: 4, UnitName: "B-2", WarehouseName: "South Depot",
			Floor: "1", SizeSqft: 200, MonthlyRate: "80.00",
			Status: models.UnitStatusAvailable,
		},
	}
}

func TestEmptyReportYieldsEmptyAggregates(t *testing.T) {
	var rows []models.UnitOccupancy
	assert.Empty(t, BuildUnitDetails(rows))
	assert.Empty(t, BuildBookingDetails(rows))
	assert.Empty(t, BuildPaymentDetails(rows))
	assert.Empty(t, BuildWarehouseAnalysis(rows))
	assert.Empty(t, BuildCustomerAnalysis(rows))

	s := BuildSummary(rows)
	assert.Equal(t, Summary{}, s)
	assert.Equal(t, 0.0, s.OccupancyRate)
}

func TestSummaryTotals(t *testing.T) {
	s := BuildSummary(sampleRows())
	assert.Equal(t, 2, s.TotalWarehouses)
	assert.Equal(t, 4, s.TotalUnits)
	assert.Equal(t, 3, s.OccupiedUnits)
	assert.Equal(t, 1, s.AvailableUnits)
	assert.Equal(t, 0, s.MaintenanceUnits)
	assert.Equal(t, 75.0, s.OccupancyRate)
	assert.Equal(t, 3, s.TotalBookings)
	assert.Equal(t, 3, s.TotalPayments)
	assert.Equal(t, 230.0, s.TotalRevenue)
	assert.Equal(t, 150.0, s.CollectedAmount)
	assert.Equal(t, 50.0, s.PendingAmount)
}

func TestUnitDetails(t *testing.T) {
	units := BuildUnitDetails(sampleRows())
	require.Len(t, units, 4)
	assert.Equal(t, "A-1", units[0].UnitName)
	assert.Equal(t, 100.0, units[0].MonthlyRate)
	assert.Equal(t, 1, units[0].Bookings)
	assert.Equal(t, 100.0, units[0].Revenue)
	assert.Equal(t, 0, units[3].Bookings)
	assert.Equal(t, 0.0, units[3].Revenue)
}

func TestBookingPaymentsSummary(t *testing.T) {
	bookings := BuildBookingDetails(sampleRows())
	require.Len(t, bookings, 3)

	// Booking 11 has one paid (100) and one pending (50) payment.
	b := bookings[0]
	assert.Equal(t, "Acme Ltd", b.CustomerName)
	assert.Equal(t, 1, b.PaidCount)
	assert.Equal(t, 1, b.PendingCount)
	assert.Equal(t, 150.0, b.PaymentsTotal)
	assert.Equal(t, 100.0, b.AmountPaid)
}

func TestPaymentDetailsFlattening(t *testing.T) {
	payments := BuildPaymentDetails(sampleRows())
	require.Len(t, payments, 3)
	assert.Equal(t, 21, payments[0].PaymentID)
	assert.Equal(t, 11, payments[0].BookingID)
	assert.Equal(t, "North Depot", payments[0].WarehouseName)
	assert.Equal(t, 50.0, payments[1].Amount)
	assert.Equal(t, models.PaymentStatusPending, payments[1].Status)
}

func TestWarehouseAnalysisAggregation(t *testing.T) {
	byWarehouse := BuildWarehouseAnalysis(sampleRows())
	require.Len(t, byWarehouse, 2)

	// North Depot: two occupied units with revenues 100 and 50.
	north := byWarehouse[0]
	assert.Equal(t, "North Depot", north.WarehouseName)
	assert.Equal(t, 2, north.TotalUnits)
	assert.Equal(t, 2, north.OccupiedUnits)
	assert.Equal(t, 150.0, north.TotalRevenue)
	assert.Equal(t, 100.0, north.OccupancyRate)
	assert.Equal(t, 1.0, north.RevenuePerSqft) // 150 / 150 sqft
	assert.Equal(t, 2, north.Floors)

	south := byWarehouse[1]
	assert.Equal(t, 50.0, south.OccupancyRate)
	assert.Equal(t, 1, south.Floors)
}

func TestWarehouseAnalysisSortedByOccupancyRate(t *testing.T) {
	rows := sampleRows()
	// Append a third, fully vacant warehouse ahead of the others in scan order.
	rows = append([]models.UnitOccupancy{{
		UnitID: 9, UnitName: "Z-1", WarehouseName: "Zero Depot",
		SizeSqft: 10, Status: models.UnitStatusAvailable,
	}}, rows...)

	byWarehouse := BuildWarehouseAnalysis(rows)
	require.Len(t, byWarehouse, 3)
	for i := 1; i < len(byWarehouse); i++ {
		assert.GreaterOrEqual(t, byWarehouse[i-1].OccupancyRate, byWarehouse[i].OccupancyRate)
	}
	assert.Equal(t, "Zero Depot", byWarehouse[2].WarehouseName)
}

func TestWarehouseAnalysisZeroDenominators(t *testing.T) {
	rows := []models.UnitOccupancy{{
		UnitID: 1, UnitName: "A-1", WarehouseName: "Empty", SizeSqft: 0,
		Status: models.UnitStatusAvailable,
	}}
	byWarehouse := BuildWarehouseAnalysis(rows)
	require.Len(t, byWarehouse, 1)
	assert.Equal(t, 0.0, byWarehouse[0].OccupancyRate)
	assert.Equal(t, 0.0, byWarehouse[0].RevenuePerSqft)
}

func TestCustomerAnalysisAggregation(t *testing.T) {
	byCustomer := BuildCustomerAnalysis(sampleRows())
	require.Len(t, byCustomer, 2)

	// Acme has bookings worth 100 + 80 = 180 across two units.
	acme := byCustomer[0]
	assert.Equal(t, "Acme Ltd", acme.CustomerName)
	assert.Equal(t, 2, acme.Bookings)
	assert.Equal(t, 2, acme.ActiveBookings)
	assert.Equal(t, 180.0, acme.TotalRevenue)
	assert.Equal(t, 100.0, acme.AmountPaid)
	assert.Equal(t, 2, acme.PaymentMethods)
	assert.Equal(t, 2, acme.Units)

	assert.Equal(t, "Borealis GmbH", byCustomer[1].CustomerName)
	assert.Equal(t, 50.0, byCustomer[1].TotalRevenue)
}

func TestGroupByFirstSeenOrder(t *testing.T) {
	rows := []models.UnitOccupancy{
		{UnitName: "1", WarehouseName: "B"},
		{UnitName: "2", WarehouseName: "A"},
		{UnitName: "3", WarehouseName: "B"},
	}
	g := groupBy(rows,
		func(u models.UnitOccupancy) string { return u.WarehouseName },
		func(u models.UnitOccupancy) *int { v := 0; return &v },
		func(acc *int, u models.UnitOccupancy) { *acc++ })

	assert.Equal(t, []string{"B", "A"}, g.order)
	assert.Equal(t, 2, *g.groups["B"])
	assert.Equal(t, 1, *g.groups["A"])
}
