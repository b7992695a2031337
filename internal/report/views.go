package report

import (
	"sort"

	"warehub/internal/format"
	"warehub/internal/models"
)

// The six derived views below are each a single pass over the report rows
// (bookings and payments are visited through their owning unit). Monetary
// strings go through float64; rounding error is accepted for this domain.

// Summary is the workbook's "Occupancy Summary" sheet.
type Summary struct {
	TotalWarehouses  int
	TotalUnits       int
	OccupiedUnits    int
	AvailableUnits   int
	MaintenanceUnits int
	OccupancyRate    float64 // percent
	TotalBookings    int
	TotalPayments    int
	TotalRevenue     float64
	CollectedAmount  float64
	PendingAmount    float64
}

// UnitRow is one line of the "Unit Details" sheet.
type UnitRow struct {
	WarehouseName string
	UnitName      string
	Floor         string
	SizeSqft      float64
	MonthlyRate   float64
	Status        string
	Bookings      int
	Revenue       float64
}

// BookingRow is one line of the "Booking Details" sheet, with its payments
// folded into paid/pending counts and totals.
type BookingRow struct {
	WarehouseName string
	UnitName      string
	CustomerName  string
	StartDate     string
	EndDate       string
	Status        string
	TotalAmount   float64
	PaidCount     int
	PendingCount  int
	PaymentsTotal float64
	AmountPaid    float64
}

// PaymentRow is one line of the "Payment Details" sheet.
type PaymentRow struct {
	WarehouseName string
	UnitName      string
	CustomerName  string
	BookingID     int
	PaymentID     int
	Amount        float64
	Method        string
	Status        string
	PaymentDate   string
}

// WarehouseAnalysis aggregates units by warehouse name.
type WarehouseAnalysis struct {
	WarehouseName  string
	TotalUnits     int
	OccupiedUnits  int
	OccupancyRate  float64 // percent
	TotalSqft      float64
	TotalRevenue   float64
	RevenuePerSqft float64
	Floors         int // distinct floors in use

	floorSet map[string]struct{}
}

// CustomerAnalysis aggregates bookings by customer name.
type CustomerAnalysis struct {
	CustomerName   string
	Bookings       int
	ActiveBookings int
	TotalRevenue   float64
	AmountPaid     float64
	PaymentMethods int // distinct methods used
	Units          int // distinct units booked

	methodSet map[string]struct{}
	unitSet   map[int]struct{}
}

func unitRevenue(u models.UnitOccupancy) float64 {
	var total float64
	for _, b := range u.Bookings {
		total += format.Amount(b.TotalAmount)
	}
	return total
}

// BuildSummary computes the top-level occupancy statistics.
func BuildSummary(rows []models.UnitOccupancy) Summary {
	var s Summary
	warehouses := make(map[string]struct{})
	for _, u := range rows {
		warehouses[u.WarehouseName] = struct{}{}
		s.TotalUnits++
		switch u.Status {
		case models.UnitStatusOccupied:
			s.OccupiedUnits++
		case models.UnitStatusAvailable:
			s.AvailableUnits++
		case models.UnitStatusMaintenance:
			s.MaintenanceUnits++
		}
		s.TotalBookings += len(u.Bookings)
		s.TotalRevenue += unitRevenue(u)
		for _, b := range u.Bookings {
			for _, p := range b.Payments {
				s.TotalPayments++
				switch p.Status {
				case models.PaymentStatusPaid:
					s.CollectedAmount += format.Amount(p.Amount)
				case models.PaymentStatusPending:
					s.PendingAmount += format.Amount(p.Amount)
				}
			}
		}
	}
	s.TotalWarehouses = len(warehouses)
	s.OccupancyRate = safeRate(float64(s.OccupiedUnits), float64(s.TotalUnits)) * 100
	return s
}

// BuildUnitDetails flattens one row per storage unit.
func BuildUnitDetails(rows []models.UnitOccupancy) []UnitRow {
	out := make([]UnitRow, 0, len(rows))
	for _, u := range rows {
		out = append(out, UnitRow{
			WarehouseName: u.WarehouseName,
			UnitName:      u.UnitName,
			Floor:         u.Floor,
			SizeSqft:      u.SizeSqft,
			MonthlyRate:   format.Amount(u.MonthlyRate),
			Status:        u.Status,
			Bookings:      len(u.Bookings),
			Revenue:       unitRevenue(u),
		})
	}
	return out
}

// BuildBookingDetails flattens one row per booking with a payments summary.
func BuildBookingDetails(rows []models.UnitOccupancy) []BookingRow {
	var out []BookingRow
	for _, u := range rows {
		for _, b := range u.Bookings {
			row := BookingRow{
				WarehouseName: u.WarehouseName,
				UnitName:      u.UnitName,
				CustomerName:  b.CustomerName,
				StartDate:     b.StartDate,
				EndDate:       b.EndDate,
				Status:        b.Status,
				TotalAmount:   format.Amount(b.TotalAmount),
			}
			for _, p := range b.Payments {
				amt := format.Amount(p.Amount)
				row.PaymentsTotal += amt
				switch p.Status {
				case models.PaymentStatusPaid:
					row.PaidCount++
					row.AmountPaid += amt
				case models.PaymentStatusPending:
					row.PendingCount++
				}
			}
			out = append(out, row)
		}
	}
	return out
}

// BuildPaymentDetails flattens one row per payment.
func BuildPaymentDetails(rows []models.UnitOccupancy) []PaymentRow {
	var out []PaymentRow
	for _, u := range rows {
		for _, b := range u.Bookings {
			for _, p := range b.Payments {
				out = append(out, PaymentRow{
					WarehouseName: u.WarehouseName,
					UnitName:      u.UnitName,
					CustomerName:  b.CustomerName,
					BookingID:     b.BookingID,
					PaymentID:     p.PaymentID,
					Amount:        format.Amount(p.Amount),
					Method:        p.Method,
					Status:        p.Status,
					PaymentDate:   p.PaymentDate,
				})
			}
		}
	}
	return out
}

// BuildWarehouseAnalysis groups units by warehouse and sorts the result in
// non-increasing occupancy-rate order.
func BuildWarehouseAnalysis(rows []models.UnitOccupancy) []WarehouseAnalysis {
	g := groupBy(rows,
		func(u models.UnitOccupancy) string { return u.WarehouseName },
		func(u models.UnitOccupancy) *WarehouseAnalysis {
			return &WarehouseAnalysis{
				WarehouseName: u.WarehouseName,
				floorSet:      make(map[string]struct{}),
			}
		},
		func(a *WarehouseAnalysis, u models.UnitOccupancy) {
			a.TotalUnits++
			if u.Status == models.UnitStatusOccupied {
				a.OccupiedUnits++
			}
			a.TotalSqft += u.SizeSqft
			a.TotalRevenue += unitRevenue(u)
			if u.Floor != "" {
				a.floorSet[u.Floor] = struct{}{}
			}
		})

	out := make([]WarehouseAnalysis, 0, len(g.order))
	for _, a := range g.slice() {
		a.OccupancyRate = safeRate(float64(a.OccupiedUnits), float64(a.TotalUnits)) * 100
		a.RevenuePerSqft = safeRate(a.TotalRevenue, a.TotalSqft)
		a.Floors = len(a.floorSet)
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccupancyRate > out[j].OccupancyRate
	})
	return out
}

// BuildCustomerAnalysis groups bookings by customer and sorts the result in
// non-increasing revenue order.
func BuildCustomerAnalysis(rows []models.UnitOccupancy) []CustomerAnalysis {
	type cb struct {
		unit    models.UnitOccupancy
		booking models.BookingDetail
	}
	var flat []cb
	for _, u := range rows {
		for _, b := range u.Bookings {
			flat = append(flat, cb{unit: u, booking: b})
		}
	}

	g := groupBy(flat,
		func(r cb) string { return r.booking.CustomerName },
		func(r cb) *CustomerAnalysis {
			return &CustomerAnalysis{
				CustomerName: r.booking.CustomerName,
				methodSet:    make(map[string]struct{}),
				unitSet:      make(map[int]struct{}),
			}
		},
		func(a *CustomerAnalysis, r cb) {
			a.Bookings++
			if r.booking.Status == models.BookingStatusActive {
				a.ActiveBookings++
			}
			a.TotalRevenue += format.Amount(r.booking.TotalAmount)
			a.unitSet[r.unit.UnitID] = struct{}{}
			for _, p := range r.booking.Payments {
				if p.Status == models.PaymentStatusPaid {
					a.AmountPaid += format.Amount(p.Amount)
				}
				if p.Method != "" {
					a.methodSet[p.Method] = struct{}{}
				}
			}
		})

	out := make([]CustomerAnalysis, 0, len(g.order))
	for _, a := range g.slice() {
		a.PaymentMethods = len(a.methodSet)
		a.Units = len(a.unitSet)
		out = append(out, *a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	return out
}
