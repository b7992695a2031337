package export

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"warehub/internal/format"
	"warehub/internal/models"
	"warehub/internal/report"
)

const htmlReport = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Occupancy Report</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 24px; color: #1F2937; }
h1 { font-size: 22px; }
h2 { font-size: 16px; margin-top: 28px; border-bottom: 2px solid #E5E7EB; padding-bottom: 4px; }
p.meta { color: #6B7280; font-size: 12px; }
table { border-collapse: collapse; width: 100%; font-size: 13px; }
th { background: #F3F4F6; text-align: left; }
th, td { border: 1px solid #D1D5DB; padding: 6px 8px; }
td.num { text-align: right; }
span.badge { padding: 2px 8px; border-radius: 10px; color: #fff; font-size: 11px; }
</style>
</head>
<body>
<h1>Occupancy Report</h1>
<p class="meta">Generated {{datetime .GeneratedAt}}</p>

<h2>Occupancy Summary</h2>
<table>
<tr><th>Metric</th><th>Value</th></tr>
<tr><td>Total Warehouses</td><td class="num">{{.Summary.TotalWarehouses}}</td></tr>
<tr><td>Total Units</td><td class="num">{{.Summary.TotalUnits}}</td></tr>
<tr><td>Occupied Units</td><td class="num">{{.Summary.OccupiedUnits}}</td></tr>
<tr><td>Available Units</td><td class="num">{{.Summary.AvailableUnits}}</td></tr>
<tr><td>Maintenance Units</td><td class="num">{{.Summary.MaintenanceUnits}}</td></tr>
<tr><td>Occupancy Rate</td><td class="num">{{percent .Summary.OccupancyRate}}</td></tr>
<tr><td>Total Bookings</td><td class="num">{{.Summary.TotalBookings}}</td></tr>
<tr><td>Total Payments</td><td class="num">{{.Summary.TotalPayments}}</td></tr>
<tr><td>Total Revenue</td><td class="num">{{currency .Summary.TotalRevenue}}</td></tr>
<tr><td>Collected Amount</td><td class="num">{{currency .Summary.CollectedAmount}}</td></tr>
<tr><td>Pending Amount</td><td class="num">{{currency .Summary.PendingAmount}}</td></tr>
</table>

<h2>Unit Details</h2>
<table>
<tr><th>Warehouse</th><th>Unit</th><th>Floor</th><th>Size (sqft)</th><th>Monthly Rate</th><th>Status</th><th>Bookings</th><th>Revenue</th></tr>
{{range .Units}}
<tr>
<td>{{.WarehouseName}}</td><td>{{.UnitName}}</td><td>{{.Floor}}</td>
<td class="num">{{.SizeSqft}}</td><td class="num">{{currency .MonthlyRate}}</td>
<td><span class="badge" style="background:{{color .Status}}">{{.Status}}</span></td>
<td class="num">{{.Bookings}}</td><td class="num">{{currency .Revenue}}</td>
</tr>
{{end}}
</table>

<h2>Booking Details</h2>
<table>
<tr><th>Warehouse</th><th>Unit</th><th>Customer</th><th>Start Date</th><th>End Date</th><th>Status</th><th>Total Amount</th><th>Paid</th><th>Pending</th><th>Amount Paid</th></tr>
{{range .Bookings}}
<tr>
<td>{{.WarehouseName}}</td><td>{{.UnitName}}</td><td>{{.CustomerName}}</td>
<td>{{date .StartDate}}</td><td>{{date .EndDate}}</td>
<td><span class="badge" style="background:{{color .Status}}">{{.Status}}</span></td>
<td class="num">{{currency .TotalAmount}}</td>
<td class="num">{{.PaidCount}}</td><td class="num">{{.PendingCount}}</td>
<td class="num">{{currency .AmountPaid}}</td>
</tr>
{{end}}
</table>

<h2>Payment Details</h2>
<table>
<tr><th>Warehouse</th><th>Unit</th><th>Customer</th><th>Booking ID</th><th>Payment ID</th><th>Amount</th><th>Method</th><th>Status</th><th>Payment Date</th></tr>
{{range .Payments}}
<tr>
<td>{{.WarehouseName}}</td><td>{{.UnitName}}</td><td>{{.CustomerName}}</td>
<td class="num">{{.BookingID}}</td><td class="num">{{.PaymentID}}</td>
<td class="num">{{currency .Amount}}</td><td>{{.Method}}</td>
<td><span class="badge" style="background:{{color .Status}}">{{.Status}}</span></td>
<td>{{date .PaymentDate}}</td>
</tr>
{{end}}
</table>

<h2>Warehouse Analysis</h2>
<table>
<tr><th>Warehouse</th><th>Total Units</th><th>Occupied Units</th><th>Occupancy Rate</th><th>Total Sqft</th><th>Total Revenue</th><th>Revenue / Sqft</th><th>Floors In Use</th></tr>
{{range .Warehouses}}
<tr>
<td>{{.WarehouseName}}</td><td class="num">{{.TotalUnits}}</td><td class="num">{{.OccupiedUnits}}</td>
<td class="num">{{percent .OccupancyRate}}</td><td class="num">{{.TotalSqft}}</td>
<td class="num">{{currency .TotalRevenue}}</td><td class="num">{{currency .RevenuePerSqft}}</td>
<td class="num">{{.Floors}}</td>
</tr>
{{end}}
</table>

<h2>Customer Analysis</h2>
<table>
<tr><th>Customer</th><th>Bookings</th><th>Active Bookings</th><th>Total Revenue</th><th>Amount Paid</th><th>Payment Methods</th><th>Units</th></tr>
{{range .Customers}}
<tr>
<td>{{.CustomerName}}</td><td class="num">{{.Bookings}}</td><td class="num">{{.ActiveBookings}}</td>
<td class="num">{{currency .TotalRevenue}}</td><td class="num">{{currency .AmountPaid}}</td>
<td class="num">{{.PaymentMethods}}</td><td class="num">{{.Units}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("occupancy").Funcs(template.FuncMap{
	"currency": format.Currency,
	"percent":  format.Percent,
	"date":     format.Date,
	"datetime": format.DateTime,
	"color": func(status string) template.CSS {
		return template.CSS(format.StatusColor(status))
	},
}).Parse(htmlReport))

type htmlData struct {
	GeneratedAt time.Time
	Summary     report.Summary
	Units       []report.UnitRow
	Bookings    []report.BookingRow
	Payments    []report.PaymentRow
	Warehouses  []report.WarehouseAnalysis
	Customers   []report.CustomerAnalysis
}

// HTML renders the self-contained occupancy report document.
func HTML(rows []models.UnitOccupancy, generatedAt time.Time) (string, error) {
	data := htmlData{
		GeneratedAt: generatedAt,
		Summary:     report.BuildSummary(rows),
		Units:       report.BuildUnitDetails(rows),
		Bookings:    report.BuildBookingDetails(rows),
		Payments:    report.BuildPaymentDetails(rows),
		Warehouses:  report.BuildWarehouseAnalysis(rows),
		Customers:   report.BuildCustomerAnalysis(rows),
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.String(), nil
}
