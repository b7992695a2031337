package models

// OccupancyReport is the full payload of the occupancy report endpoint.
// The server also renders its own artifact and exposes it via DownloadLink;
// the client-side exporters work from ReportData only.
type OccupancyReport struct {
	DownloadLink string          `json:"downloadLink"`
	ReportData   []UnitOccupancy `json:"reportData"`
}

// UnitOccupancy is one row of the occupancy report: a storage unit with its
// bookings nested below it and each booking's payments below that. Rows are
// read-only snapshots; all monetary fields are decimal strings.
type UnitOccupancy struct {
	UnitID        int             `json:"unitId"`
	UnitName      string          `json:"unitName"`
	WarehouseName string          `json:"warehouseName"`
	Floor         string          `json:"floor"`
	SizeSqft      float64         `json:"sizeSqft"`
	MonthlyRate   string          `json:"monthlyRate"`
	Status        string          `json:"status"`
	Bookings      []BookingDetail `json:"bookings"`
}

type BookingDetail struct {
	BookingID    int             `json:"bookingId"`
	CustomerName string          `json:"customerName"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	TotalAmount  string          `json:"totalAmount"`
	Status       string          `json:"status"`
	Payments     []PaymentDetail `json:"payments"`
}

type PaymentDetail struct {
	PaymentID   int    `json:"paymentId"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	PaymentDate string `json:"paymentDate"`
}
