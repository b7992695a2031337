package models

import "time"

const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID            int       `json:"id"`
	UnitID        int       `json:"unitId"`
	UnitName      string    `json:"unitName,omitempty"`
	WarehouseName string    `json:"warehouseName,omitempty"`
	CustomerID    int       `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	StartDate     string    `json:"startDate"` // "2006-01-02"
	EndDate       string    `json:"endDate"`
	TotalAmount   string    `json:"totalAmount"` // decimal string
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (b Booking) EntityID() int { return b.ID }

type CreateBookingRequest struct {
	UnitID      int    `json:"unitId"`
	CustomerID  int    `json:"customerId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TotalAmount string `json:"totalAmount"`
	Notes       string `json:"notes,omitempty"`
}
