package models

import "time"

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	ID           int       `json:"id"`
	BookingID    int       `json:"bookingId"`
	CustomerName string    `json:"customerName,omitempty"`
	Amount       string    `json:"amount"` // decimal string
	Method       string    `json:"method"` // card | bank_transfer | cash
	Status       string    `json:"status"`
	PaymentDate  string    `json:"paymentDate"` // "2006-01-02"
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (p Payment) EntityID() int { return p.ID }

type CreatePaymentRequest struct {
	BookingID   int    `json:"bookingId"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	PaymentDate string `json:"paymentDate"`
	Notes       string `json:"notes,omitempty"`
}
