package models

import "time"

// PaymentRequest describes a payment to be collected for a booking.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card" or "cash"
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID    string    `bson:"invoiceId" json:"invoiceId"`
	UserID       string    `bson:"userId" json:"userId"`
	Amount       float64   `bson:"amount" json:"amount"`
	Currency     string    `bson:"currency" json:"currency"`
	Method       string    `bson:"method" json:"method"`
	PaymentID    string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"` // gateway reference
	ClientSecret string    `bson:"-" json:"clientSecret,omitempty"`                // returned to the client, never stored
	Status       string    `bson:"status" json:"status"`                           // "pending" or "paid"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
