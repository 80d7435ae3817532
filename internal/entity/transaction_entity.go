package entity

import "time"

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusPaid    TransactionStatus = "PAID"
	TransactionStatusFailed  TransactionStatus = "FAILED"
	TransactionStatusExpired TransactionStatus = "EXPIRED"
)

// IsTerminal reports whether no further transition is expected for s.
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusPaid, TransactionStatusFailed, TransactionStatusExpired:
		return true
	}
	return false
}

type CartItem struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

type CustomerDetails struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Transaction mirrors one provider-hosted invoice. Id is the provider's
// invoice id and acts as the idempotency key for webhook upserts.
type Transaction struct {
	Id         string
	ExternalId string
	Amount     int64
	Status     TransactionStatus
	Items      []CartItem
	Customer   CustomerDetails
	InvoiceURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
