package dto

import "time"

type CartItemRequest struct {
	Id    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"required,gt=0"`
	Qty   int    `json:"qty"`
}

type CustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type CreateInvoiceRequest struct {
	Items    []CartItemRequest `json:"items" validate:"required,min=1,dive"`
	Customer CustomerRequest   `json:"customer" validate:"required"`
}

type CreateInvoiceResponse struct {
	InvoiceId  string `json:"invoice_id"`
	ExternalId string `json:"external_id"`
	InvoiceURL string `json:"invoice_url"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

type TransactionResponse struct {
	Id         string    `json:"id"`
	ExternalId string    `json:"external_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	InvoiceURL string    `json:"invoice_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type InvoiceStatusResponse struct {
	InvoiceId string `json:"invoice_id"`
	Status    string `json:"status"`
}
