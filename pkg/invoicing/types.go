package invoicing

// Item is one purchasable line on an invoice.
type Item struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Customer identifies the payer on the provider side.
type Customer struct {
	GivenNames   string `json:"given_names,omitempty"`
	Email        string `json:"email,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

// CartLine is one cart entry carried in invoice metadata.
type CartLine struct {
	Id    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// CustomerInfo is the contact block carried in invoice metadata.
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Metadata is the opaque payload checkout attaches to an invoice. The
// provider echoes it back on webhooks, which is the only channel able
// to recover cart contents when the local pending write was lost.
type Metadata struct {
	Items    []CartLine   `json:"items,omitempty"`
	Customer CustomerInfo `json:"customer,omitempty"`
}

// CreateInvoiceRequest is the payload for the provider's invoice endpoint.
type CreateInvoiceRequest struct {
	ExternalId         string    `json:"external_id"`
	Amount             int64     `json:"amount"`
	Description        string    `json:"description,omitempty"`
	PayerEmail         string    `json:"payer_email,omitempty"`
	Currency           string    `json:"currency,omitempty"`
	InvoiceDuration    int       `json:"invoice_duration,omitempty"`
	Customer           *Customer `json:"customer,omitempty"`
	Items              []Item    `json:"items,omitempty"`
	Metadata           *Metadata `json:"metadata,omitempty"`
	SuccessRedirectURL string    `json:"success_redirect_url,omitempty"`
	FailureRedirectURL string    `json:"failure_redirect_url,omitempty"`
}

// Invoice is the provider's view of an invoice.
type Invoice struct {
	Id         string `json:"id"`
	ExternalId string `json:"external_id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	InvoiceURL string `json:"invoice_url"`
}

// WebhookPayload is what the provider posts to the callback endpoint.
// Only the fields the reconciler needs are decoded.
type WebhookPayload struct {
	Id         string    `json:"id"`
	ExternalId string    `json:"external_id"`
	Status     string    `json:"status"`
	Amount     int64     `json:"amount"`
	PaidAmount int64     `json:"paid_amount,omitempty"`
	PayerEmail string    `json:"payer_email,omitempty"`
	Metadata   *Metadata `json:"metadata,omitempty"`
}
