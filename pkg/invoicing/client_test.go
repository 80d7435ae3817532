package invoicing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceSendsAuthAndIdempotencyKey(t *testing.T) {
	var gotReq CreateInvoiceRequest
	var gotAuthUser, gotIdemKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/invoices", r.URL.Path)

		gotAuthUser, _, _ = r.BasicAuth()
		gotIdemKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(Invoice{
			Id:         "inv-abc123",
			ExternalId: gotReq.ExternalId,
			Status:     "PENDING",
			Amount:     gotReq.Amount,
			InvoiceURL: "https://checkout.example.com/inv-abc123",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test-secret")
	inv, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ExternalId: "mp-order-1700000000000-x1",
		Amount:     350000,
		Currency:   "IDR",
		Items:      []Item{{Name: "Intensive Class", Price: 350000, Quantity: 1}},
		Metadata:   &Metadata{Customer: CustomerInfo{Name: "Budi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "sk-test-secret", gotAuthUser)
	assert.Equal(t, "mp-order-1700000000000-x1", gotIdemKey)
	assert.Equal(t, "mp-order-1700000000000-x1", gotReq.ExternalId)
	assert.Equal(t, int64(350000), gotReq.Amount)
	assert.Equal(t, "inv-abc123", inv.Id)
	assert.Equal(t, "https://checkout.example.com/inv-abc123", inv.InvoiceURL)
}

func TestCreateInvoiceProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code":"INVALID_AMOUNT"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test-secret")
	inv, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ExternalId: "mp-order-1",
		Amount:     -5,
	})
	assert.Nil(t, inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_AMOUNT")
}

func TestGetInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/invoices/inv-abc123", r.URL.Path)
		json.NewEncoder(w).Encode(Invoice{Id: "inv-abc123", Status: "SETTLED", Amount: 350000})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk-test-secret")
	inv, err := client.GetInvoice(context.Background(), "inv-abc123")
	require.NoError(t, err)
	assert.Equal(t, "SETTLED", inv.Status)
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"SETTLED":  StatusPaid,
		"PAID":     StatusPaid,
		"paid":     StatusPaid,
		" settled": StatusPaid,
		"EXPIRED":  StatusExpired,
		"FAILED":   StatusFailed,
		"PENDING":  StatusPending,
		"":         StatusPending,
		"VOIDED":   StatusPending,
		"REFUNDED": StatusPending,
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeStatus(input), "input %q", input)
	}
}
