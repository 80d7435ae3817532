package controller

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/serverutils"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/service"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/invoicing"
)

type stubPaymentService struct {
	createRes  *dto.CreateInvoiceResponse
	createErr  error
	webhookErr error

	webhookCalls []*invoicing.WebhookPayload
}

func (s *stubPaymentService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createRes, nil
}

func (s *stubPaymentService) HandleWebhook(ctx context.Context, payload *invoicing.WebhookPayload) error {
	s.webhookCalls = append(s.webhookCalls, payload)
	return s.webhookErr
}

func (s *stubPaymentService) GetInvoiceStatus(ctx context.Context, invoiceID string) (*dto.InvoiceStatusResponse, error) {
	if invoiceID == "inv_missing" {
		return nil, service.ErrNotFound
	}
	return &dto.InvoiceStatusResponse{}, nil
}

func (s *stubPaymentService) ListTransactions(ctx context.Context, limit, offset int) (*dto.TransactionListResponse, error) {
	return &dto.TransactionListResponse{}, nil
}

func newPaymentTestApp(svc service.IPaymentService, callbackToken string) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	admin := api.Group("/admin", serverutils.RequireAdmin(session.NewCodec("test-secret"), testCookieName))
	NewPaymentController(svc, callbackToken, nil).RegisterRoutes(api, admin)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, token, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/payment/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-callback-token", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestWebhook_RejectsBadTokenBeforeParsing(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentTestApp(svc, "secret-token")

	assert.Equal(t, fiber.StatusUnauthorized, postWebhook(t, app, "", `{"id":"inv_1","status":"PAID"}`))
	assert.Equal(t, fiber.StatusUnauthorized, postWebhook(t, app, "wrong", `{"id":"inv_1","status":"PAID"}`))
	assert.Empty(t, svc.webhookCalls)
}

func TestWebhook_RejectsAllWhenTokenUnconfigured(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentTestApp(svc, "")

	// An unset shared secret must not open the endpoint.
	assert.Equal(t, fiber.StatusUnauthorized, postWebhook(t, app, "", `{"id":"inv_1","status":"PAID"}`))
	assert.Empty(t, svc.webhookCalls)
}

func TestWebhook_BadBody(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentTestApp(svc, "secret-token")

	assert.Equal(t, fiber.StatusBadRequest, postWebhook(t, app, "secret-token", `{not json`))
	assert.Empty(t, svc.webhookCalls)
}

func TestWebhook_StorageFailureReturns500ForRetry(t *testing.T) {
	svc := &stubPaymentService{webhookErr: errors.New("db down")}
	app := newPaymentTestApp(svc, "secret-token")

	assert.Equal(t, fiber.StatusInternalServerError,
		postWebhook(t, app, "secret-token", `{"id":"inv_1","status":"PAID"}`))
	assert.Len(t, svc.webhookCalls, 1)
}

func TestWebhook_Accepted(t *testing.T) {
	svc := &stubPaymentService{}
	app := newPaymentTestApp(svc, "secret-token")

	assert.Equal(t, fiber.StatusOK, postWebhook(t, app, "secret-token", `{"id":"inv_1","status":"PAID"}`))
	require.Len(t, svc.webhookCalls, 1)
	assert.Equal(t, "inv_1", svc.webhookCalls[0].Id)
}

func TestCreateInvoice_Success(t *testing.T) {
	svc := &stubPaymentService{createRes: &dto.CreateInvoiceResponse{}}
	app := newPaymentTestApp(svc, "secret-token")

	resp := postJSON(t, app, "/api/payment/invoice", dto.CreateInvoiceRequest{
		Items: []dto.CartItemRequest{{Name: "UTBK Intensif", Price: 1500000, Qty: 1}},
		Customer: dto.CustomerRequest{
			Name:  "Budi",
			Email: "budi@example.com",
		},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateInvoice_ProviderFailure(t *testing.T) {
	svc := &stubPaymentService{createErr: errors.New("provider unreachable")}
	app := newPaymentTestApp(svc, "secret-token")

	resp := postJSON(t, app, "/api/payment/invoice", dto.CreateInvoiceRequest{
		Items: []dto.CartItemRequest{{Name: "UTBK Intensif", Price: 1500000, Qty: 1}},
		Customer: dto.CustomerRequest{
			Name:  "Budi",
			Email: "budi@example.com",
		},
	})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestCreateInvoice_EmptyCart(t *testing.T) {
	svc := &stubPaymentService{createRes: &dto.CreateInvoiceResponse{}}
	app := newPaymentTestApp(svc, "secret-token")

	resp := postJSON(t, app, "/api/payment/invoice", dto.CreateInvoiceRequest{
		Items: []dto.CartItemRequest{},
		Customer: dto.CustomerRequest{
			Name:  "Budi",
			Email: "budi@example.com",
		},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListTransactions_RequiresAdminSession(t *testing.T) {
	app := newPaymentTestApp(&stubPaymentService{}, "secret-token")

	req := httptest.NewRequest("GET", "/api/admin/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
