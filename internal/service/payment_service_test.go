package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/contract"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/invoicing"
)

// --- fakes ---

type fakeTransactionRepo struct {
	rows      map[string]*entity.Transaction
	upsertErr error
	findErr   error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{rows: make(map[string]*entity.Transaction)}
}

func (r *fakeTransactionRepo) Upsert(ctx context.Context, tx *entity.Transaction) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	cp := *tx
	r.rows[tx.Id] = &cp
	return nil
}

func (r *fakeTransactionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, spec := range specs {
		if byKey, ok := spec.(specification.ByKey); ok {
			if tx, found := r.rows[byKey.Key]; found {
				cp := *tx
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTransactionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeUow struct {
	txRepo *fakeTransactionRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) AdminRepository() contract.AdminRepository             { return nil }
func (u *fakeUow) ActivityLogRepository() contract.ActivityLogRepository { return nil }
func (u *fakeUow) TransactionRepository() contract.TransactionRepository { return u.txRepo }
func (u *fakeUow) ArticleRepository() contract.ArticleRepository         { return nil }
func (u *fakeUow) PricingPlanRepository() contract.PricingPlanRepository { return nil }
func (u *fakeUow) TeamMemberRepository() contract.TeamMemberRepository   { return nil }
func (u *fakeUow) TestimonialRepository() contract.TestimonialRepository { return nil }
func (u *fakeUow) FaqRepository() contract.FaqRepository                 { return nil }
func (u *fakeUow) SiteSettingRepository() contract.SiteSettingRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeProvider struct {
	lastCreate *invoicing.CreateInvoiceRequest
	createResp *invoicing.Invoice
	createErr  error
	getResp    *invoicing.Invoice
	getErr     error
}

func (p *fakeProvider) CreateInvoice(ctx context.Context, req *invoicing.CreateInvoiceRequest) (*invoicing.Invoice, error) {
	p.lastCreate = req
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.createResp, nil
}

func (p *fakeProvider) GetInvoice(ctx context.Context, invoiceID string) (*invoicing.Invoice, error) {
	if p.getErr != nil {
		return nil, p.getErr
	}
	return p.getResp, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newPaymentFixture() (*fakeTransactionRepo, *fakeProvider, IPaymentService) {
	repo := newFakeTransactionRepo()
	provider := &fakeProvider{
		createResp: &invoicing.Invoice{
			Id:         "inv-1",
			Status:     "PENDING",
			InvoiceURL: "https://checkout.example.com/inv-1",
		},
	}
	svc := NewPaymentService(
		&fakeUowFactory{uow: &fakeUow{txRepo: repo}},
		provider,
		config.PaymentConfig{
			SuccessRedirectURL: "https://example.com/ok",
			FailureRedirectURL: "https://example.com/fail",
		},
		nil,
		nil,
		noopLogger{},
	)
	return repo, provider, svc
}

// --- tests ---

func TestCreateInvoiceComputesAmountAndSanitizesQty(t *testing.T) {
	repo, provider, svc := newPaymentFixture()

	resp, err := svc.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		Items: []dto.CartItemRequest{
			{Name: "Intensive Class", Price: 350000, Qty: 2},
			{Name: "Tryout Pack", Price: 50000, Qty: 0}, // bad qty defaults to 1
		},
		Customer: dto.CustomerRequest{Name: "Budi", Email: "budi@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(750000), resp.Amount)
	assert.Equal(t, "inv-1", resp.InvoiceId)
	assert.Equal(t, string(entity.TransactionStatusPending), resp.Status)
	assert.NotEmpty(t, resp.ExternalId)

	require.NotNil(t, provider.lastCreate)
	assert.Equal(t, int64(750000), provider.lastCreate.Amount)
	assert.Equal(t, "IDR", provider.lastCreate.Currency)
	assert.Equal(t, 1, provider.lastCreate.Items[1].Quantity)
	assert.Equal(t, "2x Intensive Class, 1x Tryout Pack", provider.lastCreate.Description)
	require.NotNil(t, provider.lastCreate.Metadata)
	assert.Len(t, provider.lastCreate.Metadata.Items, 2)
	assert.Equal(t, "budi@example.com", provider.lastCreate.Metadata.Customer.Email)

	stored := repo.rows["inv-1"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.TransactionStatusPending, stored.Status)
	assert.Equal(t, resp.ExternalId, stored.ExternalId)
}

func TestCreateInvoiceProviderFailure(t *testing.T) {
	repo, provider, svc := newPaymentFixture()
	provider.createErr = errors.New("gateway unreachable")

	resp, err := svc.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		Items:    []dto.CartItemRequest{{Name: "Class", Price: 100000, Qty: 1}},
		Customer: dto.CustomerRequest{Name: "Budi", Email: "budi@example.com"},
	})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Empty(t, repo.rows, "no transaction should be recorded when the provider rejects")
}

func TestCreateInvoiceSurvivesStorageFailure(t *testing.T) {
	repo, _, svc := newPaymentFixture()
	repo.upsertErr = errors.New("db down")

	// The invoice exists on the provider side; the webhook will fill in
	// the row later, so checkout still succeeds.
	resp, err := svc.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		Items:    []dto.CartItemRequest{{Name: "Class", Price: 100000, Qty: 1}},
		Customer: dto.CustomerRequest{Name: "Budi", Email: "budi@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", resp.InvoiceId)
}

func TestHandleWebhookCreatesRowForUnknownInvoice(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	err := svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id:         "inv-9",
		ExternalId: "mp-order-1",
		Status:     "SETTLED",
		Amount:     100000,
	})
	require.NoError(t, err)

	stored := repo.rows["inv-9"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.TransactionStatusPaid, stored.Status)
	assert.Equal(t, int64(100000), stored.Amount)
}

func TestHandleWebhookRestoresCartFromMetadata(t *testing.T) {
	repo, provider, svc := newPaymentFixture()

	// The pending write is lost; the provider-side invoice still exists.
	repo.upsertErr = errors.New("db down")
	resp, err := svc.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		Items:    []dto.CartItemRequest{{Name: "Intensive Class", Price: 350000, Qty: 2}},
		Customer: dto.CustomerRequest{Name: "Budi", Email: "budi@example.com"},
	})
	require.NoError(t, err)
	require.Empty(t, repo.rows)

	// Settlement arrives with the echoed metadata once storage is back.
	repo.upsertErr = nil
	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id:         "inv-1",
		ExternalId: resp.ExternalId,
		Status:     "SETTLED",
		Amount:     resp.Amount,
		Metadata:   provider.lastCreate.Metadata,
	}))

	stored := repo.rows["inv-1"]
	require.NotNil(t, stored)
	assert.Equal(t, entity.TransactionStatusPaid, stored.Status)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Intensive Class", stored.Items[0].Name)
	assert.Equal(t, 2, stored.Items[0].Qty)
	assert.Equal(t, "Budi", stored.Customer.Name)
	assert.Equal(t, "budi@example.com", stored.Customer.Email)
}

func TestHandleWebhookFallsBackToPayerEmail(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	// No metadata at all: top-level fields are the last resort.
	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id:         "inv-9",
		Status:     "SETTLED",
		Amount:     100000,
		PayerEmail: "budi@example.com",
	}))

	assert.Equal(t, "budi@example.com", repo.rows["inv-9"].Customer.Email)
}

func TestHandleWebhookIsIdempotentOnReplay(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	payload := &invoicing.WebhookPayload{Id: "inv-9", ExternalId: "mp-order-1", Status: "PAID", Amount: 100000}
	require.NoError(t, svc.HandleWebhook(context.Background(), payload))
	require.NoError(t, svc.HandleWebhook(context.Background(), payload))

	assert.Len(t, repo.rows, 1)
	assert.Equal(t, entity.TransactionStatusPaid, repo.rows["inv-9"].Status)
}

func TestHandleWebhookStalePendingNeverOverwritesTerminal(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id: "inv-9", Status: "SETTLED", Amount: 100000,
	}))
	// A delayed PENDING delivery arrives after settlement.
	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id: "inv-9", Status: "PENDING", Amount: 100000,
	}))

	assert.Equal(t, entity.TransactionStatusPaid, repo.rows["inv-9"].Status)
}

func TestHandleWebhookPreservesCheckoutDetail(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	repo.rows["inv-9"] = &entity.Transaction{
		Id:         "inv-9",
		ExternalId: "mp-order-1",
		Amount:     100000,
		Status:     entity.TransactionStatusPending,
		Items:      []entity.CartItem{{Name: "Class", Price: 100000, Qty: 1}},
		Customer:   entity.CustomerDetails{Name: "Budi", Email: "budi@example.com"},
		InvoiceURL: "https://checkout.example.com/inv-9",
	}

	// Sparse payload: no external id or amount.
	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id: "inv-9", Status: "EXPIRED",
	}))

	stored := repo.rows["inv-9"]
	assert.Equal(t, entity.TransactionStatusExpired, stored.Status)
	assert.Equal(t, "mp-order-1", stored.ExternalId)
	assert.Equal(t, int64(100000), stored.Amount)
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, "budi@example.com", stored.Customer.Email)
}

func TestHandleWebhookUnknownStatusTreatedAsPending(t *testing.T) {
	repo, _, svc := newPaymentFixture()

	require.NoError(t, svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id: "inv-9", Status: "SOMETHING_NEW", Amount: 100000,
	}))
	assert.Equal(t, entity.TransactionStatusPending, repo.rows["inv-9"].Status)
}

func TestHandleWebhookStorageFailurePropagates(t *testing.T) {
	repo, _, svc := newPaymentFixture()
	repo.upsertErr = errors.New("db down")

	err := svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{
		Id: "inv-9", Status: "PAID", Amount: 100000,
	})
	require.Error(t, err)
}

func TestHandleWebhookRejectsMissingId(t *testing.T) {
	_, _, svc := newPaymentFixture()
	err := svc.HandleWebhook(context.Background(), &invoicing.WebhookPayload{Status: "PAID"})
	require.Error(t, err)
}

func TestGetInvoiceStatusRefreshesPendingFromProvider(t *testing.T) {
	repo, provider, svc := newPaymentFixture()

	repo.rows["inv-9"] = &entity.Transaction{
		Id:     "inv-9",
		Status: entity.TransactionStatusPending,
		Amount: 100000,
	}
	provider.getResp = &invoicing.Invoice{Id: "inv-9", Status: "SETTLED", Amount: 100000}

	resp, err := svc.GetInvoiceStatus(context.Background(), "inv-9")
	require.NoError(t, err)
	assert.Equal(t, string(entity.TransactionStatusPaid), resp.Status)
	assert.Equal(t, entity.TransactionStatusPaid, repo.rows["inv-9"].Status)
}

func TestGetInvoiceStatusUnknownInvoice(t *testing.T) {
	_, _, svc := newPaymentFixture()
	resp, err := svc.GetInvoiceStatus(context.Background(), "inv-missing")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotFound)
}
