package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/mailer"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/events"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/invoicing"
	pktNats "github.com/mp-codespace/masterprima-site-sub001/pkg/nats"
)

// InvoiceProvider is the slice of the gateway client the service needs.
type InvoiceProvider interface {
	CreateInvoice(ctx context.Context, req *invoicing.CreateInvoiceRequest) (*invoicing.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*invoicing.Invoice, error)
}

type IPaymentService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error)
	HandleWebhook(ctx context.Context, payload *invoicing.WebhookPayload) error
	GetInvoiceStatus(ctx context.Context, invoiceID string) (*dto.InvoiceStatusResponse, error)
	ListTransactions(ctx context.Context, limit, offset int) (*dto.TransactionListResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       InvoiceProvider
	paymentCfg     config.PaymentConfig
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	provider InvoiceProvider,
	paymentCfg config.PaymentConfig,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		provider:       provider,
		paymentCfg:     paymentCfg,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// newExternalId builds the merchant order reference. The millisecond
// timestamp plus a random suffix keeps concurrent checkouts distinct.
func newExternalId() string {
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("mp-order-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b))
}

func (s *paymentService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	// The server recomputes the total from the cart; a client-sent total
	// is never trusted.
	items := make([]entity.CartItem, 0, len(req.Items))
	var amount int64
	for _, it := range req.Items {
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		items = append(items, entity.CartItem{
			Id:    it.Id,
			Name:  it.Name,
			Price: it.Price,
			Qty:   qty,
		})
		amount += it.Price * int64(qty)
	}

	externalId := newExternalId()

	providerItems := make([]invoicing.Item, 0, len(items))
	metaLines := make([]invoicing.CartLine, 0, len(items))
	descParts := make([]string, 0, len(items))
	for _, it := range items {
		providerItems = append(providerItems, invoicing.Item{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Qty,
		})
		metaLines = append(metaLines, invoicing.CartLine{
			Id:    it.Id,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
		descParts = append(descParts, fmt.Sprintf("%dx %s", it.Qty, it.Name))
	}

	inv, err := s.provider.CreateInvoice(ctx, &invoicing.CreateInvoiceRequest{
		ExternalId:  externalId,
		Amount:      amount,
		Description: strings.Join(descParts, ", "),
		PayerEmail:  req.Customer.Email,
		Currency:    "IDR",
		Customer: &invoicing.Customer{
			GivenNames:   req.Customer.Name,
			Email:        req.Customer.Email,
			MobileNumber: req.Customer.Phone,
		},
		Items: providerItems,
		// The provider echoes metadata back on webhooks; it is the only
		// channel that can restore the cart if the pending write is lost.
		Metadata: &invoicing.Metadata{
			Items: metaLines,
			Customer: invoicing.CustomerInfo{
				Name:  req.Customer.Name,
				Email: req.Customer.Email,
				Phone: req.Customer.Phone,
			},
		},
		SuccessRedirectURL: s.paymentCfg.SuccessRedirectURL,
		FailureRedirectURL: s.paymentCfg.FailureRedirectURL,
	})
	if err != nil {
		return nil, err
	}

	// Record the pending transaction. Best effort: the invoice already
	// exists on the provider side, and the webhook will upsert the same
	// row again, so a failure here must not fail the checkout.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx := &entity.Transaction{
		Id:         inv.Id,
		ExternalId: externalId,
		Amount:     amount,
		Status:     entity.TransactionStatusPending,
		Items:      items,
		Customer: entity.CustomerDetails{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		InvoiceURL: inv.InvoiceURL,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := uow.TransactionRepository().Upsert(ctx, tx); err != nil {
		s.logger.Error("payment", "failed to record pending transaction", map[string]interface{}{
			"invoice_id": inv.Id,
			"error":      err.Error(),
		})
	}

	if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypeInvoiceCreated, map[string]interface{}{
		"invoice_id":  inv.Id,
		"external_id": externalId,
		"amount":      amount,
	})); err != nil {
		s.logger.Warn("payment", "failed to publish invoice event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.CreateInvoiceResponse{
		InvoiceId:  inv.Id,
		ExternalId: externalId,
		InvoiceURL: inv.InvoiceURL,
		Amount:     amount,
		Status:     string(entity.TransactionStatusPending),
	}, nil
}

// HandleWebhook reconciles one provider notification into storage. It is
// idempotent: replays upsert the same row, and a stale PENDING delivery
// can never overwrite a terminal state.
func (s *paymentService) HandleWebhook(ctx context.Context, payload *invoicing.WebhookPayload) error {
	if payload.Id == "" {
		return fmt.Errorf("webhook payload missing invoice id")
	}

	status := entity.TransactionStatus(invoicing.NormalizeStatus(payload.Status))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TransactionRepository().FindOne(ctx, specification.ByKey{Key: payload.Id})
	if err != nil {
		return err
	}

	tx := &entity.Transaction{
		Id:         payload.Id,
		ExternalId: payload.ExternalId,
		Amount:     payload.Amount,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	// The cart travels in the echoed metadata; without it the row for a
	// lost pending write would settle empty. Top-level fields are the
	// fallback when metadata is absent.
	if payload.Metadata != nil {
		tx.Items = make([]entity.CartItem, 0, len(payload.Metadata.Items))
		for _, line := range payload.Metadata.Items {
			tx.Items = append(tx.Items, entity.CartItem{
				Id:    line.Id,
				Name:  line.Name,
				Price: line.Price,
				Qty:   line.Qty,
			})
		}
		tx.Customer = entity.CustomerDetails{
			Name:  payload.Metadata.Customer.Name,
			Email: payload.Metadata.Customer.Email,
			Phone: payload.Metadata.Customer.Phone,
		}
	}
	if tx.Customer.Email == "" {
		tx.Customer.Email = payload.PayerEmail
	}

	wasPaid := false
	if existing != nil {
		wasPaid = existing.Status == entity.TransactionStatusPaid
		// Prefer what checkout recorded; the metadata copy only fills
		// rows the pending write never reached.
		if len(existing.Items) > 0 {
			tx.Items = existing.Items
		}
		if existing.Customer != (entity.CustomerDetails{}) {
			tx.Customer = existing.Customer
		}
		tx.InvoiceURL = existing.InvoiceURL
		tx.CreatedAt = existing.CreatedAt
		if payload.ExternalId == "" {
			tx.ExternalId = existing.ExternalId
		}
		if payload.Amount == 0 {
			tx.Amount = existing.Amount
		}

		// Out-of-order delivery: once terminal, a PENDING replay is stale.
		if existing.Status.IsTerminal() && !status.IsTerminal() {
			s.logger.Info("payment", "ignoring stale webhook for settled transaction", map[string]interface{}{
				"invoice_id": payload.Id,
				"current":    string(existing.Status),
				"incoming":   string(status),
			})
			return nil
		}
	}

	if err := uow.TransactionRepository().Upsert(ctx, tx); err != nil {
		// Surfacing the error turns into a 5xx so the provider retries.
		return err
	}

	if status == entity.TransactionStatusPaid && !wasPaid {
		s.onPaid(ctx, tx)
	}
	if status == entity.TransactionStatusFailed || status == entity.TransactionStatusExpired {
		if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypePaymentFailed, map[string]interface{}{
			"invoice_id": tx.Id,
			"status":     string(status),
		})); err != nil {
			s.logger.Warn("payment", "failed to publish payment event", map[string]interface{}{"error": err.Error()})
		}
	}

	return nil
}

func (s *paymentService) onPaid(ctx context.Context, tx *entity.Transaction) {
	if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypePaymentSettled, map[string]interface{}{
		"invoice_id":  tx.Id,
		"external_id": tx.ExternalId,
		"amount":      tx.Amount,
	})); err != nil {
		s.logger.Warn("payment", "failed to publish payment event", map[string]interface{}{"error": err.Error()})
	}

	if s.emailService != nil && tx.Customer.Email != "" {
		email := tx.Customer.Email
		name := tx.Customer.Name
		invoiceId := tx.Id
		amount := tx.Amount
		go func() {
			if err := s.emailService.SendPaymentReceipt(email, name, invoiceId, amount); err != nil {
				fmt.Printf("Error sending payment receipt: %v\n", err)
			}
		}()
	}
}

func (s *paymentService) GetInvoiceStatus(ctx context.Context, invoiceID string) (*dto.InvoiceStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tx, err := uow.TransactionRepository().FindOne(ctx, specification.ByKey{Key: invoiceID})
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrNotFound
	}

	// A pending row may just mean the webhook has not arrived yet; ask
	// the provider directly and reconcile if it already settled.
	if !tx.Status.IsTerminal() {
		if inv, provErr := s.provider.GetInvoice(ctx, invoiceID); provErr == nil {
			fresh := entity.TransactionStatus(invoicing.NormalizeStatus(inv.Status))
			if fresh != tx.Status {
				if err := s.HandleWebhook(ctx, &invoicing.WebhookPayload{
					Id:         inv.Id,
					ExternalId: inv.ExternalId,
					Status:     inv.Status,
					Amount:     inv.Amount,
				}); err == nil {
					tx.Status = fresh
				}
			}
		}
	}

	return &dto.InvoiceStatusResponse{
		InvoiceId: tx.Id,
		Status:    string(tx.Status),
	}, nil
}

func (s *paymentService) ListTransactions(ctx context.Context, limit, offset int) (*dto.TransactionListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	txs, err := uow.TransactionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	total, err := uow.TransactionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
		Total:        total,
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			Id:         tx.Id,
			ExternalId: tx.ExternalId,
			Amount:     tx.Amount,
			Status:     string(tx.Status),
			InvoiceURL: tx.InvoiceURL,
			CreatedAt:  tx.CreatedAt,
			UpdatedAt:  tx.UpdatedAt,
		})
	}

	return resp, nil
}
