package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	items, _ := json.Marshal(t.Items)
	customer, _ := json.Marshal(t.Customer)
	return &model.Transaction{
		Id:         t.Id,
		ExternalId: t.ExternalId,
		Amount:     t.Amount,
		Status:     string(t.Status),
		Items:      datatypes.JSON(items),
		Customer:   datatypes.JSON(customer),
		InvoiceURL: t.InvoiceURL,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	var items []entity.CartItem
	var customer entity.CustomerDetails
	// Rows written before the items column existed hold NULL; treat parse
	// failures as an empty cart rather than an error.
	_ = json.Unmarshal(t.Items, &items)
	_ = json.Unmarshal(t.Customer, &customer)
	return &entity.Transaction{
		Id:         t.Id,
		ExternalId: t.ExternalId,
		Amount:     t.Amount,
		Status:     entity.TransactionStatus(t.Status),
		Items:      items,
		Customer:   customer,
		InvoiceURL: t.InvoiceURL,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntities(models []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}
