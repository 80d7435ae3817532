package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

// IConsumerService drains the audit queue into the activity_logs table.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("audit-consumer", "failed to unmarshal audit message", map[string]interface{}{"error": err.Error()})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	createdAt := payload.OccurredAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err := uow.ActivityLogRepository().Create(ctx, &entity.ActivityLog{
		LogId:      uuid.New(),
		AdminId:    payload.AdminId,
		ActionType: entity.ActionType(payload.ActionType),
		Changes:    payload.Changes,
		IpAddress:  payload.IpAddress,
		CreatedAt:  createdAt,
	})
	if err != nil {
		cs.logger.Error("audit-consumer", "failed to persist activity log", map[string]interface{}{
			"error":  err.Error(),
			"action": payload.ActionType,
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
