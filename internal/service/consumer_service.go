// Consumes content-changed events into the audit trail.
package service

import (
	"context"
	"encoding/json"

	"slm-marketing-be/internal/dto"
	"slm-marketing-be/internal/entity"
	"slm-marketing-be/internal/pkg/logger"
	"slm-marketing-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
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
		log:        log,
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
	var event dto.ContentChangedEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal content event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack malformed messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	entry := entity.ContentAuditLog{
		EntityType: event.EntityType,
		EntityId:   event.EntityId,
		Action:     event.Action,
		OccurredAt: event.OccurredAt,
	}

	if err := uow.AuditLogRepository().Create(ctx, &entry); err != nil {
		cs.log.Error("consumer", "Failed to persist audit entry", map[string]interface{}{
			"error":      err.Error(),
			"entityType": event.EntityType,
			"entityId":   event.EntityId.String(),
		})
		msg.Nack() // retriable
		return
	}

	msg.Ack()
}
