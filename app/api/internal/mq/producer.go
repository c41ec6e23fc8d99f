package mq

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	commonmq "autopile/app/common/mq"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
)

// InventoryPublisher hands committed orders to the stock reconciler. The
// publish happens after the order transaction commits and is best-effort:
// callers log a failed publish, they never roll the order back for it.
type InventoryPublisher interface {
	PublishStockAdjustment(ctx context.Context, batch commonmq.StockAdjustmentBatch) error
	Close() error
}

type kafkaInventoryPublisher struct {
	writer *kafka.Writer
}

// NewInventoryPublisher returns nil when no brokers are configured; callers
// nil-check and skip the publish.
func NewInventoryPublisher(brokers []string, topic string) InventoryPublisher {
	if len(brokers) == 0 {
		return nil
	}
	return &kafkaInventoryPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *kafkaInventoryPublisher) PublishStockAdjustment(ctx context.Context, batch commonmq.StockAdjustmentBatch) error {
	raw, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	// payloads travel base64-encoded; the consumer decodes before unmarshal
	encoded := base64.StdEncoding.EncodeToString(raw)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(batch.OrderId, 10)),
		Value: []byte(encoded),
	})
}

func (p *kafkaInventoryPublisher) Close() error {
	return p.writer.Close()
}

// EmailEnqueuer queues transactional mail for the email worker.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, msg commonmq.EmailMessage) error
	Close() error
}

type asynqEmailEnqueuer struct {
	client *asynq.Client
}

// NewEmailEnqueuer returns nil when asynq is not configured.
func NewEmailEnqueuer(addr, password string, db int) EmailEnqueuer {
	if addr == "" {
		return nil
	}
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &asynqEmailEnqueuer{client: client}
}

func (e *asynqEmailEnqueuer) EnqueueEmail(ctx context.Context, msg commonmq.EmailMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	task := asynq.NewTask(commonmq.TaskSendEmail, payload)
	_, err = e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second))
	return err
}

func (e *asynqEmailEnqueuer) Close() error {
	return e.client.Close()
}
