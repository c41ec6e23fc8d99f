package mq

import (
	"context"
	"encoding/base64"
	"encoding/json"

	commonmq "autopile/app/common/mq"
	productmodel "autopile/app/dal/product"
	"autopile/app/services/inventory/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartStockConsumer runs a blocking consume loop over the inventory topic.
// Messages are committed only after the batch is processed, so a crash
// mid-batch redelivers it (at-least-once). Malformed payloads are committed
// and dropped to keep a poison message from wedging the partition.
func StartStockConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	if len(sc.Config.KafkaConf.Brokers) == 0 || sc.Config.KafkaConf.InventoryTopic == "" {
		return nil
	}
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     sc.Config.KafkaConf.Brokers,
		GroupID:     sc.Config.KafkaConf.Group,
		Topic:       sc.Config.KafkaConf.InventoryTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logx.Errorf("fetch inventory message: %v", err)
			continue
		}

		batch, err := decodeBatch(m.Value)
		if err != nil {
			logx.Errorf("drop malformed inventory message at offset %d: %v", m.Offset, err)
			_ = r.CommitMessages(ctx, m)
			continue
		}

		if err := HandleBatch(ctx, sc.ProductModel, batch); err != nil {
			// store trouble: leave the message uncommitted for redelivery
			logx.Errorf("process stock batch order=%d: %v", batch.OrderId, err)
			continue
		}
		_ = r.CommitMessages(ctx, m)
	}
}

func decodeBatch(value []byte) (commonmq.StockAdjustmentBatch, error) {
	var batch commonmq.StockAdjustmentBatch
	raw, err := base64.StdEncoding.DecodeString(string(value))
	if err != nil {
		return batch, err
	}
	err = json.Unmarshal(raw, &batch)
	return batch, err
}

// HandleBatch walks the batch line by line. Unknown or malformed product ids
// are skipped with a log line, never retried. A decrement happens only when
// current stock strictly exceeds the requested quantity; redelivered batches
// therefore re-decrement until the guard stops them.
func HandleBatch(ctx context.Context, products productmodel.ProductsModel, batch commonmq.StockAdjustmentBatch) error {
	for _, line := range batch.Lines {
		p, err := products.FindOne(ctx, line.ProductId)
		switch err {
		case nil:
		case productmodel.ErrInvalidObjectId:
			logx.Errorf("skip line with malformed product id %q in order %s", line.ProductId, batch.OrderNumber)
			continue
		case productmodel.ErrNotFound:
			logx.Errorf("skip missing product %s (%s) in order %s", line.ProductId, line.ProductName, batch.OrderNumber)
			continue
		default:
			return err
		}

		if p.StockQuantity > line.Quantity {
			p.StockQuantity -= line.Quantity
			p.IsInStock = p.StockQuantity > 0
			if err := products.Update(ctx, p); err != nil {
				return err
			}
		} else {
			logx.Infof("stock guard: product %s has %d, requested %d, leaving untouched",
				line.ProductId, p.StockQuantity, line.Quantity)
		}
	}
	return nil
}
