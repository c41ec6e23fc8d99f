package mq

// Queue channel names and task types shared between producers and the
// background workers.
const (
	InventoryTopic = "inventory"

	TaskSendEmail = "email:send"
)

// StockAdjustmentLine is one order line inside a stock-adjustment batch.
// ProductName is carried for log readability only.
type StockAdjustmentLine struct {
	ProductId   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// StockAdjustmentBatch is published to the inventory topic after an order
// commits. Delivery is at-least-once; the consumer guards each decrement
// with a stock check instead of subtracting blindly.
type StockAdjustmentBatch struct {
	OrderId     int64                 `json:"order_id"`
	OrderNumber string                `json:"order_number"`
	Lines       []StockAdjustmentLine `json:"lines"`
}

// EmailMessage is the payload of the email:send asynq task.
type EmailMessage struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params,omitempty"`
}
