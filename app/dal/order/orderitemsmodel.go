package order

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ OrderItemsModel = (*defaultOrderItemsModel)(nil)

type (
	OrderItemsModel interface {
		Insert(ctx context.Context, session sqlx.Session, data *OrderItems) error
		ListByOrderId(ctx context.Context, orderId int64) ([]*OrderItems, error)
		Update(ctx context.Context, session sqlx.Session, data *OrderItems) error
		Delete(ctx context.Context, session sqlx.Session, id int64) error
		DeleteByOrderId(ctx context.Context, session sqlx.Session, orderId int64) error
	}

	defaultOrderItemsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	// OrderItems snapshots product name and price at order time; later
	// catalog edits never reprice an existing line.
	OrderItems struct {
		Id          int64  `db:"id" json:"id"`
		OrderId     int64  `db:"order_id" json:"orderId"`
		ProductId   string `db:"product_id" json:"productId"`
		ProductName string `db:"product_name" json:"productName"`
		PriceCents  int64  `db:"price_cents" json:"priceCents"`
		Quantity    int64  `db:"quantity" json:"quantity"`
		TotalCents  int64  `db:"total_cents" json:"totalCents"`
	}
)

const orderItemsRows = "`id`, `order_id`, `product_id`, `product_name`, `price_cents`, `quantity`, `total_cents`"

// NewOrderItemsModel returns a model for the order_items table.
func NewOrderItemsModel(conn sqlx.SqlConn) OrderItemsModel {
	return &defaultOrderItemsModel{
		conn:  conn,
		table: "`order_items`",
	}
}

func (m *defaultOrderItemsModel) session(s sqlx.Session) sqlx.Session {
	if s != nil {
		return s
	}
	return m.conn
}

func (m *defaultOrderItemsModel) Insert(ctx context.Context, session sqlx.Session, data *OrderItems) error {
	query := fmt.Sprintf("insert into %s (`order_id`, `product_id`, `product_name`, `price_cents`, `quantity`, `total_cents`) values (?, ?, ?, ?, ?, ?)", m.table)
	res, err := m.session(session).ExecCtx(ctx, query,
		data.OrderId, data.ProductId, data.ProductName, data.PriceCents, data.Quantity, data.TotalCents)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		data.Id = id
	}
	return nil
}

func (m *defaultOrderItemsModel) ListByOrderId(ctx context.Context, orderId int64) ([]*OrderItems, error) {
	query := fmt.Sprintf("select %s from %s where `order_id` = ? order by `id` asc", orderItemsRows, m.table)
	var rows []OrderItems
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, orderId); err != nil {
		return nil, err
	}
	resp := make([]*OrderItems, 0, len(rows))
	for i := range rows {
		resp = append(resp, &rows[i])
	}
	return resp, nil
}

func (m *defaultOrderItemsModel) Update(ctx context.Context, session sqlx.Session, data *OrderItems) error {
	query := fmt.Sprintf("update %s set `product_name` = ?, `price_cents` = ?, `quantity` = ?, `total_cents` = ? where `id` = ?", m.table)
	_, err := m.session(session).ExecCtx(ctx, query, data.ProductName, data.PriceCents, data.Quantity, data.TotalCents, data.Id)
	return err
}

func (m *defaultOrderItemsModel) Delete(ctx context.Context, session sqlx.Session, id int64) error {
	query := fmt.Sprintf("delete from %s where `id` = ?", m.table)
	_, err := m.session(session).ExecCtx(ctx, query, id)
	return err
}

func (m *defaultOrderItemsModel) DeleteByOrderId(ctx context.Context, session sqlx.Session, orderId int64) error {
	query := fmt.Sprintf("delete from %s where `order_id` = ?", m.table)
	_, err := m.session(session).ExecCtx(ctx, query, orderId)
	return err
}
