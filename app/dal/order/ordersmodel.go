package order

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ OrdersModel = (*defaultOrdersModel)(nil)

type (
	// OrdersModel persists order headers. Mutating methods accept an optional
	// sqlx.Session so multi-step changes run inside the caller's transaction;
	// pass nil to execute on the shared connection. There is no version
	// column: concurrent updates to the same order are last-write-wins
	// through MySQL row locks.
	OrdersModel interface {
		Insert(ctx context.Context, session sqlx.Session, data *Orders) error
		FindOne(ctx context.Context, id int64) (*Orders, error)
		FindOneByOrderNumber(ctx context.Context, orderNumber string) (*Orders, error)
		ListByUserId(ctx context.Context, userId int64) ([]*Orders, error)
		Update(ctx context.Context, session sqlx.Session, data *Orders) error
		Delete(ctx context.Context, session sqlx.Session, id int64) error
	}

	defaultOrdersModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Orders struct {
		Id                 int64     `db:"id" json:"id"`
		UserId             int64     `db:"user_id" json:"userId"`
		OrderNumber        string    `db:"order_number" json:"orderNumber"`
		OrderDate          time.Time `db:"order_date" json:"orderDate"`
		Status             string    `db:"status" json:"status"`
		PaymentStatus      string    `db:"payment_status" json:"paymentStatus"`
		PaymentMethod      string    `db:"payment_method" json:"paymentMethod"`
		ShippingLine1      string    `db:"shipping_line1" json:"shippingLine1"`
		ShippingLine2      string    `db:"shipping_line2" json:"shippingLine2"`
		ShippingCity       string    `db:"shipping_city" json:"shippingCity"`
		ShippingState      string    `db:"shipping_state" json:"shippingState"`
		ShippingCountry    string    `db:"shipping_country" json:"shippingCountry"`
		ShippingPostalCode string    `db:"shipping_postal_code" json:"shippingPostalCode"`
		SubtotalCents      int64     `db:"subtotal_cents" json:"subtotalCents"`
		DeliveryFeeCents   int64     `db:"delivery_fee_cents" json:"deliveryFeeCents"`
		TotalCents         int64     `db:"total_cents" json:"totalCents"`
	}

	// OrderWithItems is the composed view stored in the per-user order-list
	// cache and returned by the read paths.
	OrderWithItems struct {
		Order Orders        `json:"order"`
		Items []*OrderItems `json:"items"`
	}
)

const ordersRows = "`id`, `user_id`, `order_number`, `order_date`, `status`, `payment_status`, `payment_method`, `shipping_line1`, `shipping_line2`, `shipping_city`, `shipping_state`, `shipping_country`, `shipping_postal_code`, `subtotal_cents`, `delivery_fee_cents`, `total_cents`"

// NewOrdersModel returns a model for the orders table.
func NewOrdersModel(conn sqlx.SqlConn) OrdersModel {
	return &defaultOrdersModel{
		conn:  conn,
		table: "`orders`",
	}
}

func (m *defaultOrdersModel) session(s sqlx.Session) sqlx.Session {
	if s != nil {
		return s
	}
	return m.conn
}

func (m *defaultOrdersModel) Insert(ctx context.Context, session sqlx.Session, data *Orders) error {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", m.table, ordersRows)
	_, err := m.session(session).ExecCtx(ctx, query,
		data.Id, data.UserId, data.OrderNumber, data.OrderDate, data.Status, data.PaymentStatus, data.PaymentMethod,
		data.ShippingLine1, data.ShippingLine2, data.ShippingCity, data.ShippingState, data.ShippingCountry,
		data.ShippingPostalCode, data.SubtotalCents, data.DeliveryFeeCents, data.TotalCents)
	return err
}

func (m *defaultOrdersModel) FindOne(ctx context.Context, id int64) (*Orders, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", ordersRows, m.table)
	var resp Orders
	err := m.conn.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultOrdersModel) FindOneByOrderNumber(ctx context.Context, orderNumber string) (*Orders, error) {
	query := fmt.Sprintf("select %s from %s where `order_number` = ? limit 1", ordersRows, m.table)
	var resp Orders
	err := m.conn.QueryRowCtx(ctx, &resp, query, orderNumber)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultOrdersModel) ListByUserId(ctx context.Context, userId int64) ([]*Orders, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `order_date` desc", ordersRows, m.table)
	var rows []Orders
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, userId); err != nil {
		return nil, err
	}
	resp := make([]*Orders, 0, len(rows))
	for i := range rows {
		resp = append(resp, &rows[i])
	}
	return resp, nil
}

func (m *defaultOrdersModel) Update(ctx context.Context, session sqlx.Session, data *Orders) error {
	query := fmt.Sprintf("update %s set `status` = ?, `payment_status` = ?, `payment_method` = ?, `shipping_line1` = ?, `shipping_line2` = ?, `shipping_city` = ?, `shipping_state` = ?, `shipping_country` = ?, `shipping_postal_code` = ?, `subtotal_cents` = ?, `delivery_fee_cents` = ?, `total_cents` = ? where `id` = ?", m.table)
	_, err := m.session(session).ExecCtx(ctx, query,
		data.Status, data.PaymentStatus, data.PaymentMethod,
		data.ShippingLine1, data.ShippingLine2, data.ShippingCity, data.ShippingState, data.ShippingCountry,
		data.ShippingPostalCode, data.SubtotalCents, data.DeliveryFeeCents, data.TotalCents, data.Id)
	return err
}

func (m *defaultOrdersModel) Delete(ctx context.Context, session sqlx.Session, id int64) error {
	query := fmt.Sprintf("delete from %s where `id` = ?", m.table)
	_, err := m.session(session).ExecCtx(ctx, query, id)
	return err
}
