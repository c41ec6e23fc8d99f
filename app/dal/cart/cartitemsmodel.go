package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CartItemsModel = (*defaultCartItemsModel)(nil)

type (
	// CartItemsModel is the authoritative store for cart lines; the per-user
	// cart cache in dal/cache is a derived, best-effort view.
	CartItemsModel interface {
		Insert(ctx context.Context, data *CartItems) (sql.Result, error)
		FindOne(ctx context.Context, id int64) (*CartItems, error)
		FindOneByUserProduct(ctx context.Context, userId int64, productId string) (*CartItems, error)
		ListByUserId(ctx context.Context, userId int64) ([]*CartItems, error)
		CountByUserId(ctx context.Context, userId int64) (int64, error)
		Update(ctx context.Context, data *CartItems) error
		Delete(ctx context.Context, id int64) error
		DeleteByUserId(ctx context.Context, userId int64) error
	}

	defaultCartItemsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	CartItems struct {
		Id        int64     `db:"id" json:"id"`
		UserId    int64     `db:"user_id" json:"userId"`
		ProductId string    `db:"product_id" json:"productId"`
		Quantity  int64     `db:"quantity" json:"quantity"`
		CreatedAt time.Time `db:"created_at" json:"createdAt"`
	}
)

const cartItemsRows = "`id`, `user_id`, `product_id`, `quantity`, `created_at`"

// NewCartItemsModel returns a model for the cart_items table.
func NewCartItemsModel(conn sqlx.SqlConn) CartItemsModel {
	return &defaultCartItemsModel{
		conn:  conn,
		table: "`cart_items`",
	}
}

func (m *defaultCartItemsModel) Insert(ctx context.Context, data *CartItems) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (`user_id`, `product_id`, `quantity`, `created_at`) values (?, ?, ?, ?)", m.table)
	return m.conn.ExecCtx(ctx, query, data.UserId, data.ProductId, data.Quantity, data.CreatedAt)
}

func (m *defaultCartItemsModel) FindOne(ctx context.Context, id int64) (*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", cartItemsRows, m.table)
	var resp CartItems
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

func (m *defaultCartItemsModel) FindOneByUserProduct(ctx context.Context, userId int64, productId string) (*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? and `product_id` = ? limit 1", cartItemsRows, m.table)
	var resp CartItems
	err := m.conn.QueryRowCtx(ctx, &resp, query, userId, productId)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultCartItemsModel) ListByUserId(ctx context.Context, userId int64) ([]*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `id` asc", cartItemsRows, m.table)
	var rows []CartItems
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, userId); err != nil {
		return nil, err
	}
	resp := make([]*CartItems, 0, len(rows))
	for i := range rows {
		resp = append(resp, &rows[i])
	}
	return resp, nil
}

func (m *defaultCartItemsModel) CountByUserId(ctx context.Context, userId int64) (int64, error) {
	query := fmt.Sprintf("select count(1) from %s where `user_id` = ?", m.table)
	var total int64
	if err := m.conn.QueryRowCtx(ctx, &total, query, userId); err != nil {
		return 0, err
	}
	return total, nil
}

func (m *defaultCartItemsModel) Update(ctx context.Context, data *CartItems) error {
	query := fmt.Sprintf("update %s set `quantity` = ? where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, data.Quantity, data.Id)
	return err
}

func (m *defaultCartItemsModel) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("delete from %s where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, id)
	return err
}

func (m *defaultCartItemsModel) DeleteByUserId(ctx context.Context, userId int64) error {
	query := fmt.Sprintf("delete from %s where `user_id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, userId)
	return err
}
