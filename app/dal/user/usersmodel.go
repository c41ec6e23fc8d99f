package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ UsersModel = (*defaultUsersModel)(nil)

type (
	// UsersModel is the relational source of truth for accounts. Caching of
	// the profile view lives in dal/cache, not here.
	UsersModel interface {
		Insert(ctx context.Context, data *Users) (sql.Result, error)
		FindOne(ctx context.Context, id int64) (*Users, error)
		FindOneByUsername(ctx context.Context, username string) (*Users, error)
		FindOneByEmail(ctx context.Context, email string) (*Users, error)
		Update(ctx context.Context, data *Users) error
	}

	defaultUsersModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Users struct {
		Id        int64     `db:"id"`
		Username  string    `db:"username"`
		Email     string    `db:"email"`
		Password  string    `db:"password"`
		Role      string    `db:"role"`
		CreatedAt time.Time `db:"created_at"`
	}

	// UserInfo is the cacheable profile view (no credential fields).
	UserInfo struct {
		Id        int64     `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}
)

const usersRows = "`id`, `username`, `email`, `password`, `role`, `created_at`"

// NewUsersModel returns a model for the users table.
func NewUsersModel(conn sqlx.SqlConn) UsersModel {
	return &defaultUsersModel{
		conn:  conn,
		table: "`users`",
	}
}

func (u *Users) Info() *UserInfo {
	return &UserInfo{
		Id:        u.Id,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (m *defaultUsersModel) Insert(ctx context.Context, data *Users) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?)", m.table, usersRows)
	return m.conn.ExecCtx(ctx, query, data.Id, data.Username, data.Email, data.Password, data.Role, data.CreatedAt)
}

func (m *defaultUsersModel) FindOne(ctx context.Context, id int64) (*Users, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", usersRows, m.table)
	var resp Users
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

func (m *defaultUsersModel) FindOneByUsername(ctx context.Context, username string) (*Users, error) {
	query := fmt.Sprintf("select %s from %s where `username` = ? limit 1", usersRows, m.table)
	var resp Users
	err := m.conn.QueryRowCtx(ctx, &resp, query, username)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultUsersModel) FindOneByEmail(ctx context.Context, email string) (*Users, error) {
	query := fmt.Sprintf("select %s from %s where `email` = ? limit 1", usersRows, m.table)
	var resp Users
	err := m.conn.QueryRowCtx(ctx, &resp, query, email)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultUsersModel) Update(ctx context.Context, data *Users) error {
	query := fmt.Sprintf("update %s set `username` = ?, `email` = ?, `password` = ?, `role` = ? where `id` = ?", m.table)
	_, err := m.conn.ExecCtx(ctx, query, data.Username, data.Email, data.Password, data.Role, data.Id)
	return err
}
