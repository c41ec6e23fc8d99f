package util

import (
	"context"
	"net/http"

	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func UserIdFromCtx(ctx context.Context) (int64, error) {
	if ctx == nil {
		return 0, errors.New(int(errno.TokenEmpty), "missing context")
	}

	switch val := ctx.Value(biz.USER_KEY).(type) {
	case int64:
		return val, nil
	}

	return 0, errors.New(int(errno.TokenEmpty), "unauthorized")
}

func RoleFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if role, ok := ctx.Value(biz.ROLE_KEY).(string); ok {
		return role
	}
	return ""
}

// RequireAdmin guards the product/review management endpoints.
func RequireAdmin(ctx context.Context) error {
	if RoleFromCtx(ctx) != biz.RoleAdmin {
		return errors.New(int(errno.Forbidden), "admin role required")
	}
	return nil
}

func InjectUserId2Ctx(r *http.Request, userId int64, role string) {
	ctx := context.WithValue(r.Context(), biz.USER_KEY, userId)
	ctx = context.WithValue(ctx, biz.ROLE_KEY, role)
	*r = *r.WithContext(ctx)
}
