// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"fmt"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetUserInfoLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetUserInfoLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetUserInfoLogic {
	return &GetUserInfoLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetUserInfo is read-through: the sliding-window profile cache first, then
// the store, re-populating the cache on a fallback hit.
func (l *GetUserInfoLogic) GetUserInfo() (*types.UserInfo, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := l.svcCtx.UserInfoCache.Get(l.ctx, userId); ok {
		resp := helper.ToUserInfo(cached)
		return &resp, nil
	}

	user, err := l.svcCtx.UserModel.FindOne(l.ctx, userId)
	if err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(int(errno.UserNotFound), fmt.Sprintf("user %d not found", userId))
		}
		l.Errorf("load user %d: %v", userId, err)
		return nil, helper.BizError(err, "failed to load user")
	}

	info := user.Info()
	l.svcCtx.UserInfoCache.Set(l.ctx, userId, info)

	resp := helper.ToUserInfo(info)
	return &resp, nil
}
