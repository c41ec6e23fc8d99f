// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"fmt"
	"strings"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/util"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateUserInfoLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateUserInfoLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateUserInfoLogic {
	return &UpdateUserInfoLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UpdateUserInfo patches the profile and overwrites the cached view with the
// fresh value; no invalidate-then-reload round trip.
func (l *UpdateUserInfoLogic) UpdateUserInfo(req *types.UpdateUserInfoRequest) (*types.UserInfo, error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	user, err := l.svcCtx.UserModel.FindOne(l.ctx, userId)
	if err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(int(errno.UserNotFound), fmt.Sprintf("user %d not found", userId))
		}
		l.Errorf("load user %d: %v", userId, err)
		return nil, helper.BizError(err, "failed to load user")
	}

	if username := strings.TrimSpace(req.Username); username != "" && username != user.Username {
		if _, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, username); err == nil {
			return nil, errors.New(int(errno.UserAlreadyExists), "username already taken")
		} else if err != usermodel.ErrNotFound {
			l.Errorf("lookup username %s: %v", username, err)
			return nil, helper.BizError(err, "failed to check username")
		}
		user.Username = username
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = email
	}

	if err := l.svcCtx.UserModel.Update(l.ctx, user); err != nil {
		l.Errorf("update user %d: %v", userId, err)
		return nil, helper.BizError(err, "failed to update user")
	}

	info := user.Info()
	l.svcCtx.UserInfoCache.Set(l.ctx, userId, info)

	resp := helper.ToUserInfo(info)
	return &resp, nil
}
