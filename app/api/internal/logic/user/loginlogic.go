// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	"autopile/app/common/token"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, req.Username)
	if err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(int(errno.InvalidCredentials), "invalid username or password")
		}
		l.Errorf("lookup user %s: %v", req.Username, err)
		return nil, helper.BizError(err, "failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New(int(errno.InvalidCredentials), "invalid username or password")
	}

	pair, _, err := token.BuildPair(l.svcCtx.Config.AuthConf.AccessSecret, l.svcCtx.Config.AuthConf.RefreshSecret,
		biz.TokenExpire, biz.TokenRenewalExpire, user.Id, user.Username, user.Role)
	if err != nil {
		l.Errorf("sign tokens for user %d: %v", user.Id, err)
		return nil, helper.BizError(err, "failed to issue tokens")
	}

	l.svcCtx.UserInfoCache.Set(l.ctx, user.Id, user.Info())

	return &types.AuthResponse{
		User:         helper.ToUserInfo(user.Info()),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
