// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"strings"
	"time"

	"autopile/app/api/internal/logic/helper"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	"autopile/app/common/mq"
	"autopile/app/common/snowflake"
	"autopile/app/common/token"
	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterRequest) (*types.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || len(req.Password) < 8 {
		return nil, errors.New(int(errno.InvalidParam), "username, email and a password of at least 8 characters are required")
	}

	if _, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, username); err == nil {
		return nil, errors.New(int(errno.UserAlreadyExists), "username already taken")
	} else if err != usermodel.ErrNotFound {
		l.Errorf("lookup username %s: %v", username, err)
		return nil, helper.BizError(err, "failed to check username")
	}
	if _, err := l.svcCtx.UserModel.FindOneByEmail(l.ctx, email); err == nil {
		return nil, errors.New(int(errno.UserAlreadyExists), "email already registered")
	} else if err != usermodel.ErrNotFound {
		l.Errorf("lookup email %s: %v", email, err)
		return nil, helper.BizError(err, "failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Errorf("hash password: %v", err)
		return nil, helper.BizError(err, "failed to register")
	}

	user := &usermodel.Users{
		Id:        snowflake.Next(),
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		Role:      biz.RoleUser,
		CreatedAt: time.Now(),
	}
	if _, err := l.svcCtx.UserModel.Insert(l.ctx, user); err != nil {
		l.Errorf("insert user %s: %v", username, err)
		return nil, helper.BizError(err, "failed to register")
	}

	if l.svcCtx.Email != nil {
		msg := mq.EmailMessage{
			To:       email,
			Subject:  "Welcome to AutoPile",
			Template: "welcome",
			Params:   map[string]string{"username": username},
		}
		if err := l.svcCtx.Email.EnqueueEmail(l.ctx, msg); err != nil {
			l.Errorf("enqueue welcome email for user %d: %v", user.Id, err)
		}
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
