// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package middleware

import (
	"errors"
	"net/http"

	"autopile/app/common/consts/biz"
	"autopile/app/common/consts/errno"
	"autopile/app/common/token"
	"autopile/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

type AuthMiddleware struct {
	AccessSecret  string
	RefreshSecret string
}

func NewAuthMiddleware(accessSecret, refreshSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
	}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.ACCESSTOKEN); headerToken != "" {
			accessToken = headerToken
		}
		refreshToken := ""
		if cookie, err := r.Cookie(biz.REFRESHTOKEN); err == nil {
			refreshToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.REFRESHTOKEN); headerToken != "" {
			refreshToken = headerToken
		}

		if accessToken == "" && refreshToken == "" {
			httpx.Error(w, xerrors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims, err := token.Parse(accessToken, m.AccessSecret)
		if err == nil {
			util.InjectUserId2Ctx(r, claims.UserID, claims.Role)
			next(w, r)
			return
		}

		if !errors.Is(err, jwt.ErrTokenExpired) || refreshToken == "" {
			httpx.Error(w, xerrors.New(int(errno.AccessTokenExpired), "access token invalid"))
			return
		}

		// access token expired: rotate the pair off the refresh token
		rclaims, err := token.Parse(refreshToken, m.RefreshSecret)
		if err != nil {
			httpx.Error(w, xerrors.New(int(errno.RefreshTokenExpired), "refresh token expired"))
			return
		}

		pair, _, err := token.BuildPair(m.AccessSecret, m.RefreshSecret, biz.TokenExpire, biz.TokenRenewalExpire,
			rclaims.UserID, rclaims.Username, rclaims.Role)
		if err != nil {
			httpx.Error(w, xerrors.New(int(errno.InternalError), "token refresh failed"))
			return
		}

		util.SetTokenCookies(w, pair.AccessToken, pair.ExpiresIn, pair.RefreshToken)
		util.InjectUserId2Ctx(r, rclaims.UserID, rclaims.Role)
		next(w, r)
	}
}
