// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "autopile/app/api/internal/logic/cart"
	"autopile/app/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetCartItemsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewGetCartItemsLogic(r.Context(), svcCtx)
		resp, err := l.GetCartItems()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
