// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "autopile/app/api/internal/logic/review"
	"autopile/app/api/internal/svc"
	"autopile/app/api/internal/types"
	"autopile/app/common/consts/errno"
	"autopile/app/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteReviewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ReviewPathRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewDeleteReviewLogic(r.Context(), svcCtx)
		if err := l.DeleteReview(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, response.NewResponse(errno.StatusOK, "success"))
		}
	}
}
