package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	service "github.com/public-awesome/marketplace-sub000/src/service/v1"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetAskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetAskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetAsk(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func UpdateAskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateAskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.UpdateAsk(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RemoveAskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RemoveAskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.RemoveAsk(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func AcceptAskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AcceptAskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.AcceptAsk(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func PruneExpiredHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PruneExpiredReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.PruneExpired(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
