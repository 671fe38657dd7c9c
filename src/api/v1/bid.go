package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	service "github.com/public-awesome/marketplace-sub000/src/service/v1"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetBid(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func UpdateBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.UpdateBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RemoveBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RemoveBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.RemoveBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func AcceptBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AcceptBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.AcceptBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
