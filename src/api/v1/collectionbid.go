package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	service "github.com/public-awesome/marketplace-sub000/src/service/v1"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func SetCollectionBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetCollectionBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetCollectionBid(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func UpdateCollectionBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.UpdateCollectionBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RemoveCollectionBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RemoveBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.RemoveCollectionBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func AcceptCollectionBidHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AcceptCollectionBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.AcceptCollectionBid(c.Request.Context(), svcCtx, c.Param("id"), &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
