package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	service "github.com/public-awesome/marketplace-sub000/src/service/v1"
	types "github.com/public-awesome/marketplace-sub000/src/types/v1"
)

func UpdateParamsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateParamsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.UpdateParams(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func SetCollectionDenomHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetCollectionDenomReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetCollectionDenom(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func SetListingFeeHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetListingFeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetListingFee(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RemoveListingFeeHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RemoveListingFeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.RemoveListingFee(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func SetMinExpiryRewardHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetMinExpiryRewardReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.SetMinExpiryReward(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RemoveMinExpiryRewardHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RemoveMinExpiryRewardReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.RemoveMinExpiryReward(c.Request.Context(), svcCtx, &req)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func RegisterCollectionHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterCollectionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.RegisterCollection(c.Request.Context(), svcCtx, &req); err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}
