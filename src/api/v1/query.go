package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/pkg/errcode"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xhttp"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
	service "github.com/public-awesome/marketplace-sub000/src/service/v1"
)

func GetOrderHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetOrder(c.Request.Context(), svcCtx, c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func GetAskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection := c.Query("collection")
		tokenID := c.Query("token_id")
		if collection == "" || tokenID == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetAsk(c.Request.Context(), svcCtx, collection, tokenID)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func QueryOrdersHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		res, err := service.QueryOrders(c.Request.Context(), svcCtx,
			c.Query("kind"), c.Query("collection"), c.Query("creator"), page, pageSize)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func QueryActivitiesHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c)
		res, err := service.QueryActivities(c.Request.Context(), svcCtx,
			c.Query("collection"), c.Query("event_type"), page, pageSize)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

func GetParamsHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := service.GetParams(c.Request.Context(), svcCtx)
		if err != nil {
			writeErr(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
