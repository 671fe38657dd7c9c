package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/public-awesome/marketplace-sub000/src/api/middleware"
	v1 "github.com/public-awesome/marketplace-sub000/src/api/v1"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
)

func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	gin.ForceConsoleColor()
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RecoverMiddleware())
	r.Use(middleware.RLog())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "X-CSRF-Token", "Authorization", "AccessToken", "Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Access-Control-Allow-Origin", "Access-Control-Allow-Headers"},
		AllowCredentials: true,
		MaxAge:           1 * time.Hour,
	}))
	loadV1(r, svcCtx)

	return r
}

func loadV1(r *gin.Engine, svcCtx *svc.ServerCtx) {
	api := r.Group("/api/v1")

	asks := api.Group("/asks")
	{
		asks.GET("", v1.GetAskHandler(svcCtx))
		asks.POST("", v1.SetAskHandler(svcCtx))
		asks.PUT("", v1.UpdateAskHandler(svcCtx))
		asks.DELETE("", v1.RemoveAskHandler(svcCtx))
		asks.POST("/accept", v1.AcceptAskHandler(svcCtx))
	}

	bids := api.Group("/bids")
	{
		bids.POST("", v1.SetBidHandler(svcCtx))
		bids.PUT("/:id", v1.UpdateBidHandler(svcCtx))
		bids.DELETE("/:id", v1.RemoveBidHandler(svcCtx))
		bids.POST("/:id/accept", v1.AcceptBidHandler(svcCtx))
	}

	collectionBids := api.Group("/collection-bids")
	{
		collectionBids.POST("", v1.SetCollectionBidHandler(svcCtx))
		collectionBids.PUT("/:id", v1.UpdateCollectionBidHandler(svcCtx))
		collectionBids.DELETE("/:id", v1.RemoveCollectionBidHandler(svcCtx))
		collectionBids.POST("/:id/accept", v1.AcceptCollectionBidHandler(svcCtx))
	}

	api.POST("/prune", v1.PruneExpiredHandler(svcCtx))

	orders := api.Group("/orders")
	{
		orders.GET("", v1.QueryOrdersHandler(svcCtx))
		orders.GET("/:id", v1.GetOrderHandler(svcCtx))
	}

	api.GET("/activities", v1.QueryActivitiesHandler(svcCtx))
	api.GET("/params", v1.GetParamsHandler(svcCtx))

	admin := api.Group("/admin")
	{
		admin.POST("/params", v1.UpdateParamsHandler(svcCtx))
		admin.POST("/collections", v1.RegisterCollectionHandler(svcCtx))
		admin.POST("/collection-denom", v1.SetCollectionDenomHandler(svcCtx))
		admin.POST("/listing-fee", v1.SetListingFeeHandler(svcCtx))
		admin.DELETE("/listing-fee", v1.RemoveListingFeeHandler(svcCtx))
		admin.POST("/min-expiry-reward", v1.SetMinExpiryRewardHandler(svcCtx))
		admin.DELETE("/min-expiry-reward", v1.RemoveMinExpiryRewardHandler(svcCtx))
	}
}
