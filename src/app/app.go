package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/public-awesome/marketplace-sub000/src/config"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
)

// Platform ties the config, the router and the service context into one
// runnable HTTP service.
type Platform struct {
	config    *config.Config
	router    *gin.Engine
	serverCtx *svc.ServerCtx
}

func NewPlatform(config *config.Config, router *gin.Engine, serverCtx *svc.ServerCtx) (*Platform, error) {
	return &Platform{
		config:    config,
		router:    router,
		serverCtx: serverCtx,
	}, nil
}

// Start blocks serving the API until the listener fails.
func (p *Platform) Start() error {
	addr := fmt.Sprintf(":%d", p.config.Api.Port)
	xzap.WithContext(context.Background()).Info("marketplace engine run", zap.String("addr", addr))
	return p.router.Run(addr)
}
