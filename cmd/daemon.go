package cmd

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/threading"
	"go.uber.org/zap"

	"github.com/public-awesome/marketplace-sub000/src/api/router"
	"github.com/public-awesome/marketplace-sub000/src/app"
	"github.com/public-awesome/marketplace-sub000/src/config"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
	"github.com/public-awesome/marketplace-sub000/src/service/svc"
)

var DaemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "serve the order matching and settlement API.",
	Long:  "serve the order matching and settlement API.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		onExit := make(chan error, 1)

		threading.GoSafe(func() {
			cfg, err := config.UnmarshalCmdConfig()
			if err != nil {
				onExit <- err
				return
			}

			serverCtx, err := svc.NewServiceContext(cfg)
			if err != nil {
				onExit <- err
				return
			}

			xzap.WithContext(ctx).Info("marketplace server start", zap.Any("config", cfg))

			if cfg.Monitor != nil && cfg.Monitor.PprofEnable {
				monitor := cfg.Monitor
				threading.GoSafe(func() {
					if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", monitor.PprofPort), nil); err != nil {
						xzap.WithContext(ctx).Error("pprof listener stopped", zap.Error(err))
					}
				})
			}

			r := router.NewRouter(serverCtx)
			platform, err := app.NewPlatform(cfg, r, serverCtx)
			if err != nil {
				onExit <- err
				return
			}
			onExit <- platform.Start()
		})

		onSignal := make(chan os.Signal, 1)
		signal.Notify(onSignal, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-onSignal:
			cancel()
			xzap.WithContext(context.Background()).Info("exit by signal", zap.String("signal", sig.String()))
		case err := <-onExit:
			cancel()
			if err != nil {
				xzap.WithContext(context.Background()).Error("exit by error", zap.Error(err))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(DaemonCmd)
}
