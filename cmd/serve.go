package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/estate_end/controllers"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/routes"
	"github.com/BerniceZTT/estate_end/service"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// 设置Gin模式
	if cfg.Debug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	utils.Logger.Info().Msg("开始系统初始化...")
	db, err := connectMongo(cmd.Context())
	if err != nil {
		return fmt.Errorf("连接MongoDB失败: %w", err)
	}
	defer closeMongo(db)

	propertyRepo := repository.NewPropertyRepository(db)
	callRepo := repository.NewCallRepository(db)

	deps := routes.Dependencies{
		Properties:   controllers.NewPropertyController(service.NewPropertyService(propertyRepo), cfg.MaxUploadBytes()),
		Contacts:     controllers.NewContactController(service.NewContactService(propertyRepo, callRepo)),
		Health:       controllers.NewHealthController(db),
		Metrics:      cfg.Metrics.Enabled,
		AllowOrigins: cfg.CORS.AllowOrigins,
	}
	if cfg.OperationLog.Enabled {
		deps.OperationLogs = repository.NewOperationLogRepository(db)
	}
	router := routes.NewRouter(deps)
	utils.Logger.Info().Msg("系统初始化完成")

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("启动服务器失败: %w", err)
		}
		return nil
	case <-quit:
	}
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭异常: %w", err)
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
	return nil
}
