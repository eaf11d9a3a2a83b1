package cmd

import (
	"context"
	"os"
	"time"

	"github.com/BerniceZTT/estate_end/config"
	"github.com/BerniceZTT/estate_end/repository"
	"github.com/BerniceZTT/estate_end/utils"

	"github.com/spf13/cobra"
)

// 连接数据库时 ping 的最长等待时间
const mongoConnectWait = 30 * time.Second

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "estate",
	Short: "Real estate communication platform",
	Long: `Backend for a real estate communication platform: import property
listings from Excel workbooks, record call/WhatsApp contact attempts
and their requirement outcomes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		utils.InitLogger(cfg.LogLevel, cfg.Debug())
		return nil
	},
}

// Execute 执行命令行入口
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
}

// connectMongo 按配置连接数据库并确保集合和索引存在
func connectMongo(ctx context.Context) (*repository.MongoDB, error) {
	db, err := repository.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDB, mongoConnectWait)
	if err != nil {
		return nil, err
	}
	if err := db.InitializeCollections(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("初始化数据库集合失败")
	}
	return db, nil
}

// closeMongo 关闭数据库连接，失败只记录日志
func closeMongo(db *repository.MongoDB) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Close(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("关闭数据库连接失败")
	}
}
