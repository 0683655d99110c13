package cmd

import (
	"context"

	"github.com/calbec/medialog/config"
	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the media server",
	Long:  `start the media server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := newMediaManager(cfg, log)
		if err != nil {
			log.Fatal("failed to create media manager", zap.Error(err))
		}

		if err := m.Load(context.TODO()); err != nil {
			log.Fatal("failed to load collections", zap.Error(err))
		}

		server := server.New(log, m)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
