package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/calbec/medialog/config"
	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/pkg/media"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "get something",
	Long:  `get something`,
}

var getShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "show one tracked show with its watch progress",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal("invalid show id", zap.Error(err))
		}

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, err := newMediaManager(cfg, log)
		if err != nil {
			log.Fatal("failed to create media manager", zap.Error(err))
		}

		ctx := context.TODO()
		if err := m.Load(ctx); err != nil {
			log.Fatal("failed to load collections", zap.Error(err))
		}

		engine, err := m.Engine(media.TypeShow)
		if err != nil {
			log.Fatal("failed to find collection", zap.Error(err))
		}

		item, ok := engine.Collection().Get(id)
		if !ok {
			log.Fatalf("show %d not found", id)
		}

		progress, err := m.ShowProgress(ctx, id)
		if err != nil {
			log.Fatal("failed to calculate progress", zap.Error(err))
		}

		if item.DateReleased != "" {
			fmt.Printf("%s (%s)\n", item.Title, item.DateReleased)
		} else {
			fmt.Println(item.Title)
		}
		fmt.Printf("Status: %s\n", item.StatusLabel)
		if item.Score != nil {
			fmt.Printf("Score: %d\n", *item.Score)
		}
		fmt.Printf("Season %d, Episode %d\n", item.CurSeasonIndex+1, item.CurEpisode)
		fmt.Printf("Progress: %.0f%%\n", progress)
		if item.Note != nil && *item.Note != "" {
			fmt.Printf("Note: %s\n", *item.Note)
		}
	},
}

func init() {
	getCmd.AddCommand(getShowCmd)
	rootCmd.AddCommand(getCmd)
}
