package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/calbec/medialog/config"
	"github.com/calbec/medialog/pkg/logger"
	"github.com/calbec/medialog/pkg/media"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list a collection",
	Long:  `list a collection`,
}

var listBooksCmd = &cobra.Command{
	Use:   "books",
	Short: "list tracked books",
	Run: func(cmd *cobra.Command, args []string) {
		runList(media.TypeBook)
	},
}

var listMoviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "list tracked movies",
	Run: func(cmd *cobra.Command, args []string) {
		runList(media.TypeMovie)
	},
}

var listShowsCmd = &cobra.Command{
	Use:   "shows",
	Short: "list tracked shows",
	Run: func(cmd *cobra.Command, args []string) {
		runList(media.TypeShow)
	},
}

var listGamesCmd = &cobra.Command{
	Use:   "games",
	Short: "list tracked games",
	Run: func(cmd *cobra.Command, args []string) {
		runList(media.TypeGame)
	},
}

func runList(typ media.Type) {
	log := logger.Get()

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

	engine, err := m.Engine(typ)
	if err != nil {
		log.Fatal("failed to find collection", zap.Error(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tSCORE\tCOMPLETED")
	for _, item := range engine.Collection().Items() {
		score := "-"
		if item.Score != nil {
			score = strconv.Itoa(int(*item.Score))
		}
		completed := "-"
		if item.DateCompleted != nil {
			completed = humanize.Time(*item.DateCompleted)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Title, item.StatusLabel, score, completed)
	}
	w.Flush()
}

func init() {
	listCmd.AddCommand(listBooksCmd)
	listCmd.AddCommand(listMoviesCmd)
	listCmd.AddCommand(listShowsCmd)
	listCmd.AddCommand(listGamesCmd)

	rootCmd.AddCommand(listCmd)
}
