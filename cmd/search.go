package cmd

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/calbec/medialog/config"
	"github.com/calbec/medialog/pkg/igdb"
	"github.com/calbec/medialog/pkg/manager"
	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/openlibrary"
	"github.com/calbec/medialog/pkg/tmdb"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var searchYear string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "search for something",
	Long:  `search for something`,
}

var searchMovieCmd = &cobra.Command{
	Use:   "movie <query>",
	Short: "search for a movie",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(media.TypeMovie, strings.Join(args, " "))
	},
}

var searchShowCmd = &cobra.Command{
	Use:   "show <query>",
	Short: "search for a show",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(media.TypeShow, strings.Join(args, " "))
	},
}

var searchBookCmd = &cobra.Command{
	Use:   "book <query>",
	Short: "search for a book",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(media.TypeBook, strings.Join(args, " "))
	},
}

var searchGameCmd = &cobra.Command{
	Use:   "game <query>",
	Short: "search for a game",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(media.TypeGame, strings.Join(args, " "))
	},
}

// searchProfile builds only the client the given media type needs.
func searchProfile(cfg config.Config, typ media.Type) (manager.Profile, error) {
	switch typ {
	case media.TypeMovie, media.TypeShow:
		u := url.URL{Scheme: cfg.TMDB.Scheme, Host: cfg.TMDB.Host}
		c, err := tmdb.New(u.String(), cfg.TMDB.APIKey)
		if err != nil {
			return manager.Profile{}, err
		}
		if typ == media.TypeMovie {
			return manager.MovieProfile(c), nil
		}
		return manager.ShowProfile(c), nil
	case media.TypeBook:
		u := url.URL{Scheme: cfg.OpenLibrary.Scheme, Host: cfg.OpenLibrary.Host}
		c, err := openlibrary.New(u.String())
		if err != nil {
			return manager.Profile{}, err
		}
		return manager.BookProfile(c), nil
	case media.TypeGame:
		u := url.URL{Scheme: cfg.IGDB.Scheme, Host: cfg.IGDB.Host}
		c, err := igdb.New(u.String(), cfg.IGDB.ClientID, cfg.IGDB.Token)
		if err != nil {
			return manager.Profile{}, err
		}
		return manager.GameProfile(c), nil
	}
	return manager.Profile{}, fmt.Errorf("unknown media type %q", typ)
}

func runSearch(typ media.Type, query string) {
	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalf("failed to read configurations: %v", err)
	}

	profile, err := searchProfile(cfg, typ)
	if err != nil {
		log.Fatalf("failed to create %s client: %v", typ, err)
	}

	candidates, err := profile.Search(context.TODO(), query, searchYear)
	if err != nil {
		log.Fatalf("failed to search: %v", err)
	}

	if len(candidates) == 0 {
		log.Fatal("no results found")
	}

	for _, c := range candidates {
		line := c.Title
		if c.Year != "" {
			line += fmt.Sprintf(" (%s)", c.Year)
		}
		if c.Author != "" {
			line += fmt.Sprintf(" by %s", c.Author)
		}
		if c.Studio != "" {
			line += fmt.Sprintf(" - %s", c.Studio)
		}
		log.Println(line)
	}
}

func init() {
	searchCmd.PersistentFlags().StringVarP(&searchYear, "year", "y", "", "restrict results to a release year")

	searchCmd.AddCommand(searchMovieCmd)
	searchCmd.AddCommand(searchShowCmd)
	searchCmd.AddCommand(searchBookCmd)
	searchCmd.AddCommand(searchGameCmd)

	rootCmd.AddCommand(searchCmd)
}
