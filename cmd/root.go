package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medialog",
	Short: "medialog cli",
	Long:  `medialog cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("openlibrary.scheme", "https")
	viper.SetDefault("openlibrary.host", "openlibrary.org")

	viper.SetDefault("igdb.scheme", "https")
	viper.SetDefault("igdb.host", "api.igdb.com")
	viper.SetDefault("igdb.clientId", "")
	viper.SetDefault("igdb.token", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("storage.filePath", "medialog.sqlite")
}
