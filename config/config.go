package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	TMDB        TMDB        `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	OpenLibrary OpenLibrary `json:"openlibrary" yaml:"openlibrary" mapstructure:"openlibrary"`
	IGDB        IGDB        `json:"igdb" yaml:"igdb" mapstructure:"igdb"`
	Storage     Storage     `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server      Server      `json:"server" yaml:"server" mapstructure:"server"`
}

type TMDB struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type OpenLibrary struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
}

type IGDB struct {
	Scheme   string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host     string `json:"host" yaml:"host" mapstructure:"host"`
	ClientID string `json:"clientId" yaml:"clientId" mapstructure:"clientId"`
	Token    string `json:"token" yaml:"token" mapstructure:"token"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
