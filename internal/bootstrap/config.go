package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string  `mapstructure:"SERVER_PORT"`
	IsLocalCors      bool    `mapstructure:"LOCAL_CORS"`
	DefaultBoardSize int     `mapstructure:"DEFAULT_BOARD_SIZE"`
	DefaultKomi      float64 `mapstructure:"DEFAULT_KOMI"`
	BotSeed          int64   `mapstructure:"BOT_SEED"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DEFAULT_BOARD_SIZE", 9)
	viper.SetDefault("DEFAULT_KOMI", 7.5)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
