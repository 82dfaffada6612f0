package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	DBPath       string
	SeedDataPath string

	ServerPort string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SQLITE_DB_PATH", "rental.db")
	viper.SetDefault("SERVER_PORT", "8080")

	config := &Config{
		DBPath:       viper.GetString("SQLITE_DB_PATH"),
		SeedDataPath: viper.GetString("SEED_DATA_PATH"),
		ServerPort:   viper.GetString("SERVER_PORT"),
	}

	return config, nil
}
