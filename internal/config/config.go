package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	GoogleClientID                string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret            string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL             string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendURL                   string `mapstructure:"FRONTEND_URL"`
	UserSyncURL                   string `mapstructure:"USER_SYNC_URL"`
	RedisAddr                     string `mapstructure:"REDIS_ADDR"`
	RedisPassword                 string `mapstructure:"REDIS_PASSWORD"`
	RedisDB                       int    `mapstructure:"REDIS_DB"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	EnableCORS                    bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "hackconnect.db")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "http://127.0.0.1:8080/auth/google/callback")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:5173")
	viper.SetDefault("USER_SYNC_URL", "http://127.0.0.1:5000/api/users")
	viper.SetDefault("REDIS_ADDR", "")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("GOOGLE_CLIENT_ID")
	viper.BindEnv("GOOGLE_CLIENT_SECRET")
	viper.BindEnv("GOOGLE_REDIRECT_URL")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("USER_SYNC_URL")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("REDIS_PASSWORD")
	viper.BindEnv("REDIS_DB")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
