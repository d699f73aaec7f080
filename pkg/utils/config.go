package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Upload     UploadConfig
	Allocation AllocationConfig
	CORS       CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type UploadConfig struct {
	MaxSizeMB int64
	MinFiles  int
}

type AllocationConfig struct {
	PNRMarker string
}

type CORSConfig struct {
	Origins []string
}

// LoadConfig reads .env when present; environment variables always win.
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), ".env")
}

func loadConfig(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigFile(file)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "flight-allocation")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("MIN_UPLOAD_FILES", 2)
	v.SetDefault("PNR_MARKER", "PNR")
	v.SetDefault("CORS_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Upload: UploadConfig{
			MaxSizeMB: v.GetInt64("MAX_UPLOAD_MB"),
			MinFiles:  v.GetInt("MIN_UPLOAD_FILES"),
		},
		Allocation: AllocationConfig{
			PNRMarker: v.GetString("PNR_MARKER"),
		},
		CORS: CORSConfig{
			Origins: splitList(v.GetString("CORS_ORIGINS")),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
