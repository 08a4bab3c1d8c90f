package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	FontSize     int      `mapstructure:"font_size"`
	Color        string   `mapstructure:"color"`
	Position     string   `mapstructure:"position"`
	Margin       int      `mapstructure:"margin"`
	JpegQuality  int      `mapstructure:"jpeg_quality"`
	OutputSuffix string   `mapstructure:"output_suffix"`
	ImageExt     []string `mapstructure:"image_extensions"`
	UseExifTool  bool     `mapstructure:"use_exiftool"`
}

func LoadConfig() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find user config dir: %w", err)
	}

	viper.SetConfigName("datemark")
	viper.SetConfigType("toml")
	viper.AddConfigPath(filepath.Join(configDir, "datemark"))

	// Set defaults:
	viper.SetDefault("font_size", 36)
	viper.SetDefault("color", "white")
	viper.SetDefault("position", string(BottomRight))
	viper.SetDefault("margin", 20)
	viper.SetDefault("jpeg_quality", 95)
	viper.SetDefault("output_suffix", "_watermark")
	viper.SetDefault("image_extensions", []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"})
	viper.SetDefault("use_exiftool", false)

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; that's OK, just use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
