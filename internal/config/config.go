// internal/config/config.go

// Package config 以 viper 載入設定，優先順序為：
// 命令列旗標（由 cmd 套用）> 環境變數 GRIEVANCE_* > grievance.yaml > 預設值。
// 找不到設定檔不是錯誤。
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"grievance/internal/logging"
)

// Config 為程式設定。
type Config struct {
	DataFile string     `mapstructure:"data_file"`
	HTTP     HTTPConfig `mapstructure:"http"`
	Log      LogConfig  `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default 回傳預設設定。
func Default() *Config {
	return &Config{
		DataFile: "complaints.json",
		HTTP:     HTTPConfig{Addr: ":8080"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load 讀取設定。path 非空時只讀該檔案（必須存在），
// 否則依序在 . 與 $XDG_CONFIG_HOME/grievance（或 ~/.config/grievance）尋找 grievance.yaml。
func Load(path string) (*Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("data_file", def.DataFile)
	v.SetDefault("http.addr", def.HTTP.Addr)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("grievance")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "grievance"))
		} else if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "grievance"))
		}
	}

	v.SetEnvPrefix("GRIEVANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查設定值。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("config: data_file is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: log.format %q must be text or json", c.Log.Format)
	}
	return nil
}
