package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	SearchDepth      int    `mapstructure:"SEARCH_DEPTH"`
	ServerAddr       string `mapstructure:"SERVER_ADDR"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	LogDev           bool   `mapstructure:"LOG_DEV"`
	WhitePlayer      string `mapstructure:"WHITE_PLAYER"`
	BlackPlayer      string `mapstructure:"BLACK_PLAYER"`
	SelfplayGames    int    `mapstructure:"SELFPLAY_GAMES"`
	SelfplayMaxPlies int    `mapstructure:"SELFPLAY_MAX_PLIES"`
}

// 玩家类型
const (
	PlayerManual = "manual"
	PlayerAuto   = "auto"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("SEARCH_DEPTH", 3)
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEV", false)
	v.SetDefault("WHITE_PLAYER", PlayerManual)
	v.SetDefault("BLACK_PLAYER", PlayerAuto)
	v.SetDefault("SELFPLAY_GAMES", 20)
	v.SetDefault("SELFPLAY_MAX_PLIES", 200)
}

// Setup 读配置：默认值 < 配置文件 < QIRKAT_ 前缀的环境变量。
// cfgPath 为空时不读文件。
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("QIRKAT")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 是不读文件也不看环境变量时的配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: bad defaults: " + err.Error())
	}
	return &cfg
}

func (c *Config) Validate() error {
	if c.SearchDepth <= 0 {
		return fmt.Errorf("%w: SEARCH_DEPTH must be positive, got %d", ErrInvalidConfig, c.SearchDepth)
	}
	for name, p := range map[string]string{"WHITE_PLAYER": c.WhitePlayer, "BLACK_PLAYER": c.BlackPlayer} {
		switch strings.ToLower(p) {
		case PlayerManual, PlayerAuto:
		default:
			return fmt.Errorf("%w: %s must be manual or auto, got %q", ErrInvalidConfig, name, p)
		}
	}
	if c.SelfplayGames < 0 || c.SelfplayMaxPlies <= 0 {
		return fmt.Errorf("%w: bad selfplay limits", ErrInvalidConfig)
	}
	return nil
}
