package conf

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Chart  ChartConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DataConfig struct {
	BatsmanPath string
	BowlerPath  string
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL time.Duration
}

type ChartConfig struct {
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("data.batsman_path", "outputs/batsman_forecast_form.csv")
	v.SetDefault("data.bowler_path", "outputs/bowler_forecast_form.csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("chart.format", "png")
}

// Config reads conf.yaml from path. A missing file is not an error: the
// defaults and FORECAST_* environment variables still apply.
func Config(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("conf") // Name without extension
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetEnvPrefix("forecast")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("server.port"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
		Data: DataConfig{
			BatsmanPath: v.GetString("data.batsman_path"),
			BowlerPath:  v.GetString("data.bowler_path"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TTL: v.GetDuration("cache.ttl"),
		},
		Chart: ChartConfig{
			Format: v.GetString("chart.format"),
		},
	}

	if cfg.Data.BatsmanPath == "" || cfg.Data.BowlerPath == "" {
		return nil, errors.New("data.batsman_path and data.bowler_path are required")
	}
	return cfg, nil
}
