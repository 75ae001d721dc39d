package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	TrendsURL     string
	TrendsTimeout time.Duration

	GNewsAPIKey  string
	GNewsBaseURL string
	NewsTimeout  time.Duration

	// 为空时不启用定时探测
	ProbeCron string

	// 前端构建产物目录，为空时只提供 API
	WebRoot string
}

func Load() *Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		TrendsURL:     getEnv("TRENDS_URL", "https://search.yahoo.co.jp/realtime"),
		TrendsTimeout: getDuration("TRENDS_TIMEOUT", 5*time.Second),
		GNewsAPIKey:   strings.TrimSpace(os.Getenv("GNEWS_API_KEY")),
		GNewsBaseURL:  getEnv("GNEWS_BASE_URL", "https://gnews.io/api/v4"),
		NewsTimeout:   getDuration("NEWS_TIMEOUT", 10*time.Second),
		ProbeCron:     getEnvAllowEmpty("PROBE_CRON", "*/10 * * * *"),
		WebRoot:       os.Getenv("WEB_ROOT"),
	}

	log.Printf("config loaded: port=%s trends=%s probe=%q gnews_key=%t",
		cfg.AppPort, cfg.TrendsURL, cfg.ProbeCron, cfg.GNewsAPIKey != "")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty 显式设置为空字符串时返回空，用于关闭某些功能
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warn: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
