package config

import (
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 环境变量未设置时，应该返回默认值
	t.Setenv(key, "")
	if got := getEnv(key, "9000"); got != "9000" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "9000")
	}

	// 环境变量设置后，应优先返回环境变量
	t.Setenv(key, "8080")
	if got := getEnv(key, "9000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestGetDurationFallsBackOnInvalidValue(t *testing.T) {
	const key = "TEST_TIMEOUT"

	t.Setenv(key, "3s")
	if got := getDuration(key, time.Second); got != 3*time.Second {
		t.Fatalf("getDuration = %s, want 3s", got)
	}

	t.Setenv(key, "soon")
	if got := getDuration(key, time.Second); got != time.Second {
		t.Fatalf("getDuration with invalid value = %s, want 1s", got)
	}

	t.Setenv(key, "-2s")
	if got := getDuration(key, time.Second); got != time.Second {
		t.Fatalf("getDuration with negative value = %s, want 1s", got)
	}
}

func TestLoadReadsPortsAndKeys(t *testing.T) {
	t.Setenv("APP_PORT", "1234")
	t.Setenv("GNEWS_API_KEY", " secret ")
	t.Setenv("TRENDS_TIMEOUT", "2s")
	t.Setenv("PROBE_CRON", "")
	t.Setenv("TRENDS_URL", "")

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if cfg.GNewsAPIKey != "secret" {
		t.Fatalf("GNewsAPIKey = %q, want %q", cfg.GNewsAPIKey, "secret")
	}
	if cfg.TrendsTimeout != 2*time.Second {
		t.Fatalf("TrendsTimeout = %s, want 2s", cfg.TrendsTimeout)
	}
	// 显式置空表示关闭探测
	if cfg.ProbeCron != "" {
		t.Fatalf("ProbeCron = %q, want empty", cfg.ProbeCron)
	}
	if cfg.TrendsURL != "https://search.yahoo.co.jp/realtime" {
		t.Fatalf("TrendsURL default not applied: %q", cfg.TrendsURL)
	}
}
