// Package metrics 暴露趋势抓取与新闻获取的 Prometheus 指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TrendFetchTotal result: live / fallback，reason 为失败分类
	TrendFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trendviewer",
			Name:      "trend_fetch_total",
			Help:      "Total number of trend scrapes by result",
		},
		[]string{"result", "reason"},
	)

	// NewsFetchTotal result: live / mock
	NewsFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "trendviewer",
			Name:      "news_fetch_total",
			Help:      "Total number of news fetches by result",
		},
		[]string{"result", "reason"},
	)

	// TrendItems 最近一次抓取得到的真实趋势条数，兜底时为 0
	TrendItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "trendviewer",
			Name:      "trend_items",
			Help:      "Number of live trend items found by the last scrape",
		},
	)
)

// ObserveTrend 记录一次趋势抓取的结果
func ObserveTrend(live bool, reason string, items int) {
	if live {
		TrendFetchTotal.WithLabelValues("live", reason).Inc()
		TrendItems.Set(float64(items))
		return
	}
	TrendFetchTotal.WithLabelValues("fallback", reason).Inc()
	TrendItems.Set(0)
}

// ObserveNews 记录一次新闻获取的结果
func ObserveNews(mock bool, reason string) {
	result := "live"
	if mock {
		result = "mock"
	}
	NewsFetchTotal.WithLabelValues(result, reason).Inc()
}
