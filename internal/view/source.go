package view

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/metrics"
)

const (
	trendsClientTimeout    = 10 * time.Second
	trendsMaxResponseBytes = 256 * 1024
)

// TrendSource 视图层获取趋势的入口：进程内抓取或调用 /api/trends
type TrendSource interface {
	Trends(ctx context.Context) ([]collector.TrendItem, error)
}

// LocalSource 直接在进程内调用抓取器，失败时已被替换为兜底列表，不会返回 error
type LocalSource struct {
	Fetcher collector.TrendFetcher
}

func (l LocalSource) Trends(_ context.Context) ([]collector.TrendItem, error) {
	out := l.Fetcher.Fetch()
	metrics.ObserveTrend(out.OK(), out.Reason(), len(out.Items))
	return out.Result(), nil
}

// HTTPSource 通过 HTTP 调用 trends 接口，例如 http://localhost:9000/api/trends
type HTTPSource struct {
	Endpoint string
	client   *http.Client
}

func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = trendsClientTimeout
	}
	return &HTTPSource{
		Endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *HTTPSource) Trends(ctx context.Context) ([]collector.TrendItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("trends: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trends: fetch %s: %w", h.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("trends: unexpected status %d", resp.StatusCode)
	}

	var items []collector.TrendItem
	if err := json.NewDecoder(io.LimitReader(resp.Body, trendsMaxResponseBytes)).Decode(&items); err != nil {
		return nil, fmt.Errorf("trends: decode response: %w", err)
	}
	return items, nil
}
