package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	gnewsBaseURL          = "https://gnews.io/api/v4"
	gnewsMaxArticles      = 10
	gnewsMaxResponseBytes = 1 << 20 // 1MB
	gnewsClientTimeout    = 10 * time.Second

	// 前端模板里的占位 key，等同于未配置
	placeholderAPIKey = "YOUR_API_KEY"
)

// GNewsFetcher 通过 GNews top-headlines 接口获取日文新闻
type GNewsFetcher struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

func NewGNewsFetcher(apiKey, baseURL string, timeout time.Duration) *GNewsFetcher {
	if baseURL == "" {
		baseURL = gnewsBaseURL
	}
	if timeout <= 0 {
		timeout = gnewsClientTimeout
	}
	return &GNewsFetcher{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ValidAPIKey 空 key 和模板占位 key 都视为未配置
func ValidAPIKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderAPIKey
}

// NewsFetcherFromKey key 无效时返回 nil 接口，NewsService 会直接走占位数据
func NewsFetcherFromKey(apiKey, baseURL string, timeout time.Duration) NewsFetcher {
	if !ValidAPIKey(apiKey) {
		return nil
	}
	return NewGNewsFetcher(apiKey, baseURL, timeout)
}

func (g *GNewsFetcher) Name() string {
	return "gnews"
}

type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

type gnewsResponse struct {
	TotalArticles int             `json:"totalArticles"`
	Articles      []gnewsArticle  `json:"articles"`
	Errors        json.RawMessage `json:"errors"`
}

func (g *GNewsFetcher) requestURL(topic string) string {
	q := url.Values{}
	q.Set("topic", topic)
	q.Set("lang", "ja")
	q.Set("country", "jp")
	q.Set("max", fmt.Sprint(gnewsMaxArticles))
	q.Set("apikey", g.APIKey)
	return g.BaseURL + "/top-headlines?" + q.Encode()
}

func (g *GNewsFetcher) Fetch(ctx context.Context, category string) ([]Article, error) {
	topic := TopicFor(category)
	log.Printf("fetch GNews top headlines (topic=%s)...", topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(topic), nil)
	if err != nil {
		return nil, fmt.Errorf("gnews: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gnews: fetch top headlines: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, gnewsMaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("gnews: read response: %w", err)
	}

	var data gnewsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("gnews: unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("gnews: unmarshal response: %w", err)
	}
	if hasAPIErrors(data.Errors) {
		return nil, fmt.Errorf("gnews: api error: %s", string(data.Errors))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews: unexpected status %d", resp.StatusCode)
	}

	now := time.Now()
	out := make([]Article, 0, len(data.Articles))
	for _, a := range data.Articles {
		var image *string
		if a.Image != "" {
			img := a.Image
			image = &img
		}
		out = append(out, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			URLToImage:  image,
			PublishedAt: parsePublishedAt(a.PublishedAt, now),
			Source:      ArticleSource{Name: a.Source.Name},
		})
	}
	return out, nil
}

// errors 字段可能是数组、对象或 null
func hasAPIErrors(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null" && s != "[]" && s != "{}"
}

func parsePublishedAt(s string, def time.Time) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return t
}
