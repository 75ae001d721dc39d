package collector

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ArticleSource 文章来源
type ArticleSource struct {
	Name string `json:"name"`
}

// Article 统一后的新闻结构，字段名与前端约定一致
type Article struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  *string       `json:"urlToImage"`
	PublishedAt time.Time     `json:"publishedAt"`
	Source      ArticleSource `json:"source"`
}

// NewsFetcher 抽象一个新闻数据源
type NewsFetcher interface {
	Name() string
	Fetch(ctx context.Context, category string) ([]Article, error)
}

const (
	mockNewsCount       = 5
	mockNewsDescription = "これはモックデータです。APIキーが設定されていないか、APIの呼び出し制限に達した可能性があります。"
	mockNewsSourceName  = "モックニュース"
	newsErrorPrefix     = "ニュースの取得中にエラーが発生しました: "
)

// MockNews 生成 count 条占位新闻
func MockNews(category string, count int, now time.Time) []Article {
	label := CategoryLabel(category)
	out := make([]Article, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Article{
			ID:          fmt.Sprintf("mock-%d-%d", now.UnixMilli(), i),
			Title:       fmt.Sprintf("%sに関する最新ニュース %d", label, i+1),
			Description: mockNewsDescription,
			URL:         "#",
			PublishedAt: now,
			Source:      ArticleSource{Name: mockNewsSourceName},
		})
	}
	return out
}

// NewsResult 一次新闻获取的结果；Mock 为 true 时 Articles 是占位数据
type NewsResult struct {
	Category string    `json:"category"`
	Articles []Article `json:"articles"`
	Mock     bool      `json:"mock"`
	Error    string    `json:"error,omitempty"`
	Reason   string    `json:"-"`
}

// NewsService 在真实数据源和占位数据之间做选择，本身从不返回 error
type NewsService struct {
	fetcher   NewsFetcher
	normalize func([]Article) []Article
	now       func() time.Time
}

// NewNewsService fetcher 为 nil 表示未配置 API key，始终返回占位数据；
// normalize 可为 nil，用于清洗真实数据源返回的文章
func NewNewsService(fetcher NewsFetcher, normalize func([]Article) []Article) *NewsService {
	return &NewsService{fetcher: fetcher, normalize: normalize, now: time.Now}
}

func (s *NewsService) Fetch(ctx context.Context, category string) NewsResult {
	if category == "" {
		category = DefaultCategory
	}
	if s.fetcher == nil {
		log.Printf("news: no valid api key, using mock data (category=%s)", category)
		return s.mock(category, "no_api_key", "")
	}

	articles, err := s.fetcher.Fetch(ctx, category)
	if err != nil {
		log.Printf("news: fetch %s (%s) error: %v", s.fetcher.Name(), category, err)
		return s.mock(category, "error", newsErrorPrefix+err.Error())
	}
	if s.normalize != nil {
		articles = s.normalize(articles)
	}
	if len(articles) == 0 {
		log.Printf("news: %s returned 0 articles, using mock data (category=%s)", s.fetcher.Name(), category)
		return s.mock(category, "empty", "")
	}

	log.Printf("news: %s found %d articles (category=%s)", s.fetcher.Name(), len(articles), category)
	return NewsResult{Category: category, Articles: articles, Reason: "ok"}
}

func (s *NewsService) mock(category, reason, msg string) NewsResult {
	return NewsResult{
		Category: category,
		Articles: MockNews(category, mockNewsCount, s.now()),
		Mock:     true,
		Error:    msg,
		Reason:   reason,
	}
}
