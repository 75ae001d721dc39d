// Package view 把新闻与趋势合并成前端一次渲染所需的状态。
//
// 两个数据源各自独立兜底：新闻失败时使用占位新闻，趋势失败或为空时使用占位趋势，
// 任何一方失败都不会影响另一方。
package view

import (
	"context"
	"log"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/metrics"
)

const (
	maxViewArticles = 8
	maxViewTrends   = 5
)

// RecommendedTags 侧边栏固定展示的推荐话题
var RecommendedTags = []string{"#トレンド", "#話題", "#人気", "#今日のニュース"}

// TrendEntry 趋势的展示形态。TweetVolume 只用于展示：
// 真实趋势没有热度数据，为 null；占位趋势带固定数值。
type TrendEntry struct {
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	TweetVolume *int   `json:"tweetVolume"`
}

// View 一次页面渲染所需的全部数据
type View struct {
	Category        string               `json:"category"`
	CategoryName    string               `json:"categoryName"`
	Categories      []collector.Category `json:"categories"`
	Articles        []collector.Article  `json:"articles"`
	MockNews        bool                 `json:"mockNews"`
	Error           string               `json:"error,omitempty"`
	Trends          []TrendEntry         `json:"trends"`
	MockTrends      bool                 `json:"mockTrends"`
	RecommendedTags []string             `json:"recommendedTags"`
}

type mockTrend struct {
	word   string
	volume int
}

var mockTrends = []mockTrend{
	{"オレの司", 87500},
	{"アカデミー飯", 64300},
	{"引用元の消失", 52800},
	{"明浦路先生", 45200},
	{"田中樹アクターズスクール", 38100},
	{"でゃまれ", 31600},
	{"アリの王", 28700},
	{"菊池風磨構文", 25400},
	{"束縛グッズ", 19800},
	{"コメ不足", 17300},
}

// Aggregator 组合新闻服务与趋势源
type Aggregator struct {
	news   *collector.NewsService
	trends TrendSource
}

func NewAggregator(news *collector.NewsService, trends TrendSource) *Aggregator {
	return &Aggregator{news: news, trends: trends}
}

func (a *Aggregator) Build(ctx context.Context, category string) View {
	if category == "" {
		category = collector.DefaultCategory
	}

	news := a.news.Fetch(ctx, category)
	metrics.ObserveNews(news.Mock, news.Reason)

	articles := news.Articles
	if len(articles) > maxViewArticles {
		articles = articles[:maxViewArticles]
	}

	trends, mock := a.buildTrends(ctx)

	return View{
		Category:        category,
		CategoryName:    collector.CategoryLabel(category),
		Categories:      collector.Categories(),
		Articles:        articles,
		MockNews:        news.Mock,
		Error:           news.Error,
		Trends:          trends,
		MockTrends:      mock,
		RecommendedTags: RecommendedTags,
	}
}

func (a *Aggregator) buildTrends(ctx context.Context) ([]TrendEntry, bool) {
	items, err := a.trends.Trends(ctx)
	if err != nil {
		log.Printf("view: fetch trends error: %v, using mock trends", err)
		return MockTrendEntries(), true
	}
	if len(items) == 0 {
		log.Printf("view: no trends returned, using mock trends")
		return MockTrendEntries(), true
	}
	return TrendEntries(items), false
}

// TrendEntries 取前 5 条，名称前加 #
func TrendEntries(items []collector.TrendItem) []TrendEntry {
	n := len(items)
	if n > maxViewTrends {
		n = maxViewTrends
	}
	out := make([]TrendEntry, 0, n)
	for _, it := range items[:n] {
		out = append(out, TrendEntry{Name: "#" + it.Word, Rank: it.Rank})
	}
	return out
}

// MockTrendEntries 占位趋势，固定取列表前 5 条
func MockTrendEntries() []TrendEntry {
	out := make([]TrendEntry, 0, maxViewTrends)
	for i, m := range mockTrends[:maxViewTrends] {
		v := m.volume
		out = append(out, TrendEntry{Name: "#" + m.word, Rank: i + 1, TweetVolume: &v})
	}
	return out
}
