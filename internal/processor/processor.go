package processor

import (
	"crypto/sha1"
	"encoding/hex"
	"html"
	"strings"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/microcosm-cc/bluemonday"
)

// 描述统一截断到约 200 个字符，前端再按行数截断展示
const descriptionMaxRunes = 200

// SimpleProcessor 对新闻数据源返回的文章做清洗、补 ID 与去重
type SimpleProcessor struct {
	policy *bluemonday.Policy
}

func NewSimpleProcessor() *SimpleProcessor {
	return &SimpleProcessor{policy: bluemonday.StrictPolicy()}
}

func (p *SimpleProcessor) Process(items []collector.Article) []collector.Article {
	out := make([]collector.Article, 0, len(items))
	seen := make(map[string]struct{})

	for _, it := range items {
		title := p.plainText(it.Title)
		if title == "" {
			continue
		}

		id := it.ID
		if id == "" {
			id = hashURL(it.URL)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		it.ID = id
		it.Title = title
		it.Description = truncateRunes(p.plainText(it.Description), descriptionMaxRunes)
		it.Source.Name = strings.TrimSpace(it.Source.Name)
		out = append(out, it)
	}

	return out
}

// plainText 去掉标签，并把 bluemonday 转义出来的实体还原成普通文本
func (p *SimpleProcessor) plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}

func hashURL(url string) string {
	h := sha1.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}

// truncateRunes 按 rune 截断，超出时追加省略号
func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit]) + "…"
}
