package collector

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	yahooRealtimeURL = "https://search.yahoo.co.jp/realtime"
	// section.Trend_container__d7dWI > ol > li > a > article > h1
	yahooTrendSelector     = ".Trend_container__d7dWI ol li a article h1"
	yahooRequestTimeout    = 5 * time.Second
	yahooBodySnippetLength = 500

	browserUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	browserAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	browserAcceptLanguage = "ja,en-US;q=0.7,en;q=0.3"
)

// YahooRealtimeFetcher 抓取 Yahoo!リアルタイム検索 的趋势榜。
// 零值可直接使用，URL / Selector / Timeout 为空时使用默认值。
type YahooRealtimeFetcher struct {
	URL      string
	Selector string
	Timeout  time.Duration
}

func NewYahooRealtimeFetcher(rawURL string, timeout time.Duration) *YahooRealtimeFetcher {
	return &YahooRealtimeFetcher{URL: rawURL, Timeout: timeout}
}

func (y *YahooRealtimeFetcher) Name() string {
	return "yahoo_realtime"
}

func (y *YahooRealtimeFetcher) targetURL() string {
	if y.URL != "" {
		return y.URL
	}
	return yahooRealtimeURL
}

func (y *YahooRealtimeFetcher) selector() string {
	if y.Selector != "" {
		return y.Selector
	}
	return yahooTrendSelector
}

func (y *YahooRealtimeFetcher) timeout() time.Duration {
	if y.Timeout > 0 {
		return y.Timeout
	}
	return yahooRequestTimeout
}

// Fetch 只请求一次，不重试；任何失败都体现在 Outcome.Err 中
func (y *YahooRealtimeFetcher) Fetch() Outcome {
	log.Println("fetch Yahoo realtime trends...")

	out := y.fetch()
	if out.OK() {
		log.Printf("yahoo realtime: found %d trends", len(out.Items))
		return out
	}

	log.Printf("yahoo realtime: scrape failed, serving fallback: %v", out.Err)
	if out.Err.BodySnippet != "" {
		log.Printf("yahoo realtime: body head: %s", out.Err.BodySnippet)
	}
	return out
}

func (y *YahooRealtimeFetcher) fetch() Outcome {
	status, body, err := y.get()
	if err != nil {
		return failure(&FetchError{Kind: NetworkError, Err: err})
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return failure(&FetchError{
			Kind:        UpstreamStatusError,
			StatusCode:  status,
			BodySnippet: bodySnippet(body),
		})
	}

	items, err := ParseTrends(bytes.NewReader(body), y.selector())
	if err != nil {
		return failure(&FetchError{Kind: ParseError, StatusCode: status, Err: err, BodySnippet: bodySnippet(body)})
	}
	if len(items) == 0 {
		return failure(&FetchError{
			Kind:        EmptyResultError,
			StatusCode:  status,
			Err:         fmt.Errorf("no trends matched %q, page structure might have changed", y.selector()),
			BodySnippet: bodySnippet(body),
		})
	}
	return success(items)
}

// get 使用 colly 发起请求；非 2xx 也解析响应，由调用方判断状态码
func (y *YahooRealtimeFetcher) get() (int, []byte, error) {
	target := y.targetURL()
	u, err := url.Parse(target)
	if err != nil {
		return 0, nil, fmt.Errorf("parse url %q: %w", target, err)
	}

	c := colly.NewCollector(
		colly.AllowedDomains(u.Hostname()),
		colly.UserAgent(browserUserAgent),
	)
	c.SetRequestTimeout(y.timeout())
	c.ParseHTTPErrorResponse = true

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", browserAccept)
		r.Headers.Set("Accept-Language", browserAcceptLanguage)
	})

	var (
		status int
		body   []byte
	)
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(target); err != nil {
		return 0, nil, err
	}
	if status == 0 {
		return 0, nil, fmt.Errorf("no response from %s", target)
	}
	return status, body, nil
}

// ParseTrends 把 HTML 解析为趋势列表，供 Fetch 和离线解析共用
func ParseTrends(r io.Reader, selector string) ([]TrendItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return ExtractTrends(doc, selector), nil
}

// ExtractTrends 按文档顺序取匹配元素的文本；空文本不占名次，名次连续重排
func ExtractTrends(doc *goquery.Document, selector string) []TrendItem {
	if selector == "" {
		selector = yahooTrendSelector
	}
	items := make([]TrendItem, 0, 20)
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		word := strings.TrimSpace(s.Text())
		if word == "" {
			return
		}
		items = append(items, TrendItem{Word: word, Rank: len(items) + 1})
	})
	return items
}

func bodySnippet(body []byte) string {
	rs := []rune(string(body))
	if len(rs) > yahooBodySnippetLength {
		rs = rs[:yahooBodySnippetLength]
	}
	return string(rs)
}
