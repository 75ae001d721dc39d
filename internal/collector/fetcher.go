package collector

import (
	"errors"
	"fmt"
)

// TrendItem 单条趋势词，rank 从 1 开始连续
type TrendItem struct {
	Word string `json:"word"`
	Rank int    `json:"rank"`
}

// TrendFetcher 抽象一个趋势数据源，Fetch 不返回 error，失败信息放在 Outcome 里
type TrendFetcher interface {
	Name() string
	Fetch() Outcome
}

// FailureKind 抓取失败的分类，四种失败在出口处的处理方式完全一致
type FailureKind int

const (
	NetworkError FailureKind = iota + 1
	UpstreamStatusError
	ParseError
	EmptyResultError
)

func (k FailureKind) String() string {
	switch k {
	case NetworkError:
		return "network"
	case UpstreamStatusError:
		return "upstream_status"
	case ParseError:
		return "parse"
	case EmptyResultError:
		return "empty"
	default:
		return "unknown"
	}
}

// FetchError 记录一次失败抓取的原因，BodySnippet 仅用于日志诊断
type FetchError struct {
	Kind        FailureKind
	StatusCode  int
	Err         error
	BodySnippet string
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == UpstreamStatusError:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFailureKind 判断 err 链上是否有指定类型的 FetchError
func IsFailureKind(err error, kind FailureKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// Outcome 一次抓取的结果：Err 为 nil 时 Items 一定非空
type Outcome struct {
	Items []TrendItem
	Err   *FetchError
}

func success(items []TrendItem) Outcome {
	return Outcome{Items: items}
}

func failure(err *FetchError) Outcome {
	return Outcome{Err: err}
}

func (o Outcome) OK() bool {
	return o.Err == nil && len(o.Items) > 0
}

// Result 成功时返回抓取结果，否则返回兜底列表
func (o Outcome) Result() []TrendItem {
	if o.OK() {
		return o.Items
	}
	return FallbackTrends()
}

// Reason 用于日志和指标标签
func (o Outcome) Reason() string {
	if o.OK() {
		return "ok"
	}
	if o.Err == nil {
		return EmptyResultError.String()
	}
	return o.Err.Kind.String()
}
