package collector

// fallbackWords Yahoo 页面不可用时返回的固定趋势词，顺序即排名
var fallbackWords = [...]string{
	"オレの司",
	"アカデミー飯",
	"引用元の消失",
	"明浦路先生",
	"田中樹アクターズスクール",
	"でゃまれ",
	"アリの王",
	"菊池風磨構文",
	"束縛グッズ",
	"コメ不足",
}

// FallbackTrends 每次返回一份新的兜底列表，调用方可以随意修改
func FallbackTrends() []TrendItem {
	out := make([]TrendItem, len(fallbackWords))
	for i, w := range fallbackWords {
		out[i] = TrendItem{Word: w, Rank: i + 1}
	}
	return out
}
