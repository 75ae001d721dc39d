package collector

// Category 前端可选的新闻分类
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const DefaultCategory = "general"

var categories = []Category{
	{ID: "general", Name: "総合"},
	{ID: "business", Name: "ビジネス"},
	{ID: "technology", Name: "テクノロジー"},
	{ID: "entertainment", Name: "エンタメ"},
	{ID: "health", Name: "健康"},
	{ID: "science", Name: "科学"},
	{ID: "sports", Name: "スポーツ"},
}

// GNews 没有 general，总合映射到 world
var categoryTopics = map[string]string{
	"general":       "world",
	"business":      "business",
	"technology":    "technology",
	"entertainment": "entertainment",
	"health":        "health",
	"science":       "science",
	"sports":        "sports",
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryLabel 返回日文标签，未知分类原样返回
func CategoryLabel(id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// TopicFor 返回 GNews 的 topic 参数，未知分类退回 world
func TopicFor(id string) string {
	if t, ok := categoryTopics[id]; ok {
		return t
	}
	return "world"
}
