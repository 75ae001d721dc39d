package api

import (
	"net/http"
	"strings"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/metrics"
	"github.com/LJTian/TrendViewer/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	trends collector.TrendFetcher
	news   *collector.NewsService
	view   *view.Aggregator
}

// NewServer 视图层复用同一个抓取器，进程内调用不经过 HTTP
func NewServer(trends collector.TrendFetcher, news *collector.NewsService) *Server {
	return &Server{
		trends: trends,
		news:   news,
		view:   view.NewAggregator(news, view.LocalSource{Fetcher: trends}),
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("/api")
	{
		g.GET("/trends", s.listTrends)
		g.GET("/news", s.listNews)
		g.GET("/view", s.getView)
		g.GET("/categories", s.listCategories)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listTrends 无论上游是否可用都返回 200，失败时返回兜底列表
func (s *Server) listTrends(c *gin.Context) {
	out := s.trends.Fetch()
	metrics.ObserveTrend(out.OK(), out.Reason(), len(out.Items))
	c.JSON(http.StatusOK, out.Result())
}

func (s *Server) listNews(c *gin.Context) {
	category := categoryParam(c)
	result := s.news.Fetch(c.Request.Context(), category)
	metrics.ObserveNews(result.Mock, result.Reason)

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    result,
	})
}

func (s *Server) getView(c *gin.Context) {
	v := s.view.Build(c.Request.Context(), categoryParam(c))

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    v,
	})
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    collector.Categories(),
	})
}

func categoryParam(c *gin.Context) string {
	category := strings.TrimSpace(c.DefaultQuery("category", collector.DefaultCategory))
	if category == "" {
		return collector.DefaultCategory
	}
	return category
}
