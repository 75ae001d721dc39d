package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/LJTian/TrendViewer/internal/api"
	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/config"
	"github.com/LJTian/TrendViewer/internal/processor"
	"github.com/LJTian/TrendViewer/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	trends := collector.NewYahooRealtimeFetcher(cfg.TrendsURL, cfg.TrendsTimeout)

	// 未配置有效 GNEWS_API_KEY 时 news 接口直接返回占位新闻
	p := processor.NewSimpleProcessor()
	news := collector.NewNewsService(
		collector.NewsFetcherFromKey(cfg.GNewsAPIKey, cfg.GNewsBaseURL, cfg.NewsTimeout),
		p.Process,
	)

	// 定时探测页面结构，仅用于日志和指标
	if cfg.ProbeCron != "" {
		s, err := scheduler.New(cfg.ProbeCron, []collector.TrendFetcher{trends})
		if err != nil {
			log.Fatalf("init scheduler failed: %v", err)
		}
		s.Start()
		defer s.Stop()
	}

	r := gin.Default()

	apiServer := api.NewServer(trends, news)
	apiServer.RegisterRoutes(r)

	// 若配置了前端目录，则托管 SPA 静态文件并做 fallback
	if cfg.WebRoot != "" {
		assetsDir := filepath.Join(cfg.WebRoot, "assets")
		indexFile := filepath.Join(cfg.WebRoot, "index.html")
		r.Static("/assets", assetsDir)
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			c.File(indexFile)
		})
	}

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
