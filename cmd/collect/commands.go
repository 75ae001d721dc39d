package main

import (
	"context"
	"fmt"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/processor"
	"github.com/LJTian/TrendViewer/internal/view"
	"github.com/spf13/cobra"
)

var (
	category       string
	trendsEndpoint string
	strict         bool
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Scrape Yahoo realtime trends once",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := collector.NewYahooRealtimeFetcher(cfg.TrendsURL, cfg.TrendsTimeout)
		out := f.Fetch()
		if strict && !out.OK() {
			return fmt.Errorf("scrape failed: %w", out.Err)
		}
		return writeJSON(cmd.OutOrStdout(), out.Result())
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch GNews top headlines for a category once",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := newNewsService().Fetch(context.Background(), category)
		return writeJSON(cmd.OutOrStdout(), res)
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Build the merged news and trends view once",
	RunE: func(cmd *cobra.Command, args []string) error {
		var src view.TrendSource
		if trendsEndpoint != "" {
			src = view.NewHTTPSource(trendsEndpoint, cfg.TrendsTimeout)
		} else {
			src = view.LocalSource{Fetcher: collector.NewYahooRealtimeFetcher(cfg.TrendsURL, cfg.TrendsTimeout)}
		}
		v := view.NewAggregator(newNewsService(), src).Build(context.Background(), category)
		return writeJSON(cmd.OutOrStdout(), v)
	},
}

func newNewsService() *collector.NewsService {
	p := processor.NewSimpleProcessor()
	return collector.NewNewsService(
		collector.NewsFetcherFromKey(cfg.GNewsAPIKey, cfg.GNewsBaseURL, cfg.NewsTimeout),
		p.Process,
	)
}

func init() {
	trendsCmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero instead of printing fallback data when the scrape fails")

	newsCmd.Flags().StringVarP(&category, "category", "c", collector.DefaultCategory, "news category (general, business, technology, ...)")

	viewCmd.Flags().StringVarP(&category, "category", "c", collector.DefaultCategory, "news category (general, business, technology, ...)")
	viewCmd.Flags().StringVar(&trendsEndpoint, "trends-endpoint", "", "read trends from a running server, e.g. http://localhost:9000/api/trends")

	rootCmd.AddCommand(trendsCmd, newsCmd, viewCmd)
}
