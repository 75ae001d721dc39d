package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/LJTian/TrendViewer/internal/config"
	"github.com/spf13/cobra"
)

// 一个只执行一次采集的命令行入口：适合手动检查页面结构或 API key
var rootCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch trends and news once and print them as JSON",
	Long: `collect runs the same fetchers as the API server a single time and
prints the result to stdout. Failures are logged and replaced by fallback data,
exactly as the HTTP endpoints do.`,
	SilenceUsage: true,
}

var cfg *config.Config

func init() {
	cobra.OnInitialize(func() {
		cfg = config.Load()
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
