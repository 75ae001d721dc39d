package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/LJTian/TrendViewer/internal/metrics"
	"github.com/robfig/cron/v3"
)

// 启动后延迟执行首轮探测，避免与首屏请求争抢
const startupDelay = 15 * time.Second

// ProbeResult 一次探测的结果，仅用于日志与测试
type ProbeResult struct {
	Source string
	Live   bool
	Items  int
	Reason string
}

// Scheduler 定时执行趋势抓取，检查页面结构是否仍能被选择器命中。
// 探测结果不影响接口返回，只写日志和指标。
type Scheduler struct {
	cron     *cron.Cron
	fetchers []collector.TrendFetcher

	mu   sync.Mutex
	last map[string]ProbeResult
}

func New(spec string, fetchers []collector.TrendFetcher) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		fetchers: fetchers,
		last:     make(map[string]ProbeResult),
	}

	if _, err := c.AddFunc(spec, func() { s.runOnce() }); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

// Stop 停止调度并等待正在执行的探测结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) Cron() *cron.Cron {
	return s.cron
}

// RunOnce 对外暴露的单次执行入口，方便手动触发探测
func (s *Scheduler) RunOnce() []ProbeResult {
	return s.runOnce()
}

// Last 返回指定数据源最近一次探测结果
func (s *Scheduler) Last(name string) (ProbeResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.last[name]
	return r, ok
}

func (s *Scheduler) runOnce() []ProbeResult {
	log.Println("start trend probe...")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]ProbeResult, 0, len(s.fetchers))
	)
	for _, f := range s.fetchers {
		fetcher := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fetcher.Name()
			out := fetcher.Fetch()
			metrics.ObserveTrend(out.OK(), out.Reason(), len(out.Items))

			r := ProbeResult{Source: name, Live: out.OK(), Items: len(out.Items), Reason: out.Reason()}
			if r.Live {
				log.Printf("probe %s: selector healthy, %d trends", name, r.Items)
			} else {
				log.Printf("probe %s: fallback in use (%s)", name, r.Reason)
			}

			s.mu.Lock()
			s.last[name] = r
			s.mu.Unlock()

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}()
	}

	wg.Wait()
	log.Println("trend probe done")
	return results
}
