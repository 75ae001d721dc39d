package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LJTian/TrendViewer/internal/collector"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	s := NewServer(
		collector.NewYahooRealtimeFetcher(upstreamURL, 200*time.Millisecond),
		collector.NewNewsService(nil, nil),
	)
	s.RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func upstream(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

const livePage = `<html><body><section class="Trend_container__d7dWI"><ol>
<li><a href="#"><article><h1>A</h1></article></a></li>
<li><a href="#"><article><h1> </h1></article></a></li>
<li><a href="#"><article><h1>B</h1></article></a></li>
</ol></section></body></html>`

func TestListTrends(t *testing.T) {
	t.Run("live data", func(t *testing.T) {
		r := newTestRouter(t, upstream(t, http.StatusOK, livePage))

		w := get(t, r, "/api/trends")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"word":"A","rank":1},{"word":"B","rank":2}]`, w.Body.String())
	})

	t.Run("upstream 404 still returns 200 with fallback", func(t *testing.T) {
		r := newTestRouter(t, upstream(t, http.StatusNotFound, "not found"))

		w := get(t, r, "/api/trends")
		require.Equal(t, http.StatusOK, w.Code)

		var got []collector.TrendItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, collector.FallbackTrends(), got)
	})

	t.Run("upstream timeout returns fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()
		r := newTestRouter(t, srv.URL)

		w := get(t, r, "/api/trends")
		require.Equal(t, http.StatusOK, w.Code)

		var got []collector.TrendItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 10)
		assert.Equal(t, "オレの司", got[0].Word)
	})

	t.Run("repeated failures are byte identical", func(t *testing.T) {
		r := newTestRouter(t, upstream(t, http.StatusInternalServerError, ""))

		first := get(t, r, "/api/trends").Body.String()
		second := get(t, r, "/api/trends").Body.String()
		assert.Equal(t, first, second)
		assert.True(t, strings.HasPrefix(first, `[{"word":"オレの司","rank":1}`))
	})
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:1")
	w := get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListNewsWithoutKeyReturnsMock(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:1")
	w := get(t, r, "/api/news?category=science")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code string               `json:"code"`
		Data collector.NewsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Code)
	assert.Equal(t, "science", resp.Data.Category)
	assert.True(t, resp.Data.Mock)
	require.Len(t, resp.Data.Articles, 5)
	assert.Equal(t, "科学に関する最新ニュース 1", resp.Data.Articles[0].Title)
}

func TestGetView(t *testing.T) {
	r := newTestRouter(t, upstream(t, http.StatusOK, livePage))
	w := get(t, r, "/api/view?category=sports")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Category     string `json:"category"`
			CategoryName string `json:"categoryName"`
			MockNews     bool   `json:"mockNews"`
			MockTrends   bool   `json:"mockTrends"`
			Trends       []struct {
				Name        string `json:"name"`
				Rank        int    `json:"rank"`
				TweetVolume *int   `json:"tweetVolume"`
			} `json:"trends"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sports", resp.Data.Category)
	assert.Equal(t, "スポーツ", resp.Data.CategoryName)
	assert.True(t, resp.Data.MockNews)
	assert.False(t, resp.Data.MockTrends)
	require.Len(t, resp.Data.Trends, 2)
	assert.Equal(t, "#A", resp.Data.Trends[0].Name)
	assert.Equal(t, "#B", resp.Data.Trends[1].Name)
	assert.Nil(t, resp.Data.Trends[0].TweetVolume)
}

func TestListCategories(t *testing.T) {
	r := newTestRouter(t, "http://127.0.0.1:1")
	w := get(t, r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"general"`)
	assert.Contains(t, w.Body.String(), `"name":"総合"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, upstream(t, http.StatusOK, livePage))
	get(t, r, "/api/trends")

	w := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "trendviewer_trend_fetch_total")
}
