package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var (
	baseURL      = "http://127.0.0.1:8000"
	upstreamAddr = "127.0.0.1:18091"
)

var queries = []string{"witcher", "cyberpunk", "baldur", "disco elysium", "stardew", "hades", "xcom"}

type game struct {
	gogID   string
	steamID string
	title   string
	os      string
}

var games = []game{
	{"1207664663", "292030", "The Witcher 3: Wild Hunt", "windows"},
	{"1423049311", "1091500", "Cyberpunk 2077", "windows"},
	{"1456460669", "1086940", "Baldur's Gate 3", "mac"},
	{"1771589310", "632470", "Disco Elysium", "linux"},
}

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	root := &cobra.Command{
		Use:   "loadtest",
		Short: "Generate search and compare load against a running vcheck",
		Run: func(cmd *cobra.Command, args []string) {
			runLoad()
		},
	}
	root.Flags().StringVar(&baseURL, "target", baseURL, "base URL of the vcheck server")

	upstreams := &cobra.Command{
		Use:   "upstreams",
		Short: "Serve fake GOG and Steam endpoints for offline load runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveFakeUpstreams(upstreamAddr)
		},
	}
	upstreams.Flags().StringVar(&upstreamAddr, "addr", upstreamAddr, "listen address")
	root.AddCommand(upstreams)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLoad() {
	fmt.Println("=== vcheck Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Duration: %s\n\n", baseURL, numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Search only (GET /search/{query}) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doSearch(rng)
	})

	fmt.Println("\n--- Phase 2: Mixed load (50% search, 50% compare) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.5 {
			return doSearch(rng)
		}
		return doCompare(rng)
	})

	fmt.Println("\n--- Phase 3: Compare only (POST /compare) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doCompare(rng)
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doSearch(rng *rand.Rand) result {
	q := queries[rng.Intn(len(queries))]
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/search/" + url.PathEscape(q))
	lat := time.Since(start)
	if err != nil {
		return result{"GET /search", 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{"GET /search", resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doCompare(rng *rand.Rand) result {
	g := games[rng.Intn(len(games))]
	data, _ := json.Marshal(map[string]string{
		"gog_id":     g.gogID,
		"steam_id":   g.steamID,
		"game_title": g.title,
		"gog_os":     g.os,
	})

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/compare", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /compare", 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	// 404 means one platform had no usable data, which is a valid answer
	failed := resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound
	return result{"POST /compare", resp.StatusCode, lat, failed}
}

// serveFakeUpstreams answers the four upstream URLs vcheck calls so load runs
// do not hit GOG or SteamDB.
func serveFakeUpstreams(addr string) error {
	base := "http://" + addr
	fmt.Println("Start vcheck with:")
	fmt.Printf("  GOG_CATALOG_URL=%s/gog/catalog\n", base)
	fmt.Printf("  GOG_CONTENT_URL=%s/gog/products/{game_id}/os/{os}/builds\n", base)
	fmt.Printf("  STEAM_STORE_URL=%s/steam/storesearch\n", base)
	fmt.Printf("  STEAM_RSS_URL=%s/steamdb/rss?appid={game_id}\n", base)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /gog/catalog", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"products":[{"id":"1207664663","title":%q,"operatingSystems":["windows","osx"]}]}`,
			r.URL.Query().Get("query"))
	})
	mux.HandleFunc("GET /gog/products/{id}/os/{os}/builds", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.PathValue("os") == "linux" {
			_, _ = w.Write([]byte(`{"items":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"version_name":"4.04","date_published":"2023-01-01T10:00:00+0000"}]}`))
	})
	mux.HandleFunc("GET /steam/storesearch", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"items":[{"id":292030,"name":%q}]}`, strings.ToUpper(r.URL.Query().Get("term")))
	})
	mux.HandleFunc("GET /steamdb/rss", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>Patches</title>` +
			`<item><title>Patch 4.05</title><pubDate>Thu, 01 Jun 2023 12:00:00 +0000</pubDate></item>` +
			`</channel></rss>`))
	})

	return http.ListenAndServe(addr, mux)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}
