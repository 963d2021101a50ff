package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of request lines to generate
	badEvery     = 1000  // Every badEvery-th line is malformed JSON
)

var (
	assetPaths = []string{
		"/images/p1/production/a1-1200x800.jpg",
		"/images/p1/production/a2-640x480.PNG",
		"/files/p1/production/f1.pdf",
		"/v2021-06-07/data/query/production",
	}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"curl/7.88.1",
		"",
	}
)

// ### End - fixed configs

type requestBody struct {
	URL          string `json:"url"`
	RequestSize  uint64 `json:"requestSize"`
	ResponseSize uint64 `json:"responseSize"`
	UserAgent    string `json:"userAgent,omitempty"`
}

type summaryResponse struct {
	Summary struct {
		LinesRead      uint64 `json:"linesRead"`
		MalformedJSON  uint64 `json:"malformedJson"`
		Requests       uint64 `json:"requests"`
		TotalBandwidth uint64 `json:"totalBandwidth"`
	} `json:"summary"`
	Assets     int `json:"assets"`
	Extensions int `json:"extensions"`
}

type listResponse struct {
	Total int `json:"total"`
	Rows  []struct {
		ID           string `json:"id"`
		Extension    string `json:"extension"`
		RequestCount uint64 `json:"requestCount"`
	} `json:"rows"`
}

// main runs the e2e scenario: 001_basic_asset_rollup
//
// The scenario has two phases selected by the first argument:
//
//	generate: writes a deterministic NDJSON request log to .tmp/e2e/requests.ndjson
//	verify:   queries a running `explorer serve .tmp/e2e/requests.ndjson` and checks the totals
//
// What it tests:
//   - Line accounting (malformed lines skipped and counted)
//   - Per-asset and per-extension rollup, with mixed-case extensions sharing one bucket
//   - Sorted listing through GET /assets and GET /types
//   - Concurrent reads against the immutable snapshot
//
// Expected results:
//   - 64,000 lines read, 64 malformed, 63,936 requests
//   - Four asset rows and four extension rows (jpg, png, pdf, query)
//   - Every parallel read returns the same totals
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8088") // Base URL of a running explorer serve
	outputDir := getEnv("OUTPUT_DIR", ".tmp/e2e")           // Log output directory relative to project root
	parallel := getEnvInt("PARALLEL", 8)                    // Number of concurrent verify requests
	reads := getEnvInt("READS", 200)                        // Total verify requests

	phase := "generate"
	if len(os.Args) > 1 {
		phase = os.Args[1]
	}

	switch phase {
	case "generate":
		path := filepath.Join(projectRoot(), outputDir, "requests.ndjson")
		if err := generateLog(path); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate log: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d lines at %s\n", totalEntries, path)
		fmt.Printf("Now run: explorer serve %s\n", path)
	case "verify":
		if err := verify(baseURL, parallel, reads); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scenario completed successfully")
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown phase %q (want generate or verify)\n", phase)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// projectRoot walks up from the working directory until it finds go.mod.
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	fmt.Fprintf(os.Stderr, "ERROR: Could not find go.mod file. Please run from project root\n")
	os.Exit(1)
	return ""
}

func generateLog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 1; i <= totalEntries; i++ {
		if i%badEvery == 0 {
			fmt.Fprintln(w, `{"body":`)
			continue
		}
		line, err := json.Marshal(map[string]requestBody{"body": generateBody(i)})
		if err != nil {
			return err
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	return w.Flush()
}

func generateBody(i int) requestBody {
	return requestBody{
		URL:          assetPaths[i%len(assetPaths)],
		RequestSize:  uint64(100 + i%7),
		ResponseSize: uint64(1000 * (1 + i%len(assetPaths))),
		UserAgent:    userAgents[(i/len(assetPaths))%len(userAgents)],
	}
}

func verify(baseURL string, parallel, reads int) error {
	wantMalformed := uint64(totalEntries / badEvery)
	wantRequests := uint64(totalEntries) - wantMalformed

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var failed int64

	for i := 0; i < reads; i++ {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(i int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			var err error
			if i%2 == 0 {
				err = checkSummary(baseURL, wantRequests, wantMalformed)
			} else {
				err = checkTypes(baseURL, wantRequests)
			}
			if err != nil {
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: read %d: %v\n", i, err)
			}
		}(i)
	}
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d reads failed", failed, reads)
	}

	var assets listResponse
	if err := getJSON(baseURL+"/assets?sort=requests&dir=desc", &assets); err != nil {
		return err
	}
	if assets.Total != len(assetPaths) {
		return fmt.Errorf("assets: got %d rows, want %d", assets.Total, len(assetPaths))
	}
	for i := 1; i < len(assets.Rows); i++ {
		if assets.Rows[i-1].RequestCount < assets.Rows[i].RequestCount {
			return fmt.Errorf("assets: rows not sorted by requests desc at %d", i)
		}
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Reads: %d\n", reads)
	fmt.Printf("Requests: %d\n", wantRequests)
	fmt.Printf("Malformed: %d\n", wantMalformed)
	return nil
}

func checkSummary(baseURL string, wantRequests, wantMalformed uint64) error {
	var body summaryResponse
	if err := getJSON(baseURL+"/summary", &body); err != nil {
		return err
	}
	if body.Summary.LinesRead != totalEntries {
		return fmt.Errorf("summary: lines read %d, want %d", body.Summary.LinesRead, totalEntries)
	}
	if body.Summary.MalformedJSON != wantMalformed {
		return fmt.Errorf("summary: malformed %d, want %d", body.Summary.MalformedJSON, wantMalformed)
	}
	if body.Summary.Requests != wantRequests {
		return fmt.Errorf("summary: requests %d, want %d", body.Summary.Requests, wantRequests)
	}
	if body.Extensions != len(assetPaths) {
		return fmt.Errorf("summary: extensions %d, want %d", body.Extensions, len(assetPaths))
	}
	return nil
}

func checkTypes(baseURL string, wantRequests uint64) error {
	var body listResponse
	if err := getJSON(baseURL+"/types", &body); err != nil {
		return err
	}
	var total uint64
	for _, row := range body.Rows {
		total += row.RequestCount
	}
	if total != wantRequests {
		return fmt.Errorf("types: requests %d, want %d", total, wantRequests)
	}
	return nil
}

func getJSON(url string, out any) error {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
