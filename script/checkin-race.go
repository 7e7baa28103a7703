package main

import (
	"bytes"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// checkInRequest is the check-in payload
type checkInRequest struct {
	UserName string `json:"userName"`
}

// statusResponse is the status endpoint body
type statusResponse struct {
	CheckedIn bool `json:"checkedIn"`
}

// result contains metrics for a single request
type result struct {
	userID       string
	statusCode   int
	responseTime time.Duration
	err          error
}

// stats aggregates results per user and status code
type stats struct {
	mu            sync.Mutex
	byUser        map[string]map[int]int
	byStatus      map[int]int
	responseTimes []time.Duration
	errors        map[string]int
}

func newStats() *stats {
	return &stats{
		byUser:   make(map[string]map[int]int),
		byStatus: make(map[int]int),
		errors:   make(map[string]int),
	}
}

func (s *stats) add(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.err != nil {
		s.errors[r.err.Error()]++
		return
	}
	if s.byUser[r.userID] == nil {
		s.byUser[r.userID] = make(map[int]int)
	}
	s.byUser[r.userID][r.statusCode]++
	s.byStatus[r.statusCode]++
	s.responseTimes = append(s.responseTimes, r.responseTime)
}

// Fires concurrent check-ins at the same users and verifies that each user
// got exactly one successful check-in.
func main() {
	concurrency := flag.Int("c", 20, "Concurrent check-ins per user")
	userIDsStr := flag.String("u", "alice,bob,carol", "Comma-separated list of user IDs")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	checkOut := flag.Bool("checkout", true, "Check every user out afterwards")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}

	client := &http.Client{Timeout: 10 * time.Second}
	st := newStats()

	fmt.Printf("Racing %d check-ins for each of %d users: %v\n", *concurrency, len(userIDs), userIDs)

	start := time.Now()
	var wg sync.WaitGroup
	for _, userID := range userIDs {
		for i := 0; i < *concurrency; i++ {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				st.add(checkIn(client, *baseURL, userID))
			}(userID)
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	failed := report(st, userIDs, elapsed)

	for _, userID := range userIDs {
		checkedIn, err := status(client, *baseURL, userID)
		if err != nil {
			fmt.Printf("  %s: status error: %v\n", userID, err)
			failed = true
			continue
		}
		if !checkedIn {
			fmt.Printf("  %s: expected to be checked in\n", userID)
			failed = true
		}
		if *checkOut {
			if resp, err := client.Post(*baseURL+"/employees/"+userID+"/check-out", "application/json", nil); err == nil {
				resp.Body.Close()
			}
		}
	}

	if failed {
		fmt.Println("FAILED")
		os.Exit(1)
	}
	fmt.Println("OK")
}

func checkIn(client *http.Client, baseURL, userID string) result {
	body, _ := json.Marshal(checkInRequest{UserName: "Load " + userID})

	start := time.Now()
	resp, err := client.Post(baseURL+"/employees/"+userID+"/check-in", "application/json", bytes.NewReader(body))
	elapsed := time.Since(start)
	if err != nil {
		return result{userID: userID, err: err}
	}
	defer resp.Body.Close()

	return result{userID: userID, statusCode: resp.StatusCode, responseTime: elapsed}
}

func status(client *http.Client, baseURL, userID string) (bool, error) {
	resp, err := client.Get(baseURL + "/employees/" + userID + "/status")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return false, err
	}
	return s.CheckedIn, nil
}

// report prints the summary and reports whether any user broke the one-success rule
func report(st *stats, userIDs []string, elapsed time.Duration) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	fmt.Printf("\nCompleted in %v\n", elapsed)
	fmt.Println("Responses by status:")
	for code, n := range st.byStatus {
		fmt.Printf("  %d: %d\n", code, n)
	}
	for msg, n := range st.errors {
		fmt.Printf("  transport error %q: %d\n", msg, n)
	}

	if n := len(st.responseTimes); n > 0 {
		sort.Slice(st.responseTimes, func(i, j int) bool { return st.responseTimes[i] < st.responseTimes[j] })
		fmt.Printf("Latency p50=%v p95=%v max=%v\n",
			st.responseTimes[n/2], st.responseTimes[n*95/100], st.responseTimes[n-1])
	}

	failed := false
	fmt.Println("Successful check-ins per user:")
	for _, userID := range userIDs {
		ok := st.byUser[userID][http.StatusOK]
		fmt.Printf("  %s: %d\n", userID, ok)
		if ok != 1 {
			failed = true
		}
	}
	return failed
}
