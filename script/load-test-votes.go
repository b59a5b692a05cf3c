package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// Purchase is the vote purchase payload
type Purchase struct {
	OptionID  string `json:"option_id"`
	VoteCount int64  `json:"vote_count"`
}

// PollView is the part of GET /api/polls/:id the check needs
type PollView struct {
	TotalVotes int64 `json:"total_votes"`
	Options    []struct {
		ID        string `json:"id"`
		VoteCount int64  `json:"vote_count"`
	} `json:"options"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	OptionID     string
	Votes        int64
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	mu            sync.Mutex
	Successful    int
	Failed        int
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	VotesByOption map[string]int64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of purchases to make")
	userIDsStr := flag.String("u", "", "Comma-separated list of registered user IDs")
	pollID := flag.String("poll", "", "Poll to vote on")
	optionIDsStr := flag.String("options", "", "Comma-separated option IDs of the poll")
	maxVotes := flag.Int64("votes", 3, "Maximum votes per purchase")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	userIDs := splitList(*userIDsStr)
	optionIDs := splitList(*optionIDsStr)
	if *pollID == "" || len(userIDs) == 0 || len(optionIDs) == 0 {
		fmt.Println("-poll, -u and -options are required")
		return
	}

	client := &http.Client{Timeout: 15 * time.Second}
	before, err := fetchPoll(client, *baseURL, *pollID)
	if err != nil {
		fmt.Printf("Cannot read poll %s: %v\n", *pollID, err)
		return
	}

	fmt.Printf("Buying votes on poll %s across %d users and %d options\n", *pollID, len(userIDs), len(optionIDs))
	fmt.Printf("Concurrency: %d goroutines, %d purchases, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		VotesByOption: make(map[string]int64),
	}
	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				result := purchase(client, *baseURL, *pollID,
					userIDs[rand.Intn(len(userIDs))],
					optionIDs[rand.Intn(len(optionIDs))],
					rand.Int63n(*maxVotes)+1)
				stats.record(result)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	after, err := fetchPoll(client, *baseURL, *pollID)
	if err != nil {
		fmt.Printf("Cannot re-read poll %s: %v\n", *pollID, err)
		return
	}
	printResults(stats, elapsed, before, after)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func purchase(client *http.Client, baseURL, pollID, userID, optionID string, votes int64) TestResult {
	result := TestResult{UserID: userID, OptionID: optionID, Votes: votes}

	body, err := json.Marshal(Purchase{OptionID: optionID, VoteCount: votes})
	if err != nil {
		result.Error = err
		return result
	}
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/api/polls/%s/vote", baseURL, pollID), bytes.NewReader(body))
	if err != nil {
		result.Error = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		result.Error = fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Message)
	}
	return result
}

func (s *TestStats) record(r TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	s.StatusCounts[r.StatusCode]++
	if r.Error != nil {
		s.Failed++
		s.ErrorCounts[r.Error.Error()]++
		return
	}
	s.Successful++
	s.VotesByOption[r.OptionID] += r.Votes
}

func fetchPoll(client *http.Client, baseURL, pollID string) (*PollView, error) {
	resp, err := client.Get(fmt.Sprintf("%s/api/polls/%s", baseURL, pollID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var view PollView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return nil, err
	}
	return &view, nil
}

func printResults(stats *TestStats, elapsed time.Duration, before, after *PollView) {
	total := stats.Successful + stats.Failed
	times := slices.Clone(stats.ResponseTimes)
	slices.Sort(times)
	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Purchases:     %d\n", total)
	fmt.Printf("Successful:          %d\n", stats.Successful)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f purchases/s\n", float64(total)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}
	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", msg, count)
		}
	}

	// every confirmed purchase must show up in the tally exactly once
	fmt.Println("\n================= TALLY CHECK =================")
	var bought int64
	for _, v := range stats.VotesByOption {
		bought += v
	}
	gained := after.TotalVotes - before.TotalVotes
	if gained == bought {
		fmt.Printf("✅ Tally matches: %d votes bought, %d votes recorded\n", bought, gained)
	} else {
		fmt.Printf("❌ Tally mismatch: %d votes bought, %d votes recorded\n", bought, gained)
	}
	for _, opt := range after.Options {
		fmt.Printf("%-40s %d votes\n", opt.ID, opt.VoteCount)
	}
	fmt.Println("================================================")
}
