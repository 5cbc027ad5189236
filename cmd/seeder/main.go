package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Session matches models.SessionRequest.
type Session struct {
	Score    int    `json:"score"`
	GameType string `json:"game_type,omitempty"`
}

// A plausible afternoon of play across all three games.
var sessions = []Session{
	{Score: 85, GameType: "drawing"},
	{Score: 120, GameType: "gartic"},
	{Score: 70, GameType: "memory"},
	{Score: 150, GameType: "drawing"},
	{Score: 45, GameType: "memory"},
	{Score: 200, GameType: "gartic"},
	{Score: 95, GameType: "drawing"},
	{Score: 60},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	delay := flag.Duration("delay", 200*time.Millisecond, "pause between sessions")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := *baseURL + "/api/v1/stats/sessions"

	for i, s := range sessions {
		payload, err := json.Marshal(s)
		if err != nil {
			log.Fatalf("Failed to marshal session: %v", err)
		}

		resp, err := client.Post(endpoint, "application/json", bytes.NewBuffer(payload))
		if err != nil {
			log.Fatalf("Failed to send session %d: %v", i+1, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Fatalf("Session %d rejected: %s %s", i+1, resp.Status, string(body))
		}
		fmt.Printf("Session %d/%d: score=%d game=%q -> %s\n", i+1, len(sessions), s.Score, s.GameType, resp.Status)

		time.Sleep(*delay)
	}

	resp, err := client.Get(*baseURL + "/api/v1/stats")
	if err != nil {
		log.Fatalf("Failed to fetch stats: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("Final stats: %s\n", string(body))
}
