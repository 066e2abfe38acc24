package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:8080/orders/"
	fixedID = "ORD-000001"
)

// Requester hammers the order read path. TOKEN must hold a JWT of a
// participant of fixedID or of an admin.
func main() {
	token := os.Getenv("TOKEN")
	if token == "" {
		fmt.Println("TOKEN is not set")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(token string) {
	id := fixedID
	if rand.Intn(5) == 0 {
		id = fmt.Sprintf("ORD-%06d", rand.Intn(999999)+1)
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+id, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", req.URL, "->", resp.Status)
	resp.Body.Close()
}
