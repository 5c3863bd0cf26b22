package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	leads := []map[string]string{
		{"id": "it-1", "first_name": "John", "last_name": "Smith", "company_name": "Acme Corp", "linkedin_url": "https://www.linkedin.com/in/john-smith/"},
		{"id": "it-2", "first_name": "J.", "last_name": "Smith", "company_name": "Acme", "linkedin_url": "http://linkedin.com/in/john-smith"},
		{"id": "it-3", "first_name": "Jon", "last_name": "Smith", "company_name": "Acme Corporation"},
		{"id": "it-4", "first_name": "Zara", "last_name": "Okafor", "company_name": "Globex", "email": "zara@globex.com"},
	}

	// 1. Analyze inline batch
	fmt.Println("1. Analyzing Duplicates...")
	analyzeResp, ok := sendRequest("POST", "/tools/analyze_duplicates", map[string]interface{}{
		"leads": leads,
	})
	if !ok {
		fmt.Println("FAILED: Analyze duplicates")
		os.Exit(1)
	}
	fmt.Println("PASSED: Analyze duplicates")

	// 2. Merge the reported groups
	fmt.Println("2. Merging Duplicates...")
	var analysis struct {
		Result struct {
			DuplicateGroups []json.RawMessage `json:"duplicate_groups"`
		} `json:"result"`
	}
	if err := json.Unmarshal(analyzeResp, &analysis); err != nil || len(analysis.Result.DuplicateGroups) == 0 {
		fmt.Println("FAILED: No duplicate groups in analysis response")
		os.Exit(1)
	}
	groups := make([]interface{}, 0, len(analysis.Result.DuplicateGroups))
	for _, g := range analysis.Result.DuplicateGroups {
		groups = append(groups, g)
	}

	_, ok = sendRequest("POST", "/tools/merge_duplicates", map[string]interface{}{
		"leads":  leads,
		"groups": groups,
	})
	if !ok {
		fmt.Println("FAILED: Merge duplicates")
		os.Exit(1)
	}
	fmt.Println("PASSED: Merge duplicates")

	// 3. Similarity
	fmt.Println("3. Scoring Similarity...")
	_, ok = sendRequest("POST", "/tools/similarity", map[string]interface{}{
		"lead1": leads[0],
		"lead2": leads[2],
	})
	if !ok {
		fmt.Println("FAILED: Similarity")
		os.Exit(1)
	}
	fmt.Println("PASSED: Similarity")

	// 4. Summary
	fmt.Println("4. Summarizing...")
	_, ok = sendRequest("POST", "/tools/dedup_summary", map[string]interface{}{
		"total_checked":    len(leads),
		"exact_duplicates": 1,
		"fuzzy_duplicates": 1,
		"unique_leads":     1,
	})
	if !ok {
		fmt.Println("FAILED: Dedup summary")
		os.Exit(1)
	}
	fmt.Println("PASSED: Dedup summary")
}

func sendRequest(method, endpoint string, payload interface{}) ([]byte, bool) {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return nil, false
	}

	fmt.Printf("Response: %s\n", string(respBody))
	return respBody, true
}
