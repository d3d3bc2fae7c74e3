package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transfermarket-cli",
		Short: "Transfer market CLI tool",
		Long:  `A command line interface for interacting with the transfer market API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the transfer market API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Market commands
	marketCmd := &cobra.Command{
		Use:   "market",
		Short: "Transfer market operations",
	}

	var (
		position string
		minPrice int64
		maxPrice int64
		page     int
	)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse players listed for transfer",
		Run: func(cmd *cobra.Command, args []string) {
			browseMarket(position, minPrice, maxPrice, page)
		},
	}
	browseCmd.Flags().StringVar(&position, "position", "", "Filter by position (Goalkeeper, Defender, Midfielder, Attacker)")
	browseCmd.Flags().Int64Var(&minPrice, "min-price", 0, "Minimum asking price")
	browseCmd.Flags().Int64Var(&maxPrice, "max-price", 0, "Maximum asking price")
	browseCmd.Flags().IntVar(&page, "page", 1, "Page number")

	marketCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(marketCmd)

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check API readiness",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}
	rootCmd.AddCommand(healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func browseMarket(position string, minPrice, maxPrice int64, page int) {
	params := url.Values{}
	if position != "" {
		params.Set("position", position)
	}
	if minPrice > 0 {
		params.Set("min_price", strconv.FormatInt(minPrice, 10))
	}
	if maxPrice > 0 {
		params.Set("max_price", strconv.FormatInt(maxPrice, 10))
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	endpoint := baseURL + "/api/v1/transfers/market"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(endpoint)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Market query FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Data struct {
			Players []struct {
				Name             string `json:"name"`
				Position         string `json:"position"`
				AskingPrice      int64  `json:"asking_price"`
				OriginalTeamName string `json:"original_team_name"`
			} `json:"players"`
			Pagination struct {
				Page  int `json:"page"`
				Pages int `json:"pages"`
				Total int `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, p := range result.Data.Players {
		fmt.Printf("%-30s %-12s %12d  %s\n", p.Name, p.Position, p.AskingPrice, p.OriginalTeamName)
	}
	fmt.Printf("Page %d of %d (%d players listed)\n",
		result.Data.Pagination.Page, result.Data.Pagination.Pages, result.Data.Pagination.Total)
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/ready")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Readiness check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Println("Readiness check PASSED")
}
