package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var chartOut string

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "leaderboard.png", "File to write the chart to")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(countersCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the daily and global leaderboards as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/leaderboard")
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Download the global leaderboard chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return downloadFile("/api/leaderboard/chart.png", chartOut)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <user>",
	Short: "Show a player's stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats?user=" + url.QueryEscape(args[0]))
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Get the persistent lifetime counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/counters")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

func downloadFile(endpoint, path string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", n, path)
	return nil
}
