package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a backend is up and print its version",
	RunE:  runPing,
}

func init() {
	pingCmd.Flags().String("url", "http://localhost:9000", "backend base url")
	pingCmd.Flags().Duration("timeout", 5*time.Second, "request timeout")

	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, _ []string) error {
	baseURL, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	baseURL = strings.TrimSuffix(baseURL, "/")

	client := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}

	status, err := get(cmd.Context(), client, baseURL+"/")
	if err != nil {
		return err
	}
	fmt.Printf("status:  %s\n", status)

	version, err := get(cmd.Context(), client, baseURL+"/version")
	if err != nil {
		return err
	}
	fmt.Printf("version: %s\n", strings.TrimSpace(version))
	return nil
}

func get(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return string(body), nil
}
