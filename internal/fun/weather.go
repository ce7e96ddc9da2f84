package fun

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var wttrBase = "https://wttr.in"

var weatherClient = &http.Client{Timeout: 10 * time.Second}

// Weather fetches the one-line wttr.in report for a city.
func Weather(ctx context.Context, city string) (string, error) {
	u := wttrBase + "/" + url.PathEscape(city) + "?format=3"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build weather request: %w", err)
	}
	resp, err := weatherClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch weather for %s: %w", city, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch weather for %s: status %s", city, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read weather response: %w", err)
	}
	return strings.TrimSpace(string(body)), nil
}
