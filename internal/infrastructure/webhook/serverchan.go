// Package webhook pushes short operator notifications to a ServerChan
// compatible endpoint.
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second

	// maxResponseBytes bounds how much of the push response is read; the
	// body is only used for error messages.
	maxResponseBytes = 4 << 10
)

type ServerChanConfig struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

// ServerChanPusher delivers a title plus markdown description to the
// ServerChan push API as a form POST to <base_url>/<key>.send.
type ServerChanPusher struct {
	config     ServerChanConfig
	httpClient *http.Client
}

func NewServerChanPusher(config ServerChanConfig) *ServerChanPusher {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ServerChanPusher{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *ServerChanPusher) Push(ctx context.Context, title, description string) error {
	endpoint := fmt.Sprintf("%s/%s.send", strings.TrimRight(p.config.BaseURL, "/"), p.config.Key)

	form := url.Values{}
	form.Set("title", title)
	form.Set("desp", description)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("push endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
