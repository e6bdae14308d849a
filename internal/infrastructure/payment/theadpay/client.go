// Package theadpay implements the THeadPay gateway protocol: an MD5-signed
// JSON request to create a payment, and signature verification for the
// asynchronous completion callback. Request and callback share one canonical
// signing rule, so Sign is the single source of truth for both directions.
package theadpay

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/subtle"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
)

// Params is the flat field mapping the gateway signs. All values travel as
// strings, including total_fee.
type Params map[string]string

// Config carries the merchant credentials and endpoint. InsecureSkipVerify
// exists for legacy gateways with broken certificates and must stay off
// otherwise.
type Config struct {
	MerchantID         string
	GatewayURL         string
	Key                string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Order is the transient payment request. TotalFeeCents is the amount in the
// smallest currency unit; the wire field is its decimal string form.
type Order struct {
	TradeNo       string
	TotalFeeCents int64
	NotifyURL     string
	ReturnURL     string
}

// UnreachableError means the gateway response could not be interpreted:
// transport failure, unparseable body, or a body without a status field.
type UnreachableError struct {
	Reason string
	Err    error
}

func (e *UnreachableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway unreachable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("payment gateway unreachable: %s", e.Reason)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// RejectedError means the gateway answered but declined the payment.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("payment gateway rejected the request: %s", e.Message)
}

// queryEscape form-encodes a value the way PHP's http_build_query does
// (RFC 1738 urlencode): like url.QueryEscape, except '~' is percent-encoded
// rather than left bare. The gateway signs the PHP form, so the bytes must
// match exactly.
func queryEscape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "~", "%7E")
}

// canonicalString builds the string to digest: fields minus sign, sorted by
// key ascending bytewise, form-encoded as k=v pairs joined by &, with the
// shared secret appended as a trailing &key=<secret> (the secret itself is
// not form-encoded).
func canonicalString(params Params, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(queryEscape(params[k]))
	}
	b.WriteString("&key=")
	b.WriteString(secret)

	return b.String()
}

// Sign computes the canonical signature: uppercase hex MD5 of the canonical
// string. Deterministic and independent of map iteration order.
func Sign(params Params, secret string) string {
	digest := md5.Sum([]byte(canonicalString(params, secret)))
	return strings.ToUpper(fmt.Sprintf("%x", digest))
}

// Verify recomputes the signature over params minus its sign field and
// compares it against the carried sign. The comparison is constant-time.
func Verify(params Params, secret string) bool {
	carried, ok := params["sign"]
	if !ok {
		return false
	}
	expected := Sign(params, secret)
	return subtle.ConstantTimeCompare([]byte(carried), []byte(expected)) == 1
}

// Client performs the outbound create-payment call.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport
	if config.InsecureSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Pay signs the order, posts it as JSON to <gateway_url>/<mchid>, and returns
// the full decoded gateway response. The client never retries; callers decide.
func (c *Client) Pay(ctx context.Context, order Order) (map[string]any, error) {
	params := Params{
		"mchid":        c.config.MerchantID,
		"out_trade_no": order.TradeNo,
		"total_fee":    strconv.FormatInt(order.TotalFeeCents, 10),
		"notify_url":   order.NotifyURL,
		"return_url":   order.ReturnURL,
	}
	params["sign"] = Sign(params, c.config.Key)

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.config.GatewayURL, "/"), c.config.MerchantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnreachableError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UnreachableError{Reason: "failed to read response body", Err: err}
	}

	// Unmarshal over the whole body: a valid JSON object followed by trailing
	// bytes is not a well-formed gateway response.
	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &UnreachableError{Reason: "unparseable response body", Err: err}
	}

	status, ok := result["status"].(string)
	if !ok {
		return nil, &UnreachableError{Reason: "response has no status field"}
	}

	if status != "success" {
		message, _ := result["message"].(string)
		return nil, &RejectedError{Message: message}
	}

	return result, nil
}
