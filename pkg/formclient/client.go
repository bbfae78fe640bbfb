package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	contactPath   = "/v1/contact"
	cataloguePath = "/v1/catalogue-download"

	// The catalogue document is a fixed static asset; the download is
	// triggered client-side and does not depend on the response body.
	catalogueAssetPath = "/images/Coffee_Prince_Catalog_Mother_Properties.pdf"

	contactBannerDuration   = 5 * time.Second
	catalogueBannerDuration = 3 * time.Second

	fallbackFailureMessage = "Something went wrong. Please try again."
	networkFailureMessage  = "Network error. Please check your connection and try again."
)

// ErrSubmitInFlight is returned when a submit is attempted while an
// earlier one has not finished.
var ErrSubmitInFlight = errors.New("formclient: submission already in flight")

// ErrFormInvalid is returned when the form fails validation; the field
// errors are surfaced on the form itself.
var ErrFormInvalid = errors.New("formclient: form has invalid fields")

// ErrClosed is returned when the client has been torn down.
var ErrClosed = errors.New("formclient: client is closed")

// Result reports the outcome of one submission.
type Result struct {
	OK      bool
	Message string
	Code    string
}

// DownloadFunc receives the asset path to fetch after a successful
// catalogue registration.
type DownloadFunc func(path string)

// Client submits intake forms to the backend. One submission runs at a
// time per instance, and the success banner it schedules is owned by
// the instance: Close cancels any pending hide so nothing fires after
// teardown.
type Client struct {
	baseURL    string
	httpClient *http.Client
	download   DownloadFunc

	contactBanner   time.Duration
	catalogueBanner time.Duration

	mu            sync.Mutex
	inFlight      bool
	closed        bool
	bannerVisible bool
	bannerTimer   *time.Timer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDownloadFunc sets the hook invoked after a successful catalogue
// registration.
func WithDownloadFunc(fn DownloadFunc) Option {
	return func(c *Client) { c.download = fn }
}

// NewClient creates a client for the intake API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:         baseURL,
		httpClient:      &http.Client{Timeout: 15 * time.Second},
		contactBanner:   contactBannerDuration,
		catalogueBanner: catalogueBannerDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SubmitContact validates and submits the contact form. On success the
// form is reset and the success banner shows for five seconds.
func (c *Client) SubmitContact(ctx context.Context, form *Form) (Result, error) {
	return c.submit(ctx, form, contactPath, c.contactBanner, nil)
}

// SubmitCatalogue validates and submits the catalogue form. On success
// the form is reset, the banner shows for three seconds, and the
// catalogue asset download hook fires.
func (c *Client) SubmitCatalogue(ctx context.Context, form *Form) (Result, error) {
	return c.submit(ctx, form, cataloguePath, c.catalogueBanner, c.download)
}

func (c *Client) submit(ctx context.Context, form *Form, path string, bannerFor time.Duration, download DownloadFunc) (Result, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Result{}, ErrClosed
	}
	if c.inFlight {
		c.mu.Unlock()
		return Result{}, ErrSubmitInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	// Nothing leaves the client while any field is invalid.
	if !form.SubmitValidate() {
		return Result{}, ErrFormInvalid
	}

	res := c.post(ctx, path, form.Values())
	if res.OK {
		form.Reset()
		c.showBanner(bannerFor)
		if download != nil {
			download(catalogueAssetPath)
		}
	}
	return res, nil
}

func (c *Client) post(ctx context.Context, path string, values map[string]string) Result {
	body, err := json.Marshal(values)
	if err != nil {
		return Result{Message: fallbackFailureMessage, Code: "encode_error"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Result{Message: fallbackFailureMessage, Code: "request_error"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Message: networkFailureMessage, Code: "network_error"}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{Message: networkFailureMessage, Code: "network_error"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := fallbackFailureMessage
		if json.Unmarshal(payload, &errBody) == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return Result{Message: msg, Code: fmt.Sprintf("http_%d", resp.StatusCode)}
	}

	var okBody struct {
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(payload, &okBody) == nil {
		msg = okBody.Message
	}
	return Result{OK: true, Message: msg}
}

// BannerVisible reports whether the success banner is currently shown.
func (c *Client) BannerVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bannerVisible
}

func (c *Client) showBanner(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if c.bannerTimer != nil {
		c.bannerTimer.Stop()
	}
	c.bannerVisible = true
	c.bannerTimer = time.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.bannerVisible = false
	})
}

// Close tears the client down and cancels any pending banner hide.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.bannerTimer != nil {
		c.bannerTimer.Stop()
		c.bannerTimer = nil
	}
	c.bannerVisible = false
}
