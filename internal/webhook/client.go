// Package webhook delivers captured leads to the external intake endpoint.
// Delivery is fire-and-forget: the endpoint publishes no response contract,
// so outcomes are logged for diagnostics and never surfaced to the user.
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/model"
)

const deliverTimeout = 15 * time.Second

type Client struct {
	url  string
	http *http.Client
	wg   sync.WaitGroup
}

// NewClient creates a relay client for the configured intake URL.
func NewClient(webhookURL string) *Client {
	return &Client{
		url:  webhookURL,
		http: &http.Client{Timeout: deliverTimeout},
	}
}

// DeliverLead POSTs the lead form-encoded, matching what the intake
// endpoint always received. The response body is drained and discarded.
func (c *Client) DeliverLead(ctx context.Context, lead model.Lead) error {
	form := url.Values{}
	form.Set("name", lead.Name)
	form.Set("contact_number", lead.ContactNumber)
	form.Set("service", lead.Service)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering lead: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// DeliverLeadAsync runs one best-effort delivery in the background. No
// retry; a failure here must not affect the already-acknowledged request.
func (c *Client) DeliverLeadAsync(lead model.Lead) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
		defer cancel()

		if err := c.DeliverLead(ctx, lead); err != nil {
			log.Warn().Err(err).Str("name", lead.Name).Msg("lead webhook delivery failed")
			return
		}
		log.Info().Str("name", lead.Name).Msg("lead delivered to webhook")
	}()
}

// Wait blocks until background deliveries finish. Called during shutdown so
// an in-flight relay isn't cut off mid-transfer.
func (c *Client) Wait() {
	c.wg.Wait()
}
