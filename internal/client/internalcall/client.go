// Package internalcall fetches cards from a peer instance of this service
// and re-wraps the peer's flat page payload into a local page.
package internalcall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cardvault/internal/config"
	domainErrors "cardvault/internal/errors"
	"cardvault/internal/models"
	"cardvault/internal/utils/pagination"
)

const cardsPath = "/credit-cards"

// maxErrorBody caps how much of a failed response is kept for the log.
const maxErrorBody = 4 << 10

type Client struct {
	base     string
	username string
	password string
	http     *http.Client
}

func New(cfg config.InternalCallConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	if hc.Timeout == 0 && cfg.Timeout > 0 {
		hc.Timeout = cfg.Timeout
	}
	return &Client{
		base:     strings.TrimRight(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		http:     hc,
	}
}

// Fetch issues one GET against the peer. Every failure, whether a transport
// error, a non-2xx status or an undecodable body, is ErrRemoteCallFailed.
func (c *Client) Fetch(ctx context.Context, criteria models.CardCriteria, req pagination.PageRequest) (pagination.Page[models.CardView], error) {
	target := c.base + cardsPath + "?" + OutboundQuery(criteria, req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return pagination.Page[models.CardView]{}, domainErrors.ErrRemoteCallFailed.Wrap(fmt.Errorf("build request: %w", err))
	}
	httpReq.SetBasicAuth(c.username, c.password)
	httpReq.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Printf("Error on credit-card-api call: url=[%s] error=[%v]", target, err)
		return pagination.Page[models.CardView]{}, domainErrors.ErrRemoteCallFailed.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("Error on credit-card-api call: status=[%d] response=[%s]", resp.StatusCode, strings.TrimSpace(string(body)))
		return pagination.Page[models.CardView]{}, domainErrors.ErrRemoteCallFailed.Wrap(fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload pagination.WirePage[models.CardView]
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error on credit-card-api call: undecodable response: %v", err)
		return pagination.Page[models.CardView]{}, domainErrors.ErrRemoteCallFailed.Wrap(fmt.Errorf("decode page: %w", err))
	}

	log.Printf("credit-card-api call: status=[%d] elements=[%d] latency=[%s]", resp.StatusCode, len(payload.Content), time.Since(started))
	return FromWire(payload, req), nil
}
