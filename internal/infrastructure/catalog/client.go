package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/dermalens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client fetches the read-only product catalog from a Supabase-style REST
// endpoint. The engine never writes to the catalog.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog API client
func NewClient(apiKey, baseURL string) *Client {
	// The hosted catalog allows 500 requests per minute per key.
	limiter := rate.NewLimiter(rate.Limit(8), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request with catalog auth headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DermaLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}

// ListProducts fetches the full product catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/products", c.baseURL)
	params := url.Values{}
	params.Add("select", "*")
	params.Add("order", "id.asc")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = domain.ErrRateLimited
			} else {
				lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var rows []productRow
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode catalog response: %w", err)
		}

		products := make([]domain.Product, 0, len(rows))
		for _, row := range rows {
			products = append(products, row.toDomain())
		}

		if c.debug {
			log.Printf("[CATALOG] Fetched %d products", len(products))
		}
		return products, nil
	}

	return nil, lastErr
}

// GetProduct fetches a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/products", c.baseURL)
	params := url.Values{}
	params.Add("select", "*")
	params.Add("id", "eq."+id)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogAPIFailure, resp.StatusCode, string(body))
	}

	var rows []productRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrProductNotFound
	}

	product := rows[0].toDomain()
	return &product, nil
}

// exponentialBackoff returns the sleep duration before retry attempt n.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<uint(attempt)) * time.Millisecond
}
