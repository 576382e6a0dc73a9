// Package backend is the REST client for the remote EcoCollect API. The
// stores never call it; only usecases do, and hand the results to the
// stores through their public operations.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra"
	"ecocollect/internal/pkg/config"

	"github.com/sony/gobreaker/v2"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg config.BackendConfig) *Client {
	settings := gobreaker.Settings{
		Name:        "ecocollect-backend",
		MaxRequests: cfg.BreakerHalfCalls,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("backend circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
		// 4xx means the backend is up and said no; only transport failures
		// and 5xx should trip the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			_, ok := err.(rejection)
			return ok
		},
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListDevices(ctx context.Context) ([]cart.Product, error) {
	var listings []cart.Product
	if err := c.do(ctx, http.MethodGet, "/api/devices", "", nil, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *Client) CreateCollection(ctx context.Context, token string, req CreateCollectionRequest) (*CollectionView, error) {
	var view CollectionView
	if err := c.do(ctx, http.MethodPost, "/api/collections", token, req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) ListCollections(ctx context.Context, token string) ([]CollectionView, error) {
	var views []CollectionView
	if err := c.do(ctx, http.MethodGet, "/api/collections", token, nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (c *Client) CreatePurchase(ctx context.Context, token string, req CreatePurchaseRequest) (*PurchaseView, error) {
	var view PurchaseView
	if err := c.do(ctx, http.MethodPost, "/api/purchases", token, req, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// do runs one request through the circuit breaker. Transport failures and
// 5xx responses count as breaker failures; 4xx responses are the backend
// rejecting a well-formed call and do not trip it.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return infra.WrapRepoErr("failed to encode backend request", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapRepoErr("failed to build backend request", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	respBody, err := c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, infra.WrapRepoErr("backend request failed", err, infra.KindUnavailable)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to read backend response", err, infra.KindUnavailable)
		}

		switch {
		case resp.StatusCode >= 500:
			return nil, infra.WrapRepoErr("backend error: "+resp.Status, nil, infra.KindUnavailable)
		case resp.StatusCode == http.StatusNotFound:
			return nil, rejection{infra.WrapRepoErr("backend: "+resp.Status, nil, infra.KindNotFound)}
		case resp.StatusCode >= 400:
			return nil, rejection{infra.WrapRepoErr("backend rejected request: "+resp.Status, nil, infra.KindRejected)}
		}
		return body, nil
	})
	if err != nil {
		if rej, ok := err.(rejection); ok {
			return rej.err
		}
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return infra.WrapRepoErr("backend circuit open", err, infra.KindUnavailable)
		}
		return err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return infra.WrapRepoErr("failed to decode backend response", err, infra.KindCorrupt)
		}
	}
	return nil
}

// rejection wraps a 4xx result so IsSuccessful can tell it apart from a
// transport failure.
type rejection struct {
	err error
}

func (r rejection) Error() string { return r.err.Error() }
