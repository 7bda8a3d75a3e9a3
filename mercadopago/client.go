package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Item struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
	PictureURL string  `json:"picture_url,omitempty"`
}

type Payer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest describes a purchase intent sent to the provider.
type PreferenceRequest struct {
	Items               []Item   `json:"items"`
	Payer               Payer    `json:"payer"`
	BackURLs            BackURLs `json:"back_urls"`
	AutoReturn          string   `json:"auto_return"`
	ExternalReference   string   `json:"external_reference"`
	StatementDescriptor string   `json:"statement_descriptor"`
}

// Preference is the provider-side object created from a PreferenceRequest.
// InitPoint is the URL the buyer is redirected to.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type apiError struct {
	Message string `json:"message"`
}

type PreferenceCreator interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*Preference, error)
}

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var _ PreferenceCreator = (*Client)(nil)

func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreatePreference(ctx context.Context, prefReq PreferenceRequest) (*Preference, error) {
	body, err := json.Marshal(prefReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return nil, fmt.Errorf("mercadopago: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("mercadopago returned status %d", resp.StatusCode)
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, err
	}

	return &pref, nil
}
