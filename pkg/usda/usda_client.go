package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"nutritrack/domain"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

type (
	// Client talks to the USDA FoodData Central API. Credentials are
	// supplied out of band; a missing key surfaces as a provider error,
	// never as a panic here.
	Client interface {
		GetFood(ctx context.Context, fdcID int64) (*FoodDetail, error)
		Search(ctx context.Context, query string) (*SearchResult, error)
	}

	client struct {
		apiKey  string
		baseURL string
		http    *http.Client
	}

	// FoodDetail is the /food/{id} payload, reduced to the fields the
	// resolver consumes. Detail responses nest nutrient metadata.
	FoodDetail struct {
		FdcID         int64            `json:"fdcId"`
		Description   string           `json:"description"`
		BrandName     string           `json:"brandName"`
		ServingSize   float64          `json:"servingSize"`
		ServingUnit   string           `json:"servingSizeUnit"`
		FoodNutrients []DetailNutrient `json:"foodNutrients"`
	}

	DetailNutrient struct {
		Amount   float64 `json:"amount"`
		Nutrient struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			UnitName string `json:"unitName"`
		} `json:"nutrient"`
	}

	// SearchResult is the /foods/search payload. Search responses carry
	// nutrient fields flattened, unlike detail responses.
	SearchResult struct {
		Foods []SearchFood `json:"foods"`
	}

	SearchFood struct {
		FdcID         int64            `json:"fdcId"`
		Description   string           `json:"description"`
		BrandName     string           `json:"brandName"`
		FoodNutrients []SearchNutrient `json:"foodNutrients"`
	}

	SearchNutrient struct {
		NutrientID   int64   `json:"nutrientId"`
		NutrientName string  `json:"nutrientName"`
		Value        float64 `json:"value"`
		UnitName     string  `json:"unitName"`
	}
)

func NewClient(apiKey string) Client {
	return &client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL exists so tests can point the client at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) Client {
	c := NewClient(apiKey).(*client)
	c.baseURL = baseURL
	return c
}

func (c *client) GetFood(ctx context.Context, fdcID int64) (*FoodDetail, error) {
	endpoint := c.baseURL + "/food/" + strconv.FormatInt(fdcID, 10)
	notFound := fmt.Errorf("%w: fdcId %d", domain.ErrFoodNotFoundRemote, fdcID)

	body, err := c.get(ctx, endpoint, nil, notFound)
	if err != nil {
		return nil, err
	}

	var detail FoodDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: failed to parse food payload: %v", domain.ErrRemoteUnavailable, err)
	}

	return &detail, nil
}

func (c *client) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)

	notFound := fmt.Errorf("%w: search endpoint missing", domain.ErrRemoteUnavailable)
	body, err := c.get(ctx, c.baseURL+"/foods/search", params, notFound)
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse search payload: %v", domain.ErrRemoteUnavailable, err)
	}

	return &result, nil
}

func (c *client) get(ctx context.Context, endpoint string, params url.Values, notFound error) ([]byte, error) {
	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider URL: %w", err)
	}
	if params != nil {
		reqURL.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %s - %s", domain.ErrRemoteUnavailable, resp.Status, string(bodyBytes))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", domain.ErrRemoteUnavailable, err)
	}

	return body, nil
}
