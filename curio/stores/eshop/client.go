// Package eshop implements the Nintendo eShop storefront backend. One client
// serves every supported region: search runs against the shared catalog and
// the price endpoint takes the country as a request parameter.
package eshop

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/curiodex/curio/curio/stores"
	"github.com/go-resty/resty/v2"
)

const (
	searchPages    = 3
	searchPageSize = 10

	requestTimeout = 15 * time.Second
)

type Client struct {
	http      *resty.Client
	searchURL string
	priceURL  string
}

func NewClient(searchURL, priceURL string) *Client {
	return &Client{
		http:      resty.New().SetTimeout(requestTimeout),
		searchURL: searchURL,
		priceURL:  priceURL,
	}
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	Title    string   `json:"title"`
	NsuidTxt []string `json:"nsuid_txt"`
	URL      string   `json:"url"`
}

func (d searchDoc) nsuid() string {
	if len(d.NsuidTxt) == 0 {
		return ""
	}
	return d.NsuidTxt[0]
}

type priceResponse struct {
	Prices []struct {
		TitleID       int64       `json:"title_id"`
		RegularPrice  *priceBlock `json:"regular_price"`
		DiscountPrice *priceBlock `json:"discount_price"`
	} `json:"prices"`
}

type priceBlock struct {
	Currency    string `json:"currency"`
	RawValue    string `json:"raw_value"`
	EndDatetime string `json:"end_datetime"`
}

// ResolveStoreID searches the catalog for the title and returns the nsuid of
// the closest match, or "" when nothing usable came back. Transport failures
// are returned as errors and left for the caller to decide on.
func (c *Client) ResolveStoreID(ctx context.Context, region stores.Region, title string) (string, error) {
	candidates, err := c.search(ctx, title)
	if err != nil {
		return "", err
	}
	return bestMatch(title, candidates), nil
}

// search collects candidate docs over a fixed number of pages. The page cap
// bounds how many candidates a resolution ever considers; it is not adaptive.
func (c *Client) search(ctx context.Context, query string) ([]searchDoc, error) {
	var docs []searchDoc
	for page := 0; page < searchPages; page++ {
		var out searchResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"q":     query,
				"start": strconv.Itoa(page * searchPageSize),
				"rows":  strconv.Itoa(searchPageSize),
			}).
			SetResult(&out).
			Get(c.searchURL)
		if err != nil {
			return nil, fmt.Errorf("eshop search failed: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("eshop search returned status %d", resp.StatusCode())
		}

		if len(out.Response.Docs) == 0 {
			break
		}
		docs = append(docs, out.Response.Docs...)
	}
	return docs, nil
}

// FetchPrice returns the current snapshot for an nsuid in one country, or nil
// when the store has no price entry for it.
func (c *Client) FetchPrice(ctx context.Context, region stores.Region, storeID string) (*stores.PriceSnapshot, error) {
	var out priceResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"country": string(region),
			"lang":    "en",
			"ids":     storeID,
		}).
		SetResult(&out).
		Get(c.priceURL + "/v1/price")
	if err != nil {
		return nil, fmt.Errorf("eshop price fetch failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("eshop price fetch returned status %d", resp.StatusCode())
	}

	if len(out.Prices) == 0 {
		return nil, nil
	}
	entry := out.Prices[0]
	if entry.RegularPrice == nil {
		return nil, nil
	}

	snapshot := &stores.PriceSnapshot{
		URL:      storefrontURL(region, storeID),
		Currency: entry.RegularPrice.Currency,
	}

	regular, err := strconv.ParseFloat(entry.RegularPrice.RawValue, 64)
	if err != nil {
		return nil, fmt.Errorf("eshop price fetch: bad regular price %q: %w", entry.RegularPrice.RawValue, err)
	}
	snapshot.Price = regular

	if entry.DiscountPrice != nil {
		discounted, err := strconv.ParseFloat(entry.DiscountPrice.RawValue, 64)
		if err != nil {
			return nil, fmt.Errorf("eshop price fetch: bad discount price %q: %w", entry.DiscountPrice.RawValue, err)
		}
		snapshot.Price = discounted
		snapshot.IsOnSale = true
		if entry.DiscountPrice.EndDatetime != "" {
			if ends, err := time.Parse(time.RFC3339, entry.DiscountPrice.EndDatetime); err == nil {
				snapshot.SaleEndsAt = &ends
			}
		}
	}

	return snapshot, nil
}

func storefrontURL(region stores.Region, storeID string) string {
	return fmt.Sprintf("https://ec.nintendo.com/%s/en/titles/%s", region, storeID)
}
