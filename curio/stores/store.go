// Package stores models the digital storefronts prices are pulled from. One
// PlatformStore owns the ordered set of regions a platform's storefront
// supports; the Mall is the registry the pricing job looks platforms up in.
package stores

import (
	"context"
	"fmt"
	"time"
)

type Platform string

const (
	PlatformSwitch Platform = "switch"
)

func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformSwitch:
		return PlatformSwitch, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

type Region string

const (
	RegionGB Region = "GB"
	RegionAU Region = "AU"
	RegionNZ Region = "NZ"
)

// PriceSnapshot is the normalized result of one price fetch. Price is the
// effective price: the discounted one while a sale runs, the regular one
// otherwise.
type PriceSnapshot struct {
	URL        string
	Currency   string
	Price      float64
	IsOnSale   bool
	SaleEndsAt *time.Time
}

// RegionClient is the capability set a storefront backend has to provide:
// resolve a free-text title to the store's own catalog id, and fetch the
// current price for a known id. Both use a soft not-found contract (an empty
// id or nil snapshot without error) so callers can tell "skip" from "abort".
type RegionClient interface {
	ResolveStoreID(ctx context.Context, region Region, title string) (string, error)
	FetchPrice(ctx context.Context, region Region, storeID string) (*PriceSnapshot, error)
}

// PlatformStore aggregates the region support of one platform and enforces
// the supported-region boundary before any client call.
type PlatformStore struct {
	platform Platform
	regions  []Region
	client   RegionClient
}

func NewPlatformStore(platform Platform, regions []Region, client RegionClient) *PlatformStore {
	return &PlatformStore{
		platform: platform,
		regions:  regions,
		client:   client,
	}
}

func (s *PlatformStore) Platform() Platform {
	return s.platform
}

// Regions returns the supported regions in their configured order, which is
// also the order the pricing job processes them in.
func (s *PlatformStore) Regions() []Region {
	return s.regions
}

func (s *PlatformStore) Supports(region Region) bool {
	for _, r := range s.regions {
		if r == region {
			return true
		}
	}
	return false
}

func (s *PlatformStore) ResolveStoreID(ctx context.Context, region Region, title string) (string, error) {
	if !s.Supports(region) {
		return "", nil
	}
	return s.client.ResolveStoreID(ctx, region, title)
}

func (s *PlatformStore) FetchPrice(ctx context.Context, region Region, storeID string) (*PriceSnapshot, error) {
	if !s.Supports(region) {
		return nil, nil
	}
	return s.client.FetchPrice(ctx, region, storeID)
}

// Mall is the registry of platform stores, built once at startup and passed
// by reference into whatever needs storefront access.
type Mall struct {
	stores map[Platform]*PlatformStore
}

func NewMall(stores ...*PlatformStore) *Mall {
	m := &Mall{stores: make(map[Platform]*PlatformStore, len(stores))}
	for _, s := range stores {
		m.stores[s.Platform()] = s
	}
	return m
}

func (m *Mall) Has(platform Platform) bool {
	_, ok := m.stores[platform]
	return ok
}

// Store returns the registered store for a platform. Asking for an
// unregistered platform is a wiring mistake, not a runtime condition, so it
// panics; main verifies registration with Has before anything runs.
func (m *Mall) Store(platform Platform) *PlatformStore {
	s, ok := m.stores[platform]
	if !ok {
		panic(fmt.Sprintf("stores: no store registered for platform %q", platform))
	}
	return s
}
