package stores

import (
	"context"
	"testing"
)

type countingClient struct {
	resolves int
	fetches  int
}

func (c *countingClient) ResolveStoreID(context.Context, Region, string) (string, error) {
	c.resolves++
	return "7001", nil
}

func (c *countingClient) FetchPrice(context.Context, Region, string) (*PriceSnapshot, error) {
	c.fetches++
	return &PriceSnapshot{Currency: "GBP", Price: 9.99}, nil
}

func TestPlatformStore_UnsupportedRegionIsSoftNone(t *testing.T) {
	client := &countingClient{}
	store := NewPlatformStore(PlatformSwitch, []Region{RegionGB, RegionAU}, client)

	id, err := store.ResolveStoreID(context.Background(), RegionNZ, "Foo")
	if err != nil || id != "" {
		t.Errorf("ResolveStoreID(NZ) = %q, %v, want soft none", id, err)
	}
	snapshot, err := store.FetchPrice(context.Background(), RegionNZ, "7001")
	if err != nil || snapshot != nil {
		t.Errorf("FetchPrice(NZ) = %v, %v, want soft none", snapshot, err)
	}
	if client.resolves != 0 || client.fetches != 0 {
		t.Errorf("client calls = %d resolves %d fetches, want none for unsupported region", client.resolves, client.fetches)
	}
}

func TestPlatformStore_SupportedRegionDelegates(t *testing.T) {
	client := &countingClient{}
	store := NewPlatformStore(PlatformSwitch, []Region{RegionGB}, client)

	id, err := store.ResolveStoreID(context.Background(), RegionGB, "Foo")
	if err != nil || id != "7001" {
		t.Errorf("ResolveStoreID(GB) = %q, %v, want 7001", id, err)
	}
	if client.resolves != 1 {
		t.Errorf("resolve calls = %d, want 1", client.resolves)
	}
}

func TestMall_Lookup(t *testing.T) {
	store := NewPlatformStore(PlatformSwitch, []Region{RegionGB}, &countingClient{})
	mall := NewMall(store)

	if !mall.Has(PlatformSwitch) {
		t.Error("Has(switch) = false, want true")
	}
	if mall.Has(Platform("ps5")) {
		t.Error("Has(ps5) = true, want false")
	}
	if got := mall.Store(PlatformSwitch); got != store {
		t.Error("Store(switch) returned a different store")
	}
}

func TestMall_StorePanicsOnUnregisteredPlatform(t *testing.T) {
	mall := NewMall()

	defer func() {
		if recover() == nil {
			t.Error("Store() on empty mall did not panic")
		}
	}()
	mall.Store(PlatformSwitch)
}

func TestParsePlatform(t *testing.T) {
	if p, err := ParsePlatform("switch"); err != nil || p != PlatformSwitch {
		t.Errorf("ParsePlatform(switch) = %v, %v", p, err)
	}
	if _, err := ParsePlatform("dreamcast"); err == nil {
		t.Error("ParsePlatform(dreamcast) error = nil, want error")
	}
}
