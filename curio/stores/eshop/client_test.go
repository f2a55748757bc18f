package eshop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/curiodex/curio/curio/stores"
)

func searchPayload(docs ...searchDoc) searchResponse {
	var out searchResponse
	out.Response.NumFound = len(docs)
	out.Response.Docs = docs
	return out
}

func Test_Client_search_Paginates(t *testing.T) {
	var starts []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		starts = append(starts, r.URL.Query().Get("start"))
		if r.URL.Query().Get("rows") != "10" {
			t.Errorf("rows = %s, want 10", r.URL.Query().Get("rows"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchPayload(doc(fmt.Sprintf("Game %s", r.URL.Query().Get("start")), "7001")))
	}))
	defer server.Close()

	c := NewClient(server.URL, server.URL)
	docs, err := c.search(context.Background(), "Game")
	if err != nil {
		t.Fatalf("search() error = %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("docs = %d, want 3 (one per page)", len(docs))
	}
	want := []string{"0", "10", "20"}
	if len(starts) != len(want) {
		t.Fatalf("pages requested = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("page %d start = %s, want %s", i, starts[i], want[i])
		}
	}
}

func Test_Client_search_StopsOnEmptyPage(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("start") == "0" {
			json.NewEncoder(w).Encode(searchPayload(doc("Only Hit", "7001")))
			return
		}
		json.NewEncoder(w).Encode(searchPayload())
	}))
	defer server.Close()

	c := NewClient(server.URL, server.URL)
	docs, err := c.search(context.Background(), "Only Hit")
	if err != nil {
		t.Fatalf("search() error = %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("docs = %d, want 1", len(docs))
	}
	if pages != 2 {
		t.Errorf("pages requested = %d, want 2 (stop after first empty)", pages)
	}
}

func Test_Client_ResolveStoreID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("start") != "0" {
			json.NewEncoder(w).Encode(searchPayload())
			return
		}
		if q := r.URL.Query().Get("q"); q != "Hades" {
			t.Errorf("q = %s, want Hades", q)
		}
		json.NewEncoder(w).Encode(searchPayload(
			doc("Hades II", "7002"),
			doc("Hades", "7001"),
		))
	}))
	defer server.Close()

	c := NewClient(server.URL, server.URL)
	id, err := c.ResolveStoreID(context.Background(), stores.RegionGB, "Hades")
	if err != nil {
		t.Fatalf("ResolveStoreID() error = %v", err)
	}
	if id != "7001" {
		t.Errorf("ResolveStoreID() = %s, want 7001", id)
	}
}

func Test_Client_ResolveStoreID_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, server.URL)
	if _, err := c.ResolveStoreID(context.Background(), stores.RegionGB, "Hades"); err == nil {
		t.Fatal("ResolveStoreID() error = nil, want transport error")
	}
}

func Test_Client_FetchPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *stores.PriceSnapshot
	}{
		{
			name: "regular price only",
			body: `{"prices":[{"title_id":7001,"regular_price":{"currency":"GBP","raw_value":"49.99"}}]}`,
			want: &stores.PriceSnapshot{Currency: "GBP", Price: 49.99},
		},
		{
			name: "discounted price wins while on sale",
			body: `{"prices":[{"title_id":7001,
				"regular_price":{"currency":"GBP","raw_value":"49.99"},
				"discount_price":{"currency":"GBP","raw_value":"19.99","end_datetime":"2026-09-08T03:00:00Z"}}]}`,
			want: &stores.PriceSnapshot{Currency: "GBP", Price: 19.99, IsOnSale: true},
		},
		{
			name: "no price entry",
			body: `{"prices":[]}`,
			want: nil,
		},
		{
			name: "entry without regular price",
			body: `{"prices":[{"title_id":7001}]}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/price" {
					t.Errorf("path = %s, want /v1/price", r.URL.Path)
				}
				if got := r.URL.Query().Get("country"); got != "GB" {
					t.Errorf("country = %s, want GB", got)
				}
				if got := r.URL.Query().Get("ids"); got != "7001" {
					t.Errorf("ids = %s, want 7001", got)
				}
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			c := NewClient(server.URL, server.URL)
			got, err := c.FetchPrice(context.Background(), stores.RegionGB, "7001")
			if err != nil {
				t.Fatalf("FetchPrice() error = %v", err)
			}

			if tt.want == nil {
				if got != nil {
					t.Fatalf("FetchPrice() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("FetchPrice() = nil, want snapshot")
			}
			if got.Currency != tt.want.Currency || got.Price != tt.want.Price || got.IsOnSale != tt.want.IsOnSale {
				t.Errorf("FetchPrice() = %+v, want %+v", got, tt.want)
			}
			if got.URL != "https://ec.nintendo.com/GB/en/titles/7001" {
				t.Errorf("snapshot url = %s", got.URL)
			}
			if tt.want.IsOnSale {
				ends, _ := time.Parse(time.RFC3339, "2026-09-08T03:00:00Z")
				if got.SaleEndsAt == nil || !got.SaleEndsAt.Equal(ends) {
					t.Errorf("sale end = %v, want %v", got.SaleEndsAt, ends)
				}
			}
		})
	}
}

func Test_Client_FetchPrice_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, server.URL)
	if _, err := c.FetchPrice(context.Background(), stores.RegionGB, "7001"); err == nil {
		t.Fatal("FetchPrice() error = nil, want transport error")
	}
}
