package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/larder/internal/catalog"
)

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("", DefaultBerryURL)
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultBerryURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBerryURL)
	}

	u, err = parseEndpoint("example.com/api?x=1#frag", DefaultBerryURL)
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
	if u.Path != "/api" {
		t.Fatalf("path = %q, want /api", u.Path)
	}

	if _, err := parseEndpoint("http://", DefaultBerryURL); err == nil {
		t.Fatalf("expected error for endpoint without host")
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Options{
		ProductURL: server.URL + "/products",
		BerryURL:   server.URL + "/api/v2/berry/",
		Timeout:    2 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c, server
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClient_FetchesProductsAndBerries(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent, gotRequestID string

	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(requestIDHeader)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products":
			_ = json.NewEncoder(w).Encode([]catalog.Product{{ID: 1, Title: "Backpack", Price: 109.95}})
		case "/api/v2/berry/":
			gotQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(BerryPage{
				Count:   64,
				Results: []BerryRef{{Name: "cheri", URL: "https://pokeapi.co/api/v2/berry/1/"}},
			})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := testContext(t)

	products, err := c.FetchProducts(ctx)
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(products) != 1 || products[0].Title != "Backpack" {
		t.Fatalf("FetchProducts payload = %#v, want one Backpack", products)
	}

	page, err := c.FetchBerries(ctx, 100, 0)
	if err != nil {
		t.Fatalf("FetchBerries returned error: %v", err)
	}
	if page.Count != 64 || len(page.Results) != 1 {
		t.Fatalf("FetchBerries payload = %#v", page)
	}
	if page.Results[0].ID() != 1 {
		t.Fatalf("BerryRef.ID = %d, want 1", page.Results[0].ID())
	}
	if gotQuery.Get("limit") != "100" {
		t.Fatalf("limit = %q, want 100", gotQuery.Get("limit"))
	}
	if gotQuery.Has("offset") {
		t.Fatalf("offset should be omitted when zero, got %q", gotQuery.Get("offset"))
	}
	if !strings.HasPrefix(gotUserAgent, "larder/") {
		t.Fatalf("User-Agent = %q, want larder/*", gotUserAgent)
	}
	if gotRequestID == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

func TestClient_FetchBerryDetail(t *testing.T) {
	t.Parallel()

	var strayHits atomic.Int32
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon/pikachu":
			strayHits.Add(1)
			_, _ = w.Write([]byte(`{"id": 25, "name": "pikachu"}`))
		case "/api/v2/berry/cheri":
			_, _ = w.Write([]byte(`{
				"id": 1, "name": "cheri", "growth_time": 3, "max_harvest": 5,
				"natural_gift_power": 60, "size": 20, "smoothness": 25, "soil_dryness": 15,
				"firmness": {"name": "soft", "url": ""},
				"flavors": [{"flavor": {"name": "spicy"}, "potency": 10}, {"flavor": {"name": "dry"}, "potency": 0}],
				"item": {"name": "cheri-berry"},
				"natural_gift_type": null
			}`))
		default:
			http.NotFound(w, r)
		}
	})
	ctx := testContext(t)

	detail, err := c.FetchBerryDetail(ctx, " cheri ")
	if err != nil {
		t.Fatalf("FetchBerryDetail returned error: %v", err)
	}
	if detail.Name != "cheri" || detail.GrowthTime != 3 || detail.MaxHarvest != 5 {
		t.Fatalf("detail = %#v", detail)
	}
	if detail.FirmnessName() != "soft" {
		t.Fatalf("FirmnessName = %q, want soft", detail.FirmnessName())
	}
	if detail.GiftTypeName() != "" {
		t.Fatalf("GiftTypeName = %q, want empty", detail.GiftTypeName())
	}
	if strong := detail.StrongFlavors(); len(strong) != 1 || strong[0].Flavor.Name != "spicy" {
		t.Fatalf("StrongFlavors = %#v, want [spicy]", strong)
	}

	_, err = c.FetchBerryDetail(ctx, "missingno")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("FetchBerryDetail(missingno) err = %v, want ErrNotFound", err)
	}

	if _, err := c.FetchBerryDetail(ctx, "  "); err == nil {
		t.Fatalf("expected error for empty berry name")
	}

	for _, name := range []string{"../pokemon/pikachu", "..", ".", "cheri/../../pokemon/pikachu", `..\pokemon`, "cheri?x=1"} {
		if _, err := c.FetchBerryDetail(ctx, name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("FetchBerryDetail(%q) err = %v, want ErrNotFound", name, err)
		}
	}
	if n := strayHits.Load(); n != 0 {
		t.Fatalf("requests outside the berry endpoint = %d, want 0", n)
	}
}

func TestClient_ErrorStatusIsNetworkError(t *testing.T) {
	t.Parallel()

	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.FetchProducts(testContext(t))
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *NetworkError", err)
	}
	if netErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d, want %d", netErr.StatusCode, http.StatusBadGateway)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Fatalf("error text = %q, want status code", err.Error())
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	target := server.URL
	server.Close()

	c, err := NewClient(Options{ProductURL: target, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchProducts(testContext(t))
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *NetworkError", err)
	}
	if netErr.StatusCode != 0 {
		t.Fatalf("StatusCode = %d, want 0 for transport failure", netErr.StatusCode)
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})
	if _, err := c.FetchBerries(testContext(t), 10, 0); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchProducts(context.Background()); err == nil {
		t.Fatalf("expected error from nil client")
	}
}
