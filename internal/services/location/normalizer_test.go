package location

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNormalizer(baseURL string) *Normalizer {
	return &Normalizer{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		userAgent:  "test-agent",
	}
}

// stubServer returns a Nominatim stub that serves the given results.
func stubServer(t *testing.T, results []result) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "in", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "en", r.URL.Query().Get("accept-language"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(results))
	}))
}

func TestNormalize_BlankInput(t *testing.T) {
	// Blank input never reaches the network.
	n := testNormalizer("http://127.0.0.1:0")

	for _, input := range []string{"", "   ", "\t\n"} {
		got := n.Normalize(context.Background(), input)
		assert.Equal(t, "India", got, "input %q", input)
	}
}

func TestNormalize_StateAndDistrict(t *testing.T) {
	srv := stubServer(t, []result{
		{Address: &address{State: "Odisha", StateDistrict: "Cuttack"}},
	})
	defer srv.Close()

	n := testNormalizer(srv.URL)
	got := n.Normalize(context.Background(), "Cuttack")
	assert.Equal(t, "India → Odisha → Cuttack", got)
}

func TestNormalize_DistrictKeyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		addr address
		want string
	}{
		{
			name: "state_district beats city",
			addr: address{State: "Odisha", StateDistrict: "Cuttack", City: "Cuttack City"},
			want: "India → Odisha → Cuttack",
		},
		{
			name: "county when no state_district",
			addr: address{State: "Odisha", County: "Khordha"},
			want: "India → Odisha → Khordha",
		},
		{
			name: "village as last-but-one resort",
			addr: address{State: "Odisha", Village: "Pipili"},
			want: "India → Odisha → Pipili",
		},
		{
			name: "region substitutes for state",
			addr: address{Region: "Eastern India", Town: "Puri"},
			want: "India → Eastern India → Puri",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := stubServer(t, []result{{Address: &tt.addr}})
			defer srv.Close()

			n := testNormalizer(srv.URL)
			assert.Equal(t, tt.want, n.Normalize(context.Background(), "somewhere"))
		})
	}
}

func TestNormalize_StateOnly(t *testing.T) {
	srv := stubServer(t, []result{{Address: &address{State: "Odisha"}}})
	defer srv.Close()

	n := testNormalizer(srv.URL)
	assert.Equal(t, "India → Odisha", n.Normalize(context.Background(), "Odisha"))
}

func TestNormalize_NoResults_Passthrough(t *testing.T) {
	srv := stubServer(t, []result{})
	defer srv.Close()

	n := testNormalizer(srv.URL)
	got := n.Normalize(context.Background(), "Atlantis Colony Phase 9")
	assert.Equal(t, "India → Atlantis Colony Phase 9", got)
}

func TestNormalize_NoAddressBlock_Passthrough(t *testing.T) {
	srv := stubServer(t, []result{{DisplayName: "somewhere", Address: nil}})
	defer srv.Close()

	n := testNormalizer(srv.URL)
	assert.Equal(t, "India → Cuttack", n.Normalize(context.Background(), "Cuttack"))
}

func TestNormalize_NeitherStateNorDistrict_Passthrough(t *testing.T) {
	srv := stubServer(t, []result{{Address: &address{}}})
	defer srv.Close()

	n := testNormalizer(srv.URL)
	assert.Equal(t, "India → Cuttack", n.Normalize(context.Background(), "Cuttack"))
}

func TestNormalize_ServerError_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	n := testNormalizer(srv.URL)
	assert.Equal(t, "India → Cuttack", n.Normalize(context.Background(), "Cuttack"))
}

func TestNormalize_Unreachable_Passthrough(t *testing.T) {
	// Nothing listens here; the client errors out fast.
	n := testNormalizer("http://127.0.0.1:1")
	n.httpClient.Timeout = 500 * time.Millisecond

	assert.Equal(t, "India → Cuttack", n.Normalize(context.Background(), "Cuttack"))
}
