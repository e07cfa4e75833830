// Package location turns free-text birth locations into a hierarchical
// "India → State → District" label using OpenStreetMap Nominatim.
//
// Normalization is strictly best-effort: every lookup failure degrades to a
// readable fallback string, never to an error. Nominatim has usage limits —
// in production consider caching; deliberately not done here.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// countryLabel anchors every normalized label.
const countryLabel = "India"

// Normalizer resolves free-text locations via the Nominatim search API.
type Normalizer struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a Normalizer with the given lookup timeout.
func New(timeout time.Duration) *Normalizer {
	return &Normalizer{
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://nominatim.openstreetmap.org/search",
		// A descriptive User-Agent is required by the Nominatim usage policy.
		userAgent: "siddharth-astrology-app",
	}
}

// Normalize converts user input into one of four label shapes:
//
//	"India"                          — blank input
//	"India → State → District"       — state and district resolved
//	"India → State"                  — only state resolved
//	"India → <original input>"       — lookup failed or returned no address
//
// It never returns an error; callers can always embed the result directly
// in a prompt.
func (n *Normalizer) Normalize(ctx context.Context, userText string) string {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return countryLabel
	}

	addr, err := n.lookup(ctx, userText)
	if err != nil {
		log.Printf("⚠️  Location lookup failed for %q: %v", userText, err)
		return fmt.Sprintf("%s → %s", countryLabel, userText)
	}
	if addr == nil {
		return fmt.Sprintf("%s → %s", countryLabel, userText)
	}

	// State-level field: first non-empty wins.
	state := firstNonEmpty(addr.State, addr.Region)

	// District-level field: Nominatim spreads this across several keys
	// depending on how the place is mapped.
	district := firstNonEmpty(
		addr.StateDistrict,
		addr.County,
		addr.City,
		addr.Town,
		addr.Village,
		addr.Suburb,
	)

	switch {
	case state != "" && district != "":
		return fmt.Sprintf("%s → %s → %s", countryLabel, state, district)
	case state != "":
		return fmt.Sprintf("%s → %s", countryLabel, state)
	default:
		return fmt.Sprintf("%s → %s", countryLabel, userText)
	}
}

// lookup queries Nominatim biased toward India. A nil address with a nil
// error means the lookup succeeded but found nothing usable.
func (n *Normalizer) lookup(ctx context.Context, userText string) (*address, error) {
	params := url.Values{
		// Append ", India" to bias the search inside the country.
		"q":               {userText + ", India"},
		"format":          {"jsonv2"},
		"addressdetails":  {"1"},
		"accept-language": {"en"},
		"countrycodes":    {"in"},
		"limit":           {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(results) == 0 || results[0].Address == nil {
		return nil, nil
	}
	return results[0].Address, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Nominatim API response types.

type result struct {
	DisplayName string   `json:"display_name"`
	Address     *address `json:"address"`
}

type address struct {
	State         string `json:"state"`
	Region        string `json:"region"`
	StateDistrict string `json:"state_district"`
	County        string `json:"county"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Suburb        string `json:"suburb"`
}
