package curseforge

import (
	"context"
	"fmt"
	"strings"

	"github.com/modwarden/modwarden/module/mods/adapter"
	httputil "github.com/modwarden/modwarden/module/mods/http"
	"github.com/modwarden/modwarden/module/mods/http/auth/xApiKey"
	"github.com/modwarden/modwarden/module/mods/http/modifier"
)

// DefaultEndpoint is the public CurseForge core API.
const DefaultEndpoint = "https://api.curseforge.com"

// newClient constructs a curseforge client
func newClient(cfg adapter.Config) *client {
	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &client{
		client: httputil.NewClient(
			cfg.HTTP,
			modifier.UserAgent(cfg.UserAgent),
			modifier.Accept("application/json"),
			xApiKey.NewAuthorizer(cfg.APIKey),
		),
		url: endpoint,
	}
}

type client struct {
	client *httputil.Client
	url    string
}

// Mod represents a mod from the CurseForge v1 API
type Mod struct {
	ID     int32  `json:"id"`
	GameID int32  `json:"gameId"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
}

// File represents a mod file from the CurseForge v1 API
type File struct {
	ID          int32  `json:"id"`
	ModID       int32  `json:"modId"`
	DisplayName string `json:"displayName"`
	FileName    string `json:"fileName"`
}

// FingerprintMatch is one exact match of a fingerprint lookup. ID is the mod id.
type FingerprintMatch struct {
	ID   int32 `json:"id"`
	File File  `json:"file"`
}

// FingerprintMatches is the result of a fingerprint lookup
type FingerprintMatches struct {
	IsCacheBuilt          bool               `json:"isCacheBuilt"`
	ExactMatches          []FingerprintMatch `json:"exactMatches"`
	ExactFingerprints     []uint32           `json:"exactFingerprints"`
	UnmatchedFingerprints []uint32           `json:"unmatchedFingerprints"`
}

type fingerprintsRequest struct {
	Fingerprints []uint32 `json:"fingerprints"`
}

type response[T any] struct {
	Data T `json:"data"`
}

// getFingerprintMatches looks up files by their murmur2 fingerprints.
func (c *client) getFingerprintMatches(ctx context.Context, fingerprints []uint32) (*FingerprintMatches, error) {
	u := fmt.Sprintf("%s/v1/fingerprints", c.url)

	var resp response[FingerprintMatches]
	if err := c.client.Post(ctx, u, fingerprintsRequest{Fingerprints: fingerprints}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// getMod fetches a mod by id.
func (c *client) getMod(ctx context.Context, id int32) (*Mod, error) {
	u := fmt.Sprintf("%s/v1/mods/%d", c.url, id)

	var resp response[Mod]
	if err := c.client.Get(ctx, u, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
