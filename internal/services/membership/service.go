package membership

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// service implements the Service interface. The community list comes from
// an HTTP endpoint and is cached briefly so every access check does not
// hit the network.
type service struct {
	config     *Config
	httpClient *http.Client
	cacheTTL   time.Duration

	mu        sync.Mutex
	cached    []Community
	fetchedAt time.Time
}

// communityListResponse is the endpoint's envelope around the community
// list
type communityListResponse struct {
	OK   bool        `json:"ok"`
	Data []Community `json:"data"`
}

// New creates a new membership service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIURL != "" && cfg.Checker == nil {
		return nil, errors.New("member checker cannot be nil when an API URL is set")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &service{
		config:     cfg,
		httpClient: httpClient,
		cacheTTL:   cacheTTL,
	}, nil
}

// CheckAccess reports whether an actor belongs to every mandatory
// community. With no API URL configured the gate is open.
func (s *service) CheckAccess(ctx context.Context, input *CheckAccessInput) (*CheckAccessOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	if s.config.APIURL == "" {
		return &CheckAccessOutput{Authorized: true}, nil
	}

	communities, err := s.mandatoryCommunities(ctx)
	if err != nil {
		return nil, err
	}

	var missing []Community
	for _, community := range communities {
		member, err := s.config.Checker.IsMember(ctx, community.ID, input.ActorID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership in %s: %w", community.ID, err)
		}
		if !member {
			missing = append(missing, community)
		}
	}

	return &CheckAccessOutput{
		Authorized: len(missing) == 0,
		Missing:    missing,
	}, nil
}

// mandatoryCommunities returns the community list, refreshing it when the
// cache has gone stale
func (s *service) mandatoryCommunities(ctx context.Context) ([]Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < s.cacheTTL {
		return s.cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.APIURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// A stale list beats locking everyone out on a flaky endpoint
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, fmt.Errorf("failed to fetch mandatory communities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, fmt.Errorf("mandatory community endpoint returned %d", resp.StatusCode)
	}

	var payload communityListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode mandatory communities: %w", err)
	}

	if !payload.OK {
		if s.cached != nil {
			return s.cached, nil
		}
		return nil, errors.New("mandatory community endpoint reported failure")
	}

	communities := make([]Community, 0, len(payload.Data))
	for _, community := range payload.Data {
		if community.Mandatory {
			communities = append(communities, community)
		}
	}

	s.cached = communities
	s.fetchedAt = time.Now()

	return communities, nil
}
