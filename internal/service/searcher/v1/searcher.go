// Package searcher provides functionality for querying the HotPepper gourmet search API.
package searcher

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/config"
	serviceErrors "github.com/danilovkiri/dk_go_sharegourmet/internal/service/errors"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/modelshop"
	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/searcher"
)

// Check interface implementation explicitly
var (
	_ searcher.Searcher = (*Searcher)(nil)
)

// envelope is the body layout of the gourmet search API.
type envelope struct {
	Results *struct {
		Shop  []modelshop.RawShop `json:"shop"`
		Error []struct {
			Code    json.Number `json:"code"`
			Message string      `json:"message"`
		} `json:"error"`
	} `json:"results"`
}

// Searcher struct defines data structure handling and provides support for adding new implementations.
type Searcher struct {
	client *resty.Client
	apiKey string
	count  int
	fanout int
	log    *zap.Logger
}

// InitSearcher initializes a Searcher object and sets its attributes.
func InitSearcher(cfg *config.Config, log *zap.Logger) (*Searcher, error) {
	if cfg.HotPepperAPIKey == "" {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "empty HotPepper API key was passed to searcher initializer"}
	}
	if cfg.HotPepperBaseURL == "" {
		return nil, &serviceErrors.ServiceIncorrectInput{Msg: "empty HotPepper base URL was passed to searcher initializer"}
	}
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(cfg.HotPepperBaseURL).
		SetHeader("Accept", "application/json")
	if cfg.HotPepperTimeout > 0 {
		client.SetTimeout(cfg.HotPepperTimeout)
	}
	count := cfg.HotPepperResultCount
	if count <= 0 {
		count = 30
	}
	fanout := cfg.HotPepperFanout
	if fanout <= 0 {
		fanout = 1
	}
	return &Searcher{
		client: client,
		apiKey: cfg.HotPepperAPIKey,
		count:  count,
		fanout: fanout,
		log:    log,
	}, nil
}

// Search queries the API. An identifier in q takes precedence over the other filters.
// A malformed or empty body yields an empty, non-nil list together with UpstreamMalformedError.
func (s *Searcher) Search(ctx context.Context, q modelshop.Query) ([]modelshop.RawShop, error) {
	params := map[string]string{
		"key":    s.apiKey,
		"count":  strconv.Itoa(s.count),
		"format": "json",
	}
	if id := strings.TrimSpace(q.ID); id != "" {
		params["id"] = id
	} else {
		setIfNotEmpty(params, "keyword", q.Keyword)
		setIfNotEmpty(params, "genre", q.Genre)
		setIfNotEmpty(params, "small_area", q.SmallArea)
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/")
	if err != nil {
		s.log.Warn("Requesting search API", zap.Error(err))
		return nil, &serviceErrors.UpstreamUnavailableError{Err: err}
	}
	if !resp.IsSuccess() {
		s.log.Warn("Search API returned non-success status", zap.Int("status", resp.StatusCode()))
		return nil, &serviceErrors.UpstreamUnavailableError{
			Status:  resp.StatusCode(),
			Details: details(resp.Body()),
		}
	}
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return []modelshop.RawShop{}, &serviceErrors.UpstreamMalformedError{}
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		s.log.Warn("Decoding search API response", zap.Error(err))
		return []modelshop.RawShop{}, &serviceErrors.UpstreamMalformedError{Err: err}
	}
	if env.Results == nil {
		return []modelshop.RawShop{}, &serviceErrors.UpstreamMalformedError{}
	}
	if len(env.Results.Error) > 0 {
		e := env.Results.Error[0]
		return nil, &serviceErrors.UpstreamUnavailableError{
			Status:  resp.StatusCode(),
			Details: e.Code.String() + ": " + e.Message,
		}
	}
	shops := make([]modelshop.RawShop, 0, len(env.Results.Shop))
	for _, shop := range env.Results.Shop {
		if strings.TrimSpace(shop.ID) == "" {
			continue
		}
		shops = append(shops, shop)
	}
	return shops, nil
}

// Lookup returns the record with the given identifier.
func (s *Searcher) Lookup(ctx context.Context, id string) (modelshop.RawShop, error) {
	if strings.TrimSpace(id) == "" {
		return modelshop.RawShop{}, &serviceErrors.ServiceIncorrectInput{Msg: "empty shop id"}
	}
	shops, err := s.Search(ctx, modelshop.Query{ID: id})
	if err != nil {
		return modelshop.RawShop{}, err
	}
	if len(shops) == 0 {
		return modelshop.RawShop{}, &serviceErrors.NotFoundError{ID: id}
	}
	return shops[0], nil
}

// LookupBulk issues one lookup per distinct identifier with at most fanout requests in flight.
// Failed lookups are logged and left out of the result.
func (s *Searcher) LookupBulk(ctx context.Context, ids []string) map[string]modelshop.RawShop {
	var (
		mu     sync.Mutex
		result = make(map[string]modelshop.RawShop, len(ids))
		seen   = make(map[string]struct{}, len(ids))
	)
	g := new(errgroup.Group)
	g.SetLimit(s.fanout)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		id := id
		g.Go(func() error {
			shop, err := s.Lookup(ctx, id)
			if err != nil {
				s.log.Info("Bulk lookup skipped shop", zap.String("id", id), zap.Error(err))
				return nil
			}
			mu.Lock()
			result[id] = shop
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return result
}

func setIfNotEmpty(params map[string]string, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params[key] = value
	}
}

// details returns the upstream error body as compact text.
func details(body []byte) string {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return strings.TrimSpace(string(body))
	}
	compact, err := json.Marshal(v)
	if err != nil {
		return string(body)
	}
	return string(compact)
}
