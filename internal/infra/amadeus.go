package infra

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"odyssey/pkg/utils"
)

const amadeusBaseURL = "https://test.api.amadeus.com"

// FlightOffersRequest parameterizes one flight-offers search attempt.
type FlightOffersRequest struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	NonStop       bool
	MaxOffers     int
}

type FlightSegment struct {
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Departure   struct {
		At string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		At string `json:"at"`
	} `json:"arrival"`
}

type FlightItinerary struct {
	Duration string          `json:"duration"`
	Segments []FlightSegment `json:"segments"`
}

type FlightOffer struct {
	Itineraries []FlightItinerary `json:"itineraries"`
	Price       struct {
		Total string `json:"total"`
	} `json:"price"`
}

type FlightOffersResponse struct {
	Data         []FlightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

// AmadeusClientInterface is the flight-data provider boundary. Token
// acquisition is internal; callers see only the search.
type AmadeusClientInterface interface {
	SearchFlightOffers(ctx context.Context, req FlightOffersRequest) (*FlightOffersResponse, error)
}

type amadeusToken struct {
	token   string
	expires time.Time
}

type amadeusClient struct {
	http      *resty.Client
	apiKey    string
	apiSecret string
	logger    *zap.Logger

	// token is shared process-wide; refresh is mutex-guarded so concurrent
	// callers hitting an expired token share a single refresh call.
	mu    sync.Mutex
	token *amadeusToken
}

func NewAmadeusClient(apiKey, apiSecret, baseURL string, logger *zap.Logger) AmadeusClientInterface {
	if baseURL == "" {
		baseURL = amadeusBaseURL
	}
	return &amadeusClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(20 * time.Second),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		logger:    logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// getToken returns a cached bearer token, refreshing it lazily when expired
// or absent. The cached expiry carries a 10-second buffer so a token is never
// used at the edge of its lifetime.
func (c *amadeusClient) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && time.Now().Before(c.token.expires) {
		return c.token.token, nil
	}

	if c.apiKey == "" || c.apiSecret == "" {
		return "", fmt.Errorf("%w: AMADEUS_API_KEY/AMADEUS_API_SECRET not configured", utils.ErrAmadeusAuth)
	}

	c.logger.Info("amadeus token expired or absent, requesting new token")

	var out tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.apiKey,
			"client_secret": c.apiSecret,
		}).
		SetResult(&out).
		Post("/v1/security/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", utils.ErrAmadeusAuth, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d: %s", utils.ErrAmadeusAuth, resp.StatusCode(), resp.String())
	}

	c.token = &amadeusToken{
		token:   out.AccessToken,
		expires: time.Now().Add(time.Duration(out.ExpiresIn-10) * time.Second),
	}

	return c.token.token, nil
}

// clearToken drops the cached token after an auth failure so the next call
// fetches a fresh one.
func (c *amadeusClient) clearToken() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

func (c *amadeusClient) SearchFlightOffers(ctx context.Context, req FlightOffersRequest) (*FlightOffersResponse, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, err
	}

	maxOffers := req.MaxOffers
	if maxOffers <= 0 {
		maxOffers = 5
	}

	var out FlightOffersResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"originLocationCode":      req.Origin,
			"destinationLocationCode": req.Destination,
			"departureDate":           req.DepartureDate,
			"adults":                  strconv.Itoa(req.Adults),
			"currencyCode":            "USD",
			"max":                     strconv.Itoa(maxOffers),
			"nonStop":                 strconv.FormatBool(req.NonStop),
		}).
		SetResult(&out).
		Get("/v2/shopping/flight-offers")
	if err != nil {
		return nil, fmt.Errorf("flight offers request (nonStop=%t): %w", req.NonStop, err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		c.clearToken()
		return nil, fmt.Errorf("%w: flight search rejected with status %d: %s", utils.ErrAmadeusAuth, resp.StatusCode(), resp.String())
	}
	if resp.IsError() {
		return nil, fmt.Errorf("flight search failed (nonStop=%t) with status %d: %s", req.NonStop, resp.StatusCode(), resp.String())
	}

	c.logger.Debug("amadeus flight offers",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Bool("nonStop", req.NonStop),
		zap.Int("offers", len(out.Data)))

	return &out, nil
}
