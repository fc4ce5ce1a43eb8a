package flightstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/turnlog/turnlog/pkg/util"
)

const defaultAPIEndpoint = "https://aerodatabox.p.rapidapi.com"
const apiHost = "aerodatabox.p.rapidapi.com"

var ErrFlightNotFound = errors.New("no status found for flight")

// Client looks up live flight status from the AeroDataBox API on RapidAPI.
// Responses are kept in the supplied Cache; a nil cache disables caching
type Client struct {
	Endpoint string
	Cache    *Cache

	apiKey     string
	httpClient *http.Client
}

func NewClient(statusCache *Cache) *Client {
	env := util.GetEnvironmentVariables()

	return &Client{
		Endpoint: defaultAPIEndpoint,
		Cache:    statusCache,

		apiKey: env["TURNLOG_AERODATABOX_API_KEY"],
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Lookup returns the legs flying under a flight number on the given
// scheduled departure date (today when empty). The flight number is
// normalised the way the API expects - no spaces, lower case
func (client *Client) Lookup(ctx context.Context, flightNumber string, departureDate string) ([]FlightLeg, error) {
	flightNumber = strings.ToLower(strings.ReplaceAll(flightNumber, " ", ""))

	if departureDate == "" {
		departureDate = time.Now().Format("2006-01-02")
	}

	cacheKey := fmt.Sprintf("flightstatus:%s:%s", flightNumber, departureDate)

	if client.Cache != nil {
		if cached, err := client.Cache.Cache.Get(ctx, cacheKey); err == nil {
			var legs []FlightLeg
			if err := json.Unmarshal([]byte(cached), &legs); err == nil {
				return legs, nil
			}
		}
	}

	requestURL := fmt.Sprintf(
		"%s/flights/number/%s?withAircraftImage=false&withLocation=false&scheduledDepartureDate=%s",
		client.Endpoint, url.PathEscape(flightNumber), departureDate,
	)

	var body []byte

	operation := func() error {
		request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		request.Header.Set("x-rapidapi-key", client.apiKey)
		request.Header.Set("x-rapidapi-host", apiHost)

		response, err := client.httpClient.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		switch {
		case response.StatusCode == http.StatusOK:
			body, err = io.ReadAll(response.Body)
			return err
		case response.StatusCode == http.StatusNoContent || response.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrFlightNotFound)
		case response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("flight status API returned %d", response.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("flight status API returned %d", response.StatusCode))
		}
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
	if err != nil {
		if !errors.Is(err, ErrFlightNotFound) {
			log.Error().Err(err).Str("flightnumber", flightNumber).Msg("Flight status lookup failed")
		}
		return nil, err
	}

	var legs []FlightLeg
	if err := json.Unmarshal(body, &legs); err != nil {
		return nil, err
	}

	if client.Cache != nil {
		client.Cache.Cache.Set(ctx, cacheKey, string(body))
	}

	return legs, nil
}
