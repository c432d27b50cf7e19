package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"surfplan-api/core/logger"
	"surfplan-api/modules/forecast/entity"

	"github.com/codeGROOVE-dev/retry"
	"github.com/sony/gobreaker/v2"
)

// OpenMeteoClient fetches hourly marine and wind forecasts. The marine and
// weather products live on separate endpoints and are merged by timestamp.
type OpenMeteoClient struct {
	marineBaseURL  string
	weatherBaseURL string
	httpClient     *http.Client
	breaker        *gobreaker.CircuitBreaker[[]byte]
}

func NewOpenMeteoClient(marineBaseURL, weatherBaseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		marineBaseURL:  marineBaseURL,
		weatherBaseURL: weatherBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:    "open-meteo",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

type hourlyResponse struct {
	Hourly hourlyBlock `json:"hourly"`
}

// hourlyBlock holds the provider's parallel arrays. Readings are pointers
// because the provider emits JSON nulls for gaps.
type hourlyBlock struct {
	Time                  []int64    `json:"time"`
	WaveHeight            []*float64 `json:"wave_height"`
	SwellWaveHeight       []*float64 `json:"swell_wave_height"`
	SwellWaveDirection    []*float64 `json:"swell_wave_direction"`
	SwellWavePeriod       []*float64 `json:"swell_wave_period"`
	SeaSurfaceTemperature []*float64 `json:"sea_surface_temperature"`
	SeaLevelHeight        []*float64 `json:"sea_level_height_msl"`
	WindSpeed             []*float64 `json:"wind_speed_10m"`
	WindDirection         []*float64 `json:"wind_direction_10m"`
}

// FetchHourly retrieves the merged hourly series for the given coordinates,
// ascending by timestamp.
func (c *OpenMeteoClient) FetchHourly(ctx context.Context, lat, lon float64, days int) ([]entity.ForecastHour, error) {
	marine, err := c.fetchBlock(ctx, c.marineBaseURL, lat, lon, days, url.Values{
		"hourly": []string{"wave_height,swell_wave_height,swell_wave_direction,swell_wave_period,sea_surface_temperature,sea_level_height_msl"},
	})
	if err != nil {
		return nil, fmt.Errorf("marine forecast: %w", err)
	}

	weather, err := c.fetchBlock(ctx, c.weatherBaseURL, lat, lon, days, url.Values{
		"hourly":          []string{"wind_speed_10m,wind_direction_10m"},
		"wind_speed_unit": []string{"kn"},
	})
	if err != nil {
		return nil, fmt.Errorf("wind forecast: %w", err)
	}

	byTime := map[int64]*entity.ForecastHour{}
	hourAt := func(ts int64) *entity.ForecastHour {
		if h, ok := byTime[ts]; ok {
			return h
		}
		h := &entity.ForecastHour{Time: time.Unix(ts, 0).UTC()}
		byTime[ts] = h
		return h
	}

	for i, ts := range marine.Time {
		h := hourAt(ts)
		h.WaveHeightM = at(marine.WaveHeight, i)
		h.SwellHeightM = at(marine.SwellWaveHeight, i)
		h.SwellDirectionDeg = at(marine.SwellWaveDirection, i)
		h.SwellPeriodS = at(marine.SwellWavePeriod, i)
		h.WaterTempC = at(marine.SeaSurfaceTemperature, i)
		h.TideHeightM = at(marine.SeaLevelHeight, i)
	}
	for i, ts := range weather.Time {
		h := hourAt(ts)
		h.WindSpeedKt = at(weather.WindSpeed, i)
		h.WindDirectionDeg = at(weather.WindDirection, i)
	}

	hours := make([]entity.ForecastHour, 0, len(byTime))
	for _, h := range byTime {
		hours = append(hours, *h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Time.Before(hours[j].Time) })
	return hours, nil
}

func (c *OpenMeteoClient) fetchBlock(ctx context.Context, baseURL string, lat, lon float64, days int, extra url.Values) (*hourlyBlock, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	params.Set("forecast_days", strconv.Itoa(days))
	params.Set("timeformat", "unixtime")
	for k, vs := range extra {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	requestURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	var body []byte
	err := retry.Do(
		func() error {
			var fetchErr error
			body, fetchErr = c.breaker.Execute(func() ([]byte, error) {
				return c.get(ctx, requestURL)
			})
			return fetchErr
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("OpenMeteoClient:fetchBlock retrying", "attempt", n+1, "url", baseURL, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	var parsed hourlyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &parsed.Hourly, nil
}

func (c *OpenMeteoClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// at guards against the provider returning arrays shorter than the time axis.
func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
