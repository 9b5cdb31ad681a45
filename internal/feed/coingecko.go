package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"PixelTicker/internal/model"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher using the public CoinGecko API.
type CoinGeckoFetcher struct {
	Client   *http.Client
	BaseURL  string
	Coin     string // API coin id, e.g. "bitcoin"
	Currency string // quote currency, e.g. "eur"
	name     string
}

// NewCoinGeckoFetcher creates the primary CoinGecko fetcher with optional
// proxy support.
func NewCoinGeckoFetcher(coin, currency, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL:  coinGeckoBaseURL,
		Coin:     coin,
		Currency: currency,
		name:     "coingecko",
	}
}

// NewCoinGeckoFallback creates a stripped-down CoinGecko fetcher: no proxy,
// no keep-alives, no HTTP/2 and a short timeout. It is the explicit fallback
// transport for when the primary client stalls or the API answers with an
// error payload.
func NewCoinGeckoFallback(coin, currency string) *CoinGeckoFetcher {
	return &CoinGeckoFetcher{
		Client: &http.Client{
			Timeout: 8 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: true,
				ForceAttemptHTTP2: false,
			},
		},
		BaseURL:  coinGeckoBaseURL,
		Coin:     coin,
		Currency: currency,
		name:     "coingecko-fallback",
	}
}

func (f *CoinGeckoFetcher) Name() string { return f.name }

// marketChart is the response structure of the market_chart endpoint. The
// status block only appears on API errors.
type marketChart struct {
	Prices [][2]float64 `json:"prices"`
	Status *struct {
		ErrorCode    int    `json:"error_code"`
		ErrorMessage string `json:"error_message"`
	} `json:"status"`
}

func (f *CoinGeckoFetcher) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "PixelTicker/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%s fetch: %w", f.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s read body: %w", f.name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d, body: %s", f.name, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s decode: %w", f.name, err)
	}
	return nil
}

// FetchHistory requests the market chart for the last `days` days. An error
// payload from the API is surfaced as an error so the caller can decide to
// fall back.
func (f *CoinGeckoFetcher) FetchHistory(ctx context.Context, days int) ([]model.PricePoint, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=%s&days=%d",
		f.BaseURL, url.PathEscape(f.Coin), url.QueryEscape(f.Currency), days)

	var chart marketChart
	if err := f.getJSON(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Status != nil && chart.Status.ErrorMessage != "" {
		return nil, fmt.Errorf("%s api error: %s", f.name, chart.Status.ErrorMessage)
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		points = append(points, model.PricePoint{
			Time:  time.UnixMilli(int64(p[0])),
			Price: p[1],
		})
	}
	return points, nil
}

// FetchCurrentPrice requests the current spot price.
func (f *CoinGeckoFetcher) FetchCurrentPrice(ctx context.Context) (float64, error) {
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s",
		f.BaseURL, url.QueryEscape(f.Coin), url.QueryEscape(f.Currency))

	var data map[string]map[string]float64
	if err := f.getJSON(ctx, u, &data); err != nil {
		return 0, err
	}
	price, ok := data[f.Coin][f.Currency]
	if !ok {
		return 0, fmt.Errorf("%s: no price for %s/%s in response", f.name, f.Coin, f.Currency)
	}
	return price, nil
}
