package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultPriceEndpoint is the CryptoCompare single price API.
const DefaultPriceEndpoint = "https://min-api.cryptocompare.com/data/price"

// CryptoCompare is a live PriceSource backed by the CryptoCompare API.
type CryptoCompare struct {
	Endpoint string // DefaultPriceEndpoint if empty
	APIKey   string
	Client   *http.Client // http.DefaultClient if nil
}

// Price implements PriceSource.
func (c *CryptoCompare) Price(ctx context.Context, token, currency string) (decimal.Decimal, error) {
	// https://min-api.cryptocompare.com/data/price?fsym=BTC&tsyms=USD&api_key=...
	// {"USD":64123.12}
	// or, still with a 200 status:
	// {"Response":"Error","Message":"fsym is a required param.","HasWarning":false,"Type":2,...}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultPriceEndpoint
	}
	addr, err := url.Parse(endpoint)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price endpoint %q: %w", endpoint, err)
	}
	q := addr.Query()
	q.Set("fsym", token)
	q.Set("tsyms", currency)
	if c.APIKey != "" {
		q.Set("api_key", c.APIKey)
	}
	addr.RawQuery = q.Encode()

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	var jobj map[string]any
	if err := jwget(ctx, client, addr.String(), &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s price: %w", token, err)
	}
	if jobj["Response"] == "Error" {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s price: %v", token, jobj["Message"])
	}

	path := "$." + currency
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s price: %q: %w", token, path, ErrNoPrice)
	}
	num, ok := jval.(json.Number)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s price: %q is not a number %v", token, path, jval)
	}
	price, err := parseDecimal(num.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot get %s price: %w", token, err)
	}
	return price, nil
}
