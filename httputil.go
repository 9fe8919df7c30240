package portfolio

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/tokenledger/portfolio/logging"
)

// contains http utils to deal with remote services

// diskCache implements a simple disk cache for HTTP responses.
//
// Entries are keyed by request and by time window, so that a cached price
// expires at the end of its window.
type diskCache struct {
	base   http.RoundTripper
	dir    string
	window time.Duration
	now    func() time.Time
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	log := logging.FromContext(req.Context())
	key := fmt.Sprintf("%d %s %s", c.now().Truncate(c.window).Unix(), req.Method, req.URL.String())
	key = fmt.Sprintf("folio-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debug().Str("host", req.URL.Host).Str("path", req.URL.Path).Msg("cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Warn().Err(err).Msg("cache dump err (ignored)")
		return resp, nil
	}
	// CryptoCompare reports errors with a 200 status.
	if bytes.Contains(content, []byte(`"Response":"Error"`)) {
		return resp, nil
	}
	if err := c.put(key, content); err != nil {
		log.Warn().Err(err).Msg("cache write err (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a dumped response to disk cache
func (c *diskCache) put(key string, content []byte) error {
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o600)
}

// CachedClient returns a client whose successful responses are kept in dir
// for the current window. A non positive window disables the cache.
func CachedClient(dir string, window time.Duration) *http.Client {
	if window <= 0 {
		return new(http.Client)
	}
	if dir == "" {
		dir = os.TempDir()
	}
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport, dir: dir, window: window, now: time.Now}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
// Numbers are decoded as json.Number to keep them exact.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	return dec.Decode(data)
}
