package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	requestTimeout = 15 * time.Second

	maxRetryElapsedTime = 30 * time.Second

	// maxMetadataSize caps a single metadata document. Registration files
	// are small JSON blobs; anything larger is suspect.
	maxMetadataSize = 2 * 1024 * 1024
)

// Client fetches and publishes agent metadata documents over an IPFS HTTP
// gateway. Reads go through the gateway, writes through the node API.
type Client struct {
	gatewayURL string
	apiURL     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(gatewayURL string, apiURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.Named("ipfsClient"),
	}
}

// FetchMetadata downloads the document behind uri. Accepted forms are
// ipfs://<cid>[/path], a bare CID, and plain http(s) URLs. Gateway errors
// in the 5xx range are retried with exponential backoff.
func (c *Client) FetchMetadata(ctx context.Context, uri string) ([]byte, error) {
	fetchURL, err := c.resolveURL(uri)
	if err != nil {
		return nil, err
	}

	var body []byte
	operation := func() error {
		var opErr error
		body, opErr = c.get(ctx, fetchURL)
		return opErr
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = maxRetryElapsedTime

	if err := backoff.Retry(operation, backoff.WithContext(expBackoff, ctx)); err != nil {
		return nil, errors.Wrapf(err, "fetch metadata from %s", fetchURL)
	}

	return body, nil
}

// PublishMetadata adds data to the node behind the API URL and returns the
// canonical ipfs:// URI of the new document.
func (c *Client) PublishMetadata(ctx context.Context, data []byte) (string, error) {
	if c.apiURL == "" {
		return "", errors.New("no IPFS API endpoint configured")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "metadata.json")
	if err != nil {
		return "", err
	}
	if _, err = part.Write(data); err != nil {
		return "", err
	}
	if err = writer.Close(); err != nil {
		return "", err
	}

	addURL := c.apiURL + "/api/v0/add?cid-version=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "add metadata")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("add metadata: unexpected status %d", resp.StatusCode)
	}

	var addResponse struct {
		Hash string `json:"Hash"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&addResponse); err != nil {
		return "", errors.Wrap(err, "decode add response")
	}

	publishedCID, err := cid.Decode(addResponse.Hash)
	if err != nil {
		return "", errors.Wrap(err, "parse returned CID")
	}

	c.logger.Debug("published metadata", zap.String("cid", publishedCID.String()), zap.Int("size", len(data)))

	return "ipfs://" + publishedCID.String(), nil
}

// resolveURL turns any accepted metadata URI form into a plain http(s) URL.
func (c *Client) resolveURL(uri string) (string, error) {
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		if _, err := url.Parse(uri); err != nil {
			return "", errors.Wrap(err, "invalid metadata URL")
		}
		return uri, nil

	case strings.HasPrefix(uri, "ipfs://"):
		return c.gatewayPath(strings.TrimPrefix(uri, "ipfs://"))

	default:
		// Bare CID, possibly with a sub-path.
		return c.gatewayPath(uri)
	}
}

func (c *Client) gatewayPath(rest string) (string, error) {
	if c.gatewayURL == "" {
		return "", errors.New("no IPFS gateway configured")
	}

	cidPart := rest
	subPath := ""
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		cidPart, subPath = rest[:idx], rest[idx:]
	}

	parsed, err := cid.Decode(cidPart)
	if err != nil {
		return "", errors.Wrapf(err, "invalid CID %q", cidPart)
	}

	// CIDv0 survives as-is, everything newer is normalized to base32 so
	// the gateway path is case-insensitive safe.
	canonical := cidPart
	if parsed.Version() > 0 {
		if canonical, err = parsed.StringOfBase(multibase.Base32); err != nil {
			return "", errors.Wrap(err, "encode CID")
		}
	}

	return c.gatewayURL + "/ipfs/" + canonical + subPath, nil
}

func (c *Client) get(ctx context.Context, fetchURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize))
		if err != nil {
			return nil, err
		}
		return body, nil
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.Debug("gateway error, retrying", zap.String("url", fetchURL), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	default:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}
