// Remote login strategies. Both exchange credentials for a host key via one
// POST to the sync service; they differ only in wire encoding. Responses are
// a JSON object carrying the token under "key".
package syncauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/sebbacon/anki-sprite/pkg/types"
)

// requestTimeout bounds the single network call; past it the run fails
// outward with a service error.
const requestTimeout = 30 * time.Second

// hostKeyRequest is the login body the current sync service expects.
type hostKeyRequest struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// hostKeyResponse carries the issued sync token.
type hostKeyResponse struct {
	Key string `json:"key"`
}

// newClient builds the shared resty client configuration.
func newClient(endpoint string) *resty.Client {
	return resty.New().
		SetBaseURL(endpoint).
		SetTimeout(requestTimeout)
}

// RemoteAuth speaks the current sync protocol: a zstd-compressed JSON login
// body, with a zstd-compressed response when the service marks it so.
type RemoteAuth struct {
	client *resty.Client
	enc    *zstd.Encoder
	dec    *zstd.Decoder
}

// NewRemoteAuth creates a RemoteAuth against the given endpoint base URL.
func NewRemoteAuth(endpoint string) (*RemoteAuth, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	return &RemoteAuth{client: newClient(endpoint), enc: enc, dec: dec}, nil
}

// HostKey performs the login exchange and returns the issued token.
func (a *RemoteAuth) HostKey(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(hostKeyRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "zstd").
		SetBody(a.enc.EncodeAll(body, nil)).
		Post(hostKeyPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrServiceFailure, err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	payload := resp.Body()
	if resp.Header().Get("Content-Encoding") == "zstd" {
		payload, err = a.dec.DecodeAll(payload, nil)
		if err != nil {
			return "", fmt.Errorf("%w: bad zstd response: %v", types.ErrProtocolMismatch, err)
		}
	}
	return parseHostKey(payload)
}

// FormAuth speaks the legacy protocol: an application/x-www-form-urlencoded
// login body with a plain JSON response.
type FormAuth struct {
	client *resty.Client
}

// NewFormAuth creates a FormAuth against the given endpoint base URL.
func NewFormAuth(endpoint string) *FormAuth {
	return &FormAuth{client: newClient(endpoint)}
}

// HostKey performs the login exchange and returns the issued token.
func (a *FormAuth) HostKey(ctx context.Context, username, password string) (string, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"u": username,
			"p": password,
		}).
		Post(hostKeyPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrServiceFailure, err)
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	return parseHostKey(resp.Body())
}

// checkStatus maps HTTP statuses to the error taxonomy: 401/403 mean the
// service rejected the credentials, anything else non-2xx is a service
// failure.
func checkStatus(resp *resty.Response) error {
	code := resp.StatusCode()
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return fmt.Errorf("%w: service returned status %d", types.ErrInvalidCredentials, code)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: unexpected status %d", types.ErrServiceFailure, code)
	}
	return nil
}

// parseHostKey extracts the token from a decoded response body.
func parseHostKey(payload []byte) (string, error) {
	var hk hostKeyResponse
	if err := json.Unmarshal(payload, &hk); err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrProtocolMismatch, err)
	}
	if hk.Key == "" {
		return "", fmt.Errorf("%w: response missing key field", types.ErrProtocolMismatch)
	}
	return hk.Key, nil
}
