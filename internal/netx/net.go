// Package netx contains small HTTP helpers for raw binary endpoints.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	Status string
	Code   int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s; body: %d bytes", e.Status, len(e.Body))
}

// PostOctetStream POSTs body to url as application/octet-stream and returns
// the response body. Any status other than 200 is reported as *StatusError.
func PostOctetStream(ctx context.Context, client *http.Client, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", common.ContentTypeOctetStream)

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.Status, Code: resp.StatusCode, Body: data}
	}
	return data, nil
}
