// Package api issues raw HTTP calls against the remote collection store and
// decodes the canonical entities it returns. Functions here carry no session
// state; the session layer owns merging responses back into memory.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	apierrors "github.com/Alissonroosa/paperbloom-digital-sub001/internal/errors"
)

// doJSON performs one JSON request/response exchange. Non-2xx statuses and
// transport failures come back as classified errors; out is decoded only on
// the expected status.
func doJSON(ctx context.Context, httpClient *http.Client, method, url string, in, out any, wantStatus int, operation string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return apierrors.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apierrors.NewHTTPError(resp.StatusCode, string(b), operation)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
