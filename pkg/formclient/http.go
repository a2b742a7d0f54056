package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
)

// HTTPSubmitter posts submissions to the contact endpoint and decodes
// the response envelope. Non-2xx statuses are not errors here: the
// decoded body carries success=false and the controller handles it.
// Only transport-level failures surface as errors.
func HTTPSubmitter(client *http.Client, url string) SubmitFunc {
	if client == nil {
		client = http.DefaultClient
	}

	return func(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error) {
		body, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("encode submission: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		httpResp, err := client.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("submit contact form: %w", err)
		}
		defer httpResp.Body.Close()

		var resp domain.ContactResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &resp, nil
	}
}
