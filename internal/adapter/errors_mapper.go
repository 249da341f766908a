package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody is the failure envelope of the remote API.
type errorBody struct {
	ErrorCode string `json:"errorCode"`
}

// mapHTTPError returns nil for a successful reply and an [*APIError]
// otherwise. A 2xx reply whose body carries errorCode is a failure too.
func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope errorBody
	if strings.HasPrefix(body, "{") {
		_ = json.Unmarshal(resp.Body(), &envelope)
	}

	ok := resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
	if ok && envelope.ErrorCode == "" {
		return nil
	}

	return &APIError{StatusCode: resp.StatusCode(), Code: envelope.ErrorCode, Body: body}
}
