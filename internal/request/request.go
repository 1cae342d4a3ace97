/*
Copyright 2025 Pawprint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// defaultClient is shared by all callers so outbound connections are
// pooled process-wide instead of being re-created per call.
var defaultClient = &http.Client{Timeout: 30 * time.Second}

// ToJsonReq converts a Go object to a JSON-encoded HTTP request payload.
//
// Parameters:
// - payload interface{}: The data structure to be serialized into JSON.
//
// Returns:
// - *bytes.Buffer: The JSON-encoded payload, ready to be sent in a request.
// - error: An error if the JSON marshalling process fails.
func ToJsonReq(payload interface{}) (*bytes.Buffer, error) {
	c, e := json.Marshal(payload)
	if e != nil {
		return nil, e
	}
	return bytes.NewBuffer(c), nil
}

// Call makes an HTTP request using the provided request object and decodes
// the JSON response body into the provided response structure. Non-2XX
// responses are returned as errors carrying the upstream status.
//
// Parameters:
// - req *http.Request: The prepared HTTP request to send.
// - response interface{}: The target structure to hold the decoded JSON response.
//
// Returns:
// - *http.Response: The raw HTTP response object.
// - error: An error if the HTTP request fails, the upstream answers with a
//   non-2XX status, or JSON decoding fails.
func Call(req *http.Request, response interface{}) (*http.Response, error) {
	req.Header.Set("Content-Type", "application/json")

	resp, err := defaultClient.Do(req)
	if err != nil {
		return resp, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, fmt.Errorf("HTTP %d %s for %s", resp.StatusCode, http.StatusText(resp.StatusCode), req.URL)
	}

	if response != nil {
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return resp, err
		}
	}
	return resp, nil
}
