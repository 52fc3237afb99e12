/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/OpsGate/OpsGate/common"
)

// sendRequest is the lower level function that sends HTTP requests.
// It runs the request hook chain, performs the call, reads the body, and
// runs the response hook chain. It returns the HTTP status code and the
// raw body; an error is returned only for transport or hook failures.
func (c *Client) sendRequest(method string, endpoint string, payload any) (int, []byte, error) {
	var jsonData []byte
	var err error

	// Serialize the payload to JSON if it's not nil
	if payload != nil {
		jsonData, err = json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to serialize request: %w", err)
		}
	}

	// Build the request URL
	url := fmt.Sprintf("%s%s", c.serverURL, endpoint)

	httpReq, err := http.NewRequest(method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if method == http.MethodPost || method == http.MethodPut {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	// Run the request hooks in registration order
	for _, hook := range c.reqHooks {
		if err = hook(httpReq); err != nil {
			return 0, nil, fmt.Errorf("request hook failed: %w", err)
		}
	}

	// Send the request
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	// Read the response body before running the response hooks so that
	// hooks never race the transport
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Run the response hooks in registration order
	for _, hook := range c.respHooks {
		if err = hook(resp); err != nil {
			return resp.StatusCode, body, fmt.Errorf("response hook failed: %w", err)
		}
	}

	c.logger.Debugf(1001, "%s %s -> %d %s", method, url, resp.StatusCode, common.SingleLine(string(body)))
	return resp.StatusCode, body, nil
}

// call sends a request and decodes a successful response into out.
// Non-2xx responses are turned into the client error taxonomy; the 401
// session side effects have already run by the time the error is returned.
func (c *Client) call(method string, endpoint string, payload any, out any) error {
	code, data, err := c.sendRequest(method, endpoint, payload)
	if err != nil {
		return err
	}

	if code == http.StatusUnauthorized {
		return newAuthExpiredError(code, data)
	}

	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return newStatusError(code, data)
	}

	if out != nil && len(data) > 0 {
		if err = json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	return nil
}
