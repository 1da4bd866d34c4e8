// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assist

import (
	"bytes"
	"encoding/json"

	"github.com/jeranaias/querychat/internal/results"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// Result is the tabular portion of a structured response. Data is only
// meaningful when Success is true.
type Result struct {
	Success bool         `json:"success"`
	Data    *results.Set `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Response is the assistant's reply. All fields are optional; presence
// drives interpretation. Error takes total precedence over the rest.
type Response struct {
	Error    string  `json:"error,omitempty"`
	Solution string  `json:"solution,omitempty"`
	Summary  string  `json:"summary,omitempty"`
	Query    string  `json:"query,omitempty"`
	Result   *Result `json:"result,omitempty"`

	// Raw carries the verbatim body when the server answered with plain
	// text instead of a structured object. Empty for structured replies.
	Raw string `json:"-"`
}

// IsLegacy reports whether the reply was a bare string rather than a
// structured object.
func (r *Response) IsLegacy() bool {
	return r.Raw != ""
}

// HasTable reports whether the reply carries a successful tabular result.
func (r *Response) HasTable() bool {
	return r.Result != nil && r.Result.Success && r.Result.Data != nil
}

// ParseResponse decodes a reply body. A JSON object decodes into the
// structured form; anything else (a JSON string, or text that is not JSON
// at all) is treated as a legacy bare-text reply.
func ParseResponse(body []byte) (*Response, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var resp Response
		if err := json.Unmarshal(trimmed, &resp); err != nil {
			return nil, &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: "malformed response body",
				Cause:   err,
			}
		}
		return &resp, nil
	}

	// A JSON-encoded string unwraps to its contents; raw text passes
	// through as-is.
	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		text = string(trimmed)
	}
	return &Response{Raw: text}, nil
}
