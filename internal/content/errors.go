// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
)

// ErrUpstream marks any failure to obtain a usable answer from the content
// API: transport errors, non-2xx responses, error envelopes and responses
// that do not match the expected shape. Not-found is not an error.
var ErrUpstream = errors.New("content: upstream failure")

// APIError is returned when the content API answers with an error envelope
// or a non-2xx status.
type APIError struct {
	Query       string
	Status      int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("content: query %s: status %d", e.Query, e.Status)
	}
	return fmt.Sprintf("content: query %s: status %d: %s", e.Query, e.Status, e.Description)
}

// Unwrap lets callers match any API error with errors.Is(err, ErrUpstream).
func (e *APIError) Unwrap() error {
	return ErrUpstream
}
