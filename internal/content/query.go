// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Query is a named projection. The client sends GROQ verbatim and never
// interprets it; Name tags the request upstream and labels metrics.
type Query struct {
	Name string
	GROQ string
}

// Params are GROQ parameters, referenced in queries as $name.
type Params map[string]any

// encode writes params as $name=<json> pairs into v.
func (p Params) encode(v url.Values) error {
	for name, value := range p {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding param %s: %w", name, err)
		}
		v.Set("$"+name, string(raw))
	}
	return nil
}
