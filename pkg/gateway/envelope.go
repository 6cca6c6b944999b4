package gateway

import "encoding/json"

// Envelope is the uniform response shape of the backend API. Every endpoint
// answers { data?, message?, success? }; absence of data or a non-2xx status
// is the failure signal, independent of HTTP status nuances.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// Status is the HTTP status the envelope arrived with.
	Status int `json:"-"`
}

// HasData reports whether the envelope carries a data payload.
func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

// Decode unmarshals the data payload into v. Returns ErrMissingData when the
// envelope has none, so callers never re-check optional-field presence.
func (e *Envelope) Decode(v interface{}) error {
	if !e.HasData() {
		return ErrMissingData
	}
	return json.Unmarshal(e.Data, v)
}
