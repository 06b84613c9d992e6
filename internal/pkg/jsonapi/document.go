// Package jsonapi decodes the JSON:API-flavored envelopes both backends
// speak into flat domain values. Normalization is parameterized by a
// per-resource bind function instead of inheritance, so resource quirks
// (like inventory keying on the product identifier) stay local to the
// repository that owns them.
package jsonapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedEnvelope indicates a response body whose shape is not a valid
// envelope (missing or unparsable data member). Malformed envelopes fail
// loudly; they are never passed through.
var ErrMalformedEnvelope = errors.New("jsonapi: malformed envelope")

// PageMeta is the pagination block of a collection envelope. It is returned
// to callers exactly as received.
type PageMeta struct {
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	PageNumber    int `json:"pageNumber"`
	PageSize      int `json:"pageSize"`
}

// ResourceID is the wire identifier of a resource. Backends are inconsistent
// about quoting it, so it accepts both string and number forms.
type ResourceID string

func (id *ResourceID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ResourceID(s)
		return nil
	}
	*id = ResourceID(b)
	return nil
}

// Int64 coerces the identifier into the numeric type the domain uses.
func (id ResourceID) Int64() (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric resource id %q", ErrMalformedEnvelope, string(id))
	}
	return n, nil
}

// Resource is one wire resource object. The type member is carried for
// completeness but discarded during normalization.
type Resource struct {
	ID         ResourceID      `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

// ErrorObject is one entry of an error envelope.
type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ErrorDocument is the error envelope returned with HTTP error statuses.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// BindFunc builds one flat domain value from a wire resource.
type BindFunc[T any] func(r Resource) (T, error)

type document struct {
	Data json.RawMessage `json:"data"`
	Meta *PageMeta       `json:"meta"`
}

// DecodeOne normalizes a single-resource envelope.
func DecodeOne[T any](body []byte, bind BindFunc[T]) (T, error) {
	var zero T

	doc, err := parseDocument(body)
	if err != nil {
		return zero, err
	}

	var res Resource
	if err := json.Unmarshal(doc.Data, &res); err != nil {
		return zero, fmt.Errorf("%w: data is not a resource object: %v", ErrMalformedEnvelope, err)
	}
	return bind(res)
}

// DecodeMany normalizes a collection envelope, preserving meta unchanged.
// The returned slice always has the same length as the wire collection.
func DecodeMany[T any](body []byte, bind BindFunc[T]) ([]T, *PageMeta, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, nil, err
	}

	var resources []Resource
	if err := json.Unmarshal(doc.Data, &resources); err != nil {
		return nil, nil, fmt.Errorf("%w: data is not a resource array: %v", ErrMalformedEnvelope, err)
	}

	out := make([]T, 0, len(resources))
	for _, res := range resources {
		v, err := bind(res)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, v)
	}
	return out, doc.Meta, nil
}

// DecodeFirst normalizes a collection envelope and returns its first item.
// The products service answers single-resource endpoints with one-item
// collections, so single fetches go through here.
func DecodeFirst[T any](body []byte, bind BindFunc[T]) (T, error) {
	var zero T

	items, _, err := DecodeMany(body, bind)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: empty collection", ErrMalformedEnvelope)
	}
	return items[0], nil
}

func parseDocument(body []byte) (document, error) {
	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return doc, fmt.Errorf("%w: missing data member", ErrMalformedEnvelope)
	}
	return doc, nil
}
