package schema

import (
	"context"
	"errors"
	"fmt"

	j "github.com/goccy/go-json"

	"github.com/ib-77/rop4/pkg/rop"
)

// Wire shape of a serialized result: {"type":"Ok","value":...} or
// {"type":"Err","error":...}.
type okEnvelope[T any] struct {
	Type  string `json:"type"`
	Value T      `json:"value"`
}

type errEnvelope[E any] struct {
	Type string `json:"type"`
	Err  E      `json:"error"`
}

// ParseResultJSON decodes a serialized result and validates the payload of
// whichever variant it carries: okV checks Ok values, errV checks Err
// payloads. Structural defects (not an object, missing or unknown
// discriminant, missing payload field) and payload findings all surface on
// the outer string error channel, so an Ok outcome always wraps a
// well-formed inner result.
func ParseResultJSON[T, E any](ctx context.Context, data []byte, okV Validator[T], errV Validator[E]) rop.Result[rop.Result[T, E], string] {
	type inner = rop.Result[T, E]

	var decoded any
	if err := j.Unmarshal(data, &decoded); err != nil {
		return rop.Err[inner]("Invalid JSON: " + err.Error())
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return rop.Err[inner]("Invalid Result: expected a JSON object")
	}

	rawType, present := obj["type"]
	if !present {
		return rop.Err[inner]("Invalid Result: missing 'type' field")
	}
	variant, ok := rawType.(string)
	if !ok {
		return rop.Err[inner]("Invalid Result: 'type' must be a string")
	}

	switch variant {
	case "Ok":
		payload, present := obj["value"]
		if !present {
			return rop.Err[inner]("Invalid Ok Result: missing 'value' field")
		}
		value, iss := okV.SafeParse(ctx, payload)
		if len(iss) > 0 {
			return rop.Err[inner]("Invalid Ok payload: " + iss.Error())
		}
		return rop.Ok[inner, string](rop.Ok[T, E](value))
	case "Err":
		payload, present := obj["error"]
		if !present {
			return rop.Err[inner]("Invalid Err Result: missing 'error' field")
		}
		errPayload, iss := errV.SafeParse(ctx, payload)
		if len(iss) > 0 {
			return rop.Err[inner]("Invalid Err payload: " + iss.Error())
		}
		return rop.Ok[inner, string](rop.Err[T](errPayload))
	}
	return rop.Err[inner](fmt.Sprintf("Invalid Result type: expected 'Ok' or 'Err', got '%s'", variant))
}

// EncodeResult renders r in the serialized result wire shape. Empty
// results have no wire form.
func EncodeResult[T, E any](r rop.Result[T, E]) ([]byte, error) {
	switch {
	case r.IsOk():
		return j.Marshal(okEnvelope[T]{Type: "Ok", Value: r.Value()})
	case r.IsErr():
		return j.Marshal(errEnvelope[E]{Type: "Err", Err: r.Err()})
	}
	return nil, errors.New("schema: cannot encode empty Result")
}
