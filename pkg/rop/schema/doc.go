// Package schema adapts external validators into rop pipelines. It owns no
// validation rules itself: callers hand it any Validator implementation,
// and the adapter turns raw bytes or decoded data into typed Results.
//
// Highlights:
// - Validate/ValidateWith: run a validator over decoded data
// - ParseJSON/ParseJSONWith: decode JSON, then validate
// - ParseYAML: the same for YAML inputs
// - ParseResultJSON/EncodeResult: the {"type","value"/"error"} wire shape
//   for results that crossed a process boundary
// - Issue/Issues: structured findings that double as an error value
//
// Parse failures and validation findings stay on separate message
// prefixes ("Invalid JSON: " and "Validation failed: "), so callers can
// tell a malformed document from a well-formed one with bad content.
package schema
