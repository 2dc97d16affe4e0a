package schema

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/rop4/pkg/rop"
)

// ParseYAML decodes raw YAML and validates the decoded value, for
// config-shaped inputs. Mappings decode to map[string]any like JSON
// objects; note that YAML scalars keep their native types, so integers
// arrive as int rather than float64.
func ParseYAML[T any](ctx context.Context, data []byte, v Validator[T]) rop.Result[T, string] {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return rop.Err[T]("Invalid YAML: " + err.Error())
	}
	return Validate(ctx, decoded, v)
}
