package template

import (
	"io"
)

// TemplateRenderer renders template source against bindings. Implementations
// must be deterministic: the same template and data yield the same text.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}

// StringRenderer is the subset of TemplateRenderer the prompt engine depends
// on.
type StringRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
