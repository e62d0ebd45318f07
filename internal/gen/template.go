package gen

import "text/template"

var fileTemplate = template.Must(template.New("variants").Parse(`// Code generated by variantgen; DO NOT EDIT.

package {{.Package}}
{{range .Unions}}
// {{.Name}} is the closed union {{.UnionName}}. The unexported method limits
// implementations to the declared kinds.
type {{.Name}} interface {
	is{{.Name}}()
}
{{$u := .}}{{range .Kinds}}
// {{.TypeName}} is the {{.KindName}} kind of {{$u.Name}}.
type {{.TypeName}} struct {
{{- range .Fields}}
	{{.Name}} {{.GoType}}
{{- end}}
}

func ({{.TypeName}}) is{{$u.Name}}() {}
{{- if .HasRaw}}

// RawValue returns the raw encoding of {{.KindName}}.
func ({{.TypeName}}) RawValue() {{$u.RawGoType}} { return {{.RawLit}} }
{{- end}}
{{end}}
// Match{{.Name}} dispatches v to the handler for its kind. One parameter per
// kind keeps call sites exhaustive under compiler checking.
func Match{{.Name}}[R any](v {{.Name}}{{range .Kinds}}, {{.Param}} func({{.TypeName}}) R{{end}}) R {
	switch k := v.(type) {
{{- range .Kinds}}
	case {{.TypeName}}:
		return {{.Param}}(k)
{{- end}}
	}
	var zero R
	return zero
}
{{- if .HasRaw}}

// {{.Name}}FromRaw decodes a raw value back to its kind. The second result
// is false when no kind carries the value.
func {{.Name}}FromRaw(raw {{.RawGoType}}) ({{.Name}}, bool) {
	switch raw {
{{- range .Kinds}}{{if .HasRaw}}
	case {{.RawLit}}:
		return {{.TypeName}}{}, true
{{- end}}{{end}}
	}
	return nil, false
}
{{- end}}
{{end}}`))
