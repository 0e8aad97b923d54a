package render

import (
	"fmt"
	"strings"
	"text/template"
)

// BaseFuncs returns the filters available to every template.
func BaseFuncs() template.FuncMap {
	return template.FuncMap{
		"lower":   strings.ToLower,
		"upper":   strings.ToUpper,
		"trim":    strings.TrimSpace,
		"replace": strings.ReplaceAll,
		"join":    strings.Join,
		"quote":   QuoteIdent,
		"literal": QuoteLiteral,
		"default": defaultValue,
	}
}

// defaultValue returns fallback when value is nil or prints as empty, so
// `{{ .var.x | default "y" }}` reads naturally in a pipeline.
func defaultValue(fallback, value any) any {
	if value == nil || fmt.Sprint(value) == "" {
		return fallback
	}
	return value
}

// QuoteIdent double-quotes a SQL identifier.
func QuoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// QuoteLiteral single-quotes a SQL string literal.
func QuoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
