// Package render evaluates model templates. Templates use text/template
// syntax; the data passed in is the rendering context's Data map, and its
// Funcs (including the per-model `ref`) are callable from the template.
//
// A template may inline other files below the same base directory with
// `{{ include "path/to/fragment.sql" }}`. Fragments see the same context.
package render
