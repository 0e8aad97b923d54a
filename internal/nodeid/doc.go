// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for model identifiers
(fully-qualified names) within the system, based on the canonical format
`project.dir.subdir.name`.

The first segment is the owning project, the last segment is the model's
terminal name, and everything in between mirrors the directories the model
was discovered in.

This package enforces the identifier schema and centralizes all
formatting and parsing logic.
*/
package nodeid
