// Package project loads a project definition (project.hcl) and answers
// questions about it: where sources and outputs live, which dependency
// projects are installed, what context every template sees, and how each
// model is configured.
package project
