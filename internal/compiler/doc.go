// Package compiler renders every model of a project into an executable
// statement and discovers the dependency graph while doing so.
//
// Dependencies are not found by static analysis. Each template gets a `ref`
// function bound to the model being rendered; calling it resolves the
// target model, records the edge in the shared linker.Linker and returns
// the quoted relation name to splice into the SQL.
//
// A run compiles models first, against one graph that is persisted as
// graph-<adapter label>.yml, then analyses against a second, throwaway
// graph. Analyses may reference models; nothing may reference an analysis.
package compiler
