// Package app contains the application logic behind the command line. It
// defines the App struct and its configuration, and runs either a full
// compilation of a project or an ordering query against a persisted graph,
// decoupled from any specific entrypoint.
package app
