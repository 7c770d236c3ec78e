// Package handlers contains the business logic behind the ductl commands.
//
// Handlers are framework-agnostic: they take plain arguments instead of
// cobra commands, and external collaborators sit behind package-level
// factory variables so tests can swap them out.
package handlers
