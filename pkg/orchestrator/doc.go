// Package orchestrator wires fieldset or OpenAPI loading, optional form
// transformers, theme resolution and rendering behind a single Generate call.
package orchestrator
