// Package fieldset loads named groups of masked field definitions from JSON
// or YAML documents.
//
// A document maps fieldset names to an optional style block and a list of
// fields. Missing patterns and labels are filled from the identity defaults in
// package field. An embedded "default" fieldset carries the telephone, credit
// card and digit code fields.
package fieldset
