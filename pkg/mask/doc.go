// Package mask implements the pattern masking used by masked text inputs.
//
// A pattern mixes wildcard runes ('0' for a digit, '_' for a blank) with
// literal runes. Format walks the pattern and a digit string in lock-step,
// emitting literals verbatim and filling wildcards with digits. The walk stops
// as soon as either side runs out, so a formatted value never ends with a
// literal that was not followed by a digit.
//
// All functions are pure and safe for concurrent use.
package mask
