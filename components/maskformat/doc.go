// Package maskformat exposes the mask pipeline over HTTP so browser inputs
// can format keystrokes server side.
//
// The handler answers GET, HEAD and POST requests. The pattern comes either
// from the pattern parameter or from a field identity (field=telephone),
// and the response carries the masked value, its digits, the composed
// placeholder and whether the pattern is filled.
package maskformat
