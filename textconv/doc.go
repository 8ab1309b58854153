// Package textconv converts text between legacy codepages, UTF-8, and
// UTF-16. It is an independent codec service: inputs and outputs are
// plain byte slices, strings, and code-unit slices addressed by Windows
// codepage number, never buffer values.
//
// Every function returns a result owned by the caller; the package keeps
// no state between calls.
package textconv
