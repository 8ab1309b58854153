// Package buffer implements a manually managed growable byte vector.
//
// A Buffer owns one contiguous allocation and tracks its used length and
// capacity explicitly; all growth goes through the doubling policy in
// Reserve, never through append. On top of the raw byte engine sit typed
// vector views (View), C-style and wide-string builders, and printf-style
// formatted builders.
//
// Size corruption (overflow, pop underflow, allocation that cannot be
// represented) is fatal: the operation panics instead of returning a
// wrapped or truncated value. Operations never leave a Buffer in a
// partially updated state.
package buffer
