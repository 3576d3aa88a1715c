// Package validate holds the shape predicates for layer keys, entry keys
// and hex values, and the structured ValidationError they report.
//
// Accepted shapes:
//
//	layer key   "00", "07", "123"         (decimal, at least 2 digits)
//	entry key   "00.0010", "01.10000"     (layer key, ".", at least 4 digits)
//	value       "0000001A", "ffffffff"    (exactly 8 hex digits, any case)
//
// Values produced by this module are always canonical uppercase hex.
package validate
