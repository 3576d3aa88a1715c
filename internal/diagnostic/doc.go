// Package diagnostic provides structured errors, warnings and notes
// produced by whole-document and recipe checks.
//
// Key capabilities:
//   - Malformed entry key and value reports
//   - Entries that reference a layer the document does not declare
//   - Non-zero offset notes for manual corrections
package diagnostic
