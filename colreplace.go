// # colreplace: Streaming Column Replacement for Delimited Text
//
// colreplace rewrites a single named column of a comma-delimited file. The header
// line is copied unchanged and every data row gets its target field overwritten with
// a fixed replacement value. Input is processed one line at a time, so memory use is
// bounded by the longest line rather than the file size.
//
// # Features
//
// - Plain delimiter splitting (`Split`, `AppendSplit`) and joining (`Join`). No quoting or escaping.
// - Streaming line `Reader` with reusable records and CRLF detection.
// - Buffered line `Writer` with configurable delimiter and newline policy.
// - Per-column actions (`Keep`, `Replace`) driven by a `Transformer`.
// - A `Pipeline` state machine that defers opening the output until the header and column are validated.
// - `ReplaceFile`, which stages output in a temporary file and only replaces the destination on success.
//
// # Errors
//
// Failures are reported through `ErrMissingInput`, `ErrUnknownColumn`, `ErrOutputOpen`
// and `ErrFieldCount`, each wrapped in a typed error carrying location details.
package colreplace
