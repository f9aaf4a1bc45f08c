// Package loadfile parses Bates load files: the delimited metadata exports
// that accompany litigation document productions.
//
// The format looks like a CSV but is not one. Fields are wrapped and
// separated by the thorn character (þ, U+00FE) with no quoting or escaping
// convention, the logical header is spread across up to three physical lines
// because one column name contains an embedded line break, files frequently
// arrive with a UTF-8 BOM and stray 0x14 control bytes, and row widths vary
// across a file that was never validated against a fixed schema.
//
// Parse recovers a rectangular table from that mess: it normalizes the text,
// locates the header block by its terminating marker, tokenizes header and
// rows with boundary-only empty-token trimming (interior empty fields are
// preserved so columns stay aligned), and forces every surviving row to the
// header width.
//
// The parser is a pure function from (bytes, Options) to (*Table, error).
// It performs no I/O and holds no package-level mutable state.
package loadfile
