// Package duconfig renders the configuration file consumed by the DU
// workload image. The file format is a C-like structured configuration
// language: curly-brace records, parenthesized lists, bracketed arrays,
// key = value; settings and # line comments.
//
// The package keeps two promises. Rendering is deterministic, identical
// documents produce byte-identical text. And scalars keep their source
// spelling, so hex literals, long suffixes and leading-zero identifiers
// such as MCC 001 survive the round trip unchanged.
package duconfig
