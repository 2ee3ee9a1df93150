// Package dialect describes the typing, module and JSX conventions of a
// single source file. A Flags value is the declarative input that drives
// pipeline assembly; it never carries behavior of its own.
//
// Detection from file names and pragma comments is best-effort: callers can
// always override the detected flags explicitly.
package dialect
