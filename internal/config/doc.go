// Package config defines the format-agnostic project configuration: which
// fonts to check against, which characters are banned, how sheet files are
// laid out and where the run's outputs go.
//
// The `config.Project` is the single source of truth for the `scan` and
// `workbook` packages. Concrete file formats are read by implementations of
// the Loader interface, such as the HCL one in `internal/hcl`.
package config
