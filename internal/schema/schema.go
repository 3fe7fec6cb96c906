// Package schema holds the HCL decoding structures for the project file.
// Optional attributes are pointers so an explicit zero can be told apart
// from an absent attribute.
package schema

// Project represents the top level of a project file.
type Project struct {
	HeaderRows    *int    `hcl:"header_rows,optional"`
	Extension     *string `hcl:"extension,optional"`
	BanCharacters *string `hcl:"ban_characters,optional"`
	ErrorLog      *string `hcl:"error_log,optional"`
	Workbook      *string `hcl:"workbook,optional"`

	Fonts []*Font `hcl:"font,block"`
	Rules *Rules  `hcl:"rules,block"`
}

// Font represents a `font "<name>" { path = ... }` block.
type Font struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

// Rules represents the `rules` block toggling optional checks.
type Rules struct {
	Autofill     *bool `hcl:"autofill,optional"`
	TagParity    *bool `hcl:"tag_parity,optional"`
	FontCoverage *bool `hcl:"font_coverage,optional"`
}
