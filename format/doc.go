// Package format names the text formats jsondoc documents can be read from
// and written to.
//
// JSON is the native format. YAML is supported for interchange: the same
// document tree can be parsed from and encoded to YAML.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/parse - Parse text to IR
//   - github.com/signadot/jsondoc/encode - Encode IR to text
package format
