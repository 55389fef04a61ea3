// Package format names the concrete text encodings jmerge reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f = format.FromPath("config.yaml")
//
// # Related Packages
//
//   - github.com/signadot/jmerge/parse - Parse text to IR
//   - github.com/signadot/jmerge/encode - Encode IR to text
package format
