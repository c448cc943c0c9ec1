// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Encode pretty printed JSON
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Encode writes no trailing newline.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - IR representation
//   - github.com/signadot/jsondoc/parse - Parse text to IR
package encode
