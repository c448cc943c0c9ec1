// Package parse parses JSON (and YAML) text into IR nodes.
//
// # Usage
//
//	// Parse JSON text
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse YAML into the same tree
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Errors wrap [ErrParse]; JSON syntax errors also carry a *token.TokenizeErr
// locating the problem.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - IR representation
//   - github.com/signadot/jsondoc/encode - Encode IR to text
//   - github.com/signadot/jsondoc/token - Tokenization
package parse
