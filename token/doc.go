// Package token provides tokenization support for JSON text.
//
// [Tokenize] turns bytes into a flat sequence of [Token]s, each carrying a
// [Pos] for error reporting. Structure (nesting, key/value pairing) is left
// to the parser.
//
// [Quote] turns a Go string into a JSON string literal and [QuotedToString]
// decodes one the tokenizer has validated.
package token
