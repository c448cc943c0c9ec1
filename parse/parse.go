package parse

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: %s", ir.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s failed: %v\n", pOpts.format, err)
		}
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p := &parser{toks: toks, opts: opts}
	res, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.i != len(toks) {
		return nil, fmt.Errorf("%w: %w", ErrTrailing, token.UnexpectedErr(toks[p.i].Type.String(), toks[p.i].Pos))
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) endErr(what string) error {
	pos := token.End(p.toks)
	if pos == nil {
		return fmt.Errorf("%w: %w", ErrParse, token.ErrEmptyDoc)
	}
	return fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr(what, pos))
}

func (p *parser) expect(tt token.TokenType, what string) (*token.Token, error) {
	t := p.peek()
	if t == nil {
		return nil, p.endErr(what)
	}
	if t.Type != tt {
		return nil, fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr(what, t.Pos))
	}
	p.i++
	return t, nil
}

func (p *parser) value(depth int) (*ir.Node, error) {
	t := p.peek()
	if t == nil {
		return nil, p.endErr("value")
	}
	switch t.Type {
	case token.TLCurl, token.TLSquare:
		if depth >= p.opts.maxDepth {
			return nil, fmt.Errorf("%w: %d at %s", ErrDepth, p.opts.maxDepth, t.Pos)
		}
		if t.Type == token.TLCurl {
			return p.object(depth + 1)
		}
		return p.array(depth + 1)
	case token.TString:
		p.i++
		return ir.FromString(t.String()), nil
	case token.TInteger:
		p.i++
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		return parseFloat(t)
	case token.TFloat:
		p.i++
		return parseFloat(t)
	case token.TTrue:
		p.i++
		return ir.FromBool(true), nil
	case token.TFalse:
		p.i++
		return ir.FromBool(false), nil
	case token.TNull:
		p.i++
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr(t.Type.String(), t.Pos))
	}
}

// parseFloat rejects literals beyond the float64 range, which would
// otherwise come back as +/-Inf and encode as null.
func parseFloat(t *token.Token) (*ir.Node, error) {
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s at %s", ErrRange, t.Bytes, t.Pos)
	}
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %w", ErrParse, token.NewTokenizeErr(err, t.Pos))
	}
	return ir.FromFloat(f), nil
}

func (p *parser) object(depth int) (*ir.Node, error) {
	p.i++
	res := ir.Object()
	if t := p.peek(); t != nil && t.Type == token.TRCurl {
		p.i++
		return res, nil
	}
	for {
		kt, err := p.expect(token.TString, "string key")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TColon, "':'"); err != nil {
			return nil, err
		}
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		if !res.AddField(kt.String(), v) {
			return nil, fmt.Errorf("%w: could not add field at %s", errInternal, kt.Pos)
		}
		t := p.peek()
		if t == nil {
			return nil, p.endErr("',' or '}'")
		}
		p.i++
		switch t.Type {
		case token.TComma:
			continue
		case token.TRCurl:
			return res, nil
		default:
			return nil, fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("',' or '}'", t.Pos))
		}
	}
}

func (p *parser) array(depth int) (*ir.Node, error) {
	p.i++
	res := ir.Array()
	if t := p.peek(); t != nil && t.Type == token.TRSquare {
		p.i++
		return res, nil
	}
	for {
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		res.AppendValue(v)
		t := p.peek()
		if t == nil {
			return nil, p.endErr("',' or ']'")
		}
		p.i++
		switch t.Type {
		case token.TComma:
			continue
		case token.TRSquare:
			return res, nil
		default:
			return nil, fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("',' or ']'", t.Pos))
		}
	}
}
