package jsondoc

import (
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"
)

// Merge folds other into d, leaves of other winning over those of d. See
// [ir.Merge] for the member by member rules; other is left holding the
// drained containers that were merged recursively.
//
// If d is invalid it takes over other's node and ownership and other is
// emptied. An invalid other is ignored.
func (d *Doc) Merge(other *Doc) {
	if d == other || !other.Valid() {
		return
	}
	if !d.Valid() {
		if debug.Merge() {
			debug.Logf("merge into invalid doc takes %s\n", other.root)
		}
		d.MoveFrom(other)
		return
	}
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", other.root, d.root)
	}
	ir.Merge(d.root, other.root)
}

// ReverseMerge folds d into other, leaves of d winning, then frees d's old
// node and takes over other's node and ownership. other is emptied. An
// invalid other is ignored.
func (d *Doc) ReverseMerge(other *Doc) {
	if d == other || !other.Valid() {
		return
	}
	if d.Valid() {
		if debug.Merge() {
			debug.Logf("reverse merge %s into %s\n", d.root, other.root)
		}
		ir.Merge(other.root, d.root)
	}
	d.MoveFrom(other)
}

// MergeString parses text and merges it into d. d is unchanged if text
// does not parse.
func (d *Doc) MergeString(text string, opts ...parse.ParseOption) error {
	other, err := Parse(text, opts...)
	if err != nil {
		return err
	}
	defer other.Close()
	d.Merge(other)
	return nil
}

// ReverseMergeString parses text and reverse merges d into it. d is
// unchanged if text does not parse.
func (d *Doc) ReverseMergeString(text string, opts ...parse.ParseOption) error {
	other, err := Parse(text, opts...)
	if err != nil {
		return err
	}
	defer other.Close()
	d.ReverseMerge(other)
	return nil
}
