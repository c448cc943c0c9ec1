package jsondoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/parse"
)

// MaxLoadSize bounds the number of bytes LoadFile reads. Longer files are
// truncated.
const MaxLoadSize = 64 << 10

var (
	ErrInvalid     = errors.New("invalid document")
	ErrEmptyPath   = errors.New("empty path")
	ErrEmptyOutput = errors.New("empty output")
	ErrEmptyFile   = errors.New("empty file")
)

// LoadFile parses the first MaxLoadSize bytes of the file at path into d.
// If the file cannot be read or is empty d is left untouched. A parse error
// leaves d invalid, as with Parse.
func (d *Doc) LoadFile(path string, opts ...parse.ParseOption) error {
	return d.LoadFileLimit(path, MaxLoadSize, opts...)
}

// LoadFileLimit is LoadFile reading at most limit bytes.
func (d *Doc) LoadFileLimit(path string, limit int64, opts ...parse.ParseOption) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if debug.File() {
		debug.Logf("read %d bytes (limit %d) from %s\n", len(data), limit, path)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if err := d.Parse(string(data), opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// SaveFile writes d to path, pretty printed unless opts say otherwise.
func (d *Doc) SaveFile(path string, opts ...encode.EncodeOption) error {
	if !d.Valid() {
		return ErrInvalid
	}
	if path == "" {
		return ErrEmptyPath
	}
	buf := bytes.NewBuffer(nil)
	if err := d.Encode(buf, opts...); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return ErrEmptyOutput
	}
	if debug.File() {
		debug.Logf("writing %d bytes to %s\n", buf.Len(), path)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
