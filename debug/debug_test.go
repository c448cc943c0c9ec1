package debug

import (
	"strings"
	"testing"

	"github.com/signadot/jsondoc/ir"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogf(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := SetLogger(zap.New(core))
	defer func() {
		if prev != nil {
			SetLogger(prev.Desugar())
		}
	}()

	y := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	Logf("merged %s into %s\n", y, "base")
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].Message; got != `merged {"a":1} into base` {
		t.Errorf("got %q", got)
	}
}

func TestNodeString(t *testing.T) {
	n := ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.Null()})
	if got := nodeString(n); strings.TrimSpace(got) != `["x",null]` {
		t.Errorf("got %q", got)
	}
	if got := nodeString(nil); got != "<nil>" {
		t.Errorf("got %q", got)
	}
}

func TestSwitches(t *testing.T) {
	saved := *d
	defer func() { d = &saved }()
	Set(true, false, true, false)
	if !Parse() || Merge() || !File() || Ownership() {
		t.Errorf("switches not applied")
	}
}
