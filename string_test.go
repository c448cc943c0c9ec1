package jsondoc_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/encode"
)

func TestToString(t *testing.T) {
	d := mustParse(t, `{"a":[1,2],"b":{}}`)
	want := "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t],\n\t\"b\": {}\n}"
	if got := d.ToString(true); got != want {
		t.Errorf("formatted:\n%s", got)
	}
	if got := d.ToString(false); got != `{"a":[1,2],"b":{}}` {
		t.Errorf("compact: %s", got)
	}
	if got := jsondoc.NewString(`q"uote`).ToString(true); got != `q"uote` {
		t.Errorf("string root: %s", got)
	}
	if got := jsondoc.New().ToString(true); got != "" {
		t.Errorf("invalid: %q", got)
	}
	var buf bytes.Buffer
	if err := jsondoc.NewString("s").Encode(&buf, encode.EncodeWire(true)); err != nil || buf.String() != `"s"` {
		t.Errorf("Encode of a string root: %q, %v", buf.String(), err)
	}
	if err := jsondoc.New().Encode(&buf); !errors.Is(err, jsondoc.ErrInvalid) {
		t.Errorf("Encode of an invalid doc: %v", err)
	}
}

func TestNonFiniteEncodesNull(t *testing.T) {
	if got := jsondoc.NewDouble(math.NaN()).String(); got != "null" {
		t.Errorf("NaN: %s", got)
	}
	d := mustParse(t, `{"x":1}`)
	x := d.Field("x")
	x.SetDouble(math.Inf(-1))
	if got := d.String(); got != `{"x":null}` {
		t.Errorf("got %s", got)
	}
	if _, err := jsondoc.Parse(`[1e400]`); err == nil {
		t.Errorf("out of range literal accepted")
	}
}

func TestJSONMarshal(t *testing.T) {
	type wrapper struct {
		Doc  *jsondoc.Doc `json:"doc"`
		Name string       `json:"name"`
	}
	w := wrapper{Doc: mustParse(t, `{"k":[true]}`), Name: "n"}
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"doc":{"k":[true]},"name":"n"}` {
		t.Errorf("marshal: %s", data)
	}
	var back wrapper
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Doc.String() != `{"k":[true]}` || !back.Doc.Owning() {
		t.Errorf("unmarshal: %s", back.Doc)
	}
}
