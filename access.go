package jsondoc

import (
	"math"

	"github.com/signadot/jsondoc/ir"
)

// Name returns the member name of d's node, "" if it is not an object
// member.
func (d *Doc) Name() string {
	n := d.node()
	if n == nil {
		return ""
	}
	return n.Name()
}

// Has reports whether d is an object with a member called name.
func (d *Doc) Has(name string) bool {
	return d.field(name) != nil
}

func (d *Doc) field(name string) *ir.Node {
	n := d.node()
	if n == nil || name == "" {
		return nil
	}
	return n.Field(name)
}

func (d *Doc) fieldOf(name string, t ir.Type) *ir.Node {
	c := d.field(name)
	if c == nil || c.Type != t {
		return nil
	}
	return c
}

func (d *Doc) at(i int) *ir.Node {
	return d.node().Index(i)
}

func (d *Doc) atOf(i int, t ir.Type) *ir.Node {
	c := d.at(i)
	if c == nil || c.Type != t {
		return nil
	}
	return c
}

func (d *Doc) selfOf(t ir.Type) *ir.Node {
	n := d.node()
	if n == nil || n.Type != t {
		return nil
	}
	return n
}

func intOf(n *ir.Node, def int) int {
	if n == nil {
		return def
	}
	return int(n.Int)
}

// uintOf converts the float value, clamping to the range of uint.
func uintOf(n *ir.Node, def uint) uint {
	if n == nil {
		return def
	}
	switch f := n.Float; {
	case math.IsNaN(f), f <= 0:
		return 0
	case f >= math.MaxUint:
		return math.MaxUint
	default:
		return uint(f)
	}
}

func doubleOf(n *ir.Node, def float64) float64 {
	if n == nil {
		return def
	}
	return n.Float
}

func boolOf(n *ir.Node, def bool) bool {
	if n == nil {
		return def
	}
	return n.Bool
}

func stringOf(n *ir.Node, def string) string {
	if n == nil {
		return def
	}
	return n.String
}

func uintNode(v uint) *ir.Node {
	if uint64(v) > math.MaxInt64 {
		return ir.FromFloat(float64(v))
	}
	return ir.FromInt(int64(v))
}

// self

func (d *Doc) IntValue(def int) int            { return intOf(d.selfOf(ir.NumberType), def) }
func (d *Doc) UintValue(def uint) uint         { return uintOf(d.selfOf(ir.NumberType), def) }
func (d *Doc) DoubleValue(def float64) float64 { return doubleOf(d.selfOf(ir.NumberType), def) }
func (d *Doc) BoolValue(def bool) bool         { return boolOf(d.selfOf(ir.BoolType), def) }
func (d *Doc) StringValue(def string) string   { return stringOf(d.selfOf(ir.StringType), def) }

// by key

func (d *Doc) GetInt(name string, def int) int {
	return intOf(d.fieldOf(name, ir.NumberType), def)
}

func (d *Doc) GetUint(name string, def uint) uint {
	return uintOf(d.fieldOf(name, ir.NumberType), def)
}

func (d *Doc) GetDouble(name string, def float64) float64 {
	return doubleOf(d.fieldOf(name, ir.NumberType), def)
}

func (d *Doc) GetBool(name string, def bool) bool {
	return boolOf(d.fieldOf(name, ir.BoolType), def)
}

func (d *Doc) GetString(name string, def string) string {
	return stringOf(d.fieldOf(name, ir.StringType), def)
}

// by index

func (d *Doc) IntAt(i int, def int) int {
	return intOf(d.atOf(i, ir.NumberType), def)
}

func (d *Doc) UintAt(i int, def uint) uint {
	return uintOf(d.atOf(i, ir.NumberType), def)
}

func (d *Doc) DoubleAt(i int, def float64) float64 {
	return doubleOf(d.atOf(i, ir.NumberType), def)
}

func (d *Doc) BoolAt(i int, def bool) bool {
	return boolOf(d.atOf(i, ir.BoolType), def)
}

func (d *Doc) StringAt(i int, def string) string {
	return stringOf(d.atOf(i, ir.StringType), def)
}

// LookupInt returns the member name as an int. ok is false if there is no
// such member or it is not a number.
func (d *Doc) LookupInt(name string) (v int, ok bool) {
	n := d.fieldOf(name, ir.NumberType)
	return intOf(n, 0), n != nil
}

func (d *Doc) LookupUint(name string) (v uint, ok bool) {
	n := d.fieldOf(name, ir.NumberType)
	return uintOf(n, 0), n != nil
}

func (d *Doc) LookupDouble(name string) (v float64, ok bool) {
	n := d.fieldOf(name, ir.NumberType)
	return doubleOf(n, 0), n != nil
}

func (d *Doc) LookupString(name string) (v string, ok bool) {
	n := d.fieldOf(name, ir.StringType)
	return stringOf(n, ""), n != nil
}

func (d *Doc) LookupBool(name string) (v bool, ok bool) {
	n := d.fieldOf(name, ir.BoolType)
	return boolOf(n, false), n != nil
}

// predicates

func (d *Doc) IsNull() bool   { return d.selfOf(ir.NullType) != nil }
func (d *Doc) IsBool() bool   { return d.selfOf(ir.BoolType) != nil }
func (d *Doc) IsNumber() bool { return d.selfOf(ir.NumberType) != nil }
func (d *Doc) IsString() bool { return d.selfOf(ir.StringType) != nil }
func (d *Doc) IsArray() bool  { return d.selfOf(ir.ArrayType) != nil }
func (d *Doc) IsObject() bool { return d.selfOf(ir.ObjectType) != nil }

// IsInt, IsUint and IsDouble are the same as IsNumber: every number can be
// read in each form.
func (d *Doc) IsInt() bool    { return d.IsNumber() }
func (d *Doc) IsUint() bool   { return d.IsNumber() }
func (d *Doc) IsDouble() bool { return d.IsNumber() }

func (d *Doc) IsNullField(name string) bool   { return d.fieldOf(name, ir.NullType) != nil }
func (d *Doc) IsBoolField(name string) bool   { return d.fieldOf(name, ir.BoolType) != nil }
func (d *Doc) IsNumberField(name string) bool { return d.fieldOf(name, ir.NumberType) != nil }
func (d *Doc) IsStringField(name string) bool { return d.fieldOf(name, ir.StringType) != nil }
func (d *Doc) IsArrayField(name string) bool  { return d.fieldOf(name, ir.ArrayType) != nil }
func (d *Doc) IsObjectField(name string) bool { return d.fieldOf(name, ir.ObjectType) != nil }

func (d *Doc) IsNullAt(i int) bool   { return d.atOf(i, ir.NullType) != nil }
func (d *Doc) IsBoolAt(i int) bool   { return d.atOf(i, ir.BoolType) != nil }
func (d *Doc) IsNumberAt(i int) bool { return d.atOf(i, ir.NumberType) != nil }
func (d *Doc) IsStringAt(i int) bool { return d.atOf(i, ir.StringType) != nil }
func (d *Doc) IsArrayAt(i int) bool  { return d.atOf(i, ir.ArrayType) != nil }
func (d *Doc) IsObjectAt(i int) bool { return d.atOf(i, ir.ObjectType) != nil }
