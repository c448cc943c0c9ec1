package jsondoc

import "fmt"

// Ownership tells whether a Doc is responsible for freeing its tree.
type Ownership int

const (
	Owning Ownership = iota
	NonOwning
)

func (o Ownership) String() string {
	switch o {
	case Owning:
		return "owning"
	case NonOwning:
		return "non-owning"
	default:
		return fmt.Sprintf("<ownership %d>", int(o))
	}
}
