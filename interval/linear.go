package interval

import "fmt"

// Translator maps per-chromosome coordinates onto a single linear axis.
// Chromosomes are laid end to end in first-seen order; each occupies
// [offset, offset+extent), where extent is the end of its last merged
// interval.  Two positions on different chromosomes therefore never compare
// as overlapping after translation.
type Translator struct {
	refNames []string
	offsets  map[string]AbsPos
	total    AbsPos
}

// NewTranslator builds the absolute coordinate offset table for u.
func NewTranslator(u *BEDUnion) *Translator {
	t := &Translator{
		refNames: u.RefNames(),
		offsets:  make(map[string]AbsPos, len(u.RefNames())),
	}
	for _, refName := range t.refNames {
		t.offsets[refName] = t.total
		t.total += AbsPos(u.Extent(refName))
	}
	return t
}

// Offset returns the absolute coordinate of position 0 on chrName.
func (t *Translator) Offset(chrName string) (AbsPos, bool) {
	offset, ok := t.offsets[chrName]
	return offset, ok
}

// Abs translates chrName:pos into the absolute coordinate space.
func (t *Translator) Abs(chrName string, pos PosType) (AbsPos, error) {
	offset, ok := t.Offset(chrName)
	if !ok {
		return 0, fmt.Errorf("interval.Translator: unknown chromosome %v", chrName)
	}
	return offset + AbsPos(pos), nil
}

// Len returns the total length of the absolute coordinate space.
func (t *Translator) Len() AbsPos {
	return t.total
}
