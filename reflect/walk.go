package reflect

// WalkEntry is one (offset, path, leaf-type) triple produced by Walk. Path
// is the symbolic member-access chain from the walked root, e.g.
// ".proj", ".lights[2].color". Leaf is never an Array, Struct, Matrix, or
// Vector — walking descends through those until it reaches a terminal type;
// any other type (a Pointer included) is emitted as a leaf unchanged.
type WalkEntry struct {
	Offset uint32
	Path   string
	Leaf   Type
}

// Walk produces the post-order, non-restartable linearisation of t into leaf
// triples. It is finite: the returned slice is fully materialised up front
// rather than lazily generated, favoring an owned slice over an iterator
// adapter — callers that want push-style consumption can range over the
// result exactly like any other slice.
func Walk(t Type) []WalkEntry {
	var out []WalkEntry
	walkInto(t, 0, "", &out)
	return out
}

func walkInto(t Type, base uint32, path string, out *[]WalkEntry) {
	switch v := t.(type) {
	case Struct:
		for _, m := range v.Members {
			walkInto(m.Type, base+m.Offset, path+"."+m.Name, out)
		}
	case Array:
		if v.Count == 0 {
			// Unsized arrays have no fixed element count to unroll; walk
			// element 0 once as the representative element.
			walkInto(v.Element, base, path+"[0]", out)
			return
		}
		stride := v.Stride
		for i := uint32(0); i < v.Count; i++ {
			walkIntoIndexed(v.Element, base+i*stride, path, int(i), out)
		}
	case Matrix:
		compSize := uint32(v.Column.Scalar.Width)
		for c := uint8(0); c < v.Count; c++ {
			colOffset := base + uint32(c)*v.Stride
			for r := uint8(0); r < v.Column.Count; r++ {
				*out = append(*out, WalkEntry{
					Offset: colOffset + uint32(r)*compSize,
					Path:   path + "[" + itoa(int(c)) + "][" + itoa(int(r)) + "]",
					Leaf:   v.Column.Scalar,
				})
			}
		}
	case Vector:
		compSize := uint32(v.Scalar.Width)
		for i := uint8(0); i < v.Count; i++ {
			*out = append(*out, WalkEntry{
				Offset: base + uint32(i)*compSize,
				Path:   path + "[" + itoa(int(i)) + "]",
				Leaf:   v.Scalar,
			})
		}
	default:
		*out = append(*out, WalkEntry{Offset: base, Path: path, Leaf: t})
	}
}

func walkIntoIndexed(t Type, base uint32, path string, idx int, out *[]WalkEntry) {
	walkInto(t, base, path+"["+itoa(idx)+"]", out)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
