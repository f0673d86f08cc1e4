package dihedral

import "fmt"

// maxWindow is the longest generator sequence the equivalence-class
// table covers; the reduction engine never looks up anything longer.
const maxWindow = 4

// Short aliases keep the class table legible.
const (
	f = Flip
	r = Rotate
)

// Class identifiers, one per element of the group. The names spell the
// element in generators: e.g. classFR2 is flip followed by two rotations.
const (
	classID byte = iota // identity
	classR              // rotate 90° cw
	classF              // top-bottom mirror
	classR2             // rotate 180°
	classRF             // rotate then mirror
	classFR             // mirror then rotate
	classR3             // rotate 90° ccw
	classFR2            // left-right mirror

	numClasses
)

// classes partitions all 31 generator sequences of length 0–4 into the
// eight equivalence classes. The first sequence in each class is its
// representative: minimal length, ties broken preferring Rotate first.
// The partition is a fixed mathematical fact, enumerated rather than
// derived; init verifies it is exact (no duplicates, no gaps).
var classes = [numClasses][][]Generator{
	classID:  {{}, {f, f}, {r, r, r, r}, {f, f, f, f}, {r, f, r, f}, {f, r, f, r}},
	classR:   {{r}, {f, f, r}, {r, f, f}},
	classF:   {{f}, {f, f, f}, {r, f, r}},
	classR2:  {{r, r}, {r, r, f, f}, {f, f, r, r}, {f, r, r, f}, {r, f, f, r}},
	classRF:  {{r, f}, {r, r, f, r}, {f, r, r, r}, {r, f, f, f}, {f, f, r, f}},
	classFR:  {{f, r}, {r, r, r, f}, {r, f, r, r}, {f, r, f, f}, {f, f, f, r}},
	classR3:  {{r, r, r}, {f, r, f}},
	classFR2: {{f, r, r}, {r, r, f}},
}

// classOf maps a packed sequence key to its class identifier.
// Keys pack one sequence element per 2 bits (0 = end of sequence,
// Generator+1 otherwise), so every sequence of length ≤ 4 gets a
// distinct byte and lookup is a direct array index.
var classOf [256]byte

const noClass byte = 0xFF

// packKey encodes seq into its table key. Callers guarantee
// len(seq) ≤ maxWindow and that every element is a valid Generator.
func packKey(seq []Generator) byte {
	var key byte
	for i, g := range seq {
		key |= byte(g+1) << (2 * i)
	}
	return key
}

func init() {
	for i := range classOf {
		classOf[i] = noClass
	}
	total := 0
	for id, class := range classes {
		for _, seq := range class {
			key := packKey(seq)
			if classOf[key] != noClass {
				panic(fmt.Sprintf("dihedral: sequence %v appears in two equivalence classes", seq))
			}
			classOf[key] = byte(id)
			total++
		}
	}
	// 1+2+4+8+16 sequences of length 0..4.
	if total != 31 {
		panic(fmt.Sprintf("dihedral: equivalence classes cover %d sequences, want 31", total))
	}
}

// validGenerators rejects sequences containing out-of-range Generator values.
func validGenerators(seq []Generator) error {
	for i, g := range seq {
		if !g.Valid() {
			return fmt.Errorf("%w: %v at index %d", ErrUnknownGenerator, g, i)
		}
	}
	return nil
}

// Representative returns the minimal-length representative of seq's
// equivalence class. The table's domain is sequences of length ≤ 4;
// longer inputs violate the precondition and return ErrSequenceTooLong.
func Representative(seq []Generator) ([]Generator, error) {
	if err := validGenerators(seq); err != nil {
		return nil, err
	}
	if len(seq) > maxWindow {
		return nil, fmt.Errorf("%w: length %d", ErrSequenceTooLong, len(seq))
	}
	rep := classes[classOf[packKey(seq)]][0]
	out := make([]Generator, len(rep))
	copy(out, rep)
	return out, nil
}
