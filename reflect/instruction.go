package reflect

import "encoding/binary"

const magicNumber uint32 = 0x07230203

// header holds the five fixed words every SPIR-V module starts with. It is
// consumed by the iterator and never exposed to callers.
type header struct {
	magic     uint32
	version   uint32
	generator uint32
	bound     uint32
	reserved  uint32
}

// instr is one decoded instruction: its opcode plus the operand words that
// follow the first word. Payload is a slice borrowed from the iterator's
// word array (decoded once from the blob); it is never copied per instruction.
type instr struct {
	opcode  OpCode
	payload []uint32
}

// iterator walks a SPIR-V word stream instruction by instruction.
type iterator struct {
	words []uint32
	pos   int // index into words, past the header
}

// newIterator parses the header and positions the iterator at the first
// instruction. blob must have a length that is a multiple of 4; callers
// check this before constructing the iterator (see Reflect).
func newIterator(blob []byte) (*iterator, header, error) {
	if len(blob) < 20 {
		return nil, header{}, newErr(KindCorruptedBinary, "blob shorter than the 5-word header")
	}
	h := header{
		magic:     binary.LittleEndian.Uint32(blob[0:4]),
		version:   binary.LittleEndian.Uint32(blob[4:8]),
		generator: binary.LittleEndian.Uint32(blob[8:12]),
		bound:     binary.LittleEndian.Uint32(blob[12:16]),
		reserved:  binary.LittleEndian.Uint32(blob[16:20]),
	}
	if h.magic != magicNumber {
		return nil, header{}, newErr(KindCorruptedBinary, "bad magic number")
	}

	words := make([]uint32, len(blob)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(blob[i*4 : i*4+4])
	}

	return &iterator{words: words[5:]}, h, nil
}

// next returns the next instruction, or ok=false at end of stream.
func (it *iterator) next() (instr, bool, error) {
	if it.pos >= len(it.words) {
		return instr{}, false, nil
	}
	first := it.words[it.pos]
	wordCount := int(first >> 16)
	opcode := OpCode(first & 0xFFFF)
	if wordCount == 0 {
		return instr{}, false, newErr(KindCorruptedBinary, "zero word-count instruction")
	}
	if it.pos+wordCount > len(it.words) {
		return instr{}, false, newErr(KindCorruptedBinary, "instruction runs past end of stream")
	}
	payload := it.words[it.pos+1 : it.pos+wordCount]
	it.pos += wordCount
	return instr{opcode: opcode, payload: payload}, true, nil
}

// readNulString decodes a NUL-terminated UTF-8 string starting at word index
// 0 of words, returning the string and the number of words it occupied
// (rounded up to a word boundary, including the terminator).
func readNulString(words []uint32) (string, int) {
	buf := make([]byte, 0, len(words)*4)
	for _, w := range words {
		b0 := byte(w)
		b1 := byte(w >> 8)
		b2 := byte(w >> 16)
		b3 := byte(w >> 24)
		for _, b := range [4]byte{b0, b1, b2, b3} {
			if b == 0 {
				return string(buf), (len(buf) + 4) / 4
			}
			buf = append(buf, b)
		}
	}
	return string(buf), len(words)
}
