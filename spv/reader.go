package spv

import (
	"github.com/gpukit/spirv-reflect/errors"
)

// wordReader walks the operand words of a single instruction. It borrows
// the module's word slice and never reads past the instruction's end.
type wordReader struct {
	words []uint32
	pos   int
	end   int
	op    OpCode
}

func newWordReader(words []uint32, pos, end int, op OpCode) *wordReader {
	return &wordReader{words: words, pos: pos, end: end, op: op}
}

// remaining reports how many operand words are left in the instruction.
func (r *wordReader) remaining() int {
	return r.end - r.pos
}

// word consumes one operand word.
func (r *wordReader) word() (uint32, error) {
	if r.pos >= r.end {
		return 0, errors.Malformed(r.op.String(), "operand read past instruction end")
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

// tail consumes every remaining operand word.
func (r *wordReader) tail() []uint32 {
	if r.pos >= r.end {
		return nil
	}
	out := make([]uint32, r.end-r.pos)
	copy(out, r.words[r.pos:r.end])
	r.pos = r.end
	return out
}

// str consumes a NUL-terminated string packed little-endian four bytes
// per word, including the terminator word and its padding bytes.
func (r *wordReader) str() (string, error) {
	buf := make([]byte, 0, r.remaining()*4)
	for i := r.pos; i < r.end; i++ {
		w := r.words[i]
		buf = append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}

	length := -1
	for i, b := range buf {
		if b == 0 {
			length = i
			break
		}
	}
	if length < 0 {
		return "", errors.MissingNullTerminator(r.op.String())
	}

	r.pos += length/4 + 1
	return string(buf[:length]), nil
}
