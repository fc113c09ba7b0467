// Package spv provides SPIR-V binary module decoding.
//
// A SPIR-V module is a little-endian stream of 32-bit words: a five word
// header followed by instructions. Each instruction carries its opcode and
// total word length in one header word, followed by operand words. This
// package decodes the stream into a flat instruction list using a
// declarative operand schema; it does not decode function bodies or
// extended instruction sets, and it never validates shader semantics.
//
// # Decoding
//
// Decode a module from a word slice:
//
//	words, err := spv.Words(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	module, err := spv.Decode(words)
//
// The decoded Module keeps instructions in file order and offers lookups
// by result id, for names and member names, and for decorations. Opcodes
// outside the schema are retained by length with only the opcode set, so
// modules using unsupported operations still decode.
package spv
