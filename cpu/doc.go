// Package cpu implements the IAS machine: a 40-bit word, 1024 word memory
// computer executing two 20-bit instructions per word.
//
// The CPU consists of the PC, MAR, IR, IBR, MBR, AC and MQ registers, and the
// CTRL fetch/execute state which tracks which half of a word is in flight.
// An external driver alternates Fetch and Execute; the CPU rejects any other
// ordering.
//
// Registers and memory words are inspected and patched through named
// attributes (leftopcode, rightaddrhex, wordvalue, ...), and instruction fields
// convert to and from their mnemonic text with EncodeInstruction and
// DecodeInstruction. Memory can be dumped to and loaded from a plain text map.
package cpu
