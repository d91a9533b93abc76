package disasm

// Disassemble16 decodes one instruction in 16-bit mode: operand size and
// address size both default to 16 bits, no REX prefix exists.
func Disassemble16(input []byte, address uint64, maxLength int) (Instruction, bool) {
	return decode(input, address, maxLength, 2, 2, false)
}

// Disassemble32 decodes one instruction in 32-bit protected mode: operand
// size and address size both default to 32 bits, no REX prefix exists.
func Disassemble32(input []byte, address uint64, maxLength int) (Instruction, bool) {
	return decode(input, address, maxLength, 4, 4, false)
}

// Disassemble64 decodes one instruction in 64-bit long mode: operand size
// defaults to 32 bits (REX.W or the default-64 attribute override it),
// address size defaults to 64 bits, and a trailing REX prefix is honored.
func Disassemble64(input []byte, address uint64, maxLength int) (Instruction, bool) {
	return decode(input, address, maxLength, 8, 4, true)
}

// decode runs the full pipeline spec.md §2 describes: scan prefixes, fold
// their effects into size state, read the primary opcode, dispatch, and
// finish. It returns (instruction, true) on success, or once invalid is set
// the partially filled instruction from fail (Operation INVALID, Length and
// FlagInsufficientLength set) with false.
func decode(input []byte, address uint64, maxLength, addrSize, opSize int, using64 bool) (Instruction, bool) {
	st := newDecodeState(input, address, maxLength, addrSize, opSize, using64)
	st.Instruction.PointerSize = addrSize

	st.scanPrefixes()
	if st.invalid {
		st.checkTruncation()
		return st.fail()
	}
	st.applyPrefixEffects()

	opcode := st.cur.read8()
	st.checkTruncation()
	if st.invalid {
		return st.fail()
	}

	st.dispatch(tablePrimary[opcode])
	if st.invalid {
		st.checkTruncation()
		return st.fail()
	}

	st.finish()
	return st.Instruction, true
}

// fail finalizes a failed decode. Length and the INSUFFICIENT_LENGTH flag
// stay meaningful on failure so a caller can distinguish "bytes are bad"
// from "need more bytes" (spec.md §4.10, §7); the mnemonic and operands are
// not — Operation is left INVALID.
func (st *DecodeState) fail() (Instruction, bool) {
	st.Instruction.Operation = INVALID
	st.Instruction.Length = st.cur.pos
	if st.insufficientLength {
		st.Instruction.Flags |= FlagInsufficientLength
	}
	return st.Instruction, false
}
