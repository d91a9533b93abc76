package disasm

// finish closes out a decode: it records the final instruction length,
// applies the deferred RIP-relative fix-up now that the length is known,
// and mirrors the sticky truncation flag into Instruction.Flags
// (spec.md §4.9). Dispatch has already run by the time this is called, so
// the cursor's position is the instruction's true length — nothing reads
// past this point.
func (st *DecodeState) finish() {
	st.Instruction.Length = st.cur.pos

	if st.ripRel.pending {
		fixup := int64(st.startAddr) + int64(st.Instruction.Length)
		st.Instruction.Operands[st.ripRel.operandIndex].Immediate += fixup
	}

	if st.insufficientLength {
		st.Instruction.Flags |= FlagInsufficientLength
	}
}
