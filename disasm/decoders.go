package disasm

// decodeRegRM handles the plain /r encoding: one operand is a register named
// by the modRM reg field (extended by REX.R), the other is the r/m operand
// (register or memory, extended by REX.B/X). FLIP_OPERANDS has already
// rebound operand0/operand1 by the time this runs, so this always writes
// "reg side" to op0 and "r/m side" to op1 — callers that need the historical
// "r/m, reg" order set attrFlip on the table entry instead of branching here.
func (st *DecodeState) decodeRegRM(entry opcodeEntry) {
	regSize := st.finalOpSize
	rmSize := st.rmSizeFor(entry, regSize)
	switch {
	case entry.attrs&attrSegReg != 0:
		// MOV Sreg, r/m / MOV r/m, Sreg: both sides are conventionally
		// word-sized regardless of the resolved operand size.
		rmSize = 2
	case entry.tableIdx != 0:
		// MOVZX/MOVSX (and LAR/LSL) table rows stash the *source* width
		// (1 or 2 bytes) in tableIdx; the register side is always the resolved
		// operand size.
		rmSize = entry.tableIdx
	}
	noSize := entry.rmSize == sizeNone

	rmOp, regField, ripRel := st.decodeRM(rmSize, noSize)
	if st.invalid {
		return
	}

	var regKind RegisterKind
	if entry.attrs&attrSegReg != 0 {
		regKind = regSegment[regField&0x7]
		regSize = 2
	} else {
		regField |= b2u8(st.rexReg) << 3
		regKind = regByEncoding(regSize, regField, st.hasREX())
	}
	*st.op0() = regOperand(regKind, regSize)
	*st.op1() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand1)
	}
}

// rmSizeFor applies a table entry's rmSize override (sizeDouble/sizeFarPtr)
// relative to the resolved register size; sizeNormal and sizeNone both pass
// the register size through (sizeNone additionally tells the caller not to
// treat the r/m operand as an actual memory access, for LEA).
func (st *DecodeState) rmSizeFor(entry opcodeEntry, regSize int) int {
	switch entry.rmSize {
	case sizeDouble:
		return regSize * 2
	case sizeFarPtr:
		return regSize + 2
	default:
		return regSize
	}
}

// readImmOperand reads a size-byte immediate (1, 2, 4, or 8) and returns it
// as an Operand. An 8-byte operand size still only reads a sign-extended
// imm32, per spec.md §4.3 (no 64-bit immediate encoding exists outside
// MOV r64, imm64, handled separately in decodeOpReg).
func (st *DecodeState) readImmOperand(size int) Operand {
	var v int64
	switch size {
	case 1:
		v = int64(st.cur.readI8())
	case 2:
		v = int64(st.cur.readI16())
	default:
		v = int64(st.cur.readI32())
	}
	st.checkTruncation()
	return immOperand(v, size)
}

// decodeRMImmAcc handles the accumulator,imm forms (ADD AL/eAX, imm, TEST
// AL/eAX, imm, ...): no modRM byte, the accumulator is implicit.
func (st *DecodeState) decodeRMImmAcc(entry opcodeEntry) {
	size := st.finalOpSize
	accKind := regByEncoding(size, 0, false)
	*st.op0() = regOperand(accKind, size)
	*st.op1() = st.readImmOperand(size)
}

// decodeOpReg handles opcode+reg forms: INC/DEC/PUSH/POP/XCHG/BSWAP (single
// register operand) and MOV r, imm (register plus an immediate of the
// resolved operand size, 8 bytes read in full for MOV r64, imm64).
func (st *DecodeState) decodeOpReg(entry opcodeEntry) {
	size := st.finalOpSize
	regField := byte(entry.tableIdx) | (b2u8(st.rexRMB) << 3)
	regKind := regByEncoding(size, regField, st.hasREX())
	*st.op0() = regOperand(regKind, size)

	switch entry.op {
	case MOV:
		var v int64
		switch size {
		case 8:
			v = int64(st.cur.read64())
		case 2:
			v = int64(st.cur.readI16())
		case 1:
			v = int64(st.cur.readI8())
		default:
			v = int64(st.cur.readI32())
		}
		st.checkTruncation()
		*st.op1() = immOperand(v, size)
	case XCHG:
		acc := regByEncoding(size, 0, false)
		*st.op1() = regOperand(acc, size)
	}
}

// decodeRelImm handles rel8/rel16/rel32 branch targets. The stored operand
// is the raw signed displacement, sized by its encoded width; neither the
// decoder nor Format resolves it against the instruction's own
// address/length — unlike a RIP-relative memory operand, a branch target's
// natural representation is "displacement from the next instruction", which
// the reader already knows how to add to whatever address they load the
// instruction at.
func (st *DecodeState) decodeRelImm(entry opcodeEntry) {
	var rel int64
	size := 4
	if entry.rmSize == sizeNone {
		rel = int64(st.cur.readI8())
		size = 1
	} else if st.finalOpSize == 2 {
		rel = int64(st.cur.readI16())
		size = 2
	} else {
		rel = int64(st.cur.readI32())
	}
	st.checkTruncation()
	*st.op0() = immOperand(rel, size)
}

// decodeString handles MOVS/CMPS/STOS/LODS/SCAS/INS/OUTS: both operands are
// implicit memory references through RSI/RDI (or SI/DI/ESI/EDI, by address
// size) or the DX port register, no modRM byte is present.
func (st *DecodeState) decodeString(entry opcodeEntry) {
	size := st.finalOpSize
	ptrSz := st.addrSize

	srcPtr := regByEncoding(ptrSz, 6, true) // SI/ESI/RSI encoding is 6
	dstPtr := regByEncoding(ptrSz, 7, true) // DI/EDI/RDI encoding is 7

	src := Operand{Kind: KindMemory, Size: size, Segment: st.Instruction.Segment}
	src.Components[0] = regOperand(srcPtr, ptrSz)
	dst := Operand{Kind: KindMemory, Size: size, Segment: SegES}
	dst.Components[0] = regOperand(dstPtr, ptrSz)

	switch entry.op {
	case MOVS:
		*st.op0() = dst
		*st.op1() = src
	case CMPS:
		*st.op0() = src
		*st.op1() = dst
	case STOS:
		*st.op0() = dst
		*st.op1() = regOperand(regByEncoding(size, 0, false), size)
	case LODS:
		*st.op0() = regOperand(regByEncoding(size, 0, false), size)
		*st.op1() = src
	case SCAS:
		*st.op0() = regOperand(regByEncoding(size, 0, false), size)
		*st.op1() = dst
	case INS:
		*st.op0() = dst
		*st.op1() = regOperand(RegDX, 2)
	case OUTS:
		*st.op0() = regOperand(RegDX, 2)
		*st.op1() = src
	}
}

// decodeIOImm handles IN/OUT AL/eAX, imm8.
func (st *DecodeState) decodeIOImm(entry opcodeEntry) {
	size := st.finalOpSize
	port := st.readImmOperand(1)
	acc := regOperand(regByEncoding(size, 0, false), size)
	if entry.op == IN {
		*st.op0() = acc
		*st.op1() = port
	} else {
		*st.op0() = port
		*st.op1() = acc
	}
}

// decodeIODX handles IN/OUT AL/eAX, DX.
func (st *DecodeState) decodeIODX(entry opcodeEntry) {
	size := st.finalOpSize
	acc := regOperand(regByEncoding(size, 0, false), size)
	dx := regOperand(RegDX, 2)
	if entry.op == IN {
		*st.op0() = acc
		*st.op1() = dx
	} else {
		*st.op0() = dx
		*st.op1() = acc
	}
}

// decodeEnter reads ENTER's imm16, imm8 operand pair.
func (st *DecodeState) decodeEnter() {
	size := st.cur.read16()
	st.checkTruncation()
	nesting := st.cur.read8()
	st.checkTruncation()
	*st.op0() = immOperand(int64(size), 2)
	*st.op1() = immOperand(int64(nesting), 1)
}

// decodeRegImm handles MOV r/m, imm (opcode C6/C7): a modRM r/m destination
// plus an immediate of the resolved operand size (imm8 when byte-sized).
func (st *DecodeState) decodeRegImm(entry opcodeEntry) {
	size := st.finalOpSize
	rmOp, _, ripRel := st.decodeRM(size, false)
	if st.invalid {
		return
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = st.readImmOperand(size)
}

// decodeBound reads BOUND r, m (sizeDouble: the memory bound-pair operand is
// twice the register's size).
func (st *DecodeState) decodeBound(entry opcodeEntry) {
	size := st.finalOpSize
	rmOp, regField, ripRel := st.decodeRM(size*2, false)
	if st.invalid {
		return
	}
	regField |= b2u8(st.rexReg) << 3
	*st.op0() = regOperand(regByEncoding(size, regField, st.hasREX()), size)
	*st.op1() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand1)
	}
}

// decodeUnaryRM decodes a single r/m operand with no /reg lookup and no
// immediate: the multi-byte NOP (0F 1F /0) is the only user.
func (st *DecodeState) decodeUnaryRM(entry opcodeEntry) {
	rmOp, _, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
}

// decodeMovCRDR handles MOV to/from a control or debug register (0F 20-23):
// the modRM reg field selects CRn/DRn (extended by REX.R, which is how CR8
// is reached; mod is always 3). entry.tableIdx picks the
// control (0) vs debug (1) register file; attrFlip picks the direction.
func (st *DecodeState) decodeMovCRDR(entry opcodeEntry) {
	_, regField0, rm0 := st.readModRMByte() // mod is always 3
	if st.invalid {
		return
	}
	regField := regField0 | (b2u8(st.rexReg) << 3)
	rm := rm0 | (b2u8(st.rexRMB) << 3)

	size := 8
	if !st.using64 {
		size = 4
	}
	gpr := regOperand(regByEncoding(size, rm, st.hasREX()), size)

	var special RegisterKind
	if entry.tableIdx == 1 {
		special = regDebug[regField&0xF]
	} else {
		special = regControl[regField&0xF]
	}
	specialOp := regOperand(special, size)

	*st.op0() = gpr
	*st.op1() = specialOp
}

// decodeArplOrMovsxd handles opcode 0x63, which names two unrelated
// instructions depending on mode: ARPL r/m16, r16 outside 64-bit mode, and
// MOVSXD r64, r/m32 inside it (the only primary-table opcode whose meaning
// depends on the decoding mode rather than a prefix or REX bit).
func (st *DecodeState) decodeArplOrMovsxd() Operation {
	if st.using64 {
		size := st.finalOpSize
		rmOp, regField, ripRel := st.decodeRM(4, false)
		if st.invalid {
			return INVALID
		}
		regField |= b2u8(st.rexReg) << 3
		*st.op0() = regOperand(regByEncoding(size, regField, st.hasREX()), size)
		*st.op1() = rmOp
		if ripRel {
			st.setRipRelFixup(st.operand1)
		}
		return MOVSXD
	}

	rmOp, regField, ripRel := st.decodeRM(2, false)
	if st.invalid {
		return INVALID
	}
	regField |= b2u8(st.rexReg) << 3
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = regOperand(regByEncoding(2, regField, st.hasREX()), 2)
	return ARPL
}

// decodePushImm handles PUSH imm32/imm16 (0x68) and PUSH imm8 (0x6A, which
// still pushes a full stack-width value — attrShortImm only narrows how
// many bytes are read, not how wide the pushed operand is).
func (st *DecodeState) decodePushImm(entry opcodeEntry) {
	var v int64
	switch {
	case entry.attrs&attrShortImm != 0:
		v = int64(st.cur.readI8())
	case st.finalOpSize == 2:
		v = int64(st.cur.readI16())
	default:
		v = int64(st.cur.readI32())
	}
	st.checkTruncation()
	*st.op0() = immOperand(v, st.finalOpSize)
}

// decodePopRM handles opcode 8F: POP r/m, the only valid row of an
// otherwise single-operation modRM group (/reg must be 0).
func (st *DecodeState) decodePopRM(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return INVALID
	}
	if regField != 0 {
		st.markInvalid()
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	return POP
}

// decodeRetImm reads RET/RETF's imm16 stack-adjustment operand.
func (st *DecodeState) decodeRetImm() {
	v := st.cur.read16()
	st.checkTruncation()
	*st.op0() = immOperand(int64(v), 2)
}

// decodeImm8 reads a single raw imm8 operand: INT imm8, AAM imm8, AAD imm8.
func (st *DecodeState) decodeImm8() {
	v := st.cur.read8()
	st.checkTruncation()
	*st.op0() = immOperand(int64(v), 1)
}

// decodeImul3 handles the three-operand IMUL Gv, Ev, Iz/Ib forms (0x69/0x6B).
func (st *DecodeState) decodeImul3(entry opcodeEntry) {
	size := st.finalOpSize
	rmOp, regField, ripRel := st.decodeRM(size, false)
	if st.invalid {
		return
	}
	regField |= b2u8(st.rexReg) << 3
	*st.op0() = regOperand(regByEncoding(size, regField, st.hasREX()), size)
	*st.op1() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand1)
	}
	if entry.attrs&attrShortImm != 0 {
		v := int64(st.cur.readI8())
		st.checkTruncation()
		*st.op2() = immOperand(v, size)
		return
	}
	*st.op2() = st.readImmOperand(size)
}

// decodeShiftDouble handles SHLD/SHRD r/m, reg, imm8/CL (0F A4/A5/AC/AD): the
// r/m operand is the destination being shifted, the reg operand supplies the
// bits shifted in, and the count is either an immediate or CL.
func (st *DecodeState) decodeShiftDouble(entry opcodeEntry) {
	size := st.finalOpSize
	rmOp, regField, ripRel := st.decodeRM(size, false)
	if st.invalid {
		return
	}
	regField |= b2u8(st.rexReg) << 3
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = regOperand(regByEncoding(size, regField, st.hasREX()), size)
	if entry.attrs&attrShortImm != 0 {
		v := int64(st.cur.readI8())
		st.checkTruncation()
		*st.op2() = immOperand(v, 1)
		return
	}
	*st.op2() = regOperand(RegCL, 1)
}

// decodeMovMoffs handles opcode A0-A3: MOV AL/eAX, moffs and MOV moffs,
// AL/eAX — a direct (non-modRM) address of addr_size width followed by the
// accumulator. entry.tableIdx selects direction: 0 is "accumulator loaded
// from memory", 1 is "accumulator stored to memory".
func (st *DecodeState) decodeMovMoffs(entry opcodeEntry) {
	size := st.finalOpSize
	var addr int64
	switch st.addrSize {
	case 2:
		addr = int64(st.cur.read16())
	case 4:
		addr = int64(st.cur.read32())
	default:
		addr = int64(st.cur.read64())
	}
	st.checkTruncation()

	mem := Operand{Kind: KindMemory, Size: size, Immediate: addr, Segment: st.Instruction.Segment}
	acc := regOperand(regByEncoding(size, 0, false), size)

	if entry.tableIdx == 1 {
		*st.op0() = mem
		*st.op1() = acc
		return
	}
	*st.op0() = acc
	*st.op1() = mem
}
