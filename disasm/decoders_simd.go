package disasm

// decodeTwoByteEscape reads the second (and, for 0F 38/0F 3A, third)
// opcode byte and re-dispatches through the resolved table row. The 0x0F
// primary-table entry itself carries no real operation or attributes — it
// exists only to route here.
func (st *DecodeState) decodeTwoByteEscape() {
	b := st.cur.read8()
	st.checkTruncation()
	if st.invalid {
		return
	}

	switch b {
	case 0x38:
		b2 := st.cur.read8()
		st.checkTruncation()
		if st.invalid {
			return
		}
		entry, ok := table0F38[b2]
		if !ok {
			st.markInvalid()
			return
		}
		st.dispatch(entry)
	case 0x3A:
		b2 := st.cur.read8()
		st.checkTruncation()
		if st.invalid {
			return
		}
		entry, ok := table0F3A[b2]
		if !ok {
			st.markInvalid()
			return
		}
		st.dispatch(entry)
	default:
		st.dispatch(tableTwoByte[b])
	}
}

// sseVariant is one prefix-class branch of an SSE table row: the
// operation, and how its operands are shaped, since the four mandatory
// prefix classes (none/66/F2/F3) frequently name unrelated instructions
// that differ in register width, register file (XMM vs MMX vs GPR), or
// whether a trailing imm8 follows (spec.md calls this "archetype" in its
// SSE dispatch discussion).
type sseVariant struct {
	op           Operation
	memSize      int // 0 = same width as the register operand
	useMM        bool
	gprOperand   bool
	trailingImm8 bool
}

// sseDef is one SSE table row: the four prefix-class variants. An empty
// (zero-value) variant means INVALID for that prefix class.
type sseDef struct {
	none, p66, pF2, pF3 sseVariant
}

// decodeSSE resolves the table row addressed by entry.tableIdx against the
// mandatory prefix class already captured by scanPrefixes (66 and F2/F3
// reuse the same legacy prefix bytes as OPERAND_SIZE/REP, so no separate
// scan is needed), then decodes the register and r/m operands at the
// variant's width and register file.
func (st *DecodeState) decodeSSE(entry opcodeEntry) Operation {
	def := sseTable[entry.tableIdx]
	var v sseVariant
	switch {
	case st.rep == repE:
		v = def.pF3
	case st.rep == repNE:
		v = def.pF2
	case st.opPrefix:
		v = def.p66
	default:
		v = def.none
	}
	if v.op == INVALID {
		st.markInvalid()
		return INVALID
	}

	mod, regField0, rm := st.readModRMByte()
	if st.invalid {
		return INVALID
	}
	regField := regField0 | (b2u8(st.rexReg) << 3)

	regSize := 16
	if v.useMM {
		regSize = 8
	}
	if v.gprOperand {
		regSize = st.finalOpSize
	}

	var regKind RegisterKind
	switch {
	case v.gprOperand:
		regKind = regByEncoding(st.finalOpSize, regField, st.hasREX())
	case v.useMM:
		regKind = regMMX[regField&0x7]
	default:
		regKind = regXMM[regField&0xF]
	}
	*st.op0() = regOperand(regKind, regSize)

	var rmOp Operand
	var ripRel bool
	if mod == 3 {
		rmExt := rm | (b2u8(st.rexRMB) << 3)
		switch {
		case v.gprOperand:
			rmOp = regOperand(regByEncoding(st.finalOpSize, rmExt, st.hasREX()), st.finalOpSize)
		case v.useMM:
			rmOp = regOperand(regMMX[rmExt&0x7], 8)
		default:
			rmOp = regOperand(regXMM[rmExt&0xF], 16)
		}
	} else {
		memSize := regSize
		if v.memSize != 0 {
			memSize = v.memSize
		}
		if st.addrSize == 2 {
			rmOp = st.decodeRM16(mod, rm, memSize)
		} else {
			rmOp, ripRel = st.decodeRM3264(mod, rm, memSize, false)
		}
	}
	if st.invalid {
		return INVALID
	}

	*st.op1() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand1)
	}

	if v.trailingImm8 {
		imm := st.cur.read8()
		st.checkTruncation()
		*st.op2() = immOperand(int64(imm), 1)
	}

	return v.op
}

// decode3DNow handles the 0F 0F escape: an MMX reg/rm operand pair exactly
// like a plain MMX instruction, followed by a trailing imm8 suffix byte
// that (not the opcode byte) actually selects the operation.
func (st *DecodeState) decode3DNow(entry opcodeEntry) Operation {
	mod, regField0, rm := st.readModRMByte()
	if st.invalid {
		return INVALID
	}
	*st.op0() = regOperand(regMMX[regField0&0x7], 8)

	var rmOp Operand
	var ripRel bool
	if mod == 3 {
		rmOp = regOperand(regMMX[rm&0x7], 8)
	} else if st.addrSize == 2 {
		rmOp = st.decodeRM16(mod, rm, 8)
	} else {
		rmOp, ripRel = st.decodeRM3264(mod, rm, 8, false)
	}
	if st.invalid {
		return INVALID
	}
	*st.op1() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand1)
	}

	suffix := st.cur.read8()
	st.checkTruncation()
	if st.invalid {
		return INVALID
	}
	op, ok := threeDNowSuffixTable[suffix]
	if !ok {
		st.markInvalid()
		return INVALID
	}
	return op
}

// decodeFPU handles the D8-DF x87 escape. entry.tableIdx is the escape
// index (0 for D8, ... 7 for DF). mod==3 operates on the top-of-stack
// register ST(0) and ST(rm); some (escape, reg) rows with mod==3 are
// actually zero-operand control instructions (FCHS, FLD1, FNOP, ...)
// looked up in fpuNullaryTable by the full second byte first.
func (st *DecodeState) decodeFPU(entry opcodeEntry) Operation {
	escape := entry.tableIdx
	b := st.cur.peek8()
	if st.invalid {
		return INVALID
	}
	mod := b >> 6
	regField := (b >> 3) & 0x7
	rm := b & 0x7

	if mod == 3 {
		if op, ok := fpuNullaryTable[fpuNullaryKey{escape: escape, modrm: b}]; ok {
			st.cur.read8()
			st.checkTruncation()
			return op
		}

		st.cur.read8()
		st.checkTruncation()
		op := fpuRegTable[escape][regField]
		if op == INVALID {
			st.markInvalid()
			return INVALID
		}
		*st.op0() = regOperand(RegST0, 10)
		*st.op1() = regOperand(regST[rm], 10)
		return op
	}

	op := fpuMemTable[escape][regField]
	if op == INVALID {
		st.markInvalid()
		return INVALID
	}
	size := fpuMemSize[escape][regField]
	rmOp, _, ripRel := st.decodeRM(size, false)
	if st.invalid {
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	return op
}
