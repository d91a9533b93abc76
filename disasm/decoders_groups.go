package disasm

// groupEntry is one /reg row of a group table: the operation, plus any
// attribute bits that vary per row rather than per opcode (LOCKABLE differs
// across the eight ALU group rows, for instance — CMP is never lockable
// even though it shares the group table with ADD/OR/... which are).
type groupEntry struct {
	op    Operation
	attrs attr
}

// decodeGroup handles families 80-83 and C0-C1: an r/m operand selected
// from entry.tableIdx's group table by the modRM reg field, plus an
// immediate (imm8 for byte-sized and attrShortImm rows, full operand size
// otherwise).
func (st *DecodeState) decodeGroup(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return INVALID
	}
	g := groupTables[entry.tableIdx][regField]
	if g.op == INVALID {
		st.markInvalid()
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = st.readGroupImm(entry)
	return g.op
}

// readGroupImm reads the trailing immediate for the 80-83/C0-C1 group
// families. The width comes from the opcode-level table entry (attrByte /
// attrShortImm), not the per-/reg group row — every row in a given group
// table reads the same immediate shape.
func (st *DecodeState) readGroupImm(entry opcodeEntry) Operand {
	size := st.finalOpSize
	if entry.attrs&attrByte != 0 {
		size = 1
	}
	if entry.attrs&attrShortImm != 0 {
		v := int64(st.cur.readI8())
		st.checkTruncation()
		return immOperand(v, size)
	}
	return st.readImmOperand(size)
}

// decodeGroupRMOne handles D0/D1: shift/rotate r/m by the literal 1.
func (st *DecodeState) decodeGroupRMOne(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return INVALID
	}
	g := groupTables[entry.tableIdx][regField]
	if g.op == INVALID {
		st.markInvalid()
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = immOperand(1, 1)
	return g.op
}

// decodeGroupRMCl handles D2/D3: shift/rotate r/m by CL.
func (st *DecodeState) decodeGroupRMCl(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return INVALID
	}
	g := groupTables[entry.tableIdx][regField]
	if g.op == INVALID {
		st.markInvalid()
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	*st.op1() = regOperand(RegCL, 1)
	return g.op
}

// decodeGroupF6F7 handles TEST/NOT/NEG/MUL/IMUL/DIV/IDIV: TEST (reg 0 and 1)
// additionally reads an immediate, the rest are unary.
func (st *DecodeState) decodeGroupF6F7(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(st.finalOpSize, false)
	if st.invalid {
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	switch regField {
	case 0, 1:
		*st.op1() = st.readImmOperand(st.finalOpSize)
		return TEST
	case 2:
		return NOT
	case 3:
		return NEG
	case 4:
		return MUL
	case 5:
		return IMUL
	case 6:
		return DIV
	case 7:
		return IDIV
	}
	st.markInvalid()
	return INVALID
}

// decodeGroupFF handles INC/DEC/CALL/CALLF/JMP/JMPF/PUSH: the indirect
// call/jump/push rows force a 64-bit pointer operand in 64-bit mode
// regardless of any 66 prefix, while INC/DEC follow the normal resolved
// operand size — so the size has to be picked per row, before decoding the
// r/m operand itself.
func (st *DecodeState) decodeGroupFF(entry opcodeEntry) Operation {
	b := st.cur.peek8()
	if st.invalid {
		return INVALID
	}
	regField := (b >> 3) & 0x7
	size := st.finalOpSize
	if st.using64 && regField >= 2 && regField <= 6 {
		size = 8
	}

	rmOp, _, ripRel := st.decodeRM(size, false)
	if st.invalid {
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}

	switch regField {
	case 0:
		return INC
	case 1:
		return DEC
	case 2:
		return CALL
	case 3:
		return CALLF
	case 4:
		return JMP
	case 5:
		return JMPF
	case 6:
		return PUSH
	}
	st.markInvalid()
	return INVALID
}

// decodeGroupFE handles opcode FE: INC/DEC r/m8 only (reg fields 2-7 are
// invalid, unlike the FF group which shares the byte but adds CALL/JMP/
// PUSH for the wider operand sizes).
func (st *DecodeState) decodeGroupFE(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(1, false)
	if st.invalid {
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	switch regField {
	case 0:
		return INC
	case 1:
		return DEC
	}
	st.markInvalid()
	return INVALID
}

// decodeGroup0F00 handles SLDT/STR/LLDT/LTR/VERR/VERW: a single r/m16
// operand, no immediate.
func (st *DecodeState) decodeGroup0F00(entry opcodeEntry) Operation {
	rmOp, regField, ripRel := st.decodeRM(2, false)
	if st.invalid {
		return INVALID
	}
	ops := [8]Operation{SLDT, STR, LLDT, LTR, VERR, VERW, INVALID, INVALID}
	op := ops[regField&0x7]
	if op == INVALID {
		st.markInvalid()
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	return op
}

// decodeGroup0F01 dispatches the three distinct opcodes that share this
// family (spec.md §4.5's "0F 01 ... plus 0F AE (fences + FXSAVE family)"):
// entry.tableIdx selects which pair of mem-form/mod3-form tables applies —
// 0 for 0F 01 (SGDT/SIDT/LGDT/LIDT/SMSW/LMSW/INVLPG plus the VMCALL/
// MONITOR/XGETBV/SWAPGS mod==3 sub-table), 1 for 0F AE (FXSAVE family plus
// the LFENCE/MFENCE/SFENCE mod==3 sub-table), 2 for 0F C7 (CMPXCHG8B /
// CMPXCHG16B; no mod==3 form in this decoder's operation set).
func (st *DecodeState) decodeGroup0F01(entry opcodeEntry) Operation {
	switch entry.tableIdx {
	case 1:
		return st.decode0FAE()
	case 2:
		return st.decode0FC7()
	default:
		return st.decode0F01()
	}
}

// decode0F01 handles SGDT/SIDT/LGDT/LIDT/SMSW/LMSW/INVLPG (memory form)
// and the mod==3 sub-table of privileged zero-operand instructions
// (VMCALL, MONITOR, XGETBV, SWAPGS, ...) keyed by (reg field, rm field).
func (st *DecodeState) decode0F01() Operation {
	b := st.cur.peek8()
	if st.invalid {
		return INVALID
	}
	mod := b >> 6
	regField := (b >> 3) & 0x7

	if mod == 3 {
		rm := b & 0x7
		st.cur.read8()
		st.checkTruncation()
		op := group0F01Mod3Table[regField][rm]
		if op == INVALID {
			st.markInvalid()
		}
		return op
	}

	rmOp, _, ripRel := st.decodeRM(0, true)
	if st.invalid {
		return INVALID
	}
	*st.op0() = rmOp
	if ripRel {
		st.setRipRelFixup(st.operand0)
	}
	op := group0F01MemTable[regField]
	if op == INVALID {
		st.markInvalid()
	}
	return op
}

// decode0FAE handles the FXSAVE/FXRSTOR/LDMXCSR/STMXCSR/XSAVE/XRSTOR/
// CLFLUSH memory forms and the LFENCE/MFENCE/SFENCE mod==3 fence triad.
func (st *DecodeState) decode0FAE() Operation {
	b := st.cur.peek8()
	if st.invalid {
		return INVALID
	}
	mod := b >> 6
	regField := (b >> 3) & 0x7

	if mod == 3 {
		rm := b & 0x7
		st.cur.read8()
		st.checkTruncation()
		op := group0FAEMod3Table[regField][rm]
		if op == INVALID {
			st.markInvalid()
		}
		return op
	}

	op := group0FAEMemTable[regField]
	if op == INVALID {
		st.markInvalid()
		return INVALID
	}
	size := group0FAEMemSize[regField]
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

// decode0FC7 handles CMPXCHG8B/CMPXCHG16B: a single memory operand sized
// 8 bytes, or 16 bytes under REX.W (the mnemonic itself is bumped
// CMPXCHG8B->CMPXCHG16B by the table row's attrIncFor64, applied by
// dispatch once final_op_size is known). There is no mod==3 form in this
// decoder's operation set (RDRAND/RDSEED, register-destination-only, are
// out of scope).
func (st *DecodeState) decode0FC7() Operation {
	b := st.cur.peek8()
	if st.invalid {
		return INVALID
	}
	if b>>6 == 3 {
		st.markInvalid()
		return INVALID
	}
	regField := (b >> 3) & 0x7
	op := group0FC7MemTable[regField]
	if op == INVALID {
		st.markInvalid()
		return INVALID
	}

	size := 8
	if st.finalOpSize == 8 {
		size = 16
	}
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
