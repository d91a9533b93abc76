package disasm

// dispatch runs one opcodeEntry against the state's already-scanned
// prefixes: it resolves the effective operand size (BYTE / FORCE_16BIT /
// DEFAULT_TO_64BIT / INVALID_IN_64BIT), applies FLIP_OPERANDS before any
// family decoder touches an operand slot, calls the family-specific decode
// behavior, applies OPERATION_OP_SIZE's mnemonic bump, echoes REP/REP_COND
// into Instruction.Flags, and runs the final LOCK/INVALID validation from
// spec.md §4.3 step 7.
func (st *DecodeState) dispatch(entry opcodeEntry) {
	if entry.fam == famInvalid {
		st.markInvalid()
		return
	}
	// entry.op is only the real operation for the static families below.
	// Every dynamic-resolution family (famGroup*, famTwoByte, famFPU, famSSE,
	// fam3DNow, famPopRM, famArpl) resolves its real Operation inside its own
	// decode function instead, which calls markInvalid itself on a sub-table
	// miss; their table rows carry INVALID here as an unused placeholder,
	// except famPopRM and famArpl, whose rows name POP/ARPL.
	if !entry.fam.resolvesOpDynamically() && entry.op == INVALID {
		st.markInvalid()
		return
	}

	if entry.attrs&attrInvalid64 != 0 && st.using64 {
		st.markInvalid()
		return
	}

	size := st.opSize
	if entry.attrs&attrDefault64 != 0 && st.using64 {
		size = 8
	}
	switch {
	case entry.attrs&attrByte != 0:
		size = 1
	case entry.attrs&attrForce16 != 0:
		size = 2
	}
	st.finalOpSize = size

	if entry.attrs&attrFlip != 0 {
		st.flipOperands()
	}

	op := entry.op
	switch entry.fam {
	case famRegRM:
		st.decodeRegRM(entry)
	case famRMImmAcc:
		st.decodeRMImmAcc(entry)
	case famOpReg:
		st.decodeOpReg(entry)
	case famRelImm:
		st.decodeRelImm(entry)
	case famGroup:
		op = st.decodeGroup(entry)
		// LOCKABLE comes from the selected /reg row, not the opcode row.
		for _, g := range groupTables[entry.tableIdx] {
			if g.op == op {
				entry.attrs |= g.attrs
			}
		}
	case famGroupRMOne:
		op = st.decodeGroupRMOne(entry)
	case famGroupRMCl:
		op = st.decodeGroupRMCl(entry)
	case famGroupF6F7:
		op = st.decodeGroupF6F7(entry)
	case famGroupFF:
		op = st.decodeGroupFF(entry)
	case famGroup0F00:
		op = st.decodeGroup0F00(entry)
	case famGroup0F01:
		op = st.decodeGroup0F01(entry)
	case famGroupFE:
		op = st.decodeGroupFE(entry)
	case famUnaryRM:
		st.decodeUnaryRM(entry)
	case famMovCRDR:
		st.decodeMovCRDR(entry)
	case famTwoByte:
		st.decodeTwoByteEscape()
		return
	case famFPU:
		op = st.decodeFPU(entry)
	case famSSE:
		op = st.decodeSSE(entry)
	case fam3DNow:
		op = st.decode3DNow(entry)
	case famNullary:
		// no operands to read
	case famString:
		st.decodeString(entry)
	case famIOImm:
		st.decodeIOImm(entry)
	case famIODX:
		st.decodeIODX(entry)
	case famPushPopSeg:
		// operation and segment register are fixed by the table row;
		// tableIdx carries the Segment value.
		st.Instruction.Segment = Segment(entry.tableIdx)
	case famPushImm:
		st.decodePushImm(entry)
	case famPopRM:
		op = st.decodePopRM(entry)
	case famRetImm:
		st.decodeRetImm()
	case famImm8:
		st.decodeImm8()
	case famImul3:
		st.decodeImul3(entry)
	case famShiftDouble:
		st.decodeShiftDouble(entry)
	case famMovMoffs:
		st.decodeMovMoffs(entry)
	case famEnter:
		st.decodeEnter()
	case famRegImm:
		st.decodeRegImm(entry)
	case famXlat:
		// no explicit operands; AL/[rBX+AL] is implicit
	case famBound:
		st.decodeBound(entry)
	case famArpl:
		op = st.decodeArplOrMovsxd()
	default:
		st.markInvalid()
		return
	}

	if st.invalid {
		return
	}

	if entry.attrs&attrOperationOpSize != 0 {
		bump := 0
		switch size {
		case 4:
			bump = 1
		case 8:
			bump = 2
		}
		op = op + Operation(bump)
	}
	if entry.attrs&attrIncFor64 != 0 && size == 8 {
		op++
	}

	switch {
	case entry.attrs&attrRep != 0:
		if st.rep == repE {
			st.Instruction.Flags |= FlagRep
		}
	case entry.attrs&attrRepCond != 0:
		switch st.rep {
		case repE:
			st.Instruction.Flags |= FlagRepE
		case repNE:
			st.Instruction.Flags |= FlagRepNE
		}
	}

	st.Instruction.Operation = op

	st.validateLock(entry)
}

// validateLock implements spec.md §4.3 step 7: a LOCK prefix is only valid
// on an encoding marked LOCKABLE, whose destination operand is memory, and
// whose operation isn't CMP (CMP never writes, so LOCK CMP is invalid even
// though CMP shares ALU encodings with the lockable arithmetic ops).
func (st *DecodeState) validateLock(entry opcodeEntry) {
	if st.Instruction.Flags&FlagLock == 0 {
		return
	}
	if entry.attrs&attrLockable == 0 {
		st.markInvalid()
		return
	}
	if st.Instruction.Operation == CMP {
		st.markInvalid()
		return
	}
	if !st.Instruction.Operands[0].IsMemory() && !st.Instruction.Operands[1].IsMemory() {
		st.markInvalid()
	}
}
