package disasm

// attr is the per-encoding attribute bitset spec.md §4.3 lists (BYTE,
// FORCE_16BIT, FLIP_OPERANDS, DEFAULT_TO_64BIT, INVALID_IN_64BIT,
// OPERATION_OP_SIZE, REP, REP_COND, LOCKABLE).
type attr uint16

const (
	attrByte attr = 1 << iota
	attrForce16
	attrFlip
	attrDefault64
	attrInvalid64
	attrOperationOpSize
	attrRep     // plain REP (MOVS/STOS/LODS): F3 echoes as FlagRep
	attrRepCond // REP_COND (CMPS/SCAS): F3/F2 echo as FlagRepE/FlagRepNE
	attrLockable
	attrIncFor64 // INC_OPERATION_FOR_64: bump mnemonic by one when GPR archetype resolves to 64-bit
	attrShortImm // imm8, sign-extended to the resolved operand size (opcode 83's "/is8" forms)
	attrSegReg   // the modRM reg field names a segment register, not a GPR (MOV Sreg forms)
)

// sizeMask selects how an encoding overrides the normal r/m operand size
// (spec.md §4.4's REG_RM_SIZE_MASK attribute).
type sizeMask int

const (
	sizeNormal sizeMask = iota
	sizeDouble          // BOUND: r/m is twice the register's size
	sizeFarPtr          // LDS/LES-style: r/m is register-size + 2
	sizeNone            // LEA: no memory access actually occurs
)

// family names the encoding-decoder behavior to run for a table entry, in
// place of the teacher's (and the historical source's) function-pointer
// dispatch (spec.md §9's "Dispatch table of function values" design note).
type family int

const (
	famInvalid family = iota
	famRegRM            // /r: register <-> register/memory
	famRMImmAcc         // AL/eAX/rAX, imm (test/cmp-with-accumulator forms)
	famOpReg            // opcode+reg embedded (inc/dec/push/pop/xchg/mov-imm)
	famRelImm           // call/jmp rel8/rel16/rel32
	famGroup            // modRM /reg selects the operation from a group table
	famGroupRMOne       // like famGroup, but operand[1] forced to immediate 1
	famGroupRMCl        // like famGroup, but operand[1] forced to CL
	famGroupF6F7        // TEST/NOT/NEG/MUL/IMUL/DIV/IDIV, TEST also takes imm
	famGroupFF          // INC/DEC/CALL/CALLF/JMP/JMPF/PUSH, 64-bit default for calls/jumps
	famGroup0F00        // SLDT/STR/LLDT/LTR/VERR/VERW
	famGroup0F01        // SGDT/.../INVLPG plus a mod=3 VMCALL/MONITOR/... sub-table
	famGroupFE          // INC/DEC r/m8 only
	famUnaryRM          // a single r/m operand, no immediate, no /reg lookup (multi-byte NOP)
	famMovCRDR          // MOV r32/64, CRn/DRn and MOV CRn/DRn, r32/64
	famTwoByte          // 0F escape
	famFPU              // D8-DF escape
	famSSE              // SSE table dispatch by prefix class
	fam3DNow            // MMX reg/rm then trailing imm8 suffix lookup
	famNullary          // no operands (CLC, STI, NOP, ...)
	famString           // MOVS/CMPS/STOS/LODS/SCAS
	famIOImm            // IN/OUT AL/eAX, imm8
	famIODX             // IN/OUT AL/eAX, DX
	famPushPopSeg       // PUSH/POP of a fixed segment register
	famPushImm          // PUSH imm16/32/8
	famPopRM            // POP r/m (opcode 8F /0)
	famRetImm           // RET/RETF imm16
	famImm8             // INT imm8, AAM imm8, AAD imm8 (single raw imm8 operand)
	famImul3            // IMUL Gv, Ev, Iz/Ib (three-operand form)
	famShiftDouble      // SHLD/SHRD r/m, reg, imm8/CL
	famMovMoffs         // MOV AL/eAX, moffs and MOV moffs, AL/eAX
	famEnter            // ENTER imm16, imm8
	famRegImm           // MOV r/m, imm (group-like but single operation)
	famXlat             // XLAT
	famBound            // BOUND r, m (sizeDouble)
	famArpl             // ARPL r/m16, r16 (32-bit) / MOVSXD r64, r/m32 (64-bit, same opcode)
)

// resolvesOpDynamically reports whether this family ignores entry.op and
// resolves the real Operation itself during decode (from a group/prefix/
// suffix sub-table), rather than having it supplied statically by the table
// row.
func (f family) resolvesOpDynamically() bool {
	switch f {
	case famGroup, famGroupRMOne, famGroupRMCl, famGroupF6F7, famGroupFF,
		famGroup0F00, famGroup0F01, famGroupFE, famTwoByte, famFPU, famSSE,
		fam3DNow, famPopRM, famArpl:
		return true
	default:
		return false
	}
}

// opcodeEntry is one row of the primary or two-byte opcode table: the
// operation, which decode family handles it, the attribute bits, and (for
// families that need it) a group/table index.
type opcodeEntry struct {
	op        Operation
	fam       family
	attrs     attr
	tableIdx  int // group id / SSE table index / FPU escape index / embedded register, per fam
	rmSize    sizeMask
}

func e(op Operation, fam family, attrs attr) opcodeEntry {
	return opcodeEntry{op: op, fam: fam, attrs: attrs}
}

func eg(op Operation, fam family, attrs attr, tableIdx int) opcodeEntry {
	return opcodeEntry{op: op, fam: fam, attrs: attrs, tableIdx: tableIdx}
}

var invalidEntry = opcodeEntry{op: INVALID, fam: famInvalid}
