package disasm

// ripRelFixup records where a RIP-relative displacement needs
// addr+length added once the final instruction length is known
// (spec.md §3 / §9's "borrowed slots" design note: an (operand index,
// component) tag rather than a raw pointer into the operand array).
type ripRelFixup struct {
	pending      bool
	operandIndex int
}

// DecodeState is the transient per-call workspace described in spec.md §3.
// It lives on the stack of a single Disassemble16/32/64 call, owns no heap
// memory, and needs no teardown.
type DecodeState struct {
	Instruction Instruction

	cur       cursor
	startAddr uint64
	origLen   int // the caller-supplied max length, clamped to 15, before any reads

	opSize      int // effective operand size: 1, 2, 4, or 8
	addrSize    int // effective address size: 2, 4, or 8
	finalOpSize int // opSize after DEFAULT_TO_64BIT/BYTE/FORCE_16BIT adjustments

	opPrefix       bool
	addrSizePrefix bool
	rep            repState

	rex    byte
	rexW   bool
	rexReg bool // REX.R
	rexRMX bool // REX.X
	rexRMB bool // REX.B

	using64 bool

	// operand0/operand1 are indices into Instruction.Operands, rebound by
	// FLIP_OPERANDS so encoding decoders can always write "register
	// first, r/m second" regardless of the encoding's natural direction
	// (spec.md §9's "borrowed slots" note).
	operand0 int
	operand1 int

	invalid             bool
	insufficientLength  bool
	ripRel              ripRelFixup
}

// newDecodeState seeds (addr_size, op_size, using64) per spec.md §6's three
// entry points.
func newDecodeState(input []byte, addr uint64, maxLen int, addrSize, opSize int, using64 bool) *DecodeState {
	if maxLen > 15 {
		maxLen = 15
	}
	if maxLen < 0 {
		maxLen = 0
	}
	if maxLen > len(input) {
		maxLen = len(input)
	}

	st := &DecodeState{
		cur:       newCursor(input[:maxLen]),
		startAddr: addr,
		origLen:   maxLen,
		opSize:    opSize,
		addrSize:  addrSize,
		using64:   using64,
		operand0:  0,
		operand1:  1,
	}
	st.Instruction.Segment = SegDefault
	st.Instruction.Address = addr
	return st
}

// markInvalid sets the sticky invalid flag. Any byte-read underflow also
// sets it via checkTruncation.
func (st *DecodeState) markInvalid() {
	st.invalid = true
}

// checkTruncation mirrors the cursor's truncated flag into the state's
// sticky invalid/insufficient-length flags (spec.md §3 Invariants: "If any
// byte read fails, invalid and insufficient_length both become true").
func (st *DecodeState) checkTruncation() {
	if st.cur.truncated {
		st.invalid = true
		st.insufficientLength = true
	}
}

// op0 returns a pointer to the operand currently bound as "operand 0" (the
// register side, post FLIP_OPERANDS).
func (st *DecodeState) op0() *Operand { return &st.Instruction.Operands[st.operand0] }

// op1 returns a pointer to the operand currently bound as "operand 1" (the
// r/m side, post FLIP_OPERANDS).
func (st *DecodeState) op1() *Operand { return &st.Instruction.Operands[st.operand1] }

// op2 returns a pointer to the third operand slot (the trailing imm8 of SSE
// rows such as 0F 3A, IMUL's three-operand immediate, or the SHLD/SHRD
// count).
func (st *DecodeState) op2() *Operand { return &st.Instruction.Operands[2] }

// flipOperands swaps which array slot "operand 0"/"operand 1" refer to.
func (st *DecodeState) flipOperands() {
	st.operand0, st.operand1 = st.operand1, st.operand0
}

// setRipRelFixup records that Instruction.Operands[operandIndex]'s
// Immediate field needs addr+length added once length is final.
func (st *DecodeState) setRipRelFixup(operandIndex int) {
	st.ripRel = ripRelFixup{pending: true, operandIndex: operandIndex}
}
