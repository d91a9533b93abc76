package disasm

const (
	groupALU   = 0
	groupShift = 1
)

// groupTables holds the /reg sub-tables selected by famGroup/famGroupRMOne/
// famGroupRMCl table rows. groupALU backs opcodes 80-83 (ADD/OR/ADC/SBB/
// AND/SUB/XOR/CMP, imm); groupShift backs C0/C1/D0-D3 (ROL/ROR/RCL/RCR/SHL/
// SHR/SAL/SAR). SAL and SHL share the same row deliberately — they are the
// same operation under two mnemonics, not a bug.
var groupTables = [][8]groupEntry{
	groupALU: {
		{op: ADD, attrs: attrLockable},
		{op: OR, attrs: attrLockable},
		{op: ADC, attrs: attrLockable},
		{op: SBB, attrs: attrLockable},
		{op: AND, attrs: attrLockable},
		{op: SUB, attrs: attrLockable},
		{op: XOR, attrs: attrLockable},
		{op: CMP},
	},
	groupShift: {
		{op: ROL}, {op: ROR}, {op: RCL}, {op: RCR},
		{op: SHL}, {op: SHR}, {op: SHL}, {op: SAR},
	},
}

// group0F01MemTable is the 0F 01 /reg table's memory-operand form.
var group0F01MemTable = [8]Operation{
	SGDT, SIDT, LGDT, LIDT, SMSW, INVALID, LMSW, INVLPG,
}

// group0F01Mod3Table is the 0F 01 mod==3 sub-table, keyed by (reg, rm); it
// has no r/m operand at all and almost every cell is unused.
var group0F01Mod3Table = [8][8]Operation{
	0: {INVALID, VMCALL, VMLAUNCH, VMRESUME, VMXOFF, INVALID, INVALID, INVALID},
	1: {MONITOR, MWAIT, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID},
	4: {XGETBV, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID},
	7: {SWAPGS, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID},
}

// group0FAEMemTable is the 0F AE /reg table's memory-operand form: the
// FXSAVE/FXRSTOR state-block ops, the MXCSR load/store ops, XSAVE/XRSTOR,
// and CLFLUSH. /reg 6 (XSAVEOPT/CLWB, depending on prefix) has no
// Operation constant in this decoder's operation set and decodes INVALID.
var group0FAEMemTable = [8]Operation{
	FXSAVE, FXRSTOR, LDMXCSR, STMXCSR, XSAVE, XRSTOR, INVALID, CLFLUSH,
}

// group0FAEMemSize is group0FAEMemTable's matching memory access width in
// bytes, indexed the same way: 512 for the FXSAVE/FXRSTOR/XSAVE/XRSTOR
// state blocks, 4 for the MXCSR doubleword, 1 for CLFLUSH's cache-line
// operand (rendered as a single byte, matching how this formatter has no
// "cache line" size qualifier).
var group0FAEMemSize = [8]int{512, 512, 4, 4, 512, 512, 0, 1}

// group0FAEMod3Table is the 0F AE mod==3 sub-table, keyed by (reg, rm):
// the fence triad, which takes no operand and ignores rm. /reg 0-4 with
// mod==3 (register-form FXSAVE etc.) has no encoding and stays INVALID.
var group0FAEMod3Table = [8][8]Operation{
	5: {LFENCE, LFENCE, LFENCE, LFENCE, LFENCE, LFENCE, LFENCE, LFENCE},
	6: {MFENCE, MFENCE, MFENCE, MFENCE, MFENCE, MFENCE, MFENCE, MFENCE},
	7: {SFENCE, SFENCE, SFENCE, SFENCE, SFENCE, SFENCE, SFENCE, SFENCE},
}

// group0FC7MemTable is the 0F C7 /reg table's memory-operand form: only
// /reg 1 (CMPXCHG8B, bumped to CMPXCHG16B under REX.W by attrIncFor64) is
// assigned; /reg 6/7 (RDRAND/RDSEED, register-destination-only) have no
// Operation constant and are out of scope here.
var group0FC7MemTable = [8]Operation{
	INVALID, CMPXCHG8B, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID,
}
