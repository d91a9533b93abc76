package disasm

// RegisterKind names an exact register. Unlike the teacher's assembler
// (which keeps a separate RegisterType + numeric Encoding pair), here the
// register tag itself names the exact register — decoders never need to
// pair a "type" with an "encoding" because the tag already is the final
// answer (see spec.md §3, Operand "register kind").
type RegisterKind int

const (
	RegNone RegisterKind = iota

	// 8-bit general purpose, encodings 0-7 without REX (legacy high-byte
	// forms AH/CH/DH/BH share encodings 4-7 with SPL/BPL/SIL/DIL — which
	// table applies depends on REX presence, see reg8Legacy/reg8REX).
	RegAL
	RegCL
	RegDL
	RegBL
	RegAH
	RegCH
	RegDH
	RegBH
	RegSPL
	RegBPL
	RegSIL
	RegDIL
	RegR8B
	RegR9B
	RegR10B
	RegR11B
	RegR12B
	RegR13B
	RegR14B
	RegR15B

	// 16-bit general purpose.
	RegAX
	RegCX
	RegDX
	RegBX
	RegSP
	RegBP
	RegSI
	RegDI
	RegR8W
	RegR9W
	RegR10W
	RegR11W
	RegR12W
	RegR13W
	RegR14W
	RegR15W

	// 32-bit general purpose.
	RegEAX
	RegECX
	RegEDX
	RegEBX
	RegESP
	RegEBP
	RegESI
	RegEDI
	RegR8D
	RegR9D
	RegR10D
	RegR11D
	RegR12D
	RegR13D
	RegR14D
	RegR15D

	// 64-bit general purpose.
	RegRAX
	RegRCX
	RegRDX
	RegRBX
	RegRSP
	RegRBP
	RegRSI
	RegRDI
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15

	// Segment registers.
	RegES
	RegCS
	RegSS
	RegDS
	RegFS
	RegGS

	// Control / debug registers.
	RegCR0
	RegCR1
	RegCR2
	RegCR3
	RegCR4
	RegCR5
	RegCR6
	RegCR7
	RegCR8
	RegDR0
	RegDR1
	RegDR2
	RegDR3
	RegDR4
	RegDR5
	RegDR6
	RegDR7

	// x87 FPU stack registers.
	RegST0
	RegST1
	RegST2
	RegST3
	RegST4
	RegST5
	RegST6
	RegST7

	// MMX registers.
	RegMM0
	RegMM1
	RegMM2
	RegMM3
	RegMM4
	RegMM5
	RegMM6
	RegMM7

	// XMM registers (SSE/SSE2/SSE4.2).
	RegXMM0
	RegXMM1
	RegXMM2
	RegXMM3
	RegXMM4
	RegXMM5
	RegXMM6
	RegXMM7
	RegXMM8
	RegXMM9
	RegXMM10
	RegXMM11
	RegXMM12
	RegXMM13
	RegXMM14
	RegXMM15
)

// regName holds the lowercase printed name of every register kind, indexed
// by RegisterKind. This mirrors the teacher's RegistersByName map but
// inverted (kind -> name, since the decoder never needs name -> kind).
var regName = [...]string{
	RegNone: "",

	RegAL: "al", RegCL: "cl", RegDL: "dl", RegBL: "bl",
	RegAH: "ah", RegCH: "ch", RegDH: "dh", RegBH: "bh",
	RegSPL: "spl", RegBPL: "bpl", RegSIL: "sil", RegDIL: "dil",
	RegR8B: "r8b", RegR9B: "r9b", RegR10B: "r10b", RegR11B: "r11b",
	RegR12B: "r12b", RegR13B: "r13b", RegR14B: "r14b", RegR15B: "r15b",

	RegAX: "ax", RegCX: "cx", RegDX: "dx", RegBX: "bx",
	RegSP: "sp", RegBP: "bp", RegSI: "si", RegDI: "di",
	RegR8W: "r8w", RegR9W: "r9w", RegR10W: "r10w", RegR11W: "r11w",
	RegR12W: "r12w", RegR13W: "r13w", RegR14W: "r14w", RegR15W: "r15w",

	RegEAX: "eax", RegECX: "ecx", RegEDX: "edx", RegEBX: "ebx",
	RegESP: "esp", RegEBP: "ebp", RegESI: "esi", RegEDI: "edi",
	RegR8D: "r8d", RegR9D: "r9d", RegR10D: "r10d", RegR11D: "r11d",
	RegR12D: "r12d", RegR13D: "r13d", RegR14D: "r14d", RegR15D: "r15d",

	RegRAX: "rax", RegRCX: "rcx", RegRDX: "rdx", RegRBX: "rbx",
	RegRSP: "rsp", RegRBP: "rbp", RegRSI: "rsi", RegRDI: "rdi",
	RegR8: "r8", RegR9: "r9", RegR10: "r10", RegR11: "r11",
	RegR12: "r12", RegR13: "r13", RegR14: "r14", RegR15: "r15",

	RegES: "es", RegCS: "cs", RegSS: "ss", RegDS: "ds", RegFS: "fs", RegGS: "gs",

	RegCR0: "cr0", RegCR1: "cr1", RegCR2: "cr2", RegCR3: "cr3",
	RegCR4: "cr4", RegCR5: "cr5", RegCR6: "cr6", RegCR7: "cr7", RegCR8: "cr8",
	RegDR0: "dr0", RegDR1: "dr1", RegDR2: "dr2", RegDR3: "dr3",
	RegDR4: "dr4", RegDR5: "dr5", RegDR6: "dr6", RegDR7: "dr7",

	RegST0: "st0", RegST1: "st1", RegST2: "st2", RegST3: "st3",
	RegST4: "st4", RegST5: "st5", RegST6: "st6", RegST7: "st7",

	RegMM0: "mm0", RegMM1: "mm1", RegMM2: "mm2", RegMM3: "mm3",
	RegMM4: "mm4", RegMM5: "mm5", RegMM6: "mm6", RegMM7: "mm7",

	RegXMM0: "xmm0", RegXMM1: "xmm1", RegXMM2: "xmm2", RegXMM3: "xmm3",
	RegXMM4: "xmm4", RegXMM5: "xmm5", RegXMM6: "xmm6", RegXMM7: "xmm7",
	RegXMM8: "xmm8", RegXMM9: "xmm9", RegXMM10: "xmm10", RegXMM11: "xmm11",
	RegXMM12: "xmm12", RegXMM13: "xmm13", RegXMM14: "xmm14", RegXMM15: "xmm15",
}

// String renders a register's lowercase name, as used by the text formatter.
func (r RegisterKind) String() string {
	if int(r) < 0 || int(r) >= len(regName) {
		return ""
	}
	return regName[r]
}

// reg8Legacy/reg8REX are the two 8-bit register lists selected by whether a
// REX prefix is present: without REX, encodings 4-7 name AH/CH/DH/BH; with
// REX, they name SPL/BPL/SIL/DIL instead (spec.md §3 Invariants implies
// this via the REX-dependent register-list selection used throughout the
// modRM engine).
var reg8Legacy = [16]RegisterKind{
	RegAL, RegCL, RegDL, RegBL, RegAH, RegCH, RegDH, RegBH,
	RegR8B, RegR9B, RegR10B, RegR11B, RegR12B, RegR13B, RegR14B, RegR15B,
}

var reg8REX = [16]RegisterKind{
	RegAL, RegCL, RegDL, RegBL, RegSPL, RegBPL, RegSIL, RegDIL,
	RegR8B, RegR9B, RegR10B, RegR11B, RegR12B, RegR13B, RegR14B, RegR15B,
}

var reg16 = [16]RegisterKind{
	RegAX, RegCX, RegDX, RegBX, RegSP, RegBP, RegSI, RegDI,
	RegR8W, RegR9W, RegR10W, RegR11W, RegR12W, RegR13W, RegR14W, RegR15W,
}

var reg32 = [16]RegisterKind{
	RegEAX, RegECX, RegEDX, RegEBX, RegESP, RegEBP, RegESI, RegEDI,
	RegR8D, RegR9D, RegR10D, RegR11D, RegR12D, RegR13D, RegR14D, RegR15D,
}

var reg64 = [16]RegisterKind{
	RegRAX, RegRCX, RegRDX, RegRBX, RegRSP, RegRBP, RegRSI, RegRDI,
	RegR8, RegR9, RegR10, RegR11, RegR12, RegR13, RegR14, RegR15,
}

var regSegment = [8]RegisterKind{
	RegES, RegCS, RegSS, RegDS, RegFS, RegGS, RegNone, RegNone,
}

var regControl = [16]RegisterKind{
	RegCR0, RegCR1, RegCR2, RegCR3, RegCR4, RegCR5, RegCR6, RegCR7,
	RegCR8, RegNone, RegNone, RegNone, RegNone, RegNone, RegNone, RegNone,
}

var regDebug = [16]RegisterKind{
	RegDR0, RegDR1, RegDR2, RegDR3, RegDR4, RegDR5, RegDR6, RegDR7,
	RegNone, RegNone, RegNone, RegNone, RegNone, RegNone, RegNone, RegNone,
}

var regST = [8]RegisterKind{
	RegST0, RegST1, RegST2, RegST3, RegST4, RegST5, RegST6, RegST7,
}

var regMMX = [8]RegisterKind{
	RegMM0, RegMM1, RegMM2, RegMM3, RegMM4, RegMM5, RegMM6, RegMM7,
}

var regXMM = [16]RegisterKind{
	RegXMM0, RegXMM1, RegXMM2, RegXMM3, RegXMM4, RegXMM5, RegXMM6, RegXMM7,
	RegXMM8, RegXMM9, RegXMM10, RegXMM11, RegXMM12, RegXMM13, RegXMM14, RegXMM15,
}

// regByEncoding selects the register of the given size class at the given
// (REX-extended) encoding 0-15. size is in bytes: 1, 2, 4 or 8. hasREX
// matters only for size==1.
func regByEncoding(size int, encoding byte, hasREX bool) RegisterKind {
	switch size {
	case 1:
		if hasREX {
			return reg8REX[encoding&0xF]
		}
		return reg8Legacy[encoding&0xF]
	case 2:
		return reg16[encoding&0xF]
	case 4:
		return reg32[encoding&0xF]
	case 8:
		return reg64[encoding&0xF]
	default:
		return RegNone
	}
}
