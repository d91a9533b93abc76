package disasm

// threeDNowSuffixTable maps the trailing imm8 suffix byte of a 0F 0F
// instruction to its operation; the preceding MMX reg/rm pair is decoded
// identically for every suffix, so only this final byte actually selects
// the operation (spec.md's 3DNow! dispatch).
var threeDNowSuffixTable = map[byte]Operation{
	0x0C: PI2FW,
	0x0D: PI2FD,
	0x1C: PF2IW,
	0x1D: PF2ID,
	0x8A: PFNACC,
	0x8E: PFPNACC,
	0x90: PFCMPGE,
	0x94: PFMIN,
	0x96: PFRCP,
	0x97: PFRSQRT,
	0x9A: PFSUB,
	0x9E: PFADD,
	0xA0: PFCMPGT,
	0xA4: PFMAX,
	0xA6: PFRCPIT1,
	0xA7: PFRSQIT1,
	0xAA: PFSUBR,
	0xAE: PFACC,
	0xB0: PFCMPEQ,
	0xB4: PFMUL,
	0xB6: PFRCPIT2,
	0xB7: PMULHRW,
	0xBB: PSWAPD,
	0xBF: PAVGUSB,
}
