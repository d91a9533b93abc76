package disasm

// operationName holds the lowercase printed mnemonic of every operation,
// indexed by Operation. Mirrors regName's kind -> name shape in
// registers.go.
var operationName = [...]string{
	INVALID: "(invalid)",

	ADD: "add", OR: "or", ADC: "adc", SBB: "sbb", AND: "and", SUB: "sub", XOR: "xor", CMP: "cmp",

	TEST: "test", NOT: "not", NEG: "neg", MUL: "mul", IMUL: "imul", DIV: "div", IDIV: "idiv",

	INC: "inc", DEC: "dec",

	MOV: "mov", MOVZX: "movzx", MOVSX: "movsx", MOVSXD: "movsxd", LEA: "lea", XCHG: "xchg",
	CMPXCHG: "cmpxchg", CMPXCHG8B: "cmpxchg8b", CMPXCHG16B: "cmpxchg16b",
	XADD: "xadd", BSWAP: "bswap",

	PUSH: "push", POP: "pop", PUSHA: "pusha", POPA: "popa", PUSHF: "pushf", POPF: "popf",

	CALL: "call", CALLF: "callf", RET: "ret", RETF: "retf", JMP: "jmp", JMPF: "jmpf",

	JO: "jo", JNO: "jno", JB: "jb", JAE: "jae", JE: "je", JNE: "jne", JBE: "jbe", JA: "ja",
	JS: "js", JNS: "jns", JP: "jp", JNP: "jnp", JL: "jl", JGE: "jge", JLE: "jle", JG: "jg",

	SETO: "seto", SETNO: "setno", SETB: "setb", SETAE: "setae", SETE: "sete", SETNE: "setne",
	SETBE: "setbe", SETA: "seta", SETS: "sets", SETNS: "setns", SETP: "setp", SETNP: "setnp",
	SETL: "setl", SETGE: "setge", SETLE: "setle", SETG: "setg",

	CMOVO: "cmovo", CMOVNO: "cmovno", CMOVB: "cmovb", CMOVAE: "cmovae", CMOVE: "cmove",
	CMOVNE: "cmovne", CMOVBE: "cmovbe", CMOVA: "cmova", CMOVS: "cmovs", CMOVNS: "cmovns",
	CMOVP: "cmovp", CMOVNP: "cmovnp", CMOVL: "cmovl", CMOVGE: "cmovge", CMOVLE: "cmovle", CMOVG: "cmovg",

	LOOPNE: "loopne", LOOPE: "loope", LOOP: "loop", JCXZ: "jcxz",

	CBW: "cbw", CWDE: "cwde", CDQE: "cdqe",
	CWD: "cwd", CDQ: "cdq", CQO: "cqo",

	SHL: "shl", SHR: "shr", SAR: "sar", ROL: "rol", ROR: "ror", RCL: "rcl", RCR: "rcr",

	NOP: "nop", INT3: "int3", INT: "int", INTO: "into", INT1: "int1", IRET: "iret", HLT: "hlt",
	CMC: "cmc", CLC: "clc", STC: "stc", CLI: "cli", STI: "sti", CLD: "cld", STD: "std",
	WAIT: "wait", SAHF: "sahf", LAHF: "lahf", CLTS: "clts", UD2: "ud2",
	DAA: "daa", DAS: "das", AAA: "aaa", AAS: "aas",
	SYSCALL: "syscall", SYSRET: "sysret", SYSENTER: "sysenter", SYSEXIT: "sysexit",
	RSM: "rsm", INVD: "invd", WBINVD: "wbinvd", CPUID: "cpuid",
	RDTSC: "rdtsc", RDMSR: "rdmsr", WRMSR: "wrmsr", RDPMC: "rdpmc",

	MOVS: "movs", CMPS: "cmps", STOS: "stos", LODS: "lods", SCAS: "scas",
	INS: "ins", OUTS: "outs",

	IN: "in", OUT: "out",

	ENTER: "enter", LEAVE: "leave",

	AAM: "aam", AAD: "aad", SALC: "salc", XLAT: "xlat", BOUND: "bound", ARPL: "arpl",

	BT: "bt", BTS: "bts", BTR: "btr", BTC: "btc", BSF: "bsf", BSR: "bsr",
	TZCNT: "tzcnt", LZCNT: "lzcnt", POPCNT: "popcnt", SHLD: "shld", SHRD: "shrd",

	LAR: "lar", LSL: "lsl", LDS: "lds", LES: "les", LSS: "lss", LFS: "lfs", LGS: "lgs",
	MOV_CR: "mov", MOV_DR: "mov",

	SLDT: "sldt", STR: "str", LLDT: "lldt", LTR: "ltr", VERR: "verr", VERW: "verw",
	SGDT: "sgdt", SIDT: "sidt", LGDT: "lgdt", LIDT: "lidt", SMSW: "smsw", LMSW: "lmsw",
	INVLPG: "invlpg", VMCALL: "vmcall", VMLAUNCH: "vmlaunch", VMRESUME: "vmresume", VMXOFF: "vmxoff",
	MONITOR: "monitor", MWAIT: "mwait", XGETBV: "xgetbv", SWAPGS: "swapgs",

	FXSAVE: "fxsave", FXRSTOR: "fxrstor", LDMXCSR: "ldmxcsr", STMXCSR: "stmxcsr",
	XSAVE: "xsave", XRSTOR: "xrstor", LFENCE: "lfence", MFENCE: "mfence", SFENCE: "sfence",
	CLFLUSH: "clflush", PREFETCHNTA: "prefetchnta", PREFETCHT0: "prefetcht0",
	PREFETCHT1: "prefetcht1", PREFETCHT2: "prefetcht2",

	EMMS: "emms", MOVD: "movd", MOVQ: "movq",
	PACKSSWB: "packsswb", PACKSSDW: "packssdw", PACKUSWB: "packuswb",
	PUNPCKLBW: "punpcklbw", PUNPCKLWD: "punpcklwd", PUNPCKLDQ: "punpckldq",
	PUNPCKHBW: "punpckhbw", PUNPCKHWD: "punpckhwd", PUNPCKHDQ: "punpckhdq",
	PUNPCKLQDQ: "punpcklqdq", PUNPCKHQDQ: "punpckhqdq",
	PADDB: "paddb", PADDW: "paddw", PADDD: "paddd", PADDQ: "paddq",
	PSUBB: "psubb", PSUBW: "psubw", PSUBD: "psubd", PSUBQ: "psubq",
	PADDSB: "paddsb", PADDSW: "paddsw", PADDUSB: "paddusb", PADDUSW: "paddusw",
	PSUBSB: "psubsb", PSUBSW: "psubsw", PSUBUSB: "psubusb", PSUBUSW: "psubusw",
	PMULLW: "pmullw", PMULHW: "pmulhw", PMULHUW: "pmulhuw", PMULUDQ: "pmuludq", PMULLD: "pmulld",
	PMADDWD: "pmaddwd", PSADBW: "psadbw",
	PAND: "pand", PANDN: "pandn", POR: "por", PXOR: "pxor",
	PCMPEQB: "pcmpeqb", PCMPEQW: "pcmpeqw", PCMPEQD: "pcmpeqd",
	PCMPGTB: "pcmpgtb", PCMPGTW: "pcmpgtw", PCMPGTD: "pcmpgtd",
	PSLLW: "psllw", PSLLD: "pslld", PSLLQ: "psllq",
	PSRLW: "psrlw", PSRLD: "psrld", PSRLQ: "psrlq",
	PSRAW: "psraw", PSRAD: "psrad",
	PSHUFB: "pshufb", PSHUFW: "pshufw", PSHUFD: "pshufd", PSHUFLW: "pshuflw", PSHUFHW: "pshufhw",
	PAVGB: "pavgb", PAVGW: "pavgw", PMAXSW: "pmaxsw", PMAXUB: "pmaxub",
	PMINSW: "pminsw", PMINUB: "pminub",
	PMOVMSKB: "pmovmskb", PINSRW: "pinsrw", PEXTRW: "pextrw", PEXTRB: "pextrb", PEXTRD: "pextrd",
	PEXTRQ: "pextrq", PINSRB: "pinsrb", PINSRD: "pinsrd", PINSRQ: "pinsrq",
	PALIGNR: "palignr", PAVGUSB: "pavgusb",
	PI2FW: "pi2fw", PI2FD: "pi2fd", PF2IW: "pf2iw", PF2ID: "pf2id",
	PFNACC: "pfnacc", PFPNACC: "pfpnacc", PFCMPGE: "pfcmpge", PFMIN: "pfmin",
	PFRCP: "pfrcp", PFRSQRT: "pfrsqrt", PFSUB: "pfsub", PFADD: "pfadd",
	PFCMPGT: "pfcmpgt", PFMAX: "pfmax", PFRCPIT1: "pfrcpit1", PFRSQIT1: "pfrsqit1",
	PFSUBR: "pfsubr", PFACC: "pfacc", PFCMPEQ: "pfcmpeq", PFMUL: "pfmul",
	PFRCPIT2: "pfrcpit2", PMULHRW: "pmulhrw", PSWAPD: "pswapd",

	MOVAPS: "movaps", MOVAPD: "movapd", MOVUPS: "movups", MOVUPD: "movupd",
	MOVSS: "movss", MOVSD: "movsd", MOVLPS: "movlps", MOVLPD: "movlpd",
	MOVHPS: "movhps", MOVHPD: "movhpd", MOVLHPS: "movlhps", MOVHLPS: "movhlps",
	MOVMSKPS: "movmskps", MOVMSKPD: "movmskpd",
	MOVNTPS: "movntps", MOVNTPD: "movntpd", MOVNTDQ: "movntdq", MOVNTI: "movnti",
	MOVDQA: "movdqa", MOVDQU: "movdqu",
	ADDPS: "addps", ADDPD: "addpd", ADDSS: "addss", ADDSD: "addsd",
	SUBPS: "subps", SUBPD: "subpd", SUBSS: "subss", SUBSD: "subsd",
	MULPS: "mulps", MULPD: "mulpd", MULSS: "mulss", MULSD: "mulsd",
	DIVPS: "divps", DIVPD: "divpd", DIVSS: "divss", DIVSD: "divsd",
	SQRTPS: "sqrtps", SQRTPD: "sqrtpd", SQRTSS: "sqrtss", SQRTSD: "sqrtsd",
	MAXPS: "maxps", MAXPD: "maxpd", MAXSS: "maxss", MAXSD: "maxsd",
	MINPS: "minps", MINPD: "minpd", MINSS: "minss", MINSD: "minsd",
	ANDPS: "andps", ANDPD: "andpd", ANDNPS: "andnps", ANDNPD: "andnpd",
	ORPS: "orps", ORPD: "orpd", XORPS: "xorps", XORPD: "xorpd",
	CMPPS: "cmpps", CMPPD: "cmppd", CMPSS: "cmpss", CMPSD: "cmpsd",
	COMISS: "comiss", COMISD: "comisd", UCOMISS: "ucomiss", UCOMISD: "ucomisd",
	CVTPI2PS: "cvtpi2ps", CVTPI2PD: "cvtpi2pd", CVTPS2PI: "cvtps2pi", CVTPD2PI: "cvtpd2pi",
	CVTTPS2PI: "cvttps2pi", CVTTPD2PI: "cvttpd2pi",
	CVTSI2SS: "cvtsi2ss", CVTSI2SD: "cvtsi2sd", CVTSS2SI: "cvtss2si", CVTSD2SI: "cvtsd2si",
	CVTTSS2SI: "cvttss2si", CVTTSD2SI: "cvttsd2si",
	CVTPS2PD: "cvtps2pd", CVTPD2PS: "cvtpd2ps", CVTSS2SD: "cvtss2sd", CVTSD2SS: "cvtsd2ss",
	CVTDQ2PS: "cvtdq2ps", CVTPS2DQ: "cvtps2dq", CVTTPS2DQ: "cvttps2dq",
	CVTDQ2PD: "cvtdq2pd", CVTPD2DQ: "cvtpd2dq", CVTTPD2DQ: "cvttpd2dq",
	SHUFPS: "shufps", SHUFPD: "shufpd",
	UNPCKLPS: "unpcklps", UNPCKLPD: "unpcklpd", UNPCKHPS: "unpckhps", UNPCKHPD: "unpckhpd",

	FADD: "fadd", FADDP: "faddp", FIADD: "fiadd",
	FMUL: "fmul", FMULP: "fmulp", FIMUL: "fimul",
	FCOM: "fcom", FCOMP: "fcomp", FCOMPP: "fcompp",
	FICOM: "ficom", FICOMP: "ficomp",
	FSUB: "fsub", FSUBP: "fsubp", FISUB: "fisub",
	FSUBR: "fsubr", FSUBRP: "fsubrp", FISUBR: "fisubr",
	FDIV: "fdiv", FDIVP: "fdivp", FIDIV: "fidiv",
	FDIVR: "fdivr", FDIVRP: "fdivrp", FIDIVR: "fidivr",
	FLD: "fld", FLD1: "fld1", FLDL2T: "fldl2t", FLDL2E: "fldl2e", FLDPI: "fldpi",
	FLDLG2: "fldlg2", FLDLN2: "fldln2", FLDZ: "fldz", FLDCW: "fldcw", FLDENV: "fldenv",
	FST: "fst", FSTP: "fstp", FSTP1: "fstp1", FXCH: "fxch",
	FNOP: "fnop", FCHS: "fchs", FABS: "fabs", FTST: "ftst", FXAM: "fxam",
	F2XM1: "f2xm1", FYL2X: "fyl2x", FPTAN: "fptan", FPATAN: "fpatan",
	FXTRACT: "fxtract", FPREM1: "fprem1", FDECSTP: "fdecstp", FINCSTP: "fincstp",
	FPREM: "fprem", FYL2XP1: "fyl2xp1", FSQRT: "fsqrt", FSINCOS: "fsincos",
	FRNDINT: "frndint", FSCALE: "fscale", FSIN: "fsin", FCOS: "fcos",
	FILD: "fild", FIST: "fist", FISTP: "fistp", FISTTP: "fisttp",
	FBLD: "fbld", FBSTP: "fbstp",
	FUCOM: "fucom", FUCOMP: "fucomp", FUCOMPP: "fucompp",
	FUCOMI: "fucomi", FUCOMIP: "fucomip", FCOMI: "fcomi", FCOMIP: "fcomip",
	FCMOVB: "fcmovb", FCMOVE: "fcmove", FCMOVBE: "fcmovbe", FCMOVU: "fcmovu",
	FCMOVNB: "fcmovnb", FCMOVNE: "fcmovne", FCMOVNBE: "fcmovnbe", FCMOVNU: "fcmovnu",
	FFREE: "ffree", FRSTOR: "frstor", FSAVE: "fsave", FNSTSW: "fnstsw",
	FSTENV: "fstenv", FSTCW: "fstcw", FNSTCW: "fnstcw", FCLEX: "fclex", FINIT: "finit",

	MOVBE: "movbe", CRC32: "crc32",
	PHADDW: "phaddw", PHADDD: "phaddd", PHADDSW: "phaddsw",
	PHSUBW: "phsubw", PHSUBD: "phsubd", PHSUBSW: "phsubsw",
	PMADDUBSW: "pmaddubsw", PMULHRSW: "pmulhrsw",
	PSIGNB: "psignb", PSIGNW: "psignw", PSIGND: "psignd",
	PABSB: "pabsb", PABSW: "pabsw", PABSD: "pabsd",
	PMOVSXBW: "pmovsxbw", PMOVSXBD: "pmovsxbd", PMOVSXBQ: "pmovsxbq",
	PMOVSXWD: "pmovsxwd", PMOVSXWQ: "pmovsxwq", PMOVSXDQ: "pmovsxdq",
	PMOVZXBW: "pmovzxbw", PMOVZXBD: "pmovzxbd", PMOVZXBQ: "pmovzxbq",
	PMOVZXWD: "pmovzxwd", PMOVZXWQ: "pmovzxwq", PMOVZXDQ: "pmovzxdq",
	PMAXSB: "pmaxsb", PMAXSD: "pmaxsd", PMAXUW: "pmaxuw", PMAXUD: "pmaxud",
	PMINSB: "pminsb", PMINSD: "pminsd", PMINUW: "pminuw", PMINUD: "pminud",
	PCMPEQQ: "pcmpeqq", PCMPGTQ: "pcmpgtq", PACKUSDW: "packusdw", PTEST: "ptest",

	ROUNDPS: "roundps", ROUNDPD: "roundpd", ROUNDSS: "roundss", ROUNDSD: "roundsd",
	BLENDPS: "blendps", BLENDPD: "blendpd", PBLENDW: "pblendw",
	EXTRACTPS: "extractps", INSERTPS: "insertps", PCLMULQDQ: "pclmulqdq",
	PCMPESTRM: "pcmpestrm", PCMPESTRI: "pcmpestri", PCMPISTRM: "pcmpistrm", PCMPISTRI: "pcmpistri",
}

// String renders an operation's lowercase mnemonic, as used by the text
// formatter's %i token. MOV_CR/MOV_DR both render as "mov" since the
// control/debug-register distinction is carried by the operand register
// kind, not the mnemonic text.
func (op Operation) String() string {
	if int(op) < 0 || int(op) >= len(operationName) {
		return "(invalid)"
	}
	return operationName[op]
}
