package disasm

// Operation identifies the mnemonic a decoded instruction carries. INVALID
// is the zero value so a zeroed Instruction is never mistaken for a real
// decode.
//
// Condition-code families (Jcc, Setcc, Cmovcc) are laid out as sixteen
// contiguous values in Intel's cc order (O, NO, B, AE, E, NE, BE, A, S, NS,
// P, NP, L, GE, LE, G), matching the low nibble of their opcodes; the opcode
// tables name each variant explicitly. CBW/CWDE/CDQE and CWD/CDQ/CQO are
// each three contiguous values because OPERATION_OP_SIZE bumps the base by
// 1 or 2 depending on the resolved operand size.
type Operation int

const (
	INVALID Operation = iota

	ADD
	OR
	ADC
	SBB
	AND
	SUB
	XOR
	CMP

	TEST
	NOT
	NEG
	MUL
	IMUL
	DIV
	IDIV

	INC
	DEC

	MOV
	MOVZX
	MOVSX
	MOVSXD
	LEA
	XCHG
	CMPXCHG
	CMPXCHG8B
	CMPXCHG16B
	XADD
	BSWAP

	PUSH
	POP
	PUSHA
	POPA
	PUSHF
	POPF

	CALL
	CALLF
	RET
	RETF
	JMP
	JMPF

	// Jcc — sixteen contiguous condition-code variants, base + cc.
	JO
	JNO
	JB
	JAE
	JE
	JNE
	JBE
	JA
	JS
	JNS
	JP
	JNP
	JL
	JGE
	JLE
	JG

	// Setcc — sixteen contiguous condition-code variants, base + cc.
	SETO
	SETNO
	SETB
	SETAE
	SETE
	SETNE
	SETBE
	SETA
	SETS
	SETNS
	SETP
	SETNP
	SETL
	SETGE
	SETLE
	SETG

	// Cmovcc — sixteen contiguous condition-code variants, base + cc.
	CMOVO
	CMOVNO
	CMOVB
	CMOVAE
	CMOVE
	CMOVNE
	CMOVBE
	CMOVA
	CMOVS
	CMOVNS
	CMOVP
	CMOVNP
	CMOVL
	CMOVGE
	CMOVLE
	CMOVG

	LOOPNE
	LOOPE
	LOOP
	JCXZ

	// CBW/CWDE/CDQE — three contiguous, base + (0/1/2) by final_op_size.
	CBW
	CWDE
	CDQE

	// CWD/CDQ/CQO — three contiguous, base + (0/1/2) by final_op_size.
	CWD
	CDQ
	CQO

	SHL
	SHR
	SAR
	ROL
	ROR
	RCL
	RCR

	NOP
	INT3
	INT
	INTO
	INT1
	IRET
	HLT
	CMC
	CLC
	STC
	CLI
	STI
	CLD
	STD
	WAIT
	SAHF
	LAHF
	DAA
	DAS
	AAA
	AAS
	CLTS
	UD2
	SYSCALL
	SYSRET
	SYSENTER
	SYSEXIT
	RSM
	INVD
	WBINVD
	CPUID
	RDTSC
	RDMSR
	WRMSR
	RDPMC

	MOVS
	CMPS
	STOS
	LODS
	SCAS
	INS
	OUTS

	IN
	OUT

	ENTER
	LEAVE

	AAM
	AAD
	SALC
	XLAT
	BOUND
	ARPL

	BT
	BTS
	BTR
	BTC
	BSF
	BSR
	TZCNT
	LZCNT
	POPCNT
	SHLD
	SHRD

	LAR
	LSL
	LDS
	LES
	LSS
	LFS
	LGS
	MOV_CR
	MOV_DR

	SLDT
	STR
	LLDT
	LTR
	VERR
	VERW
	SGDT
	SIDT
	LGDT
	LIDT
	SMSW
	LMSW
	INVLPG
	VMCALL
	VMLAUNCH
	VMRESUME
	VMXOFF
	MONITOR
	MWAIT
	XGETBV
	SWAPGS

	FXSAVE
	FXRSTOR
	LDMXCSR
	STMXCSR
	XSAVE
	XRSTOR
	LFENCE
	MFENCE
	SFENCE
	CLFLUSH
	PREFETCHNTA
	PREFETCHT0
	PREFETCHT1
	PREFETCHT2

	EMMS
	MOVD
	MOVQ
	PACKSSWB
	PACKSSDW
	PACKUSWB
	PUNPCKLBW
	PUNPCKLWD
	PUNPCKLDQ
	PUNPCKHBW
	PUNPCKHWD
	PUNPCKHDQ
	PUNPCKLQDQ
	PUNPCKHQDQ
	PADDB
	PADDW
	PADDD
	PADDQ
	PSUBB
	PSUBW
	PSUBD
	PSUBQ
	PADDSB
	PADDSW
	PADDUSB
	PADDUSW
	PSUBSB
	PSUBSW
	PSUBUSB
	PSUBUSW
	PMULLW
	PMULHW
	PMULHUW
	PMULUDQ
	PMULLD
	PMADDWD
	PSADBW
	PAND
	PANDN
	POR
	PXOR
	PCMPEQB
	PCMPEQW
	PCMPEQD
	PCMPGTB
	PCMPGTW
	PCMPGTD
	PSLLW
	PSLLD
	PSLLQ
	PSRLW
	PSRLD
	PSRLQ
	PSRAW
	PSRAD
	PSHUFB
	PSHUFW
	PSHUFD
	PSHUFLW
	PSHUFHW
	PAVGB
	PAVGW
	PMAXSW
	PMAXUB
	PMINSW
	PMINUB
	PMOVMSKB
	PINSRW
	PEXTRW
	PEXTRB
	PEXTRD
	PEXTRQ
	PINSRB
	PINSRD
	PINSRQ
	PALIGNR
	PAVGUSB
	PI2FW
	PI2FD
	PF2IW
	PF2ID
	PFNACC
	PFPNACC
	PFCMPGE
	PFMIN
	PFRCP
	PFRSQRT
	PFSUB
	PFADD
	PFCMPGT
	PFMAX
	PFRCPIT1
	PFRSQIT1
	PFSUBR
	PFACC
	PFCMPEQ
	PFMUL
	PFRCPIT2
	PMULHRW
	PSWAPD

	MOVAPS
	MOVAPD
	MOVUPS
	MOVUPD
	MOVSS
	MOVSD
	MOVLPS
	MOVLPD
	MOVHPS
	MOVHPD
	MOVLHPS
	MOVHLPS
	MOVMSKPS
	MOVMSKPD
	MOVNTPS
	MOVNTPD
	MOVNTDQ
	MOVNTI
	MOVDQA
	MOVDQU
	ADDPS
	ADDPD
	ADDSS
	ADDSD
	SUBPS
	SUBPD
	SUBSS
	SUBSD
	MULPS
	MULPD
	MULSS
	MULSD
	DIVPS
	DIVPD
	DIVSS
	DIVSD
	SQRTPS
	SQRTPD
	SQRTSS
	SQRTSD
	MAXPS
	MAXPD
	MAXSS
	MAXSD
	MINPS
	MINPD
	MINSS
	MINSD
	ANDPS
	ANDPD
	ANDNPS
	ANDNPD
	ORPS
	ORPD
	XORPS
	XORPD
	CMPPS
	CMPPD
	CMPSS
	CMPSD
	COMISS
	COMISD
	UCOMISS
	UCOMISD
	CVTPI2PS
	CVTPI2PD
	CVTPS2PI
	CVTPD2PI
	CVTTPS2PI
	CVTTPD2PI
	CVTSI2SS
	CVTSI2SD
	CVTSS2SI
	CVTSD2SI
	CVTTSS2SI
	CVTTSD2SI
	CVTPS2PD
	CVTPD2PS
	CVTSS2SD
	CVTSD2SS
	CVTDQ2PS
	CVTPS2DQ
	CVTTPS2DQ
	CVTDQ2PD
	CVTPD2DQ
	CVTTPD2DQ
	SHUFPS
	SHUFPD
	UNPCKLPS
	UNPCKLPD
	UNPCKHPS
	UNPCKHPD

	// FPU x87
	FADD
	FADDP
	FIADD
	FMUL
	FMULP
	FIMUL
	FCOM
	FCOMP
	FCOMPP
	FICOM
	FICOMP
	FSUB
	FSUBP
	FISUB
	FSUBR
	FSUBRP
	FISUBR
	FDIV
	FDIVP
	FIDIV
	FDIVR
	FDIVRP
	FIDIVR
	FLD
	FLD1
	FLDL2T
	FLDL2E
	FLDPI
	FLDLG2
	FLDLN2
	FLDZ
	FLDCW
	FLDENV
	FST
	FSTP
	FSTP1
	FXCH
	FNOP
	FCHS
	FABS
	FTST
	FXAM
	F2XM1
	FYL2X
	FPTAN
	FPATAN
	FXTRACT
	FPREM1
	FDECSTP
	FINCSTP
	FPREM
	FYL2XP1
	FSQRT
	FSINCOS
	FRNDINT
	FSCALE
	FSIN
	FCOS
	FILD
	FIST
	FISTP
	FISTTP
	FBLD
	FBSTP
	FUCOM
	FUCOMP
	FUCOMPP
	FUCOMI
	FUCOMIP
	FCOMI
	FCOMIP
	FCMOVB
	FCMOVE
	FCMOVBE
	FCMOVU
	FCMOVNB
	FCMOVNE
	FCMOVNBE
	FCMOVNU
	FFREE
	FRSTOR
	FSAVE
	FNSTSW
	FSTENV
	FSTCW
	FNSTCW
	FCLEX
	FINIT

	MOVBE
	CRC32
	PHADDW
	PHADDD
	PHADDSW
	PHSUBW
	PHSUBD
	PHSUBSW
	PMADDUBSW
	PMULHRSW
	PSIGNB
	PSIGNW
	PSIGND
	PABSB
	PABSW
	PABSD
	PMOVSXBW
	PMOVSXBD
	PMOVSXBQ
	PMOVSXWD
	PMOVSXWQ
	PMOVSXDQ
	PMOVZXBW
	PMOVZXBD
	PMOVZXBQ
	PMOVZXWD
	PMOVZXWQ
	PMOVZXDQ
	PMAXSB
	PMAXSD
	PMAXUW
	PMAXUD
	PMINSB
	PMINSD
	PMINUW
	PMINUD
	PCMPEQQ
	PCMPGTQ
	PACKUSDW
	PTEST

	ROUNDPS
	ROUNDPD
	ROUNDSS
	ROUNDSD
	BLENDPS
	BLENDPD
	PBLENDW
	EXTRACTPS
	INSERTPS
	PCLMULQDQ
	PCMPESTRM
	PCMPESTRI
	PCMPISTRM
	PCMPISTRI

	// operationCount is a sentinel marking the end of the enum; not itself
	// a valid operation.
	operationCount
)

// conditionCodeCount is the number of distinct condition codes (cc nibble
// of opcodes 70-7F / 0F 80-8F / 0F 90-9F / 0F 40-4F).
const conditionCodeCount = 16
