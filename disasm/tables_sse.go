package disasm

// sseXxx constants index sseTable; each one names one row of the SSE
// opcode space (spec.md's SSE mandatory-prefix dispatch), shared by every
// opcode-table entry that has that exact four-way archetype.
const (
	sseMovUPS = iota
	sseMovLPS
	sseUnpcklPS
	sseUnpckhPS
	sseMovHPS
	sseMovAPS
	sseComiss
	sseUcomiss
	sseSqrt
	sseAnd
	sseAndn
	sseOr
	sseXor
	sseAdd
	sseMul
	sseCvtFloat
	sseSub
	sseMin
	sseDiv
	sseMax
	ssePunpcklbw
	ssePunpcklwd
	ssePunpckldq
	ssePacksswb
	ssePcmpgtb
	ssePcmpgtw
	ssePcmpgtd
	ssePackuswb
	ssePunpckhbw
	ssePunpckhwd
	ssePunpckhdq
	ssePackssdw
	ssePunpcklqdq
	ssePunpckhqdq
	sseMovdq32
	sseMovdqa
	ssePshuf
	ssePcmpeqb
	ssePcmpeqw
	ssePcmpeqd
	ssePsrlw
	ssePsrld
	ssePsrlq
	ssePaddq
	ssePmullw
	ssePsubusb
	ssePsubusw
	ssePminub
	ssePand
	ssePaddusb
	ssePaddusw
	ssePmaxub
	ssePandn
	ssePavgb
	ssePsraw
	ssePsrad
	ssePavgw
	ssePmulhuw
	ssePmulhw
	ssePsubsb
	ssePsubsw
	ssePminsw
	ssePor
	ssePaddsb
	ssePaddsw
	ssePmaxsw
	ssePxor
	ssePsllw
	ssePslld
	ssePsllq
	ssePmuludq
	ssePmaddwd
	ssePsadbw
	ssePsubb
	ssePsubw
	ssePsubd
	ssePsubq
	ssePaddb
	ssePaddw
	ssePaddd
	sseCmp
	sseShuf
	ssePshufb
	ssePhaddw
	ssePhaddd
	ssePhaddsw
	ssePmaddubsw
	ssePhsubw
	ssePhsubd
	ssePhsubsw
	ssePsignb
	ssePsignw
	ssePsignd
	ssePmulhrsw
	ssePabsb
	ssePabsw
	ssePabsd
	ssePcmpeqq
	ssePcmpgtq
	ssePminsb
	ssePminuw
	ssePmaxsb
	ssePmaxuw
	sseRoundps
	sseRoundpd
	sseRoundss
	sseRoundsd
	sseBlendps
	sseBlendpd
	ssePblendw
	ssePalignr
	ssePcmpistri

	sseTableSize
)

// sseTable holds one sseDef per sseXxx index. Rows with fewer than four
// live mnemonics (e.g. a packed-only compare with no scalar form) leave
// the unused prefix-class fields at their zero value, which decodeSSE
// treats as INVALID for that prefix class.
var sseTable = [sseTableSize]sseDef{
	sseMovUPS: {
		none: sseVariant{op: MOVUPS},
		p66:  sseVariant{op: MOVUPD},
		pF2:  sseVariant{op: MOVSD, memSize: 8},
		pF3:  sseVariant{op: MOVSS, memSize: 4},
	},
	sseMovLPS: {
		none: sseVariant{op: MOVLPS, memSize: 8},
		p66:  sseVariant{op: MOVLPD, memSize: 8},
	},
	sseUnpcklPS: {
		none: sseVariant{op: UNPCKLPS},
		p66:  sseVariant{op: UNPCKLPD},
	},
	sseUnpckhPS: {
		none: sseVariant{op: UNPCKHPS},
		p66:  sseVariant{op: UNPCKHPD},
	},
	sseMovHPS: {
		none: sseVariant{op: MOVHPS, memSize: 8},
		p66:  sseVariant{op: MOVHPD, memSize: 8},
	},
	sseMovAPS: {
		none: sseVariant{op: MOVAPS},
		p66:  sseVariant{op: MOVAPD},
	},
	sseComiss: {
		none: sseVariant{op: COMISS, memSize: 4},
		p66:  sseVariant{op: COMISD, memSize: 8},
	},
	sseUcomiss: {
		none: sseVariant{op: UCOMISS, memSize: 4},
		p66:  sseVariant{op: UCOMISD, memSize: 8},
	},
	sseSqrt: {
		none: sseVariant{op: SQRTPS},
		p66:  sseVariant{op: SQRTPD},
		pF2:  sseVariant{op: SQRTSD, memSize: 8},
		pF3:  sseVariant{op: SQRTSS, memSize: 4},
	},
	sseAnd: {
		none: sseVariant{op: ANDPS},
		p66:  sseVariant{op: ANDPD},
	},
	sseAndn: {
		none: sseVariant{op: ANDNPS},
		p66:  sseVariant{op: ANDNPD},
	},
	sseOr: {
		none: sseVariant{op: ORPS},
		p66:  sseVariant{op: ORPD},
	},
	sseXor: {
		none: sseVariant{op: XORPS},
		p66:  sseVariant{op: XORPD},
	},
	sseAdd: {
		none: sseVariant{op: ADDPS},
		p66:  sseVariant{op: ADDPD},
		pF2:  sseVariant{op: ADDSD, memSize: 8},
		pF3:  sseVariant{op: ADDSS, memSize: 4},
	},
	sseMul: {
		none: sseVariant{op: MULPS},
		p66:  sseVariant{op: MULPD},
		pF2:  sseVariant{op: MULSD, memSize: 8},
		pF3:  sseVariant{op: MULSS, memSize: 4},
	},
	sseCvtFloat: {
		none: sseVariant{op: CVTPS2PD},
		p66:  sseVariant{op: CVTPD2PS},
		pF2:  sseVariant{op: CVTSD2SS, memSize: 8},
		pF3:  sseVariant{op: CVTSS2SD, memSize: 4},
	},
	sseSub: {
		none: sseVariant{op: SUBPS},
		p66:  sseVariant{op: SUBPD},
		pF2:  sseVariant{op: SUBSD, memSize: 8},
		pF3:  sseVariant{op: SUBSS, memSize: 4},
	},
	sseMin: {
		none: sseVariant{op: MINPS},
		p66:  sseVariant{op: MINPD},
		pF2:  sseVariant{op: MINSD, memSize: 8},
		pF3:  sseVariant{op: MINSS, memSize: 4},
	},
	sseDiv: {
		none: sseVariant{op: DIVPS},
		p66:  sseVariant{op: DIVPD},
		pF2:  sseVariant{op: DIVSD, memSize: 8},
		pF3:  sseVariant{op: DIVSS, memSize: 4},
	},
	sseMax: {
		none: sseVariant{op: MAXPS},
		p66:  sseVariant{op: MAXPD},
		pF2:  sseVariant{op: MAXSD, memSize: 8},
		pF3:  sseVariant{op: MAXSS, memSize: 4},
	},

	// 0F 60-6B: the same integer operation serves both the MMX (no
	// prefix, 64-bit mm registers) and SSE2 (66 prefix, 128-bit xmm
	// registers) encodings, matching the hardware's own table sharing.
	ssePunpcklbw: {
		none: sseVariant{op: PUNPCKLBW, useMM: true},
		p66:  sseVariant{op: PUNPCKLBW},
	},
	ssePunpcklwd: {
		none: sseVariant{op: PUNPCKLWD, useMM: true},
		p66:  sseVariant{op: PUNPCKLWD},
	},
	ssePunpckldq: {
		none: sseVariant{op: PUNPCKLDQ, useMM: true},
		p66:  sseVariant{op: PUNPCKLDQ},
	},
	ssePacksswb: {
		none: sseVariant{op: PACKSSWB, useMM: true},
		p66:  sseVariant{op: PACKSSWB},
	},
	ssePcmpgtb: {
		none: sseVariant{op: PCMPGTB, useMM: true},
		p66:  sseVariant{op: PCMPGTB},
	},
	ssePcmpgtw: {
		none: sseVariant{op: PCMPGTW, useMM: true},
		p66:  sseVariant{op: PCMPGTW},
	},
	ssePcmpgtd: {
		none: sseVariant{op: PCMPGTD, useMM: true},
		p66:  sseVariant{op: PCMPGTD},
	},
	ssePackuswb: {
		none: sseVariant{op: PACKUSWB, useMM: true},
		p66:  sseVariant{op: PACKUSWB},
	},
	ssePunpckhbw: {
		none: sseVariant{op: PUNPCKHBW, useMM: true},
		p66:  sseVariant{op: PUNPCKHBW},
	},
	ssePunpckhwd: {
		none: sseVariant{op: PUNPCKHWD, useMM: true},
		p66:  sseVariant{op: PUNPCKHWD},
	},
	ssePunpckhdq: {
		none: sseVariant{op: PUNPCKHDQ, useMM: true},
		p66:  sseVariant{op: PUNPCKHDQ},
	},
	ssePackssdw: {
		none: sseVariant{op: PACKSSDW, useMM: true},
		p66:  sseVariant{op: PACKSSDW},
	},
	// SSE2-only, no legacy MMX encoding.
	ssePunpcklqdq: {
		p66: sseVariant{op: PUNPCKLQDQ},
	},
	ssePunpckhqdq: {
		p66: sseVariant{op: PUNPCKHQDQ},
	},

	sseMovdq32: {
		none: sseVariant{op: MOVD, gprOperand: true},
		p66:  sseVariant{op: MOVD, gprOperand: true},
		pF3:  sseVariant{op: MOVQ, memSize: 8},
	},
	sseMovdqa: {
		none: sseVariant{op: MOVQ, useMM: true, memSize: 8},
		p66:  sseVariant{op: MOVDQA},
		pF3:  sseVariant{op: MOVDQU},
	},

	ssePshuf: {
		none: sseVariant{op: PSHUFW, useMM: true, trailingImm8: true},
		p66:  sseVariant{op: PSHUFD, trailingImm8: true},
		pF2:  sseVariant{op: PSHUFLW, trailingImm8: true},
		pF3:  sseVariant{op: PSHUFHW, trailingImm8: true},
	},
	ssePcmpeqb: {
		none: sseVariant{op: PCMPEQB, useMM: true},
		p66:  sseVariant{op: PCMPEQB},
	},
	ssePcmpeqw: {
		none: sseVariant{op: PCMPEQW, useMM: true},
		p66:  sseVariant{op: PCMPEQW},
	},
	ssePcmpeqd: {
		none: sseVariant{op: PCMPEQD, useMM: true},
		p66:  sseVariant{op: PCMPEQD},
	},

	ssePsrlw:   {none: sseVariant{op: PSRLW, useMM: true}, p66: sseVariant{op: PSRLW}},
	ssePsrld:   {none: sseVariant{op: PSRLD, useMM: true}, p66: sseVariant{op: PSRLD}},
	ssePsrlq:   {none: sseVariant{op: PSRLQ, useMM: true}, p66: sseVariant{op: PSRLQ}},
	ssePaddq:   {none: sseVariant{op: PADDQ, useMM: true}, p66: sseVariant{op: PADDQ}},
	ssePmullw:  {none: sseVariant{op: PMULLW, useMM: true}, p66: sseVariant{op: PMULLW}},
	ssePsubusb: {none: sseVariant{op: PSUBUSB, useMM: true}, p66: sseVariant{op: PSUBUSB}},
	ssePsubusw: {none: sseVariant{op: PSUBUSW, useMM: true}, p66: sseVariant{op: PSUBUSW}},
	ssePminub:  {none: sseVariant{op: PMINUB, useMM: true}, p66: sseVariant{op: PMINUB}},
	ssePand:    {none: sseVariant{op: PAND, useMM: true}, p66: sseVariant{op: PAND}},
	ssePaddusb: {none: sseVariant{op: PADDUSB, useMM: true}, p66: sseVariant{op: PADDUSB}},
	ssePaddusw: {none: sseVariant{op: PADDUSW, useMM: true}, p66: sseVariant{op: PADDUSW}},
	ssePmaxub:  {none: sseVariant{op: PMAXUB, useMM: true}, p66: sseVariant{op: PMAXUB}},
	ssePandn:   {none: sseVariant{op: PANDN, useMM: true}, p66: sseVariant{op: PANDN}},

	ssePavgb:   {none: sseVariant{op: PAVGB, useMM: true}, p66: sseVariant{op: PAVGB}},
	ssePsraw:   {none: sseVariant{op: PSRAW, useMM: true}, p66: sseVariant{op: PSRAW}},
	ssePsrad:   {none: sseVariant{op: PSRAD, useMM: true}, p66: sseVariant{op: PSRAD}},
	ssePavgw:   {none: sseVariant{op: PAVGW, useMM: true}, p66: sseVariant{op: PAVGW}},
	ssePmulhuw: {none: sseVariant{op: PMULHUW, useMM: true}, p66: sseVariant{op: PMULHUW}},
	ssePmulhw:  {none: sseVariant{op: PMULHW, useMM: true}, p66: sseVariant{op: PMULHW}},
	ssePsubsb:  {none: sseVariant{op: PSUBSB, useMM: true}, p66: sseVariant{op: PSUBSB}},
	ssePsubsw:  {none: sseVariant{op: PSUBSW, useMM: true}, p66: sseVariant{op: PSUBSW}},
	ssePminsw:  {none: sseVariant{op: PMINSW, useMM: true}, p66: sseVariant{op: PMINSW}},
	ssePor:     {none: sseVariant{op: POR, useMM: true}, p66: sseVariant{op: POR}},
	ssePaddsb:  {none: sseVariant{op: PADDSB, useMM: true}, p66: sseVariant{op: PADDSB}},
	ssePaddsw:  {none: sseVariant{op: PADDSW, useMM: true}, p66: sseVariant{op: PADDSW}},
	ssePmaxsw:  {none: sseVariant{op: PMAXSW, useMM: true}, p66: sseVariant{op: PMAXSW}},
	ssePxor:    {none: sseVariant{op: PXOR, useMM: true}, p66: sseVariant{op: PXOR}},

	ssePsllw:    {none: sseVariant{op: PSLLW, useMM: true}, p66: sseVariant{op: PSLLW}},
	ssePslld:    {none: sseVariant{op: PSLLD, useMM: true}, p66: sseVariant{op: PSLLD}},
	ssePsllq:    {none: sseVariant{op: PSLLQ, useMM: true}, p66: sseVariant{op: PSLLQ}},
	ssePmuludq:  {none: sseVariant{op: PMULUDQ, useMM: true}, p66: sseVariant{op: PMULUDQ}},
	ssePmaddwd:  {none: sseVariant{op: PMADDWD, useMM: true}, p66: sseVariant{op: PMADDWD}},
	ssePsadbw:   {none: sseVariant{op: PSADBW, useMM: true}, p66: sseVariant{op: PSADBW}},
	ssePsubb:    {none: sseVariant{op: PSUBB, useMM: true}, p66: sseVariant{op: PSUBB}},
	ssePsubw:    {none: sseVariant{op: PSUBW, useMM: true}, p66: sseVariant{op: PSUBW}},
	ssePsubd:    {none: sseVariant{op: PSUBD, useMM: true}, p66: sseVariant{op: PSUBD}},
	ssePsubq:    {none: sseVariant{op: PSUBQ, useMM: true}, p66: sseVariant{op: PSUBQ}},
	ssePaddb:    {none: sseVariant{op: PADDB, useMM: true}, p66: sseVariant{op: PADDB}},
	ssePaddw:    {none: sseVariant{op: PADDW, useMM: true}, p66: sseVariant{op: PADDW}},
	ssePaddd:    {none: sseVariant{op: PADDD, useMM: true}, p66: sseVariant{op: PADDD}},

	sseCmp: {
		none: sseVariant{op: CMPPS, trailingImm8: true},
		p66:  sseVariant{op: CMPPD, trailingImm8: true},
		pF2:  sseVariant{op: CMPSD, memSize: 8, trailingImm8: true},
		pF3:  sseVariant{op: CMPSS, memSize: 4, trailingImm8: true},
	},
	sseShuf: {
		none: sseVariant{op: SHUFPS, trailingImm8: true},
		p66:  sseVariant{op: SHUFPD, trailingImm8: true},
	},

	// 0F 38 (SSSE3/SSE4.1 integer ops).
	ssePshufb:     {none: sseVariant{op: PSHUFB, useMM: true}, p66: sseVariant{op: PSHUFB}},
	ssePhaddw:     {none: sseVariant{op: PHADDW, useMM: true}, p66: sseVariant{op: PHADDW}},
	ssePhaddd:     {none: sseVariant{op: PHADDD, useMM: true}, p66: sseVariant{op: PHADDD}},
	ssePhaddsw:    {none: sseVariant{op: PHADDSW, useMM: true}, p66: sseVariant{op: PHADDSW}},
	ssePmaddubsw:  {none: sseVariant{op: PMADDUBSW, useMM: true}, p66: sseVariant{op: PMADDUBSW}},
	ssePhsubw:     {none: sseVariant{op: PHSUBW, useMM: true}, p66: sseVariant{op: PHSUBW}},
	ssePhsubd:     {none: sseVariant{op: PHSUBD, useMM: true}, p66: sseVariant{op: PHSUBD}},
	ssePhsubsw:    {none: sseVariant{op: PHSUBSW, useMM: true}, p66: sseVariant{op: PHSUBSW}},
	ssePsignb:     {none: sseVariant{op: PSIGNB, useMM: true}, p66: sseVariant{op: PSIGNB}},
	ssePsignw:     {none: sseVariant{op: PSIGNW, useMM: true}, p66: sseVariant{op: PSIGNW}},
	ssePsignd:     {none: sseVariant{op: PSIGND, useMM: true}, p66: sseVariant{op: PSIGND}},
	ssePmulhrsw:   {none: sseVariant{op: PMULHRSW, useMM: true}, p66: sseVariant{op: PMULHRSW}},
	ssePabsb:      {none: sseVariant{op: PABSB, useMM: true}, p66: sseVariant{op: PABSB}},
	ssePabsw:      {none: sseVariant{op: PABSW, useMM: true}, p66: sseVariant{op: PABSW}},
	ssePabsd:      {none: sseVariant{op: PABSD, useMM: true}, p66: sseVariant{op: PABSD}},
	// SSE4.1, 128-bit only.
	ssePcmpeqq: {p66: sseVariant{op: PCMPEQQ}},
	ssePcmpgtq: {p66: sseVariant{op: PCMPGTQ}},
	ssePminsb:  {p66: sseVariant{op: PMINSB}},
	ssePminuw:  {p66: sseVariant{op: PMINUW}},
	ssePmaxsb:  {p66: sseVariant{op: PMAXSB}},
	ssePmaxuw:  {p66: sseVariant{op: PMAXUW}},

	// 0F 3A (SSE4.1 immediate forms), all 128-bit only apart from PALIGNR.
	sseRoundps: {p66: sseVariant{op: ROUNDPS, trailingImm8: true}},
	sseRoundpd: {p66: sseVariant{op: ROUNDPD, trailingImm8: true}},
	sseRoundss: {p66: sseVariant{op: ROUNDSS, memSize: 4, trailingImm8: true}},
	sseRoundsd: {p66: sseVariant{op: ROUNDSD, memSize: 8, trailingImm8: true}},
	sseBlendps: {p66: sseVariant{op: BLENDPS, trailingImm8: true}},
	sseBlendpd: {p66: sseVariant{op: BLENDPD, trailingImm8: true}},
	ssePblendw: {p66: sseVariant{op: PBLENDW, trailingImm8: true}},
	ssePalignr: {
		none: sseVariant{op: PALIGNR, useMM: true, trailingImm8: true},
		p66:  sseVariant{op: PALIGNR, trailingImm8: true},
	},
	ssePcmpistri: {p66: sseVariant{op: PCMPISTRI, trailingImm8: true}},
}
