package disasm

// fpuMemTable[escape][regField] is the operation for the D8-DF escape's
// memory-operand form, keyed by the modRM /reg field (escape 0 is D8, ...
// escape 7 is DF). fpuMemSize carries the memory operand's width in bytes.
var fpuMemTable = [8][8]Operation{
	0: {FADD, FMUL, FCOM, FCOMP, FSUB, FSUBR, FDIV, FDIVR},             // D8, m32real
	1: {FLD, INVALID, FST, FSTP, FLDENV, FLDCW, FSTENV, FSTCW},         // D9
	2: {FIADD, FIMUL, FICOM, FICOMP, FISUB, FISUBR, FIDIV, FIDIVR},     // DA, m32int
	3: {FILD, FISTTP, FIST, FISTP, INVALID, FLD, INVALID, FSTP},        // DB, m32int / m80real (4=reserved /5 m80real /7 m80real)
	4: {FADD, FMUL, FCOM, FCOMP, FSUB, FSUBR, FDIV, FDIVR},             // DC, m64real
	5: {FLD, FISTTP, FST, FSTP, FRSTOR, INVALID, FSAVE, FNSTSW},        // DD
	6: {FIADD, FIMUL, FICOM, FICOMP, FISUB, FISUBR, FIDIV, FIDIVR},     // DE, m16int
	7: {FILD, FISTTP, FIST, FISTP, FBLD, FILD, FBSTP, FISTP},           // DF, m16int / m80dec / m64int
}

var fpuMemSize = [8][8]int{
	0: {4, 4, 4, 4, 4, 4, 4, 4},
	1: {4, 0, 4, 4, 0, 2, 0, 2},
	2: {4, 4, 4, 4, 4, 4, 4, 4},
	3: {4, 4, 4, 4, 0, 10, 0, 10},
	4: {8, 8, 8, 8, 8, 8, 8, 8},
	5: {8, 8, 8, 8, 0, 0, 0, 2},
	6: {2, 2, 2, 2, 2, 2, 2, 2},
	7: {2, 2, 2, 2, 10, 8, 10, 8},
}

// fpuRegTable[escape][regField] is the ST(0)/ST(rm) register-form
// operation. A zero (INVALID) entry means that (escape, regField)
// combination is either reserved or resolved by fpuNullaryTable instead,
// since several register-form rows are genuinely nullary control
// instructions keyed by the full second opcode byte, not just /reg.
var fpuRegTable = [8][8]Operation{
	0: {FADD, FMUL, FCOM, FCOMP, FSUB, FSUBR, FDIV, FDIVR},
	1: {FLD, FXCH, INVALID, INVALID, INVALID, INVALID, INVALID, INVALID},
	2: {FCMOVB, FCMOVE, FCMOVBE, FCMOVU, INVALID, INVALID, INVALID, INVALID},
	3: {FCMOVNB, FCMOVNE, FCMOVNBE, FCMOVNU, INVALID, FUCOMI, FCOMI, INVALID},
	4: {FADD, FMUL, FCOM, FCOMP, FSUB, FSUBR, FDIV, FDIVR},
	5: {FFREE, INVALID, FST, FSTP, FUCOM, FUCOMP, INVALID, INVALID},
	6: {FADDP, FMULP, INVALID, INVALID, FSUBRP, FSUBP, FDIVRP, FDIVP},
	7: {INVALID, INVALID, INVALID, INVALID, INVALID, FUCOMIP, FCOMIP, INVALID},
}

// fpuNullaryKey identifies one exact mod==3 second opcode byte within one
// D8-DF escape: the nullary x87 control instructions (FCHS, FLD1, FNOP,
// ...) are selected by the full byte, not by /reg alone.
type fpuNullaryKey struct {
	escape int
	modrm  byte
}

var fpuNullaryTable = map[fpuNullaryKey]Operation{
	{1, 0xD0}: FNOP,
	{1, 0xE0}: FCHS,
	{1, 0xE1}: FABS,
	{1, 0xE4}: FTST,
	{1, 0xE5}: FXAM,
	{1, 0xE8}: FLD1,
	{1, 0xE9}: FLDL2T,
	{1, 0xEA}: FLDL2E,
	{1, 0xEB}: FLDPI,
	{1, 0xEC}: FLDLG2,
	{1, 0xED}: FLDLN2,
	{1, 0xEE}: FLDZ,
	{1, 0xF0}: F2XM1,
	{1, 0xF1}: FYL2X,
	{1, 0xF2}: FPTAN,
	{1, 0xF3}: FPATAN,
	{1, 0xF4}: FXTRACT,
	{1, 0xF5}: FPREM1,
	{1, 0xF6}: FDECSTP,
	{1, 0xF7}: FINCSTP,
	{1, 0xF8}: FPREM,
	{1, 0xF9}: FYL2XP1,
	{1, 0xFA}: FSQRT,
	{1, 0xFB}: FSINCOS,
	{1, 0xFC}: FRNDINT,
	{1, 0xFD}: FSCALE,
	{1, 0xFE}: FSIN,
	{1, 0xFF}: FCOS,

	{2, 0xE9}: FUCOMPP,

	{3, 0xE2}: FCLEX,
	{3, 0xE3}: FINIT,

	{6, 0xD9}: FCOMPP,

	{7, 0xE0}: FNSTSW,
}
