package disasm

// tablePrimary is the single-byte opcode map (spec.md §4). Unlisted indices
// default to the zero opcodeEntry (fam: famInvalid), which dispatch treats
// as INVALID — this covers bytes that never reach the table at all (legacy
// prefixes, consumed by scanPrefixes) and direct far CALL/JMP with a
// segment:offset immediate (0x9A/0xEA), the one deliberate gap left in this
// table (see DESIGN.md: its ptr16:xx operand has no representation in the
// Operand tagging scheme). The segment PUSH/POP pairs (0x06/0x07, 0x0E,
// 0x16/0x17, 0x1E/0x1F), the BCD-adjust opcodes (DAA/DAS/AAA/AAS, 0x27/0x2F/
// 0x37/0x3F), and string I/O (INS/OUTS, 0x6C-0x6F) are wired below.
var tablePrimary = [256]opcodeEntry{
	// ADD/OR/ADC/SBB/AND/SUB/XOR/CMP, each an 8-opcode Eb,Gb / Ev,Gv /
	// Gb,Eb / Gv,Ev / AL,ib / eAX,iz run at base 0x00, 0x08, ..., 0x38.
	0x00: e(ADD, famRegRM, attrByte|attrFlip|attrLockable),
	0x01: e(ADD, famRegRM, attrFlip|attrLockable),
	0x02: e(ADD, famRegRM, attrByte),
	0x03: e(ADD, famRegRM, 0),
	0x04: e(ADD, famRMImmAcc, attrByte),
	0x05: e(ADD, famRMImmAcc, 0),
	0x06: eg(PUSH, famPushPopSeg, attrInvalid64, int(SegES)),
	0x07: eg(POP, famPushPopSeg, attrInvalid64, int(SegES)),

	0x08: e(OR, famRegRM, attrByte|attrFlip|attrLockable),
	0x09: e(OR, famRegRM, attrFlip|attrLockable),
	0x0A: e(OR, famRegRM, attrByte),
	0x0B: e(OR, famRegRM, 0),
	0x0C: e(OR, famRMImmAcc, attrByte),
	0x0D: e(OR, famRMImmAcc, 0),
	0x0E: eg(PUSH, famPushPopSeg, attrInvalid64, int(SegCS)),

	0x0F: e(INVALID, famTwoByte, 0),

	0x10: e(ADC, famRegRM, attrByte|attrFlip|attrLockable),
	0x11: e(ADC, famRegRM, attrFlip|attrLockable),
	0x12: e(ADC, famRegRM, attrByte),
	0x13: e(ADC, famRegRM, 0),
	0x14: e(ADC, famRMImmAcc, attrByte),
	0x15: e(ADC, famRMImmAcc, 0),
	0x16: eg(PUSH, famPushPopSeg, attrInvalid64, int(SegSS)),
	0x17: eg(POP, famPushPopSeg, attrInvalid64, int(SegSS)),

	0x18: e(SBB, famRegRM, attrByte|attrFlip|attrLockable),
	0x19: e(SBB, famRegRM, attrFlip|attrLockable),
	0x1A: e(SBB, famRegRM, attrByte),
	0x1B: e(SBB, famRegRM, 0),
	0x1C: e(SBB, famRMImmAcc, attrByte),
	0x1D: e(SBB, famRMImmAcc, 0),
	0x1E: eg(PUSH, famPushPopSeg, attrInvalid64, int(SegDS)),
	0x1F: eg(POP, famPushPopSeg, attrInvalid64, int(SegDS)),

	0x20: e(AND, famRegRM, attrByte|attrFlip|attrLockable),
	0x21: e(AND, famRegRM, attrFlip|attrLockable),
	0x22: e(AND, famRegRM, attrByte),
	0x23: e(AND, famRegRM, 0),
	0x24: e(AND, famRMImmAcc, attrByte),
	0x25: e(AND, famRMImmAcc, 0),
	0x27: e(DAA, famNullary, attrInvalid64),

	0x28: e(SUB, famRegRM, attrByte|attrFlip|attrLockable),
	0x29: e(SUB, famRegRM, attrFlip|attrLockable),
	0x2A: e(SUB, famRegRM, attrByte),
	0x2B: e(SUB, famRegRM, 0),
	0x2C: e(SUB, famRMImmAcc, attrByte),
	0x2D: e(SUB, famRMImmAcc, 0),
	0x2F: e(DAS, famNullary, attrInvalid64),

	0x30: e(XOR, famRegRM, attrByte|attrFlip|attrLockable),
	0x31: e(XOR, famRegRM, attrFlip|attrLockable),
	0x32: e(XOR, famRegRM, attrByte),
	0x33: e(XOR, famRegRM, 0),
	0x34: e(XOR, famRMImmAcc, attrByte),
	0x35: e(XOR, famRMImmAcc, 0),
	0x37: e(AAA, famNullary, attrInvalid64),

	0x38: e(CMP, famRegRM, attrByte|attrFlip),
	0x39: e(CMP, famRegRM, attrFlip),
	0x3A: e(CMP, famRegRM, attrByte),
	0x3B: e(CMP, famRegRM, 0),
	0x3C: e(CMP, famRMImmAcc, attrByte),
	0x3D: e(CMP, famRMImmAcc, 0),
	0x3F: e(AAS, famNullary, attrInvalid64),

	0x50: e(PUSH, famOpReg, attrDefault64),
	0x51: eg(PUSH, famOpReg, attrDefault64, 1),
	0x52: eg(PUSH, famOpReg, attrDefault64, 2),
	0x53: eg(PUSH, famOpReg, attrDefault64, 3),
	0x54: eg(PUSH, famOpReg, attrDefault64, 4),
	0x55: eg(PUSH, famOpReg, attrDefault64, 5),
	0x56: eg(PUSH, famOpReg, attrDefault64, 6),
	0x57: eg(PUSH, famOpReg, attrDefault64, 7),

	0x58: e(POP, famOpReg, attrDefault64),
	0x59: eg(POP, famOpReg, attrDefault64, 1),
	0x5A: eg(POP, famOpReg, attrDefault64, 2),
	0x5B: eg(POP, famOpReg, attrDefault64, 3),
	0x5C: eg(POP, famOpReg, attrDefault64, 4),
	0x5D: eg(POP, famOpReg, attrDefault64, 5),
	0x5E: eg(POP, famOpReg, attrDefault64, 6),
	0x5F: eg(POP, famOpReg, attrDefault64, 7),

	0x60: e(PUSHA, famNullary, attrInvalid64),
	0x61: e(POPA, famNullary, attrInvalid64),
	0x62: e(BOUND, famBound, attrInvalid64),
	0x63: e(ARPL, famArpl, 0),

	0x68: e(PUSH, famPushImm, 0),
	0x69: e(IMUL, famImul3, 0),
	0x6A: e(PUSH, famPushImm, attrShortImm),
	0x6B: e(IMUL, famImul3, attrShortImm),
	0x6C: e(INS, famString, attrByte|attrRep),
	0x6D: e(INS, famString, attrRep),
	0x6E: e(OUTS, famString, attrByte|attrRep),
	0x6F: e(OUTS, famString, attrRep),

	0x70: e(JO, famRelImm, 0),
	0x71: e(JNO, famRelImm, 0),
	0x72: e(JB, famRelImm, 0),
	0x73: e(JAE, famRelImm, 0),
	0x74: e(JE, famRelImm, 0),
	0x75: e(JNE, famRelImm, 0),
	0x76: e(JBE, famRelImm, 0),
	0x77: e(JA, famRelImm, 0),
	0x78: e(JS, famRelImm, 0),
	0x79: e(JNS, famRelImm, 0),
	0x7A: e(JP, famRelImm, 0),
	0x7B: e(JNP, famRelImm, 0),
	0x7C: e(JL, famRelImm, 0),
	0x7D: e(JGE, famRelImm, 0),
	0x7E: e(JLE, famRelImm, 0),
	0x7F: e(JG, famRelImm, 0),

	0x80: eg(INVALID, famGroup, attrByte, groupALU),
	0x81: eg(INVALID, famGroup, 0, groupALU),
	0x82: eg(INVALID, famGroup, attrByte|attrInvalid64, groupALU),
	0x83: eg(INVALID, famGroup, attrShortImm, groupALU),

	0x84: e(TEST, famRegRM, attrByte|attrFlip),
	0x85: e(TEST, famRegRM, attrFlip),
	0x86: e(XCHG, famRegRM, attrByte|attrFlip|attrLockable),
	0x87: e(XCHG, famRegRM, attrFlip|attrLockable),
	0x88: e(MOV, famRegRM, attrByte|attrFlip),
	0x89: e(MOV, famRegRM, attrFlip),
	0x8A: e(MOV, famRegRM, attrByte),
	0x8B: e(MOV, famRegRM, 0),
	0x8C: e(MOV, famRegRM, attrFlip|attrSegReg),
	0x8D: eg(LEA, famRegRM, 0, 0), // rmSize set below via literal field
	0x8E: e(MOV, famRegRM, attrSegReg),
	0x8F: e(POP, famPopRM, attrDefault64),

	0x90: e(NOP, famNullary, 0),
	0x91: eg(XCHG, famOpReg, 0, 1),
	0x92: eg(XCHG, famOpReg, 0, 2),
	0x93: eg(XCHG, famOpReg, 0, 3),
	0x94: eg(XCHG, famOpReg, 0, 4),
	0x95: eg(XCHG, famOpReg, 0, 5),
	0x96: eg(XCHG, famOpReg, 0, 6),
	0x97: eg(XCHG, famOpReg, 0, 7),
	0x98: e(CBW, famNullary, attrOperationOpSize),
	0x99: e(CWD, famNullary, attrOperationOpSize),
	0x9B: e(WAIT, famNullary, 0),
	0x9C: e(PUSHF, famNullary, attrDefault64),
	0x9D: e(POPF, famNullary, attrDefault64),
	0x9E: e(SAHF, famNullary, 0),
	0x9F: e(LAHF, famNullary, 0),

	0xA0: eg(MOV, famMovMoffs, attrByte, 0),
	0xA1: eg(MOV, famMovMoffs, 0, 0),
	0xA2: eg(MOV, famMovMoffs, attrByte, 1),
	0xA3: eg(MOV, famMovMoffs, 0, 1),
	0xA4: e(MOVS, famString, attrByte|attrRep),
	0xA5: e(MOVS, famString, attrRep),
	0xA6: e(CMPS, famString, attrByte|attrRepCond),
	0xA7: e(CMPS, famString, attrRepCond),
	0xA8: e(TEST, famRMImmAcc, attrByte),
	0xA9: e(TEST, famRMImmAcc, 0),
	0xAA: e(STOS, famString, attrByte|attrRep),
	0xAB: e(STOS, famString, attrRep),
	0xAC: e(LODS, famString, attrByte|attrRep),
	0xAD: e(LODS, famString, attrRep),
	0xAE: e(SCAS, famString, attrByte|attrRepCond),
	0xAF: e(SCAS, famString, attrRepCond),

	0xB0: eg(MOV, famOpReg, attrByte, 0),
	0xB1: eg(MOV, famOpReg, attrByte, 1),
	0xB2: eg(MOV, famOpReg, attrByte, 2),
	0xB3: eg(MOV, famOpReg, attrByte, 3),
	0xB4: eg(MOV, famOpReg, attrByte, 4),
	0xB5: eg(MOV, famOpReg, attrByte, 5),
	0xB6: eg(MOV, famOpReg, attrByte, 6),
	0xB7: eg(MOV, famOpReg, attrByte, 7),
	0xB8: eg(MOV, famOpReg, 0, 0),
	0xB9: eg(MOV, famOpReg, 0, 1),
	0xBA: eg(MOV, famOpReg, 0, 2),
	0xBB: eg(MOV, famOpReg, 0, 3),
	0xBC: eg(MOV, famOpReg, 0, 4),
	0xBD: eg(MOV, famOpReg, 0, 5),
	0xBE: eg(MOV, famOpReg, 0, 6),
	0xBF: eg(MOV, famOpReg, 0, 7),

	0xC0: eg(INVALID, famGroup, attrByte|attrShortImm, groupShift),
	0xC1: eg(INVALID, famGroup, attrShortImm, groupShift),
	0xC2: e(RET, famRetImm, 0),
	0xC3: e(RET, famNullary, 0),
	0xC4: e(LES, famRegRM, attrInvalid64),
	0xC5: e(LDS, famRegRM, attrInvalid64),
	0xC6: e(MOV, famRegImm, attrByte),
	0xC7: e(MOV, famRegImm, 0),
	0xC8: e(ENTER, famEnter, 0),
	0xC9: e(LEAVE, famNullary, 0),
	0xCA: e(RETF, famRetImm, 0),
	0xCB: e(RETF, famNullary, 0),
	0xCC: e(INT3, famNullary, 0),
	0xCD: e(INT, famImm8, 0),
	0xCE: e(INTO, famNullary, attrInvalid64),
	0xCF: e(IRET, famNullary, 0),

	0xD0: eg(INVALID, famGroupRMOne, attrByte, groupShift),
	0xD1: eg(INVALID, famGroupRMOne, 0, groupShift),
	0xD2: eg(INVALID, famGroupRMCl, attrByte, groupShift),
	0xD3: eg(INVALID, famGroupRMCl, 0, groupShift),
	0xD4: e(AAM, famImm8, attrInvalid64),
	0xD5: e(AAD, famImm8, attrInvalid64),
	0xD6: e(SALC, famNullary, attrInvalid64),
	0xD7: e(XLAT, famXlat, 0),

	0xD8: eg(INVALID, famFPU, 0, 0),
	0xD9: eg(INVALID, famFPU, 0, 1),
	0xDA: eg(INVALID, famFPU, 0, 2),
	0xDB: eg(INVALID, famFPU, 0, 3),
	0xDC: eg(INVALID, famFPU, 0, 4),
	0xDD: eg(INVALID, famFPU, 0, 5),
	0xDE: eg(INVALID, famFPU, 0, 6),
	0xDF: eg(INVALID, famFPU, 0, 7),

	0xE0: e(LOOPNE, famRelImm, 0),
	0xE1: e(LOOPE, famRelImm, 0),
	0xE2: e(LOOP, famRelImm, 0),
	0xE3: e(JCXZ, famRelImm, 0),
	0xE4: e(IN, famIOImm, attrByte),
	0xE5: e(IN, famIOImm, 0),
	0xE6: e(OUT, famIOImm, attrByte),
	0xE7: e(OUT, famIOImm, 0),
	0xE8: e(CALL, famRelImm, 0),
	0xE9: e(JMP, famRelImm, 0),
	0xEB: e(JMP, famRelImm, 0),
	0xEC: e(IN, famIODX, attrByte),
	0xED: e(IN, famIODX, 0),
	0xEE: e(OUT, famIODX, attrByte),
	0xEF: e(OUT, famIODX, 0),

	0xF1: e(INT1, famNullary, 0),
	0xF4: e(HLT, famNullary, 0),
	0xF5: e(CMC, famNullary, 0),
	0xF6: e(INVALID, famGroupF6F7, attrByte),
	0xF7: e(INVALID, famGroupF6F7, 0),
	0xF8: e(CLC, famNullary, 0),
	0xF9: e(STC, famNullary, 0),
	0xFA: e(CLI, famNullary, 0),
	0xFB: e(STI, famNullary, 0),
	0xFC: e(CLD, famNullary, 0),
	0xFD: e(STD, famNullary, 0),
	0xFE: e(INVALID, famGroupFE, attrByte|attrLockable),
	0xFF: e(INVALID, famGroupFF, attrLockable),
}

func init() {
	// LEA's r/m side performs no memory access (its address is the value,
	// never dereferenced) and JMP/JCXZ/LOOP*'s rel8 forms read a single
	// signed byte rather than the resolved operand size; LES/LDS read a
	// far pointer (register size + 2) from r/m; INC/DEC r (0x40-0x4F) only
	// exist outside 64-bit mode, where those bytes are REX prefixes. Setting
	// these here (rather than inline above) keeps the literal block's
	// columns aligned for the common case.
	lea := tablePrimary[0x8D]
	lea.rmSize = sizeNone
	tablePrimary[0x8D] = lea

	for _, op := range []int{0xC4, 0xC5} {
		entry := tablePrimary[op]
		entry.rmSize = sizeFarPtr
		tablePrimary[op] = entry
	}

	for i := 0; i < 8; i++ {
		tablePrimary[0x40+i] = eg(INC, famOpReg, attrInvalid64, i)
		tablePrimary[0x48+i] = eg(DEC, famOpReg, attrInvalid64, i)
	}

	for _, op := range []int{0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x76, 0x77,
		0x78, 0x79, 0x7A, 0x7B, 0x7C, 0x7D, 0x7E, 0x7F,
		0xE0, 0xE1, 0xE2, 0xE3, 0xEB} {
		entry := tablePrimary[op]
		entry.rmSize = sizeNone
		tablePrimary[op] = entry
	}
}
