package disasm

// tableTwoByte is the 0F xx opcode map. As with tablePrimary, an unlisted
// index defaults to INVALID; the 0F 38/0F 3A three-byte escapes are routed
// through table0F38/table0F3A instead of living in this array.
var tableTwoByte = [256]opcodeEntry{
	0x00: eg(INVALID, famGroup0F00, 0, 0),
	0x01: eg(INVALID, famGroup0F01, 0, 0),
	0x02: eg(LAR, famRegRM, 0, 2),
	0x03: eg(LSL, famRegRM, 0, 2),
	0x05: e(SYSCALL, famNullary, 0),
	0x06: e(CLTS, famNullary, 0),
	0x07: e(SYSRET, famNullary, 0),
	0x08: e(INVD, famNullary, 0),
	0x09: e(WBINVD, famNullary, 0),
	0x0B: e(UD2, famNullary, 0),
	0x0F: e(INVALID, fam3DNow, 0),

	0x10: eg(INVALID, famSSE, 0, sseMovUPS),
	0x11: eg(INVALID, famSSE, attrFlip, sseMovUPS),
	0x12: eg(INVALID, famSSE, 0, sseMovLPS),
	0x13: eg(INVALID, famSSE, attrFlip, sseMovLPS),
	0x14: eg(INVALID, famSSE, 0, sseUnpcklPS),
	0x15: eg(INVALID, famSSE, 0, sseUnpckhPS),
	0x16: eg(INVALID, famSSE, 0, sseMovHPS),
	0x17: eg(INVALID, famSSE, attrFlip, sseMovHPS),

	0x1F: e(NOP, famUnaryRM, 0), // multi-byte NOP

	0x20: eg(MOV_CR, famMovCRDR, 0, 0),
	0x21: eg(MOV_DR, famMovCRDR, 0, 1),
	0x22: eg(MOV_CR, famMovCRDR, attrFlip, 0),
	0x23: eg(MOV_DR, famMovCRDR, attrFlip, 1),

	0x28: eg(INVALID, famSSE, 0, sseMovAPS),
	0x29: eg(INVALID, famSSE, attrFlip, sseMovAPS),
	0x2E: eg(INVALID, famSSE, 0, sseComiss),
	0x2F: eg(INVALID, famSSE, 0, sseUcomiss),

	0x31: e(RDTSC, famNullary, 0),
	0x34: e(SYSENTER, famNullary, 0),
	0x35: e(SYSEXIT, famNullary, 0),

	0x40: eg(CMOVO, famRegRM, 0, 0),
	0x41: eg(CMOVNO, famRegRM, 0, 0),
	0x42: eg(CMOVB, famRegRM, 0, 0),
	0x43: eg(CMOVAE, famRegRM, 0, 0),
	0x44: eg(CMOVE, famRegRM, 0, 0),
	0x45: eg(CMOVNE, famRegRM, 0, 0),
	0x46: eg(CMOVBE, famRegRM, 0, 0),
	0x47: eg(CMOVA, famRegRM, 0, 0),
	0x48: eg(CMOVS, famRegRM, 0, 0),
	0x49: eg(CMOVNS, famRegRM, 0, 0),
	0x4A: eg(CMOVP, famRegRM, 0, 0),
	0x4B: eg(CMOVNP, famRegRM, 0, 0),
	0x4C: eg(CMOVL, famRegRM, 0, 0),
	0x4D: eg(CMOVGE, famRegRM, 0, 0),
	0x4E: eg(CMOVLE, famRegRM, 0, 0),
	0x4F: eg(CMOVG, famRegRM, 0, 0),

	0x51: eg(INVALID, famSSE, 0, sseSqrt),
	0x54: eg(INVALID, famSSE, 0, sseAnd),
	0x55: eg(INVALID, famSSE, 0, sseAndn),
	0x56: eg(INVALID, famSSE, 0, sseOr),
	0x57: eg(INVALID, famSSE, 0, sseXor),
	0x58: eg(INVALID, famSSE, 0, sseAdd),
	0x59: eg(INVALID, famSSE, 0, sseMul),
	0x5A: eg(INVALID, famSSE, 0, sseCvtFloat),
	0x5C: eg(INVALID, famSSE, 0, sseSub),
	0x5D: eg(INVALID, famSSE, 0, sseMin),
	0x5E: eg(INVALID, famSSE, 0, sseDiv),
	0x5F: eg(INVALID, famSSE, 0, sseMax),

	0x60: eg(INVALID, famSSE, 0, ssePunpcklbw),
	0x61: eg(INVALID, famSSE, 0, ssePunpcklwd),
	0x62: eg(INVALID, famSSE, 0, ssePunpckldq),
	0x63: eg(INVALID, famSSE, 0, ssePacksswb),
	0x64: eg(INVALID, famSSE, 0, ssePcmpgtb),
	0x65: eg(INVALID, famSSE, 0, ssePcmpgtw),
	0x66: eg(INVALID, famSSE, 0, ssePcmpgtd),
	0x67: eg(INVALID, famSSE, 0, ssePackuswb),
	0x68: eg(INVALID, famSSE, 0, ssePunpckhbw),
	0x69: eg(INVALID, famSSE, 0, ssePunpckhwd),
	0x6A: eg(INVALID, famSSE, 0, ssePunpckhdq),
	0x6B: eg(INVALID, famSSE, 0, ssePackssdw),
	0x6C: eg(INVALID, famSSE, 0, ssePunpcklqdq),
	0x6D: eg(INVALID, famSSE, 0, ssePunpckhqdq),
	0x6E: eg(INVALID, famSSE, 0, sseMovdq32),
	0x6F: eg(INVALID, famSSE, 0, sseMovdqa),

	0x70: eg(INVALID, famSSE, attrShortImm, ssePshuf),
	0x74: eg(INVALID, famSSE, 0, ssePcmpeqb),
	0x75: eg(INVALID, famSSE, 0, ssePcmpeqw),
	0x76: eg(INVALID, famSSE, 0, ssePcmpeqd),

	0x7E: eg(INVALID, famSSE, attrFlip, sseMovdq32),
	0x7F: eg(INVALID, famSSE, attrFlip, sseMovdqa),

	0x80: eg(JO, famRelImm, 0, 0),
	0x81: eg(JNO, famRelImm, 0, 0),
	0x82: eg(JB, famRelImm, 0, 0),
	0x83: eg(JAE, famRelImm, 0, 0),
	0x84: eg(JE, famRelImm, 0, 0),
	0x85: eg(JNE, famRelImm, 0, 0),
	0x86: eg(JBE, famRelImm, 0, 0),
	0x87: eg(JA, famRelImm, 0, 0),
	0x88: eg(JS, famRelImm, 0, 0),
	0x89: eg(JNS, famRelImm, 0, 0),
	0x8A: eg(JP, famRelImm, 0, 0),
	0x8B: eg(JNP, famRelImm, 0, 0),
	0x8C: eg(JL, famRelImm, 0, 0),
	0x8D: eg(JGE, famRelImm, 0, 0),
	0x8E: eg(JLE, famRelImm, 0, 0),
	0x8F: eg(JG, famRelImm, 0, 0),

	0x90: eg(SETO, famRegRM, attrByte, 0),
	0x91: eg(SETNO, famRegRM, attrByte, 0),
	0x92: eg(SETB, famRegRM, attrByte, 0),
	0x93: eg(SETAE, famRegRM, attrByte, 0),
	0x94: eg(SETE, famRegRM, attrByte, 0),
	0x95: eg(SETNE, famRegRM, attrByte, 0),
	0x96: eg(SETBE, famRegRM, attrByte, 0),
	0x97: eg(SETA, famRegRM, attrByte, 0),
	0x98: eg(SETS, famRegRM, attrByte, 0),
	0x99: eg(SETNS, famRegRM, attrByte, 0),
	0x9A: eg(SETP, famRegRM, attrByte, 0),
	0x9B: eg(SETNP, famRegRM, attrByte, 0),
	0x9C: eg(SETL, famRegRM, attrByte, 0),
	0x9D: eg(SETGE, famRegRM, attrByte, 0),
	0x9E: eg(SETLE, famRegRM, attrByte, 0),
	0x9F: eg(SETG, famRegRM, attrByte, 0),

	0xA0: eg(PUSH, famPushPopSeg, attrDefault64, int(SegFS)),
	0xA1: eg(POP, famPushPopSeg, attrDefault64, int(SegFS)),
	0xA2: e(CPUID, famNullary, 0),
	0xA3: e(BT, famRegRM, attrFlip),
	0xA4: e(SHLD, famShiftDouble, attrShortImm),
	0xA5: e(SHLD, famShiftDouble, 0), // count = CL
	0xA8: eg(PUSH, famPushPopSeg, attrDefault64, int(SegGS)),
	0xA9: eg(POP, famPushPopSeg, attrDefault64, int(SegGS)),
	0xAB: e(BTS, famRegRM, attrFlip|attrLockable),
	0xAC: e(SHRD, famShiftDouble, attrShortImm),
	0xAD: e(SHRD, famShiftDouble, 0), // count = CL
	0xAE: eg(INVALID, famGroup0F01, 0, 1), // FXSAVE/FXRSTOR/LDMXCSR/STMXCSR/.../SFENCE, mem+mod3 sub-rows
	0xAF: e(IMUL, famRegRM, 0),

	0xB0: e(CMPXCHG, famRegRM, attrByte|attrFlip|attrLockable),
	0xB1: e(CMPXCHG, famRegRM, attrFlip|attrLockable),
	0xB3: e(BTR, famRegRM, attrFlip|attrLockable),
	0xB6: eg(MOVZX, famRegRM, 0, 1),
	0xB7: eg(MOVZX, famRegRM, 0, 2),
	0xBA: eg(INVALID, famGroup, attrShortImm, groupBT),
	0xBB: e(BTC, famRegRM, attrFlip|attrLockable),
	0xBC: e(BSF, famRegRM, 0),
	0xBD: e(BSR, famRegRM, 0),
	0xBE: eg(MOVSX, famRegRM, 0, 1),
	0xBF: eg(MOVSX, famRegRM, 0, 2),

	0xC0: e(XADD, famRegRM, attrByte|attrFlip|attrLockable),
	0xC1: e(XADD, famRegRM, attrFlip|attrLockable),
	0xC2: eg(INVALID, famSSE, attrShortImm, sseCmp),
	0xC6: eg(INVALID, famSSE, attrShortImm, sseShuf),
	0xC7: eg(INVALID, famGroup0F01, attrIncFor64, 2), // CMPXCHG8B/CMPXCHG16B, /1
	0xC8: eg(BSWAP, famOpReg, 0, 0),
	0xC9: eg(BSWAP, famOpReg, 0, 1),
	0xCA: eg(BSWAP, famOpReg, 0, 2),
	0xCB: eg(BSWAP, famOpReg, 0, 3),
	0xCC: eg(BSWAP, famOpReg, 0, 4),
	0xCD: eg(BSWAP, famOpReg, 0, 5),
	0xCE: eg(BSWAP, famOpReg, 0, 6),
	0xCF: eg(BSWAP, famOpReg, 0, 7),

	0xD1: eg(INVALID, famSSE, 0, ssePsrlw),
	0xD2: eg(INVALID, famSSE, 0, ssePsrld),
	0xD3: eg(INVALID, famSSE, 0, ssePsrlq),
	0xD4: eg(INVALID, famSSE, 0, ssePaddq),
	0xD5: eg(INVALID, famSSE, 0, ssePmullw),
	0xD8: eg(INVALID, famSSE, 0, ssePsubusb),
	0xD9: eg(INVALID, famSSE, 0, ssePsubusw),
	0xDA: eg(INVALID, famSSE, 0, ssePminub),
	0xDB: eg(INVALID, famSSE, 0, ssePand),
	0xDC: eg(INVALID, famSSE, 0, ssePaddusb),
	0xDD: eg(INVALID, famSSE, 0, ssePaddusw),
	0xDE: eg(INVALID, famSSE, 0, ssePmaxub),
	0xDF: eg(INVALID, famSSE, 0, ssePandn),

	0xE0: eg(INVALID, famSSE, 0, ssePavgb),
	0xE1: eg(INVALID, famSSE, 0, ssePsraw),
	0xE2: eg(INVALID, famSSE, 0, ssePsrad),
	0xE3: eg(INVALID, famSSE, 0, ssePavgw),
	0xE4: eg(INVALID, famSSE, 0, ssePmulhuw),
	0xE5: eg(INVALID, famSSE, 0, ssePmulhw),
	0xE8: eg(INVALID, famSSE, 0, ssePsubsb),
	0xE9: eg(INVALID, famSSE, 0, ssePsubsw),
	0xEA: eg(INVALID, famSSE, 0, ssePminsw),
	0xEB: eg(INVALID, famSSE, 0, ssePor),
	0xEC: eg(INVALID, famSSE, 0, ssePaddsb),
	0xED: eg(INVALID, famSSE, 0, ssePaddsw),
	0xEE: eg(INVALID, famSSE, 0, ssePmaxsw),
	0xEF: eg(INVALID, famSSE, 0, ssePxor),

	0xF1: eg(INVALID, famSSE, 0, ssePsllw),
	0xF2: eg(INVALID, famSSE, 0, ssePslld),
	0xF3: eg(INVALID, famSSE, 0, ssePsllq),
	0xF4: eg(INVALID, famSSE, 0, ssePmuludq),
	0xF5: eg(INVALID, famSSE, 0, ssePmaddwd),
	0xF6: eg(INVALID, famSSE, 0, ssePsadbw),
	0xF8: eg(INVALID, famSSE, 0, ssePsubb),
	0xF9: eg(INVALID, famSSE, 0, ssePsubw),
	0xFA: eg(INVALID, famSSE, 0, ssePsubd),
	0xFB: eg(INVALID, famSSE, 0, ssePsubq),
	0xFC: eg(INVALID, famSSE, 0, ssePaddb),
	0xFD: eg(INVALID, famSSE, 0, ssePaddw),
	0xFE: eg(INVALID, famSSE, 0, ssePaddd),
}

const groupBT = 2

func init() {
	// group BT (0F BA /4-/7): BT/BTS/BTR/BTC r/m, imm8.
	groupTables = append(groupTables, [8]groupEntry{
		{op: INVALID}, {op: INVALID}, {op: INVALID}, {op: INVALID},
		{op: BT}, {op: BTS}, {op: BTR}, {op: BTC},
	})
}

// table0F38 is the sparse 0F 38 three-byte opcode map (SSSE3/SSE4.1
// integer instructions). Each row wraps an SSE-style prefix-class dispatch
// (only the none/66 classes are meaningful for this escape).
var table0F38 = map[byte]opcodeEntry{
	0x00: eg(INVALID, famSSE, 0, ssePshufb),
	0x01: eg(INVALID, famSSE, 0, ssePhaddw),
	0x02: eg(INVALID, famSSE, 0, ssePhaddd),
	0x03: eg(INVALID, famSSE, 0, ssePhaddsw),
	0x04: eg(INVALID, famSSE, 0, ssePmaddubsw),
	0x05: eg(INVALID, famSSE, 0, ssePhsubw),
	0x06: eg(INVALID, famSSE, 0, ssePhsubd),
	0x07: eg(INVALID, famSSE, 0, ssePhsubsw),
	0x08: eg(INVALID, famSSE, 0, ssePsignb),
	0x09: eg(INVALID, famSSE, 0, ssePsignw),
	0x0A: eg(INVALID, famSSE, 0, ssePsignd),
	0x0B: eg(INVALID, famSSE, 0, ssePmulhrsw),
	0x1C: eg(INVALID, famSSE, 0, ssePabsb),
	0x1D: eg(INVALID, famSSE, 0, ssePabsw),
	0x1E: eg(INVALID, famSSE, 0, ssePabsd),
	0x29: eg(INVALID, famSSE, 0, ssePcmpeqq),
	0x37: eg(INVALID, famSSE, 0, ssePcmpgtq),
	0x38: eg(INVALID, famSSE, 0, ssePminsb),
	0x3A: eg(INVALID, famSSE, 0, ssePminuw),
	0x3C: eg(INVALID, famSSE, 0, ssePmaxsb),
	0x3E: eg(INVALID, famSSE, 0, ssePmaxuw),
	0xF0: eg(MOVBE, famRegRM, attrFlip, 0),
	0xF1: eg(MOVBE, famRegRM, 0, 0),
}

// table0F3A is the sparse 0F 3A three-byte opcode map (SSE4.1 immediate
// forms); every row reads a trailing imm8.
var table0F3A = map[byte]opcodeEntry{
	0x08: eg(INVALID, famSSE, attrShortImm, sseRoundps),
	0x09: eg(INVALID, famSSE, attrShortImm, sseRoundpd),
	0x0A: eg(INVALID, famSSE, attrShortImm, sseRoundss),
	0x0B: eg(INVALID, famSSE, attrShortImm, sseRoundsd),
	0x0C: eg(INVALID, famSSE, attrShortImm, sseBlendps),
	0x0D: eg(INVALID, famSSE, attrShortImm, sseBlendpd),
	0x0E: eg(INVALID, famSSE, attrShortImm, ssePblendw),
	0x0F: eg(INVALID, famSSE, attrShortImm, ssePalignr),
	0x63: eg(INVALID, famSSE, attrShortImm, ssePcmpistri),
}
