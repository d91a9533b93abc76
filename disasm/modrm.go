package disasm

// modRM16Entry is one row of the 16-bit addressing table keyed by the rm
// field (spec.md §4.4): the two base/index registers (either may be
// RegNone) and the natural default segment.
type modRM16Entry struct {
	base, index RegisterKind
	defaultSeg  Segment
}

// modRM16Table is the 8-entry (one per rm value; rm==6/mod==0 is handled
// specially) 16-bit addressing table.
var modRM16Table = [8]modRM16Entry{
	{RegBX, RegSI, SegDefault},
	{RegBX, RegDI, SegDefault},
	{RegBP, RegSI, SegSS},
	{RegBP, RegDI, SegSS},
	{RegSI, RegNone, SegDefault},
	{RegDI, RegNone, SegDefault},
	{RegBP, RegNone, SegSS},
	{RegBX, RegNone, SegDefault},
}

// readModRMByte reads the modRM byte and returns its three fields.
func (st *DecodeState) readModRMByte() (mod, regField, rm byte) {
	b := st.cur.read8()
	st.checkTruncation()
	return b >> 6, (b >> 3) & 0x7, b & 0x7
}

// decodeRM decodes the r/m side of a modRM byte into an Operand of the
// given size, returning the raw regField (3 bits, NOT REX-extended — the
// caller extends it with REX.R when building the reg-side operand) for use
// by ordinary encodings and group/FPU encodings that need the /reg value
// directly, and a ripRel flag that is true exactly when the decoded memory
// operand is RIP-relative and still needs its displacement fixed up once
// the instruction's final length is known (see setRipRelFixup, used by
// callers in the decoders*.go files once they know which operand slot this
// operand lands in).
func (st *DecodeState) decodeRM(size int, noSize bool) (Operand, byte, bool) {
	mod, regField, rm := st.readModRMByte()
	if st.invalid {
		return Operand{}, regField, false
	}

	if st.addrSize == 2 {
		return st.decodeRM16(mod, rm, size), regField, false
	}
	op, ripRel := st.decodeRM3264(mod, rm, size, noSize)
	return op, regField, ripRel
}

func (st *DecodeState) decodeRM16(mod, rm byte, size int) Operand {
	if mod == 3 {
		reg := regByEncoding(size, rm, false)
		return regOperand(reg, size)
	}

	entry := modRM16Table[rm]
	mem := Operand{Kind: KindMemory, Size: size, Segment: entry.defaultSeg}
	if entry.base != RegNone {
		mem.Components[0] = regOperand(entry.base, 2)
	}
	if entry.index != RegNone {
		mem.Components[1] = regOperand(entry.index, 2)
		mem.Scale = 1
	}

	switch {
	case mod == 0 && rm == 6:
		// Pure disp16, no base/index.
		mem.Components[0] = Operand{}
		mem.Components[1] = Operand{}
		mem.Immediate = int64(st.cur.read16())
		st.checkTruncation()
	case mod == 1:
		mem.Immediate = int64(st.cur.readI8())
		st.checkTruncation()
	case mod == 2:
		mem.Immediate = int64(st.cur.readI16())
		st.checkTruncation()
	}

	if mem.Components[0].Kind == KindNone && mem.Components[1].Kind == KindNone {
		// A pure absolute: the invariant in spec.md §4.4 masks the
		// immediate to 16 bits.
		mem.Immediate &= 0xFFFF
	}

	return mem
}

func (st *DecodeState) decodeRM3264(mod, rm byte, size int, noSize bool) (Operand, bool) {
	rmExt := rm | (b2u8(st.rexRMB) << 3)

	if mod == 3 {
		reg := regByEncoding(size, rmExt, st.hasREX())
		return regOperand(reg, size), false
	}

	mem := Operand{Kind: KindMemory, Size: size, Segment: SegDefault}
	if noSize {
		mem.Size = 0
	}

	if rm == 4 {
		st.decodeSIB(mod, &mem)
	} else if rm == 5 && mod == 0 {
		// disp32, no base. In 64-bit mode this is RIP-relative.
		disp := int64(st.cur.readI32())
		st.checkTruncation()
		mem.Immediate = disp
		return mem, st.using64
	} else {
		baseKind := regByEncoding(8, rmExt, true)
		if !st.using64 {
			baseKind = regByEncoding(4, rmExt, true)
		}
		mem.Components[0] = regOperand(baseKind, ptrSize(st.using64))
		if isBPSP(rmExt) {
			mem.Segment = SegSS
		}
	}

	switch mod {
	case 1:
		mem.Immediate = int64(st.cur.readI8())
		st.checkTruncation()
	case 2:
		mem.Immediate = int64(st.cur.readI32())
		st.checkTruncation()
	}

	return mem, false
}

// decodeSIB reads the SIB byte following rm==4 and fills base/index/scale
// into mem, handling the mod==0,base==5 "no base, disp32 follows" special
// case (spec.md §4.4).
func (st *DecodeState) decodeSIB(mod byte, mem *Operand) {
	sib := st.cur.read8()
	st.checkTruncation()
	if st.invalid {
		return
	}

	scale := byte(1) << (sib >> 6)
	index := (sib >> 3) & 0x7
	base := sib & 0x7

	indexExt := index | (b2u8(st.rexRMX) << 3)
	baseExt := base | (b2u8(st.rexRMB) << 3)

	ptrSz := ptrSize(st.using64)

	if indexExt != 4 {
		mem.Components[1] = regOperand(regByEncoding(ptrSz, indexExt, true), ptrSz)
		mem.Scale = scale
	}

	if mod == 0 && base == 5 {
		disp := int64(st.cur.readI32())
		st.checkTruncation()
		mem.Immediate = disp
		mem.Segment = SegDefault
		return
	}

	mem.Components[0] = regOperand(regByEncoding(ptrSz, baseExt, true), ptrSz)
	if isBPSP(baseExt) {
		mem.Segment = SegSS
	} else {
		mem.Segment = SegDefault
	}
}

// isBPSP reports whether the (REX-extended) register encoding names
// (R)BP or (R)SP — the default-segment-is-SS case.
func isBPSP(encoding byte) bool {
	return encoding == 4 || encoding == 5
}

// ptrSize is the address-computation register width: 4 bytes outside
// 64-bit mode, 8 bytes inside it (REX/SIB bases and indices are always
// full address-size registers regardless of operand size).
func ptrSize(using64 bool) int {
	if using64 {
		return 8
	}
	return 4
}

func b2u8(b bool) byte {
	if b {
		return 1
	}
	return 0
}
