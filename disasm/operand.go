package disasm

// OperandKind partitions an Operand into the four cases spec.md §3 defines.
// Concrete register kinds (KindRegister's companion, RegisterKind) are
// folded into the Operand.Reg field rather than one kind-per-register,
// mirroring the teacher's OperandType.Identifier/Type split in
// architecture/x86_64/operands.go, adapted so the tag carries the exact
// register.
type OperandKind int

const (
	// KindNone — empty slot, other fields undefined.
	KindNone OperandKind = iota
	// KindImmediate — a signed integer value in Operand.Immediate.
	KindImmediate
	// KindMemory — an effective address, see Operand.Components/Scale/Immediate.
	KindMemory
	// KindRegister — Operand.Reg names the exact register.
	KindRegister
)

// Segment identifies a segment-override register, or DEFAULT meaning "use
// this operand's natural default segment" (spec.md §3).
type Segment int

const (
	SegDefault Segment = iota
	SegES
	SegCS
	SegSS
	SegDS
	SegFS
	SegGS
)

// String renders the segment prefix as used by the formatter (empty for
// SegDefault, the caller decides whether the natural default still prints).
func (s Segment) String() string {
	switch s {
	case SegES:
		return "es"
	case SegCS:
		return "cs"
	case SegSS:
		return "ss"
	case SegDS:
		return "ds"
	case SegFS:
		return "fs"
	case SegGS:
		return "gs"
	default:
		return ""
	}
}

// Operand is a tagged operand slot (spec.md §3). For KindMemory, the
// effective address is components[0] + components[1]*scale + immediate;
// any component may be KindNone (read as zero).
type Operand struct {
	Kind       OperandKind
	Size       int // byte width; for KindRegister this is redundant with Reg but kept for uniformity
	Reg        RegisterKind
	Immediate  int64
	Components [2]Operand // memory base/index sub-operands; Kind is KindRegister or KindNone
	Scale      byte        // 1, 2, 4 or 8 — only meaningful when Components[1].Kind == KindRegister
	Segment    Segment
}

// regOperand builds a KindRegister operand.
func regOperand(reg RegisterKind, size int) Operand {
	return Operand{Kind: KindRegister, Reg: reg, Size: size}
}

// immOperand builds a KindImmediate operand.
func immOperand(value int64, size int) Operand {
	return Operand{Kind: KindImmediate, Immediate: value, Size: size}
}

// IsMemory reports whether the operand occupies memory.
func (o Operand) IsMemory() bool {
	return o.Kind == KindMemory
}

// IsRegister reports whether the operand names a register.
func (o Operand) IsRegister() bool {
	return o.Kind == KindRegister
}
