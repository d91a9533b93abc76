package disasm

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Format renders a decoded instruction as text, per spec.md §6's
// mini-language: %a is the address, %b the raw bytes, %i the rep/lock
// prefixes plus mnemonic, %o the operands, and any other character is
// copied through literally. input must be the same byte slice the
// instruction was decoded from — Format reads its first in.Length bytes
// for %b rather than storing a copy on Instruction.
func Format(in *Instruction, input []byte, layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' || i+1 >= len(layout) {
			b.WriteByte(layout[i])
			continue
		}
		i++
		switch layout[i] {
		case 'a':
			b.WriteString(formatAddress(in.Address, in.PointerSize))
		case 'b':
			b.WriteString(formatRawBytes(input, in.Length))
		case 'i':
			b.WriteString(formatMnemonicField(in))
		case 'o':
			b.WriteString(formatOperands(in))
		default:
			b.WriteByte('%')
			b.WriteByte(layout[i])
		}
	}
	return b.String()
}

func formatAddress(addr uint64, pointerSize int) string {
	width := pointerSize * 2
	if width <= 0 {
		width = 16
	}
	return fmt.Sprintf("%0*x", width, addr)
}

func formatRawBytes(input []byte, length int) string {
	if length < 0 {
		length = 0
	}
	if length > len(input) {
		length = len(input)
	}
	return hex.EncodeToString(input[:length])
}

// formatMnemonicField builds the rep/lock/mnemonic cluster the %i token
// renders: the REP-class word (if any), a trailing "b" suffix when one is
// set, "lock " when LOCK is set, then the mnemonic itself.
func formatMnemonicField(in *Instruction) string {
	var b strings.Builder
	switch {
	case in.Flags.Has(FlagRepE):
		b.WriteString("repe")
	case in.Flags.Has(FlagRepNE):
		b.WriteString("repne")
	case in.Flags.Has(FlagRep):
		b.WriteString("rep")
	}
	if b.Len() > 0 {
		b.WriteString("b ")
	}
	if in.Flags.Has(FlagLock) {
		b.WriteString("lock ")
	}
	b.WriteString(in.Operation.String())
	return b.String()
}

func formatOperands(in *Instruction) string {
	n := in.OperandCount()
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, formatOperand(in.Operands[i], in.Segment))
	}
	return strings.Join(parts, ", ")
}

func formatOperand(op Operand, instrSeg Segment) string {
	switch op.Kind {
	case KindRegister:
		return op.Reg.String()
	case KindImmediate:
		return formatImmediate(op.Immediate, op.Size)
	case KindMemory:
		return formatMemory(op, instrSeg)
	default:
		return ""
	}
}

func formatImmediate(v int64, size int) string {
	if size <= 0 {
		size = 1
	}
	bits := uint(size) * 8
	var mask uint64
	if bits >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << bits) - 1
	}
	return fmt.Sprintf("0x%0*x", size*2, uint64(v)&mask)
}

var memSizeQualifier = map[int]string{
	1:  "byte ",
	2:  "word ",
	4:  "dword ",
	6:  "fword ",
	8:  "qword ",
	10: "tword ",
	16: "oword ",
}

func formatMemory(op Operand, instrSeg Segment) string {
	var b strings.Builder
	b.WriteString(memSizeQualifier[op.Size])

	switch {
	case instrSeg != SegDefault:
		b.WriteString(instrSeg.String())
		b.WriteByte(':')
	case op.Segment == SegES:
		b.WriteString("es:")
	}

	b.WriteByte('[')
	wrote := false
	hasComponents := false
	if op.Components[0].Kind == KindRegister {
		b.WriteString(op.Components[0].Reg.String())
		wrote = true
		hasComponents = true
	}
	if op.Components[1].Kind == KindRegister {
		if wrote {
			b.WriteByte('+')
		}
		b.WriteString(op.Components[1].Reg.String())
		if op.Scale != 1 {
			b.WriteByte('*')
			b.WriteString(strconv.Itoa(int(op.Scale)))
		}
		wrote = true
		hasComponents = true
	}
	b.WriteString(formatDisplacement(op.Immediate, hasComponents))
	b.WriteByte(']')
	return b.String()
}

// formatDisplacement renders a memory operand's constant term. With a
// base/index present it's a signed delta, omitted entirely when zero;
// small deltas use a two's-complement-free "-0xNN"/"+0xNN" form, larger
// ones just sign+hex. With no base/index (a bare absolute address, as
// RIP-relative fix-up produces) it's printed with no leading "+", and a
// negative value as "-0x..".
func formatDisplacement(v int64, hasComponents bool) string {
	if hasComponents {
		if v == 0 {
			return ""
		}
		if v < 0 {
			return fmt.Sprintf("-0x%x", -v)
		}
		return fmt.Sprintf("+0x%x", v)
	}
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}
