package disasm_test

import (
	"testing"

	"github.com/keurnel/x86dis/disasm"
)

// FuzzDisassemble exercises the fuzz-safety property from spec.md §8: for
// any byte sequence up to 15 bytes, in any mode, decoding must terminate,
// never report a length beyond what was given, and never panic.
func FuzzDisassemble(f *testing.F) {
	seeds := [][]byte{
		{0x00, 0x00},
		{0x48, 0x01, 0xD8},
		{0xF0, 0x01, 0x00},
		{0x0F, 0x0F, 0xC0, 0xBF},
		{0x0F},
		{0x26, 0x8B, 0x06, 0x34, 0x12},
		{0x48, 0x8B, 0x05, 0x10, 0x00, 0x00, 0x00},
		{},
		{0xFF},
		{0x66, 0x67, 0xF0, 0xF2, 0x0F},
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 15 {
			data = data[:15]
		}

		for _, mode := range []int{16, 32, 64} {
			var in disasm.Instruction
			var ok bool
			switch mode {
			case 16:
				in, ok = disasm.Disassemble16(data, 0x1000, len(data))
			case 32:
				in, ok = disasm.Disassemble32(data, 0x1000, len(data))
			default:
				in, ok = disasm.Disassemble64(data, 0x1000, len(data))
			}

			if in.Length > len(data) || in.Length > 15 {
				t.Fatalf("mode %d: decoded length %d exceeds input %d", mode, in.Length, len(data))
			}
			if ok && in.Operation == disasm.INVALID {
				t.Fatalf("mode %d: success but operation is INVALID", mode)
			}
			if !ok && in.Flags.Has(disasm.FlagInsufficientLength) && in.Length > len(data) {
				t.Fatalf("mode %d: insufficient-length result reports length beyond input", mode)
			}

			// Must not panic when formatting either.
			_ = disasm.Format(&in, data, "%a %b %i %o")
		}
	})
}
