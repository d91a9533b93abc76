package disasm_test

import (
	"encoding/hex"
	"testing"

	"github.com/keurnel/x86dis/disasm"
)

func mustBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestConcreteScenarios exercises the worked examples.
func TestConcreteScenarios(t *testing.T) {
	t.Run("add byte ptr rax, al", func(t *testing.T) {
		in, ok := disasm.Disassemble64(mustBytes(t, "0000"), 0, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if in.Operation != disasm.ADD {
			t.Errorf("operation = %v, want ADD", in.Operation)
		}
		if in.Length != 2 {
			t.Errorf("length = %d, want 2", in.Length)
		}
		if !in.Operands[0].IsMemory() || in.Operands[0].Size != 1 {
			t.Errorf("operand0 = %+v, want byte memory", in.Operands[0])
		}
		if in.Operands[1].Reg != disasm.RegAL {
			t.Errorf("operand1 = %+v, want AL", in.Operands[1])
		}
		got := disasm.Format(&in, mustBytes(t, "0000"), "%a %b %i %o")
		want := "0000000000000000 0000 add byte [rax], al"
		if got != want {
			t.Errorf("format = %q, want %q", got, want)
		}
	})

	t.Run("add rax, rbx", func(t *testing.T) {
		in, ok := disasm.Disassemble64(mustBytes(t, "4801D8"), 0, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if in.Operation != disasm.ADD {
			t.Errorf("operation = %v, want ADD", in.Operation)
		}
		if in.Length != 3 {
			t.Errorf("length = %d, want 3", in.Length)
		}
		if in.Operands[0].Reg != disasm.RegRAX || in.Operands[1].Reg != disasm.RegRBX {
			t.Errorf("operands = %+v, want RAX, RBX", in.Operands[:2])
		}
	})

	t.Run("lock add valid", func(t *testing.T) {
		in, ok := disasm.Disassemble64(mustBytes(t, "F00100"), 0, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if !in.Flags.Has(disasm.FlagLock) {
			t.Errorf("expected LOCK flag set")
		}
		if in.Length != 3 {
			t.Errorf("length = %d, want 3", in.Length)
		}
	})

	t.Run("lock cmp invalid", func(t *testing.T) {
		_, ok := disasm.Disassemble64(mustBytes(t, "F039D8"), 0, 15)
		if ok {
			t.Fatalf("expected failure (LOCK CMP, register destination)")
		}
	})

	t.Run("rip relative mov", func(t *testing.T) {
		in, ok := disasm.Disassemble64(mustBytes(t, "488B05" + "10000000"), 0x1000, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if in.Operation != disasm.MOV {
			t.Errorf("operation = %v, want MOV", in.Operation)
		}
		if in.Length != 7 {
			t.Errorf("length = %d, want 7", in.Length)
		}
		if !in.Operands[1].IsMemory() {
			t.Fatalf("operand1 = %+v, want memory", in.Operands[1])
		}
		if want := int64(0x10 + 0x1000 + 7); in.Operands[1].Immediate != want {
			t.Errorf("rip-relative immediate = 0x%x, want 0x%x", in.Operands[1].Immediate, want)
		}
	})

	t.Run("3dnow pavgusb", func(t *testing.T) {
		in, ok := disasm.Disassemble32(mustBytes(t, "0F0FC0BF"), 0, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if in.Operation != disasm.PAVGUSB {
			t.Errorf("operation = %v, want PAVGUSB", in.Operation)
		}
		if in.Length != 4 {
			t.Errorf("length = %d, want 4", in.Length)
		}
		if in.Operands[0].Reg != disasm.RegMM0 || in.Operands[1].Reg != disasm.RegMM0 {
			t.Errorf("operands = %+v, want MM0, MM0", in.Operands[:2])
		}
	})

	t.Run("truncated two-byte escape", func(t *testing.T) {
		in, ok := disasm.Disassemble64(mustBytes(t, "0F"), 0, 15)
		if ok {
			t.Fatalf("expected failure")
		}
		if !in.Flags.Has(disasm.FlagInsufficientLength) {
			t.Errorf("expected INSUFFICIENT_LENGTH flag")
		}
		if in.Length > 1 {
			t.Errorf("length = %d, want <= 1", in.Length)
		}
	})

	t.Run("16-bit segment override", func(t *testing.T) {
		in, ok := disasm.Disassemble16(mustBytes(t, "268B063412"), 0, 15)
		if !ok {
			t.Fatalf("expected success")
		}
		if in.Operation != disasm.MOV {
			t.Errorf("operation = %v, want MOV", in.Operation)
		}
		if in.Segment != disasm.SegES {
			t.Errorf("segment = %v, want ES", in.Segment)
		}
		if in.Operands[0].Reg != disasm.RegAX {
			t.Errorf("operand0 = %+v, want AX", in.Operands[0])
		}
		if !in.Operands[1].IsMemory() || in.Operands[1].Immediate != 0x1234 {
			t.Errorf("operand1 = %+v, want mem[0x1234]", in.Operands[1])
		}
	})
}

// TestLengthBound checks the universal length-bound property across a
// sample of opcodes and lengths.
func TestLengthBound(t *testing.T) {
	samples := [][]byte{
		mustBytes(t, "00"),
		mustBytes(t, "4801D8"),
		mustBytes(t, "0F0FC0BF"),
		mustBytes(t, "F00100"),
		mustBytes(t, "488B0510000000"),
	}
	for _, in := range samples {
		for n := 0; n <= len(in); n++ {
			inst, _ := disasm.Disassemble64(in[:n], 0, 15)
			if inst.Length > n || inst.Length > 15 {
				t.Errorf("input %x[:%d]: length %d exceeds bound", in, n, inst.Length)
			}
		}
	}
}

// TestIdempotentRedecode checks that decoding exactly the first Length
// bytes of a successful decode reproduces the same instruction.
func TestIdempotentRedecode(t *testing.T) {
	inputs := []struct {
		mode string
		data []byte
	}{
		{"64", mustBytes(t, "4801D8")},
		{"64", mustBytes(t, "488B0510000000")},
		{"32", mustBytes(t, "0F0FC0BF")},
		{"16", mustBytes(t, "268B063412")},
	}
	decode := func(mode string) func([]byte, uint64, int) (disasm.Instruction, bool) {
		switch mode {
		case "16":
			return disasm.Disassemble16
		case "32":
			return disasm.Disassemble32
		default:
			return disasm.Disassemble64
		}
	}
	for _, tc := range inputs {
		fn := decode(tc.mode)
		full, ok := fn(tc.data, 0x1000, 15)
		if !ok {
			t.Fatalf("expected success for %x", tc.data)
		}
		again, ok2 := fn(tc.data[:full.Length], 0x1000, 15)
		if !ok2 {
			t.Fatalf("re-decode of truncated-to-length input failed for %x", tc.data)
		}
		if again.Operation != full.Operation || again.Length != full.Length {
			t.Errorf("re-decode mismatch: %+v vs %+v", again, full)
		}
	}
}

// TestTruncationSetsInsufficientLength verifies that chopping a valid
// instruction short always yields INSUFFICIENT_LENGTH.
func TestTruncationSetsInsufficientLength(t *testing.T) {
	full := mustBytes(t, "488B0510000000")
	for n := 0; n < len(full); n++ {
		in, ok := disasm.Disassemble64(full[:n], 0x1000, 15)
		if ok {
			continue
		}
		if !in.Flags.Has(disasm.FlagInsufficientLength) {
			t.Errorf("truncated to %d bytes: expected INSUFFICIENT_LENGTH", n)
		}
	}
}

// TestLockValidity spot-checks the LOCK rule: valid on a lockable op with
// a memory destination, invalid on a register destination or a
// non-lockable op.
func TestLockValidity(t *testing.T) {
	// lock add [rax], eax — lockable, memory destination.
	if _, ok := disasm.Disassemble64(mustBytes(t, "F00100"), 0, 15); !ok {
		t.Errorf("lock add [rax], eax should be valid")
	}
	// lock add eax, ebx — lockable op, but register destination.
	if _, ok := disasm.Disassemble64(mustBytes(t, "F001D8"), 0, 15); ok {
		t.Errorf("lock add eax, ebx should be invalid (register destination)")
	}
	// lock cmp ebx, ebx — CMP is never lockable.
	if _, ok := disasm.Disassemble64(mustBytes(t, "F039D8"), 0, 15); ok {
		t.Errorf("lock cmp should be invalid")
	}
}

// TestGroupAndTwoByteDispatch exercises opcodes whose family resolves the
// real operation dynamically, guarding against the dispatch short-circuit
// regressing: a raw INVALID placeholder op on these table rows must never
// itself be treated as "no such instruction".
func TestGroupAndTwoByteDispatch(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		op   disasm.Operation
	}{
		{"shl r/m, 1 (group D0)", mustBytes(t, "D0E0"), disasm.SHL},
		{"not r/m32 (group F7)", mustBytes(t, "F7D0"), disasm.NOT},
		{"inc r/m32 (group FF)", mustBytes(t, "FFC0"), disasm.INC},
		{"sldt r/m16 (group 0F00)", mustBytes(t, "0F00C0"), disasm.SLDT},
		{"two-byte je rel32", mustBytes(t, "0F8400000000"), disasm.JE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, ok := disasm.Disassemble64(tc.data, 0, 15)
			if !ok {
				t.Fatalf("expected success decoding % x", tc.data)
			}
			if in.Operation != tc.op {
				t.Errorf("operation = %v, want %v", in.Operation, tc.op)
			}
		})
	}
}

// TestInvalidOpcodeByte checks a handful of genuinely reserved encodings
// report failure rather than silently succeeding.
func TestInvalidOpcodeByte(t *testing.T) {
	// 0F FF is not assigned in the two-byte map.
	if _, ok := disasm.Disassemble64(mustBytes(t, "0FFF"), 0, 15); ok {
		t.Errorf("0F FF should be invalid")
	}
}
