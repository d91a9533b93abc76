package disasm_test

import (
	"testing"

	"github.com/keurnel/x86dis/disasm"
)

func TestFormatDisplacement(t *testing.T) {
	// mov eax, [rbx+0x10]: 8B 43 10
	in, ok := disasm.Disassemble64(mustBytes(t, "8B4310"), 0, 15)
	if !ok {
		t.Fatalf("expected success")
	}
	got := disasm.Format(&in, mustBytes(t, "8B4310"), "%o")
	want := "eax, dword [rbx+0x10]"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestFormatNegativeDisplacement(t *testing.T) {
	// mov eax, [rbx-0x10]: 8B 43 F0
	in, ok := disasm.Disassemble64(mustBytes(t, "8B43F0"), 0, 15)
	if !ok {
		t.Fatalf("expected success")
	}
	got := disasm.Format(&in, mustBytes(t, "8B43F0"), "%o")
	want := "eax, dword [rbx-0x10]"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestFormatImmediateHexWidth(t *testing.T) {
	// add al, 0x05: 04 05
	in, ok := disasm.Disassemble64(mustBytes(t, "0405"), 0, 15)
	if !ok {
		t.Fatalf("expected success")
	}
	got := disasm.Format(&in, mustBytes(t, "0405"), "%o")
	want := "al, 0x05"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestFormatRepPrefix(t *testing.T) {
	// rep movsb: F3 A4
	in, ok := disasm.Disassemble64(mustBytes(t, "F3A4"), 0, 15)
	if !ok {
		t.Fatalf("expected success")
	}
	if !in.Flags.Has(disasm.FlagRep) {
		t.Fatalf("expected REP flag")
	}
	// formatMnemonicField appends the "b" suffix directly to the rep-word
	// (spec.md §6's token table reads "rep... + b suffix... then the
	// mnemonic", which this renders literally as "repb " ahead of the
	// plain "movs" mnemonic).
	got := disasm.Format(&in, mustBytes(t, "F3A4"), "%i")
	want := "repb movs"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestFormatRawBytesTruncatesToLength(t *testing.T) {
	in, ok := disasm.Disassemble64(mustBytes(t, "4801D8"), 0, 15)
	if !ok {
		t.Fatalf("expected success")
	}
	// Pass a longer buffer than the instruction's length; %b must still only
	// render the first in.Length bytes.
	longer := mustBytes(t, "4801D890909090")
	got := disasm.Format(&in, longer, "%b")
	want := "4801d8"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}
