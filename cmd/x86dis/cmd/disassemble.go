package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/keurnel/x86dis/disasm"
	"github.com/keurnel/x86dis/internal/diagnostics"
	"github.com/spf13/cobra"
)

var (
	flagMode      string
	flagAddress   string
	flagOffset    int64
	flagMaxLength int
	flagAll       bool
	flagFormat    string
)

var disassembleCmd = &cobra.Command{
	Use:     "disassemble <file>",
	GroupID: "decode",
	Short:   "Disassemble a raw binary file",
	Long:    `Reads a raw binary file and decodes one instruction, or the whole buffer with --all, printing each decode as a formatted line.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDisassemble(cmd, args[0]); err != nil {
			log.WithError(err).Error("disassemble failed")
			os.Exit(1)
		}
	},
}

func init() {
	disassembleCmd.Flags().StringVar(&flagMode, "mode", "64", "decode mode: 16, 32, or 64")
	disassembleCmd.Flags().StringVar(&flagAddress, "address", "0x0", "base address, hex (e.g. 0x1000)")
	disassembleCmd.Flags().Int64Var(&flagOffset, "offset", 0, "byte offset into the file to start decoding at")
	disassembleCmd.Flags().IntVar(&flagMaxLength, "max-length", 15, "maximum bytes available per decode, clamped to 15")
	disassembleCmd.Flags().BoolVar(&flagAll, "all", false, "keep decoding sequentially until the buffer is exhausted, skipping one byte past each failed decode")
	disassembleCmd.Flags().StringVar(&flagFormat, "format", "%a %b %i %o", "format string for each decoded line")
}

func runDisassemble(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	decodeFn, pointerHex, err := resolveMode(flagMode)
	if err != nil {
		return err
	}

	address, err := strconv.ParseUint(trimHexPrefix(flagAddress), 16, 64)
	if err != nil {
		return fmt.Errorf("invalid --address %q: %w", flagAddress, err)
	}

	if flagOffset < 0 || flagOffset > int64(len(data)) {
		return fmt.Errorf("--offset %d out of range for a %d-byte file", flagOffset, len(data))
	}

	diag := diagnostics.New(path)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"address", "instruction"})

	pos := int(flagOffset)
	for {
		remaining := data[pos:]
		if len(remaining) == 0 {
			break
		}

		diag.SetStage("dispatch")
		in, ok := decodeFn(remaining, address, flagMaxLength)
		if !ok {
			loc := diag.Loc(address, int64(pos))
			entry := diag.Warning(loc, "decode failed")
			if in.Flags.Has(disasm.FlagInsufficientLength) {
				entry.WithHint("more bytes needed")
			}
			log.WithField("location", loc.String()).Warn(entry.Message())
			if !flagAll {
				return fmt.Errorf("decode failed at address %s", formatAddrHex(address, pointerHex))
			}
			pos++
			address++
			continue
		}

		line := disasm.Format(&in, remaining, flagFormat)
		t.AppendRow(table.Row{formatAddrHex(address, pointerHex), line})

		if in.Length == 0 {
			break
		}
		pos += in.Length
		address += uint64(in.Length)

		if !flagAll {
			break
		}
	}

	t.Render()
	if n := len(diag.Entries()); n > 0 {
		log.Warnf("%d decode failure(s) encountered", n)
	}
	return nil
}

func resolveMode(mode string) (func([]byte, uint64, int) (disasm.Instruction, bool), int, error) {
	switch mode {
	case "16":
		return disasm.Disassemble16, 2, nil
	case "32":
		return disasm.Disassemble32, 4, nil
	case "64":
		return disasm.Disassemble64, 8, nil
	default:
		return nil, 0, fmt.Errorf("invalid --mode %q: must be 16, 32, or 64", mode)
	}
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func formatAddrHex(addr uint64, pointerSize int) string {
	return fmt.Sprintf("%0*x", pointerSize*2, addr)
}
