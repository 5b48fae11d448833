// Package main provides the entry point for v850dis.
// v850dis is a V850 instruction-set disassembler.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sarchlab/v850dis/insts"
	"github.com/sarchlab/v850dis/loader"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "v850dis",
		Short: "v850dis disassembles V850 machine code",
	}

	rootCmd.AddCommand(newDisasmCmd())
	rootCmd.AddCommand(newValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newDisasmCmd() *cobra.Command {
	var (
		raw       bool
		baseAddr  uint32
		showBytes bool
	)

	cmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a V850 ELF binary or raw binary blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var data []byte
			var addr uint32
			if raw {
				b, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				data, addr = b, baseAddr
			} else {
				prog, err := loader.Load(path)
				if err != nil {
					return fmt.Errorf("loading %s: %w", path, err)
				}
				seg, ok := prog.TextSegment()
				if !ok {
					return fmt.Errorf("%s: no executable segment found", path)
				}
				data, addr = seg.Data, seg.VirtAddr
				log.Printf("loaded %s: entry=0x%x text=0x%x (%d bytes)", path, prog.EntryPoint, addr, len(data))
			}

			return disassembleAll(cmd.OutOrStdout(), data, addr, showBytes)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&raw, "raw", false, "treat the file as a raw binary blob instead of an ELF file")
	flags.Var((*hexUint32)(&baseAddr), "base", "base load address for --raw input (hex, e.g. 0x1000)")
	flags.BoolVar(&showBytes, "bytes", true, "print each instruction's raw bytes alongside its mnemonic")

	return cmd
}

// disassembleAll walks data front to back, decoding and printing one
// instruction per line until the bytes are exhausted. A position that fails
// to decode is printed as "???" with the error and skipped by two bytes.
func disassembleAll(out io.Writer, data []byte, addr uint32, showBytes bool) error {
	d := insts.NewDecoder()
	off := 0
	for off < len(data) {
		inst, err := d.Decode(data[off:], addr+uint32(off))
		if err != nil {
			fmt.Fprintf(out, "%08x:\t%s\t??? (%v)\n", addr+uint32(off), hex.EncodeToString(data[off:min(off+2, len(data))]), err)
			off += 2
			continue
		}

		if showBytes {
			raw := rawBytes(inst.Raw, int(inst.ByteSize))
			fmt.Fprintf(out, "%08x:\t%-14s\t%s\t%s\n", inst.Addr, hex.EncodeToString(raw), inst.Mnemonic, inst.Operands)
		} else {
			fmt.Fprintf(out, "%08x:\t%s\t%s\n", inst.Addr, inst.Mnemonic, inst.Operands)
		}
		off += int(inst.ByteSize)
	}
	return nil
}

func rawBytes(raw uint64, n int) []byte {
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(raw >> uint(8*i))
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// hexUint32 adapts a uint32 to pflag.Value so --base accepts "0x1000".
type hexUint32 uint32

func (h *hexUint32) String() string { return fmt.Sprintf("0x%x", uint32(*h)) }
func (h *hexUint32) Type() string   { return "uint32" }
func (h *hexUint32) Set(s string) error {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid hex address %q: %w", s, err)
	}
	*h = hexUint32(v)
	return nil
}

var _ pflag.Value = (*hexUint32)(nil)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode an ELF binary's text segment and report any undecodable bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			prog, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			seg, ok := prog.TextSegment()
			if !ok {
				return fmt.Errorf("%s: no executable segment found", path)
			}

			d := insts.NewDecoder()
			decoded, failed := 0, 0
			off := 0
			for off < len(seg.Data) {
				inst, err := d.Decode(seg.Data[off:], seg.VirtAddr+uint32(off))
				if err != nil {
					failed++
					log.Printf("0x%08x: %v", seg.VirtAddr+uint32(off), err)
					off += 2
					continue
				}
				decoded++
				off += int(inst.ByteSize)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "decoded %d instructions, %d undecodable positions\n", decoded, failed)
			if failed > 0 {
				return fmt.Errorf("%d undecodable positions in %s", failed, path)
			}
			return nil
		},
	}
	return cmd
}
