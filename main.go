// Package main provides the entry point for v850dis.
// v850dis is a V850 instruction-set disassembler.
//
// For the full CLI, use: go run ./cmd/v850dis
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("v850dis - V850 instruction-set disassembler")
	fmt.Println("")
	fmt.Println("Usage: v850dis <command> [options] <file>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  disasm     Disassemble an ELF binary or raw binary blob")
	fmt.Println("  validate   Decode a binary's text segment and report undecodable bytes")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/v850dis' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: you provided arguments. Use 'go run ./cmd/v850dis' instead.")
	}
}
