// Validate decoder performance - measures allocation and throughput of Decode
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/v850dis/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// A mix of 2-byte, 4-byte and 6-byte encodings, exercised round-robin.
	program := [][]byte{
		{0x01, 0x08},                         // mov r1, r1
		{0x45, 0x22},                         // add 5, r4
		{0x02, 0x1E, 0x2A, 0x00},             // addi 42, r2, r3
		{0x09, 0x17, 0x07, 0x00},             // ld.b 7[r9], r2
		{0x85, 0x07, 0x05, 0x00, 0x00, 0x00}, // ld.b 0[r5], r0 (48-bit form)
	}

	// Warm up.
	for i := 0; i < 1000; i++ {
		for _, data := range program {
			decoder.Decode(data, 0x1000)
		}
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, data := range program {
			decoder.Decode(data, 0x1000)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(program)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Performance Validation Results:\n")
	fmt.Printf("========================================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if allocations == 0 {
		fmt.Printf("\nSUCCESS: zero allocations per decode.\n")
	} else if float64(allocations)/float64(totalDecodes) < 0.1 {
		fmt.Printf("\nGOOD: low allocation rate (< 0.1 per decode).\n")
	} else {
		fmt.Printf("\nWARNING: high allocation rate detected.\n")
	}
}
