package loader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/v850dis/loader"
)

const emV850 = 87

var _ = Describe("ELF Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "elf-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		Context("with a valid V850 ELF binary", func() {
			var elfPath string

			BeforeEach(func() {
				elfPath = filepath.Join(tempDir, "test.elf")
				createMinimalV850ELF(elfPath, 0x10000, 0x10080, []byte{
					0x00, 0x00, // nop
					0x80, 0x07, 0x00, 0x00, // jr with a zero displacement
				})
			})

			It("should load without error", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog).NotTo(BeNil())
			})

			It("should extract the correct entry point", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(prog.EntryPoint).To(Equal(uint32(0x10080)))
			})

			It("should load segments into memory", func() {
				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(len(prog.Segments)).To(BeNumerically(">", 0))
			})
		})

		Context("with segment data", func() {
			It("should correctly load segment contents", func() {
				elfPath := filepath.Join(tempDir, "code.elf")
				codeData := []byte{0x00, 0x00, 0x00, 0x06, 0x00, 0x00}
				createMinimalV850ELF(elfPath, 0x10000, 0x10000, codeData)

				prog, err := loader.Load(elfPath)
				Expect(err).NotTo(HaveOccurred())

				var found *loader.Segment
				for i := range prog.Segments {
					if prog.Segments[i].VirtAddr == 0x10000 {
						found = &prog.Segments[i]
						break
					}
				}
				Expect(found).NotTo(BeNil())
				Expect(found.Data).To(HaveLen(len(codeData)))
			})
		})

		Context("with an invalid file", func() {
			It("should return error for non-existent file", func() {
				_, err := loader.Load("/nonexistent/path/to/file.elf")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("failed to open"))
			})

			It("should return error for non-ELF file", func() {
				notElfPath := filepath.Join(tempDir, "not-elf.bin")
				err := os.WriteFile(notElfPath, []byte("not an elf file"), 0644)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(notElfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("ELF"))
			})

			It("should return error for empty file", func() {
				emptyPath := filepath.Join(tempDir, "empty.elf")
				err := os.WriteFile(emptyPath, []byte{}, 0644)
				Expect(err).NotTo(HaveOccurred())

				_, err = loader.Load(emptyPath)
				Expect(err).To(HaveOccurred())
			})
		})

		Context("with a non-V850 ELF", func() {
			It("should return error for an ARM64 ELF", func() {
				elfPath := filepath.Join(tempDir, "arm64.elf")
				createMinimalARM64ELF(elfPath)

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not a V850"))
			})
		})

		Context("with a 64-bit ELF", func() {
			It("should return error for a 64-bit ELF", func() {
				elfPath := filepath.Join(tempDir, "elf64.elf")
				createMinimal64BitELF(elfPath)

				_, err := loader.Load(elfPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("not a 32-bit"))
			})
		})
	})

	Describe("Segment", func() {
		It("should correctly report permissions", func() {
			elfPath := filepath.Join(tempDir, "test.elf")
			createMinimalV850ELF(elfPath, 0x10000, 0x10000, []byte{0x00, 0x00})

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())

			seg, ok := prog.TextSegment()
			Expect(ok).To(BeTrue())
			Expect(seg.Flags & loader.SegmentFlagExecute).NotTo(BeZero())
		})
	})

	Describe("BSS segments", func() {
		It("should handle segments where Memsz > Filesz", func() {
			elfPath := filepath.Join(tempDir, "bss.elf")
			initialData := []byte{0x01, 0x02, 0x03, 0x04}
			createBSSSegmentV850ELF(elfPath, 0x20000, 0x10000, initialData, 1024)

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())

			var bssSeg *loader.Segment
			for i := range prog.Segments {
				if prog.Segments[i].VirtAddr == 0x20000 {
					bssSeg = &prog.Segments[i]
					break
				}
			}

			Expect(bssSeg).NotTo(BeNil())
			Expect(bssSeg.Data).To(Equal(initialData))
			Expect(bssSeg.MemSize).To(Equal(uint32(1024)))
			Expect(bssSeg.MemSize).To(BeNumerically(">", uint32(len(bssSeg.Data))))
		})
	})

	Describe("ELFs with no loadable segments", func() {
		It("should return empty segments for an ELF with no PT_LOAD", func() {
			elfPath := filepath.Join(tempDir, "no-load.elf")
			createNoLoadableSegmentsV850ELF(elfPath, 0x10000)

			prog, err := loader.Load(elfPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Segments).To(BeEmpty())
			Expect(prog.EntryPoint).To(Equal(uint32(0x10000)))

			_, ok := prog.TextSegment()
			Expect(ok).To(BeFalse())
		})
	})
})

// createMinimalV850ELF creates a minimal valid V850 ELF32 binary with a
// single PT_LOAD, readable+executable segment.
func createMinimalV850ELF(path string, loadAddr, entryPoint uint32, code []byte) {
	elfHeader := make([]byte, 52)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 1 // ELFCLASS32
	elfHeader[5] = 1 // little endian
	elfHeader[6] = 1 // version
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)      // ET_EXEC
	binary.LittleEndian.PutUint16(elfHeader[18:20], emV850) // EM_V850
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)      // version
	binary.LittleEndian.PutUint32(elfHeader[24:28], entryPoint)
	binary.LittleEndian.PutUint32(elfHeader[28:32], 52) // phoff
	binary.LittleEndian.PutUint32(elfHeader[32:36], 0)  // shoff
	binary.LittleEndian.PutUint32(elfHeader[36:40], 0)  // flags
	binary.LittleEndian.PutUint16(elfHeader[40:42], 52) // ehsize
	binary.LittleEndian.PutUint16(elfHeader[42:44], 32) // phentsize
	binary.LittleEndian.PutUint16(elfHeader[44:46], 1)  // phnum
	binary.LittleEndian.PutUint16(elfHeader[46:48], 0)  // shentsize
	binary.LittleEndian.PutUint16(elfHeader[48:50], 0)  // shnum
	binary.LittleEndian.PutUint16(elfHeader[50:52], 0)  // shstrndx

	progHeader := make([]byte, 32)
	binary.LittleEndian.PutUint32(progHeader[0:4], 1)                   // PT_LOAD
	binary.LittleEndian.PutUint32(progHeader[4:8], 84)                  // offset
	binary.LittleEndian.PutUint32(progHeader[8:12], loadAddr)           // vaddr
	binary.LittleEndian.PutUint32(progHeader[12:16], loadAddr)          // paddr
	binary.LittleEndian.PutUint32(progHeader[16:20], uint32(len(code))) // filesz
	binary.LittleEndian.PutUint32(progHeader[20:24], uint32(len(code))) // memsz
	binary.LittleEndian.PutUint32(progHeader[24:28], 0x5)               // flags: R|X
	binary.LittleEndian.PutUint32(progHeader[28:32], 0x1000)            // align

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeader)
	_, _ = file.Write(code)
}

// createMinimalARM64ELF creates a minimal 64-bit ARM64 ELF to test the
// machine-type rejection path.
func createMinimalARM64ELF(path string) {
	elfHeader := make([]byte, 64)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 2 // ELFCLASS64
	elfHeader[5] = 1
	elfHeader[6] = 1
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)
	binary.LittleEndian.PutUint16(elfHeader[18:20], 183) // EM_AARCH64
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)
	binary.LittleEndian.PutUint64(elfHeader[24:32], 0)
	binary.LittleEndian.PutUint64(elfHeader[32:40], 64)
	binary.LittleEndian.PutUint16(elfHeader[52:54], 64)
	binary.LittleEndian.PutUint16(elfHeader[54:56], 56)
	binary.LittleEndian.PutUint16(elfHeader[56:58], 0)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
}

// createMinimal64BitELF creates a minimal 64-bit ELF (V850 machine type,
// wrong class) to test the class-rejection path.
func createMinimal64BitELF(path string) {
	elfHeader := make([]byte, 64)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 2 // ELFCLASS64
	elfHeader[5] = 1
	elfHeader[6] = 1
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)
	binary.LittleEndian.PutUint16(elfHeader[18:20], emV850)
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
}

// createBSSSegmentV850ELF creates a V850 ELF with a single PT_LOAD segment
// where Memsz > Filesz.
func createBSSSegmentV850ELF(path string, segAddr, entryPoint uint32, data []byte, memSize uint32) {
	elfHeader := make([]byte, 52)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 1
	elfHeader[5] = 1
	elfHeader[6] = 1
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)
	binary.LittleEndian.PutUint16(elfHeader[18:20], emV850)
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)
	binary.LittleEndian.PutUint32(elfHeader[24:28], entryPoint)
	binary.LittleEndian.PutUint32(elfHeader[28:32], 52)
	binary.LittleEndian.PutUint16(elfHeader[40:42], 52)
	binary.LittleEndian.PutUint16(elfHeader[42:44], 32)
	binary.LittleEndian.PutUint16(elfHeader[44:46], 1)

	progHeader := make([]byte, 32)
	binary.LittleEndian.PutUint32(progHeader[0:4], 1)
	binary.LittleEndian.PutUint32(progHeader[4:8], 84)
	binary.LittleEndian.PutUint32(progHeader[8:12], segAddr)
	binary.LittleEndian.PutUint32(progHeader[12:16], segAddr)
	binary.LittleEndian.PutUint32(progHeader[16:20], uint32(len(data)))
	binary.LittleEndian.PutUint32(progHeader[20:24], memSize)
	binary.LittleEndian.PutUint32(progHeader[24:28], 0x6) // R|W
	binary.LittleEndian.PutUint32(progHeader[28:32], 0x1000)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeader)
	_, _ = file.Write(data)
}

// createNoLoadableSegmentsV850ELF creates a V850 ELF with a single PT_NOTE
// (not PT_LOAD) program header.
func createNoLoadableSegmentsV850ELF(path string, entryPoint uint32) {
	elfHeader := make([]byte, 52)
	copy(elfHeader[0:4], []byte{0x7f, 'E', 'L', 'F'})
	elfHeader[4] = 1
	elfHeader[5] = 1
	elfHeader[6] = 1
	binary.LittleEndian.PutUint16(elfHeader[16:18], 2)
	binary.LittleEndian.PutUint16(elfHeader[18:20], emV850)
	binary.LittleEndian.PutUint32(elfHeader[20:24], 1)
	binary.LittleEndian.PutUint32(elfHeader[24:28], entryPoint)
	binary.LittleEndian.PutUint32(elfHeader[28:32], 52)
	binary.LittleEndian.PutUint16(elfHeader[40:42], 52)
	binary.LittleEndian.PutUint16(elfHeader[42:44], 32)
	binary.LittleEndian.PutUint16(elfHeader[44:46], 1)

	progHeader := make([]byte, 32)
	binary.LittleEndian.PutUint32(progHeader[0:4], 4) // PT_NOTE
	binary.LittleEndian.PutUint32(progHeader[4:8], 84)
	binary.LittleEndian.PutUint32(progHeader[8:12], 0)
	binary.LittleEndian.PutUint32(progHeader[12:16], 0)
	binary.LittleEndian.PutUint32(progHeader[16:20], 0)
	binary.LittleEndian.PutUint32(progHeader[20:24], 0)
	binary.LittleEndian.PutUint32(progHeader[24:28], 0x4)
	binary.LittleEndian.PutUint32(progHeader[28:32], 4)

	file, _ := os.Create(path)
	defer func() { _ = file.Close() }()
	_, _ = file.Write(elfHeader)
	_, _ = file.Write(progHeader)
}
