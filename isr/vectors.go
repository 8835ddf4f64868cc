// Package isr generates the NASM entry stubs for the first 32 x86
// interrupt/exception vectors, plus the companion stubs for the 16
// remapped hardware IRQs. Every stub normalizes the CPU-pushed stack
// state and jumps to a shared dispatch routine defined elsewhere.
package isr

// NumVectors is the number of IDT entries reserved by Intel for CPU
// exceptions at the start of the table.
const NumVectors = 32

// Dispatch targets. Both symbols are defined in the kernel's assembly,
// never here; their calling convention consumes the
// [error_code, vector_number] stack layout every stub leaves behind.
const (
	CommonStub    = "isr_common_stub"
	IRQCommonStub = "irq_common_stub"
)

// eisr is the set of exception vectors for which the CPU itself pushes
// an error code before invoking the handler (Intel SDM Vol. 3A, ch. 6):
// Double Fault (8), Invalid TSS (10), Segment Not Present (11),
// Stack-Segment Fault (12), General Protection (13), Page Fault (14).
var eisr = map[int]bool{
	8:  true,
	10: true,
	11: true,
	12: true,
	13: true,
	14: true,
}

// HasErrorCode reports whether the CPU pushes a hardware error code for
// the given exception vector.
func HasErrorCode(vector int) bool {
	return eisr[vector]
}

// Class describes how an exception reports relative to the faulting
// instruction.
type Class string

const (
	ClassFault     Class = "fault"
	ClassTrap      Class = "trap"
	ClassAbort     Class = "abort"
	ClassInterrupt Class = "interrupt"
	ClassReserved  Class = "reserved"
)

// VectorInfo describes one exception vector of the 32-entry domain.
type VectorInfo struct {
	Vector    int
	Name      string
	Class     Class
	ErrorCode bool
}

// vectorNames maps each vector to its exception name, indexed by vector
// number. Vectors 19-31 are reserved by the architecture.
var vectorNames = [NumVectors]string{
	0:  "Divide by 0",
	1:  "Debug",
	2:  "Non-Maskable Interrupt",
	3:  "Breakpoint",
	4:  "Overflow",
	5:  "Out of Bounds",
	6:  "Invalid Opcode",
	7:  "No Coprocessor",
	8:  "Double Fault Exception",
	9:  "Coprocessor Segment Overrun",
	10: "Bad TSS",
	11: "Segment Not Present",
	12: "Stack Fault",
	13: "General Protection Fault",
	14: "Page Fault",
	15: "Unknown Interrupt",
	16: "Coprocessor Fault",
	17: "Alignment Check",
	18: "Machine Check",
	19: "Reserved",
	20: "Reserved",
	21: "Reserved",
	22: "Reserved",
	23: "Reserved",
	24: "Reserved",
	25: "Reserved",
	26: "Reserved",
	27: "Reserved",
	28: "Reserved",
	29: "Reserved",
	30: "Reserved",
	31: "Reserved",
}

var vectorClasses = [NumVectors]Class{
	0:  ClassFault,
	1:  ClassTrap,
	2:  ClassInterrupt,
	3:  ClassTrap,
	4:  ClassTrap,
	5:  ClassFault,
	6:  ClassFault,
	7:  ClassFault,
	8:  ClassAbort,
	9:  ClassFault,
	10: ClassFault,
	11: ClassFault,
	12: ClassFault,
	13: ClassFault,
	14: ClassFault,
	15: ClassReserved,
	16: ClassFault,
	17: ClassFault,
	18: ClassAbort,
	19: ClassReserved,
	20: ClassReserved,
	21: ClassReserved,
	22: ClassReserved,
	23: ClassReserved,
	24: ClassReserved,
	25: ClassReserved,
	26: ClassReserved,
	27: ClassReserved,
	28: ClassReserved,
	29: ClassReserved,
	30: ClassReserved,
	31: ClassReserved,
}

// Vectors returns the full exception vector table in ascending order.
func Vectors() []VectorInfo {
	infos := make([]VectorInfo, 0, NumVectors)
	for v := 0; v < NumVectors; v++ {
		infos = append(infos, VectorInfo{
			Vector:    v,
			Name:      vectorNames[v],
			Class:     vectorClasses[v],
			ErrorCode: eisr[v],
		})
	}
	return infos
}
