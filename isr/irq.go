package isr

import "fmt"

// The 8259 master/slave PICs are reprogrammed at boot so hardware
// IRQ 0-15 arrive on IDT vectors 32-47 (offsets 0x20/0x28) instead of
// colliding with the CPU exception range.
const (
	NumIRQs       = 16
	IRQBaseVector = 32
)

// GenerateIRQ builds the companion irq.asm document for the remapped
// hardware interrupt stubs. No IRQ supplies a hardware error code, so
// every stub pushes the dummy zero before its vector number, keeping
// the dispatcher's stack shape identical to the exception stubs.
func GenerateIRQ() Document {
	lines := []string{
		"; Hardware IRQ entry stubs (IRQ 0-15 remapped to vectors 32-47)",
		"; Each stub pushes a dummy error code to match the exception stack layout",
	}
	for i := 0; i < NumIRQs; i++ {
		lines = append(lines, fmt.Sprintf("global irq%d", i))
	}
	lines = append(lines, "", "; IRQ definitions")
	for i := 0; i < NumIRQs; i++ {
		lines = append(lines,
			"",
			fmt.Sprintf("irq%d:", i),
			"    cli",
			"    push byte 0",
			fmt.Sprintf("    push byte %d", IRQBaseVector+i),
			"    jmp "+IRQCommonStub,
		)
	}
	return Document{lines: lines}
}
