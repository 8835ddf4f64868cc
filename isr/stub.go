package isr

import "fmt"

// stubSpec parameterizes the uniform stub template. The zero value with
// code set to the vector number renders the plain case: label, cli,
// dummy push if the CPU supplies no error code, vector push, jump.
type stubSpec struct {
	comment   string // comment line emitted above the label
	annotated bool   // inline commentary on the cli/push lines
	code      int    // value pushed as the isr code
}

// stubOverrides carries the two vectors the reference stubs document by
// hand. Both force an isr code of 0 on the stack, which the shared
// dispatcher relies on. Adding another special case is a data change
// here, not a control-flow change in the template.
var stubOverrides = map[int]stubSpec{
	0: {comment: "Divide by 0", annotated: true, code: 0},
	8: {comment: "Double Fault Exception", annotated: true, code: 0},
}

func specFor(vector int) stubSpec {
	if spec, ok := stubOverrides[vector]; ok {
		return spec
	}
	return stubSpec{code: vector}
}

// stubLines renders one stub record. Every record leaves the stack as
// [error_code, vector_number, hardware frame] at the jump: when the CPU
// pushes no error code for the vector, a dummy zero goes first so the
// dispatcher sees the same shape for all 32 vectors.
func stubLines(vector int, spec stubSpec) []string {
	lines := make([]string, 0, 7)
	if spec.comment != "" {
		lines = append(lines, "; "+spec.comment)
	}
	lines = append(lines, fmt.Sprintf("isr%d:", vector))
	if spec.annotated {
		lines = append(lines, "    cli ; Disable interrupts")
		if HasErrorCode(vector) {
			lines = append(lines, "    ; We don't push a dummy error code since this interrupt comes with one")
		} else {
			lines = append(lines, "    push byte 0 ; push a dummy error code")
		}
		lines = append(lines, fmt.Sprintf("    push byte %d ; push the isr code", spec.code))
	} else {
		lines = append(lines, "    cli")
		if !HasErrorCode(vector) {
			lines = append(lines, "    push byte 0")
		}
		lines = append(lines, fmt.Sprintf("    push byte %d", spec.code))
	}
	lines = append(lines, "    jmp "+CommonStub)
	return lines
}
