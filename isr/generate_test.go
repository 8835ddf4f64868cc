package isr

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecords splits the definitions half of a document at the given
// header line into one block of lines per stub, in emission order.
func stubRecords(t *testing.T, doc Document, header string) [][]string {
	parts := strings.SplitN(doc.String(), header+"\n", 2)
	require.Len(t, parts, 2, "document is missing the definitions header")
	blocks := strings.Split(strings.TrimSpace(parts[1]), "\n\n")
	records := make([][]string, 0, len(blocks))
	for _, block := range blocks {
		records = append(records, strings.Split(block, "\n"))
	}
	return records
}

func TestHeader(t *testing.T) {
	lines := Generate().Lines()
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "; A bunch of Interrupt Service Routines (ISRs)", lines[0])
	assert.Equal(t, "; For info on each ISR see isr.md in Documentation", lines[1])
}

func TestDeclarations(t *testing.T) {
	lines := Generate().Lines()
	require.Greater(t, len(lines), 2+NumVectors)

	// one global per vector, strictly ascending, right after the header
	for v := 0; v < NumVectors; v++ {
		assert.Equal(t, fmt.Sprintf("global isr%d", v), lines[2+v])
	}

	// and no stray declarations anywhere else
	count := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "global ") {
			count++
		}
	}
	assert.Equal(t, NumVectors, count)
}

func TestStubCompletenessAndOrdering(t *testing.T) {
	records := stubRecords(t, Generate(), "; ISR definitions")
	require.Len(t, records, NumVectors)

	for v, record := range records {
		label := fmt.Sprintf("isr%d:", v)
		assert.Contains(t, record, label, "record %d must carry its own label", v)
	}
}

func TestStackShape(t *testing.T) {
	records := stubRecords(t, Generate(), "; ISR definitions")
	require.Len(t, records, NumVectors)

	for v, record := range records {
		pushes := []string{}
		for _, line := range record {
			if strings.HasPrefix(line, "    push byte ") {
				pushes = append(pushes, line)
			}
		}

		if HasErrorCode(v) {
			// the CPU supplies the error code, only the isr code is pushed
			require.Len(t, pushes, 1, "vector %d", v)
		} else {
			// dummy error code first, then the isr code
			require.Len(t, pushes, 2, "vector %d", v)
			assert.True(t, strings.HasPrefix(pushes[0], "    push byte 0"), "vector %d dummy push", v)
		}

		assert.Equal(t, "    jmp "+CommonStub, record[len(record)-1], "vector %d", v)
	}
}

func TestStubScenarios(t *testing.T) {
	records := stubRecords(t, Generate(), "; ISR definitions")
	require.Len(t, records, NumVectors)

	testCases := []struct {
		name   string
		vector int
		want   []string
	}{
		{"divide_by_zero", 0, []string{
			"; Divide by 0",
			"isr0:",
			"    cli ; Disable interrupts",
			"    push byte 0 ; push a dummy error code",
			"    push byte 0 ; push the isr code",
			"    jmp isr_common_stub",
		}},
		{"double_fault", 8, []string{
			"; Double Fault Exception",
			"isr8:",
			"    cli ; Disable interrupts",
			"    ; We don't push a dummy error code since this interrupt comes with one",
			"    push byte 0 ; push the isr code",
			"    jmp isr_common_stub",
		}},
		{"general_protection", 13, []string{
			"isr13:",
			"    cli",
			"    push byte 13",
			"    jmp isr_common_stub",
		}},
		{"no_coprocessor", 7, []string{
			"isr7:",
			"    cli",
			"    push byte 0",
			"    push byte 7",
			"    jmp isr_common_stub",
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, records[tc.vector])
		})
	}
}

func TestDeterminism(t *testing.T) {
	assert.Equal(t, Generate().String(), Generate().String())
	assert.Equal(t, GenerateAnnotated().String(), GenerateAnnotated().String())
	assert.Equal(t, GenerateIRQ().String(), GenerateIRQ().String())
}

func TestGenerateAnnotated(t *testing.T) {
	plain := stubRecords(t, Generate(), "; ISR definitions")
	annotated := stubRecords(t, GenerateAnnotated(), "; ISR definitions")
	require.Len(t, annotated, NumVectors)

	for v, record := range annotated {
		assert.Equal(t, "; "+vectorNames[v], record[0], "vector %d comment", v)
	}

	// the two hand-documented vectors render identically in both modes
	assert.Equal(t, plain[0], annotated[0])
	assert.Equal(t, plain[8], annotated[8])

	// annotation adds the comment line, nothing else
	assert.Equal(t, plain[3], annotated[3][1:])
}

func TestWriteTo(t *testing.T) {
	doc := Generate()
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, doc.String(), buf.String())
}
