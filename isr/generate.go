package isr

import (
	"fmt"
	"io"
	"strings"
)

// Document is an ordered sequence of output lines, built once per run
// and handed to a sink. It is never mutated after generation.
type Document struct {
	lines []string
}

// Lines returns a copy of the document's lines.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d Document) String() string {
	return strings.Join(d.lines, "\n") + "\n"
}

// WriteTo writes the rendered document to w.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Generate builds the isr.asm document: a fixed two-line header, one
// global declaration per vector 0..31 ascending, then one stub record
// per vector 0..31 ascending, blank-line separated. Given the fixed
// vector domain and error-code set the output is byte-for-byte
// reproducible; generation itself cannot fail.
func Generate() Document {
	return generate(false)
}

// GenerateAnnotated is Generate with a comment naming the exception
// above every stub record, not just the two the reference documents.
func GenerateAnnotated() Document {
	return generate(true)
}

func generate(annotate bool) Document {
	lines := []string{
		"; A bunch of Interrupt Service Routines (ISRs)",
		"; For info on each ISR see isr.md in Documentation",
	}
	for v := 0; v < NumVectors; v++ {
		lines = append(lines, fmt.Sprintf("global isr%d", v))
	}
	lines = append(lines, "", "; ISR definitions")
	for v := 0; v < NumVectors; v++ {
		spec := specFor(v)
		if annotate && spec.comment == "" {
			spec.comment = vectorNames[v]
		}
		lines = append(lines, "")
		lines = append(lines, stubLines(v, spec)...)
	}
	return Document{lines: lines}
}
