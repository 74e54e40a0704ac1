package ingestion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// tjWordGap is the TJ kerning adjustment (thousandths of an em) below which a
// gap is rendered as a space.
const tjWordGap = -200

// extractPDF returns the text of every page in document order. Lines are split
// on BT, T*, ' and " like pdf.Reader.GetPlainText, and also on Td/TD/Tm moves
// to a new baseline, which GetPlainText merges into one line.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	var w pdfTextWriter
	for i := 1; i <= r.NumPage(); i++ {
		if err := w.page(r.Page(i)); err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", i, err)
		}
	}
	return w.String(), nil
}

type pdfTextWriter struct {
	strings.Builder
}

func (w *pdfTextWriter) newline() {
	if w.Len() > 0 && !strings.HasSuffix(w.String(), "\n") {
		w.WriteByte('\n')
	}
}

func (w *pdfTextWriter) page(p pdf.Page) (err error) {
	if p.V.IsNull() {
		return nil
	}
	contents := p.V.Key("Contents")
	if contents.Kind() == pdf.Null {
		return nil
	}

	// The content-stream interpreter panics on malformed operators.
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprint(r))
		}
	}()

	var (
		enc     pdf.TextEncoding
		lineY   float64
		hasLine bool
	)
	show := func(v pdf.Value) {
		if enc == nil {
			w.WriteString(v.RawString())
			return
		}
		w.WriteString(enc.Decode(v.RawString()))
	}

	pdf.Interpret(contents, func(stk *pdf.Stack, op string) {
		args := make([]pdf.Value, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "BT", "T*":
			w.newline()
			hasLine = false
		case "Td", "TD":
			if len(args) == 2 && args[1].Float64() != 0 {
				w.newline()
			}
		case "Tm":
			if len(args) == 6 {
				y := args[5].Float64()
				if hasLine && y != lineY {
					w.newline()
				}
				lineY, hasLine = y, true
			}
		case "Tf":
			if len(args) == 2 {
				enc = p.Font(args[0].Name()).Encoder()
			}
		case "'", "\"":
			w.newline()
			if len(args) > 0 {
				show(args[len(args)-1])
			}
		case "Tj":
			if len(args) == 1 {
				show(args[0])
			}
		case "TJ":
			if len(args) != 1 {
				return
			}
			for i := 0; i < args[0].Len(); i++ {
				x := args[0].Index(i)
				switch x.Kind() {
				case pdf.String:
					show(x)
				case pdf.Integer, pdf.Real:
					if x.Float64() < tjWordGap {
						w.WriteByte(' ')
					}
				}
			}
		}
	})
	return nil
}
