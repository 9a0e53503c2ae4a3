package assertion

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kr/pretty"
)

// ANSI color codes, matching the console logger palette.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

const truncationMarker = "...(truncated)"

// Render formats the failure as a human-readable block:
//
//	assertion failed: expected value to equal
//	  actual:   3
//	  expected: 4
//	  diff (-expected +actual):
//	    ...
func (f Failure) Render(cfg Config) string {
	type line struct{ label, value string }

	lines := []line{{"actual", formatValue(f.Actual, cfg.MaxValueLength)}}
	if f.HasExpected {
		lines = append(lines, line{
			"expected", formatValue(f.Expected, cfg.MaxValueLength),
		})
	}
	for _, d := range f.Details {
		lines = append(lines, line{
			d.Label, formatValue(d.Value, cfg.MaxValueLength),
		})
	}

	width := 0
	for _, l := range lines {
		if n := len(l.label); n > width {
			width = n
		}
	}

	var b strings.Builder
	header := "assertion failed: expected value " + f.Label
	if cfg.Color {
		header = colorRed + header + colorReset
	}
	b.WriteString(header)

	for _, l := range lines {
		label := fmt.Sprintf("%-*s", width+1, l.label+":")
		if cfg.Color {
			label = colorGray + label + colorReset
		}
		b.WriteString("\n  ")
		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(indentContinuation(l.value, width+4))
	}

	if f.ShowDiff && f.HasExpected && cfg.Diff {
		if d := Diff(f.Expected, f.Actual); d != "" {
			label := "diff (-expected +actual):"
			if cfg.Color {
				label = colorGray + label + colorReset
			}
			b.WriteString("\n  ")
			b.WriteString(label)
			for _, dl := range strings.Split(strings.TrimRight(d, "\n"), "\n") {
				b.WriteString("\n    ")
				b.WriteString(dl)
			}
		}
	}

	return b.String()
}

func formatValue(v any, maxLen int) string {
	var s string
	switch x := v.(type) {
	case nil:
		s = "nil"
	case Verbatim:
		s = string(x)
	case error:
		s = fmt.Sprintf("error(%q)", x.Error())
	default:
		s = formatGo(x)
	}
	return truncate(s, maxLen)
}

// formatGo quotes strings, prints other scalars plainly and leaves
// composites to kr/pretty's Go-syntax form.
func formatGo(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	default:
		return pretty.Sprintf("%# v", v)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + truncationMarker
}

// indentContinuation aligns the second and following lines of a
// multi-line rendering under the first.
func indentContinuation(s string, indent int) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	pad := strings.Repeat(" ", indent)
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}

// Sprint renders v the way failure messages do, without
// truncation.
func Sprint(v any) string {
	return formatValue(v, 0)
}
