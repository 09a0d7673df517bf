package printer

import "strings"

// DefaultPrintWidth is the default column budget a Group tries to fit within (spec §4.3).
const DefaultPrintWidth uint16 = 80

// IndentStyle selects how one indent level is rendered: a single tab, or n spaces (spec §4.3).
type IndentStyle struct {
	tab    bool
	spaces int
}

// Tab renders one indent level as a single horizontal tab, counted as width 1 for measurement.
func Tab() IndentStyle { return IndentStyle{tab: true} }

// Spaces renders one indent level as n spaces, counted as width n for measurement. n must be in
// [1,8] (spec §4.3).
func Spaces(n int) IndentStyle {
	if n < 1 || n > 8 {
		panic("printer: Spaces indent width must be in [1,8]")
	}
	return IndentStyle{spaces: n}
}

func (s IndentStyle) isZero() bool { return !s.tab && s.spaces == 0 }

func (s IndentStyle) text(level int) string {
	if level <= 0 {
		return ""
	}
	if s.tab {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", s.spaces*level)
}

func (s IndentStyle) width(level int) int {
	if level <= 0 {
		return 0
	}
	if s.tab {
		return level
	}
	return s.spaces * level
}

// Options configures a format run (spec §4.3 "Inputs and outputs", spec §6 "Options").
type Options struct {
	// PrintWidth is the column budget a Group tries to fit within. Zero means DefaultPrintWidth.
	PrintWidth uint16
	// Indent selects Tab or Spaces(n). The zero value means Tab.
	Indent IndentStyle
	// Debugf, if non-nil, receives low-volume diagnostic records (group restarts, snapshot
	// restores). It is never required for correctness and is never on the success/failure path
	// of any format run (spec §5: the printer has no suspension points and runs synchronously;
	// Debugf is a side observation, not a control dependency).
	Debugf func(format string, args ...any)
}

func (o Options) normalize() Options {
	if o.PrintWidth == 0 {
		o.PrintWidth = DefaultPrintWidth
	}
	if o.Indent.isZero() {
		o.Indent = Tab()
	}
	return o
}

func (o Options) debugf(format string, args ...any) {
	if o.Debugf != nil {
		o.Debugf(format, args...)
	}
}
