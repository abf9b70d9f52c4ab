package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Console writes human-readable event lines to w.
type Console struct {
	w io.Writer
}

// NewConsole creates a console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Report(e Event) {
	if len(e.Context) == 0 {
		fmt.Fprintf(c.w, "[%s] %s\n", e.Severity, e.Message)
		return
	}

	// Sorted keys for stable output
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+e.Context[k])
	}

	fmt.Fprintf(c.w, "[%s] %s (%s)\n", e.Severity, e.Message, strings.Join(pairs, " "))
}
