package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/ember-protocol/ember-go/pkg/log"
)

// RunView prints the events of path matching opts to w.
func RunView(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Filter()
	if err != nil {
		return err
	}
	r, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer r.Close()

	return each(r, func(e log.Event) { formatEvent(w, e) })
}

// formatEvent writes one event: a header line, indented details and a
// blank line.
func formatEvent(w io.Writer, e log.Event) {
	label := "Event"
	switch {
	case e.Message != nil:
		label = e.Message.Type.String()
	case e.Merge != nil:
		label = "Merge"
	case e.Error != nil:
		label = "Error"
	}
	fmt.Fprintf(w, "%s [conn:%s] %-8s %-3s %-5s %s\n",
		e.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		shortID(e.ConnectionID), e.LocalRole, e.Direction, e.Layer, label)

	switch {
	case e.Message != nil:
		m := e.Message
		fmt.Fprintf(w, "  Size: %d bytes, %d elements\n", m.Size, m.Elements)
		if len(m.Path) > 0 {
			fmt.Fprintf(w, "  Path: %s\n", log.FormatPath(m.Path))
		}
		if m.Command != nil {
			fmt.Fprintf(w, "  Command: %d\n", *m.Command)
		}
		if len(m.Data) > 0 {
			fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(m.Data))
			if m.Truncated {
				fmt.Fprint(w, " (truncated)")
			}
			fmt.Fprintln(w)
		}
	case e.Merge != nil:
		fmt.Fprintf(w, "  Elements: %d, callbacks: %d, took %s\n", e.Merge.Elements, e.Merge.Callbacks, e.Merge.Duration)
	case e.Error != nil:
		fmt.Fprintf(w, "  %s error: %s\n", e.Error.Layer, e.Error.Message)
		if e.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", e.Error.Context)
		}
	}
	fmt.Fprintln(w)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
