package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/ember-protocol/ember-go/pkg/log"
)

// Stats aggregates a capture file.
type Stats struct {
	Total       int
	ByCategory  map[log.Category]int
	ByRole      map[log.Role]int
	Requests    int
	Responses   int
	Callbacks   int
	Errors      int
	Bytes       int
	Connections map[string]int
	Start, End  time.Time
}

// Collect reads every event of path.
func Collect(path string) (*Stats, error) {
	r, err := log.NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s := &Stats{
		ByCategory:  make(map[log.Category]int),
		ByRole:      make(map[log.Role]int),
		Connections: make(map[string]int),
	}
	err = each(r, func(e log.Event) {
		s.Total++
		s.ByCategory[e.Category]++
		s.ByRole[e.LocalRole]++
		s.Connections[e.ConnectionID]++
		if s.Start.IsZero() || e.Timestamp.Before(s.Start) {
			s.Start = e.Timestamp
		}
		if e.Timestamp.After(s.End) {
			s.End = e.Timestamp
		}
		switch {
		case e.Message != nil:
			s.Bytes += e.Message.Size
			switch e.Message.Type {
			case log.MessageTypeRequest:
				s.Requests++
			case log.MessageTypeResponse:
				s.Responses++
			}
		case e.Merge != nil:
			s.Callbacks += e.Merge.Callbacks
		case e.Error != nil:
			s.Errors++
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RunStats prints the statistics of path to w.
func RunStats(path string, w io.Writer) error {
	s, err := Collect(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Ember+ Capture Statistics ===")
	fmt.Fprintln(w)
	if s.Total > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total Events: %d\n", s.Total)
	for _, c := range []log.Category{log.CategoryMessage, log.CategoryMerge, log.CategoryError} {
		if n := s.ByCategory[c]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", c.String()+":", n)
		}
	}
	for _, r := range []log.Role{log.RoleConsumer, log.RoleProvider} {
		if n := s.ByRole[r]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", r.String()+":", n)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Requests:    %d\n", s.Requests)
	fmt.Fprintf(w, "Responses:   %d\n", s.Responses)
	fmt.Fprintf(w, "Bytes:       %d\n", s.Bytes)
	fmt.Fprintf(w, "Callbacks:   %d\n", s.Callbacks)
	fmt.Fprintf(w, "Connections: %d\n", len(s.Connections))
	if s.Errors > 0 {
		fmt.Fprintf(w, "Errors:      %d\n", s.Errors)
	}
	return nil
}
