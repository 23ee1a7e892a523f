// Package commands implements the ember-log commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ember-protocol/ember-go/pkg/log"
)

// FilterOptions holds the textual event selection flags.
type FilterOptions struct {
	ConnID    string
	Layer     string
	Direction string
	Category  string
	Role      string
	TimeStart string
	TimeEnd   string
}

// Filter converts the options to a log.Filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	f := log.Filter{ConnectionID: o.ConnID}

	if o.Layer != "" {
		l, err := parseEnum(o.Layer, "layer", map[string]log.Layer{
			"codec": log.LayerCodec,
			"tree":  log.LayerTree,
		})
		if err != nil {
			return f, err
		}
		f.Layer = &l
	}
	if o.Direction != "" {
		d, err := parseEnum(o.Direction, "direction", map[string]log.Direction{
			"in":  log.DirectionIn,
			"out": log.DirectionOut,
		})
		if err != nil {
			return f, err
		}
		f.Direction = &d
	}
	if o.Category != "" {
		c, err := parseEnum(o.Category, "category", map[string]log.Category{
			"message": log.CategoryMessage,
			"merge":   log.CategoryMerge,
			"error":   log.CategoryError,
		})
		if err != nil {
			return f, err
		}
		f.Category = &c
	}
	if o.Role != "" {
		r, err := parseEnum(o.Role, "role", map[string]log.Role{
			"consumer": log.RoleConsumer,
			"provider": log.RoleProvider,
		})
		if err != nil {
			return f, err
		}
		f.Role = &r
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return f, fmt.Errorf("invalid time-start: %w", err)
		}
		f.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return f, fmt.Errorf("invalid time-end: %w", err)
		}
		f.TimeEnd = &t
	}
	return f, nil
}

func parseEnum[T any](s, what string, values map[string]T) (T, error) {
	if v, ok := values[strings.ToLower(s)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s: %q", what, s)
}

// RunFilter copies the events of path matching opts to output and returns
// how many were copied.
func RunFilter(path, output string, opts FilterOptions) (int, error) {
	filter, err := opts.Filter()
	if err != nil {
		return 0, err
	}
	r, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	out, err := log.NewFileLogger(output)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	n := 0
	err = each(r, func(e log.Event) {
		out.Log(e)
		n++
	})
	return n, err
}

func each(r *log.Reader, fn func(log.Event)) error {
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(e)
	}
}
