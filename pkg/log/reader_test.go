package log

import (
	"path/filepath"
	"testing"
	"time"
)

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, ConnectionID: "a", Direction: DirectionOut, Layer: LayerCodec, Category: CategoryMessage,
			Message: &MessageEvent{Type: MessageTypeRequest}},
		{Timestamp: base.Add(time.Second), ConnectionID: "a", Direction: DirectionIn, Layer: LayerCodec, Category: CategoryMessage,
			Message: &MessageEvent{Type: MessageTypeResponse}},
		{Timestamp: base.Add(2 * time.Second), ConnectionID: "a", Direction: DirectionIn, Layer: LayerTree, Category: CategoryMerge,
			Merge: &MergeEvent{Elements: 1, Callbacks: 1}},
		{Timestamp: base.Add(3 * time.Second), ConnectionID: "b", LocalRole: RoleProvider, Direction: DirectionIn, Layer: LayerCodec, Category: CategoryError,
			Error: &ErrorEventData{Layer: LayerCodec, Message: "malformed BER encoding"}},
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	path := writeCapture(t, sampleEvents(base))

	in := DirectionIn
	tree := LayerTree
	errs := CategoryError
	provider := RoleProvider
	resp := MessageTypeResponse
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 4},
		{"connection", Filter{ConnectionID: "a"}, 3},
		{"direction", Filter{Direction: &in}, 3},
		{"layer", Filter{Layer: &tree}, 1},
		{"category", Filter{Category: &errs}, 1},
		{"role", Filter{Role: &provider}, 1},
		{"message type", Filter{MessageType: &resp}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{ConnectionID: "a", Direction: &in, Layer: &tree}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader: %v", err)
			}
			defer r.Close()
			if got := len(readAll(t, r)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeCapture(t, nil)
	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	if events := readAll(t, r); len(events) != 0 {
		t.Errorf("got %d events", len(events))
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "none.elog")); err == nil {
		t.Error("expected error")
	}
}
