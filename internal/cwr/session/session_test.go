package session

import (
	"strings"
	"testing"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
)

type recordingObserver struct{ events []Event }

func (r *recordingObserver) OnEvent(e Event) { r.events = append(r.events, e) }

func TestParseAllEmitsRecordsInLineOrder(t *testing.T) {
	obs := &recordingObserver{}
	s := New(WithObserver(obs))

	input := "TRL000010000000200000010\r\n"
	results, err := s.ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].LineNumber != 1 {
		t.Fatalf("got line number %d", results[0].LineNumber)
	}
}

func TestSessionVersionOverrideWins(t *testing.T) {
	s := New(WithVersionOverride(cwrversion.V20))
	if s.Version() != cwrversion.V20 {
		t.Fatalf("got %v", s.Version())
	}
}

func TestNewAssignsUniqueSessionIDs(t *testing.T) {
	a, b := New(), New()
	if a.ID == b.ID {
		t.Fatal("expected distinct session IDs")
	}
}
