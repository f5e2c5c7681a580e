package game

import (
	"fmt"
	"strings"
	"testing"

	"nationsim/database"
	"nationsim/shared"
)

func newTestNewsLog(t *testing.T) *NewsLog {
	t.Helper()

	db := database.OpenEphemeral()
	t.Cleanup(func() { db.Close() })

	s, err := database.AssignStore(db, database.NEWS_STORE)
	if err != nil {
		t.Fatal(err)
	}

	return NewNewsLog(s)
}

func TestNewsRecordAndLatest(t *testing.T) {
	nl := newTestNewsLog(t)

	nl.RecordEvent("Atlantis has declared war on Lemuria!")

	lines := nl.Latest(10)
	if len(lines) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "Atlantis has declared war on Lemuria!") {
		t.Errorf("unexpected entry: %s", lines[0])
	}
	if !strings.HasPrefix(lines[0], "[") {
		t.Errorf("entries carry a timestamp prefix: %s", lines[0])
	}
}

func TestNewsFiltersReinforcements(t *testing.T) {
	nl := newTestNewsLog(t)

	nl.RecordEvent("Atlantis reinforced its army with 500 infantry.")

	if got := nl.Latest(10); len(got) != 0 {
		t.Errorf("reinforcement events must not be logged, got %v", got)
	}
}

func TestNewsCapped(t *testing.T) {
	nl := newTestNewsLog(t)

	for i := 0; i < shared.MAX_NEWS_ENTRIES+20; i++ {
		nl.RecordEvent(fmt.Sprintf("event %d", i))
	}

	lines := nl.Latest(0)
	if len(lines) != shared.MAX_NEWS_ENTRIES {
		t.Errorf("expected the log capped at %d, got %d", shared.MAX_NEWS_ENTRIES, len(lines))
	}
}
