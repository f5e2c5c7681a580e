package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"nationsim/database/store"
	"nationsim/shared"
	"nationsim/structs"
)

// Army reinforcement happens constantly and would drown out everything else,
// so those events never make the log.
const reinforcementMarker = "reinforced its army"

// EventRecorder backed by a capped store. Oldest entries are dropped once the
// log exceeds [shared.MAX_NEWS_ENTRIES].
type NewsLog struct {
	store *store.Store[structs.NewsItem]
}

func NewNewsLog(s *store.Store[structs.NewsItem]) *NewsLog {
	return &NewsLog{store: s}
}

func (nl *NewsLog) RecordEvent(message string) {
	if strings.Contains(message, reinforcementMarker) {
		return
	}

	item := structs.NewsItem{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := nl.store.Set(item.ID, item); err != nil {
		log.Errorf("failed to record news item: %v", err)
		return
	}

	log.Info(message)
	nl.trim()
}

// Returns up to limit entries, oldest first, formatted with a timestamp prefix.
func (nl *NewsLog) Latest(limit int) []string {
	items := nl.store.ValuesSorted(func(a, b structs.NewsItem) int {
		return int(a.Timestamp - b.Timestamp)
	})

	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		ts := time.UnixMilli(item.Timestamp).Format("15:04:05")
		lines = append(lines, "["+ts+"] "+item.Message)
	}

	return lines
}

func (nl *NewsLog) trim() {
	excess := nl.store.Count() - shared.MAX_NEWS_ENTRIES
	if excess <= 0 {
		return
	}

	oldest := nl.store.ValuesSorted(func(a, b structs.NewsItem) int {
		return int(a.Timestamp - b.Timestamp)
	})

	for _, item := range oldest[:excess] {
		if err := nl.store.Delete(item.ID); err != nil {
			log.Errorf("failed to trim news item %s: %v", item.ID, err)
		}
	}
}
