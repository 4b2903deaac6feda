package rewards

import (
	"fmt"
	"sort"

	"github.com/arenatools/questplanner/internal/domain"
)

// fallbackProfile is the designated last-resort profile, used when a table
// has no usable default. Mirrors the free-to-enter play queue.
var fallbackProfile = QueueRewardProfile{
	QueueID:            "play",
	DisplayName:        "play",
	EntryCost:          0,
	GoldRewards:        []int{0, 25, 50, 100, 150, 200, 250},
	AverageGameMinutes: 8,
}

// Table is an immutable, versioned set of queue reward profiles.
type Table struct {
	version   string
	defaultID string
	profiles  map[string]QueueRewardProfile
}

// NewTable builds a table from validated profiles. defaultID names the
// profile returned for unknown queue lookups and must exist in profiles.
func NewTable(version, defaultID string, profiles []QueueRewardProfile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no queue profiles", domain.ErrInvalidRewardTable)
	}

	byID := make(map[string]QueueRewardProfile, len(profiles))
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[p.QueueID]; dup {
			return nil, fmt.Errorf("%w: duplicate queue id %s", domain.ErrInvalidRewardTable, p.QueueID)
		}
		byID[p.QueueID] = p
	}

	if _, ok := byID[defaultID]; !ok {
		return nil, fmt.Errorf("%w: default queue %q not present", domain.ErrInvalidRewardTable, defaultID)
	}

	return &Table{version: version, defaultID: defaultID, profiles: byID}, nil
}

// Version returns the table's configuration version string.
func (t *Table) Version() string {
	return t.version
}

// Len returns the number of queue profiles.
func (t *Table) Len() int {
	return len(t.profiles)
}

// Lookup returns the profile for queueID, falling back to the designated
// default profile for unknown keys. It never fails.
func (t *Table) Lookup(queueID string) QueueRewardProfile {
	if p, ok := t.profiles[queueID]; ok {
		return p
	}
	if p, ok := t.profiles[t.defaultID]; ok {
		return p
	}
	return fallbackProfile
}

// Contains reports whether queueID is a known key (no fallback involved).
func (t *Table) Contains(queueID string) bool {
	_, ok := t.profiles[queueID]
	return ok
}

// QueueIDs returns all known queue IDs in lexicographic order, giving the
// optimizer a deterministic iteration order.
func (t *Table) QueueIDs() []string {
	ids := make([]string, 0, len(t.profiles))
	for id := range t.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
