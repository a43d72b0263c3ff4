// Package mirror keeps an in-memory copy of the store's collections and
// reconciles console edits back to the store.
//
// A Mirror is owned by the bubbletea event loop. Commands returned by the
// Synchronizer run on their own goroutines but only ever report results as
// messages; the mirror itself changes only inside Synchronizer.Update.
package mirror

import "github.com/alwaysganesh09/teamtitans06/pkg/domain"

// Mirror is the cached state of every collection plus the active tab.
type Mirror struct {
	records map[domain.Collection][]domain.Record
	loaded  map[domain.Collection]bool
	active  domain.Collection
	stats   domain.ContactStats
}

// New returns an empty mirror with projects active.
func New() Mirror {
	return Mirror{
		records: map[domain.Collection][]domain.Record{},
		loaded:  map[domain.Collection]bool{},
		active:  domain.Projects,
	}
}

// Active returns the collection currently shown.
func (m Mirror) Active() domain.Collection {
	return m.active
}

// Records returns the cached records of c in store order.
func (m Mirror) Records(c domain.Collection) []domain.Record {
	return m.records[c]
}

// Len returns the number of cached records of c.
func (m Mirror) Len(c domain.Collection) int {
	return len(m.records[c])
}

// Loaded reports whether c has been fetched successfully at least once.
func (m Mirror) Loaded(c domain.Collection) bool {
	return m.loaded[c]
}

// Find looks up a cached record by id.
func (m Mirror) Find(c domain.Collection, id string) (domain.Record, bool) {
	for _, r := range m.records[c] {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// ContactStats returns the totals computed at the last contacts load or
// mark-read.
func (m Mirror) ContactStats() domain.ContactStats {
	return m.stats
}

func (m Mirror) withActive(c domain.Collection) Mirror {
	m.active = c
	return m
}

// replace swaps in a freshly loaded sequence. Maps are copied so earlier
// Mirror values keep their view.
func (m Mirror) replace(c domain.Collection, records []domain.Record) Mirror {
	next := make(map[domain.Collection][]domain.Record, len(m.records)+1)
	for k, v := range m.records {
		next[k] = v
	}
	next[c] = records
	m.records = next

	loaded := make(map[domain.Collection]bool, len(m.loaded)+1)
	for k, v := range m.loaded {
		loaded[k] = v
	}
	loaded[c] = true
	m.loaded = loaded

	if c == domain.Contacts {
		m.stats = domain.CountContacts(records)
	}
	return m
}

// markRead patches one contact in place of a reload. Returns false if the
// contact is not cached.
func (m Mirror) markRead(id string) (Mirror, bool) {
	contacts := m.records[domain.Contacts]
	for i, r := range contacts {
		if r.ID() != id {
			continue
		}
		patched := make([]domain.Record, len(contacts))
		copy(patched, contacts)
		rec := r.Clone()
		rec["isRead"] = true
		patched[i] = rec

		next := make(map[domain.Collection][]domain.Record, len(m.records))
		for k, v := range m.records {
			next[k] = v
		}
		next[domain.Contacts] = patched
		m.records = next
		m.stats = domain.CountContacts(patched)
		return m, true
	}
	return m, false
}
