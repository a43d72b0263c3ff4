package mirror

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

// Remote is the store the mirror synchronizes with. *client.Client satisfies it.
type Remote interface {
	List(ctx context.Context, c domain.Collection) ([]domain.Record, error)
	Create(ctx context.Context, c domain.Collection, p domain.Payload) (domain.Record, error)
	Update(ctx context.Context, c domain.Collection, id string, p domain.Payload) (domain.Record, error)
	Delete(ctx context.Context, c domain.Collection, id string) error
	MarkContactRead(ctx context.Context, id string) (domain.Record, error)
}

// LoadedMsg carries the result of a read-all request.
type LoadedMsg struct {
	Collection domain.Collection
	Records    []domain.Record
	Err        error
}

// SavedMsg carries the result of a create or update. ID is the id that was
// updated, "" for a create.
type SavedMsg struct {
	Collection domain.Collection
	ID         string
	Record     domain.Record
	Err        error
}

// Created reports whether the write was a create.
func (m SavedMsg) Created() bool { return m.ID == "" }

// RemovedMsg carries the result of a delete.
type RemovedMsg struct {
	Collection domain.Collection
	ID         string
	Err        error
}

// MarkedReadMsg carries the result of flagging a contact as read.
type MarkedReadMsg struct {
	ID  string
	Err error
}

// Synchronizer pairs the mirror with the remote store. Every operation is a
// single independent request; writes are followed by a reload of the same
// collection rather than a local patch.
type Synchronizer struct {
	remote  Remote
	log     logrus.FieldLogger
	mirror  Mirror
	pending int
}

// NewSynchronizer creates a synchronizer over an empty mirror.
func NewSynchronizer(remote Remote, log logrus.FieldLogger) Synchronizer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return Synchronizer{remote: remote, log: log, mirror: New()}
}

// Mirror returns the current cached state.
func (s Synchronizer) Mirror() Mirror { return s.mirror }

// Pending returns the number of requests in flight.
func (s Synchronizer) Pending() int { return s.pending }

// Load fetches every record of c.
func (s Synchronizer) Load(c domain.Collection) (Synchronizer, tea.Cmd) {
	s.pending++
	remote := s.remote
	return s, func() tea.Msg {
		records, err := remote.List(context.Background(), c)
		return LoadedMsg{Collection: c, Records: records, Err: err}
	}
}

// SwitchTab makes c active and always reloads it.
func (s Synchronizer) SwitchTab(c domain.Collection) (Synchronizer, tea.Cmd) {
	s.mirror = s.mirror.withActive(c)
	return s.Load(c)
}

// Submit validates and normalizes form input, then creates a record (empty
// id) or replaces the editable fields of an existing one. A validation error
// is returned without contacting the store.
func (s Synchronizer) Submit(c domain.Collection, values map[string]string, id string) (Synchronizer, tea.Cmd, error) {
	payload, err := domain.BuildPayload(c, values)
	if err != nil {
		return s, nil, err
	}
	s.pending++
	remote := s.remote
	return s, func() tea.Msg {
		var rec domain.Record
		var err error
		if id == "" {
			rec, err = remote.Create(context.Background(), c, payload)
		} else {
			rec, err = remote.Update(context.Background(), c, id, payload)
		}
		return SavedMsg{Collection: c, ID: id, Record: rec, Err: err}
	}, nil
}

// Remove deletes a record by id. Callers confirm with the user first.
func (s Synchronizer) Remove(c domain.Collection, id string) (Synchronizer, tea.Cmd) {
	s.pending++
	remote := s.remote
	return s, func() tea.Msg {
		err := remote.Delete(context.Background(), c, id)
		return RemovedMsg{Collection: c, ID: id, Err: err}
	}
}

// MarkRead flags a cached contact as read. It returns a nil command when the
// contact is unknown or already read.
func (s Synchronizer) MarkRead(id string) (Synchronizer, tea.Cmd) {
	rec, ok := s.mirror.Find(domain.Contacts, id)
	if !ok || rec.Bool("isRead") {
		return s, nil
	}
	s.pending++
	remote := s.remote
	return s, func() tea.Msg {
		_, err := remote.MarkContactRead(context.Background(), id)
		return MarkedReadMsg{ID: id, Err: err}
	}
}

// Update applies a result message to the mirror and returns any follow-up
// request. Messages it does not own are ignored.
func (s Synchronizer) Update(msg tea.Msg) (Synchronizer, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		s.done()
		if msg.Err != nil {
			s.logFailure("load", msg.Collection, "", msg.Err)
			return s, nil
		}
		records := msg.Records
		if records == nil {
			records = []domain.Record{}
		}
		s.mirror = s.mirror.replace(msg.Collection, records)
		s.log.WithFields(logrus.Fields{"op": "load", "collection": msg.Collection, "count": len(records)}).Debug("collection loaded")
		return s, nil

	case SavedMsg:
		s.done()
		op := "update"
		if msg.Created() {
			op = "create"
		}
		if msg.Err != nil {
			s.logFailure(op, msg.Collection, msg.ID, msg.Err)
			return s, nil
		}
		s.log.WithFields(logrus.Fields{"op": op, "collection": msg.Collection, "id": msg.Record.ID()}).Info("record saved")
		return s.Load(msg.Collection)

	case RemovedMsg:
		s.done()
		if msg.Err != nil {
			s.logFailure("delete", msg.Collection, msg.ID, msg.Err)
			return s, nil
		}
		s.log.WithFields(logrus.Fields{"op": "delete", "collection": msg.Collection, "id": msg.ID}).Info("record deleted")
		return s.Load(msg.Collection)

	case MarkedReadMsg:
		s.done()
		if msg.Err != nil {
			s.logFailure("mark-read", domain.Contacts, msg.ID, msg.Err)
			return s, nil
		}
		s.mirror, _ = s.mirror.markRead(msg.ID)
		return s, nil
	}
	return s, nil
}

func (s *Synchronizer) done() {
	if s.pending > 0 {
		s.pending--
	}
}

func (s Synchronizer) logFailure(op string, c domain.Collection, id string, err error) {
	fields := logrus.Fields{"op": op, "collection": c}
	if id != "" {
		fields["id"] = id
	}
	s.log.WithFields(fields).WithError(err).Warnf("%s failed", op)
}
