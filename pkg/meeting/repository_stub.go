package meeting

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// StubRepository is an in-memory Repository used in tests.
type StubRepository struct {
	data map[string]Meeting
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]Meeting{}}
}

func (s *StubRepository) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	return fn(s)
}

func (s *StubRepository) StoreMeeting(ctx context.Context, userId int, meeting Meeting) (string, error) {
	id := uuid.NewString()
	meeting.ID = id
	s.data[id] = meeting
	return id, nil
}

func (s *StubRepository) GetMeetings(ctx context.Context, userId int, fromDate, toDate string) ([]Meeting, error) {
	meetings := make([]Meeting, 0, len(s.data))
	for _, m := range s.data {
		if m.Date >= fromDate && m.Date <= toDate {
			meetings = append(meetings, m)
		}
	}
	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].Date != meetings[j].Date {
			return meetings[i].Date < meetings[j].Date
		}
		return meetings[i].Time < meetings[j].Time
	})
	return meetings, nil
}

func (s *StubRepository) UpdateMeeting(ctx context.Context, userId int, meeting Meeting) error {
	if _, ok := s.data[meeting.ID]; !ok {
		return ErrMeetingNotFound
	}
	s.data[meeting.ID] = meeting
	return nil
}

func (s *StubRepository) DeleteMeeting(ctx context.Context, userId int, meetingId string) error {
	delete(s.data, meetingId)
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]Meeting{}
}
