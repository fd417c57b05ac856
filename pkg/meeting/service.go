package meeting

import (
	"context"
	"fmt"

	"github.com/agendly/agendly/internal/event_bus"
	"github.com/agendly/agendly/pkg/user"
)

type Service struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *Service {
	return &Service{
		repo: repo,
		bus:  bus,
	}
}

func (s *Service) AddMeeting(ctx context.Context, meeting Meeting) (*Meeting, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	meetingId, err := s.repo.StoreMeeting(ctx, userId, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to store meeting: %w", err)
	}

	meeting.ID = meetingId
	s.publish(ctx, event_bus.MeetingCreated, meeting)

	return &meeting, nil
}

func (s *Service) GetMeetings(ctx context.Context, fromDate, toDate string) ([]Meeting, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return s.repo.GetMeetings(ctx, userId, fromDate, toDate)
}

func (s *Service) ModifyMeeting(ctx context.Context, meeting Meeting) (*Meeting, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.UpdateMeeting(ctx, userId, meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	s.publish(ctx, event_bus.MeetingUpdated, meeting)
	return &meeting, nil
}

func (s *Service) DeleteMeeting(ctx context.Context, meetingId string) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.DeleteMeeting(ctx, userId, meetingId); err != nil {
		return err
	}
	s.publish(ctx, event_bus.MeetingDeleted, Meeting{ID: meetingId})
	return nil
}

func (s *Service) publish(ctx context.Context, eventType event_bus.EventType, m Meeting) {
	if s.bus == nil {
		return
	}
	// Subscriber failures must not fail the mutation; Publish already logs them.
	_ = s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.MeetingChange{
		MeetingID: m.ID,
		Date:      m.Date,
		Title:     m.Title,
	}))
}
