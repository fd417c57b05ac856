package event_bus

// Event types published by the agenda subsystem. The rendering layer reports
// user interaction with laid-out blocks through these; the engine itself never
// navigates or persists in response.
const (
	AgendaEventSelected   EventType = "agenda.event.selected"
	AgendaCreateRequested EventType = "agenda.create.requested"
	AgendaEditRequested   EventType = "agenda.edit.requested"
	AgendaDeleteRequested EventType = "agenda.delete.requested"
	MeetingCreated        EventType = "meeting.created"
	MeetingUpdated        EventType = "meeting.updated"
	MeetingDeleted        EventType = "meeting.deleted"
)

// EventSelection identifies one laid-out agenda block.
type EventSelection struct {
	EventID string
	Source  string
	Title   string
}

// CreateRequest carries the date (and optional time slot) the user picked for
// a new meeting.
type CreateRequest struct {
	Date     string
	TimeSlot string
}

// MeetingChange describes a mutation of a local meeting record.
type MeetingChange struct {
	MeetingID string
	Date      string
	Title     string
}
