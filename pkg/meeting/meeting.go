package meeting

type Category string

const (
	CategoryCall    Category = "call"
	CategoryVideo   Category = "video"
	CategoryMeeting Category = "meeting"
)

// Meeting is a locally stored appointment as the closer entered it. Date and
// Time keep their stored string forms ("YYYY-MM-DD", "HH:MM - HH:MM");
// interpretation happens during agenda normalization.
type Meeting struct {
	ID          string
	Date        string
	Time        string
	Category    Category
	Title       string
	Contact     string
	Location    string
	Description string
}
