package test_utils

import (
	"context"
	"time"

	"github.com/agendly/agendly/pkg/user"
)

type TestUserProvider struct{}

func (p TestUserProvider) GetCurrentUser(ctx context.Context) (user.User, error) {
	return user.User{
		Id:          123,
		Username:    "test_user",
		DisplayName: "Test User",
		Settings: user.Settings{
			Timezone:             "Europe/Warsaw",
			WeekFirstDay:         time.Monday,
			ExternalCalendarType: user.NoExternalCalendar,
			GoogleCalendar:       user.GoogleCalendarSettings{},
		},
	}, nil
}
