package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	CreateUser(ctx context.Context, user User) (int, error)
	GetUser(ctx context.Context, id int) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, userId int, user User) (User, error)
}

type UserRepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

func (u *UserRepoImpl) CreateUser(ctx context.Context, user User) (int, error) {
	calendarType := user.Settings.ExternalCalendarType
	if calendarType == "" {
		calendarType = NoExternalCalendar
	}
	query := `INSERT INTO users (uid, username, display_name, timezone, week_first_day, external_calendar_type,
				google_calendar_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := u.db.QueryRowContext(ctx, query,
		user.Uid,
		user.Username,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.WeekFirstDay,
		calendarType,
		user.Settings.GoogleCalendar.CalendarId,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, err
	}
	return id, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id int) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, week_first_day, external_calendar_type,
				google_calendar_id FROM users WHERE id = $1`
	return u.scanUser(u.db.QueryRowContext(ctx, query, id))
}

func (u *UserRepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, username, display_name, timezone, week_first_day, external_calendar_type,
				google_calendar_id FROM users WHERE uid = $1`
	return u.scanUser(u.db.QueryRowContext(ctx, query, uid))
}

func (u *UserRepoImpl) scanUser(row *sql.Row) (User, error) {
	var user User
	var googleCalendarId sql.NullString
	err := row.Scan(
		&user.Id,
		&user.Uid,
		&user.Username,
		&user.DisplayName,
		&user.Settings.Timezone,
		&user.Settings.WeekFirstDay,
		&user.Settings.ExternalCalendarType,
		&googleCalendarId,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	if googleCalendarId.Valid {
		user.Settings.GoogleCalendar.CalendarId = googleCalendarId.String
	}
	return user, nil
}

func (u *UserRepoImpl) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	query := `UPDATE users SET display_name = $1, timezone = $2, week_first_day = $3, external_calendar_type = $4,
				google_calendar_id = $5 WHERE id = $6`
	result, err := u.db.ExecContext(ctx, query,
		user.DisplayName,
		user.Settings.Timezone,
		user.Settings.WeekFirstDay,
		user.Settings.ExternalCalendarType,
		user.Settings.GoogleCalendar.CalendarId,
		userId,
	)
	if err != nil {
		return User{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if rowsAffected == 0 {
		log.Info("no rows affected when updating user")
		return User{}, fmt.Errorf("user with id %d: %w", userId, ErrUserNotFound)
	}
	user.Id = userId
	return user, nil
}
