package meeting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrMeetingNotFound = errors.New("meeting not found")

type Repository interface {
	WithTransaction(ctx context.Context, fn func(repo Repository) error) error
	StoreMeeting(ctx context.Context, userId int, meeting Meeting) (string, error)
	GetMeetings(ctx context.Context, userId int, fromDate, toDate string) ([]Meeting, error)
	UpdateMeeting(ctx context.Context, userId int, meeting Meeting) error
	DeleteMeeting(ctx context.Context, userId int, meetingId string) error
}

type RepositoryImpl struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db, tx: nil}
}

// getQueryer returns the appropriate database interface for queries (either tx or db)
func (r *RepositoryImpl) getQueryer() interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// The Rollback will be a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	txRepo := &RepositoryImpl{db: r.db, tx: tx}

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *RepositoryImpl) StoreMeeting(ctx context.Context, userId int, meeting Meeting) (string, error) {
	query := `INSERT INTO meeting (
                            id,
                            date,
                            time,
                            category,
                            title,
                            contact,
                            location,
                            description,
                            user_id
						) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	id := uuid.NewString()
	_, err := r.getQueryer().ExecContext(ctx, query, id, meeting.Date, meeting.Time, meeting.Category,
		meeting.Title, meeting.Contact, meeting.Location, meeting.Description, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return "", err
	}

	return id, nil
}

// GetMeetings returns meetings whose stored date falls inside [fromDate, toDate].
// Dates use the "YYYY-MM-DD" form, so lexical comparison matches chronological order.
func (r *RepositoryImpl) GetMeetings(ctx context.Context, userId int, fromDate, toDate string) ([]Meeting, error) {
	query := `SELECT id, date, time, category, title, contact, location, description
              FROM meeting
              WHERE user_id = $1
                AND date >= $2
                AND date <= $3
			  ORDER BY date, time`

	rows, err := r.getQueryer().QueryContext(ctx, query, userId, fromDate, toDate)
	if err != nil {
		err := fmt.Errorf("could not query meetings: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	meetings := make([]Meeting, 0, 10)
	for rows.Next() {
		var m Meeting
		var location, description sql.NullString
		err := rows.Scan(&m.ID, &m.Date, &m.Time, &m.Category, &m.Title, &m.Contact, &location, &description)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		m.Location = location.String
		m.Description = description.String
		meetings = append(meetings, m)
	}
	return meetings, nil
}

func (r *RepositoryImpl) UpdateMeeting(ctx context.Context, userId int, meeting Meeting) error {
	query := `UPDATE meeting SET date = $1, time = $2, category = $3, title = $4, contact = $5, location = $6,
				description = $7 WHERE id = $8 AND user_id = $9`
	result, err := r.getQueryer().ExecContext(ctx, query, meeting.Date, meeting.Time, meeting.Category,
		meeting.Title, meeting.Contact, meeting.Location, meeting.Description, meeting.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("meeting %s: %w", meeting.ID, ErrMeetingNotFound)
	}
	return nil
}

func (r *RepositoryImpl) DeleteMeeting(ctx context.Context, userId int, meetingId string) error {
	query := `DELETE FROM meeting WHERE id = $1 AND user_id = $2`
	_, err := r.getQueryer().ExecContext(ctx, query, meetingId, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
