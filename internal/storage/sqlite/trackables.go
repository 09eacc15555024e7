package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"tracklit/internal/models"
)

const trackableColumns = `id, name, type, status, notes, priority, target_count, current_count,
	       recurring, scheduled_date, start_date, last_completed_at, created_at, updated_at, deleted_at`

func (s *Store) AddTrackable(t models.Trackable) error {
	_, err := s.db.Exec(`
		INSERT INTO trackables (`+trackableColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(t.Type), string(t.Status), t.Notes, nullableInt(t.Priority),
		t.TargetCount, t.CurrentCount, t.Recurring,
		formatTimePtr(t.ScheduledDate), formatTimePtr(t.StartDate), formatTimePtr(t.LastCompletedAt),
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339), formatTimePtr(t.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trackable: %w", err)
	}
	return nil
}

func (s *Store) GetTrackable(id string) (models.Trackable, error) {
	row := s.db.QueryRow(`
		SELECT `+trackableColumns+`
		FROM trackables WHERE id = ? AND deleted_at IS NULL`, id)
	return scanTrackable(row)
}

func (s *Store) GetAllTrackables(filter models.TrackableType, includeDeleted bool) ([]models.Trackable, error) {
	query := "SELECT " + trackableColumns + " FROM trackables WHERE 1=1"
	var args []interface{}
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if filter != "" {
		query += " AND type = ?"
		args = append(args, string(filter))
	}
	query += ` ORDER BY
		CASE WHEN scheduled_date IS NULL THEN 1 ELSE 0 END,
		scheduled_date ASC,
		CASE WHEN priority IS NULL THEN 0 ELSE 1 END,
		priority DESC,
		created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackables []models.Trackable
	for rows.Next() {
		t, err := scanTrackable(rows)
		if err != nil {
			return nil, err
		}
		trackables = append(trackables, t)
	}
	return trackables, rows.Err()
}

func (s *Store) UpdateTrackable(t models.Trackable) error {
	res, err := s.db.Exec(`
		UPDATE trackables
		SET name = ?, type = ?, status = ?, notes = ?, priority = ?, target_count = ?,
		    current_count = ?, recurring = ?, scheduled_date = ?, start_date = ?,
		    last_completed_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		t.Name, string(t.Type), string(t.Status), t.Notes, nullableInt(t.Priority),
		t.TargetCount, t.CurrentCount, t.Recurring,
		formatTimePtr(t.ScheduledDate), formatTimePtr(t.StartDate), formatTimePtr(t.LastCompletedAt),
		t.UpdatedAt.Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trackable: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trackable not found: %s", t.ID)
	}
	return nil
}

func (s *Store) DeleteTrackable(id string) error {
	res, err := s.db.Exec(`
		UPDATE trackables SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete trackable: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trackable not found: %s", id)
	}
	return nil
}

func (s *Store) RestoreTrackable(id string) error {
	res, err := s.db.Exec(`
		UPDATE trackables SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to restore trackable: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no deleted trackable found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrackable(row rowScanner) (models.Trackable, error) {
	var t models.Trackable
	var typ, status, createdAt, updatedAt string
	var priority sql.NullInt64
	var scheduledDate, startDate, lastCompletedAt, deletedAt sql.NullString

	err := row.Scan(
		&t.ID, &t.Name, &typ, &status, &t.Notes, &priority, &t.TargetCount, &t.CurrentCount,
		&t.Recurring, &scheduledDate, &startDate, &lastCompletedAt, &createdAt, &updatedAt, &deletedAt,
	)
	if err != nil {
		return models.Trackable{}, err
	}

	t.Type = models.TrackableType(typ)
	t.Status = models.TrackableStatus(status)
	if priority.Valid {
		p := int(priority.Int64)
		t.Priority = &p
	}

	if t.CreatedAt, err = parseTime(createdAt, "created_at", t.ID); err != nil {
		return models.Trackable{}, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt, "updated_at", t.ID); err != nil {
		return models.Trackable{}, err
	}

	t.ScheduledDate = parseTimePtr(scheduledDate, "scheduled_date", t.ID)
	t.StartDate = parseTimePtr(startDate, "start_date", t.ID)
	t.LastCompletedAt = parseTimePtr(lastCompletedAt, "last_completed_at", t.ID)
	t.DeletedAt = parseTimePtr(deletedAt, "deleted_at", t.ID)

	return t, nil
}
