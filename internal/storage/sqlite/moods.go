package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"tracklit/internal/models"
)

func (s *Store) SaveMoodEntry(e models.MoodEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO mood_entries (id, day, rating, note, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(day) DO UPDATE SET
			rating = excluded.rating,
			note = excluded.note,
			updated_at = excluded.updated_at,
			deleted_at = NULL`,
		e.ID, e.Day, e.Rating, e.Note,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save mood entry: %w", err)
	}
	return nil
}

func (s *Store) GetMoodEntry(day string) (models.MoodEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, day, rating, note, created_at, updated_at, deleted_at
		FROM mood_entries WHERE day = ? AND deleted_at IS NULL`, day)
	return scanMoodEntry(row)
}

func (s *Store) GetMoodEntries(startDay, endDay string) ([]models.MoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, day, rating, note, created_at, updated_at, deleted_at
		FROM mood_entries
		WHERE day >= ? AND day <= ? AND deleted_at IS NULL
		ORDER BY day`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MoodEntry
	for rows.Next() {
		e, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteMoodEntry(day string) error {
	res, err := s.db.Exec(`
		UPDATE mood_entries SET deleted_at = ? WHERE day = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), day,
	)
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("mood entry not found for day: %s", day)
	}
	return nil
}

func scanMoodEntry(row rowScanner) (models.MoodEntry, error) {
	var e models.MoodEntry
	var createdAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &e.Day, &e.Rating, &e.Note, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.MoodEntry{}, err
	}

	if e.CreatedAt, err = parseTime(createdAt, "created_at", e.ID); err != nil {
		return models.MoodEntry{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt, "updated_at", e.ID); err != nil {
		return models.MoodEntry{}, err
	}
	e.DeletedAt = parseTimePtr(deletedAt, "deleted_at", e.ID)

	return e, nil
}
