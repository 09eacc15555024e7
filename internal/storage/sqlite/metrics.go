package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"tracklit/internal/models"
)

const metricColumns = `id, kind, name, value, unit, day, note, created_at, updated_at, deleted_at`

func (s *Store) AddMetricEntry(e models.MetricEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO metric_entries (`+metricColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, string(e.Kind), e.Name, e.Value, e.Unit, e.Day, e.Note,
		e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339), formatTimePtr(e.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert metric entry: %w", err)
	}
	return nil
}

func (s *Store) GetMetricEntry(id string) (models.MetricEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+metricColumns+`
		FROM metric_entries WHERE id = ? AND deleted_at IS NULL`, id)
	return scanMetricEntry(row)
}

func (s *Store) GetMetricEntries(startDay, endDay string) ([]models.MetricEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+metricColumns+`
		FROM metric_entries
		WHERE day >= ? AND day <= ? AND deleted_at IS NULL
		ORDER BY day, kind, name`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MetricEntry
	for rows.Next() {
		e, err := scanMetricEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateMetricEntry(e models.MetricEntry) error {
	res, err := s.db.Exec(`
		UPDATE metric_entries
		SET kind = ?, name = ?, value = ?, unit = ?, day = ?, note = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		string(e.Kind), e.Name, e.Value, e.Unit, e.Day, e.Note,
		e.UpdatedAt.Format(time.RFC3339), e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update metric entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("metric entry not found: %s", e.ID)
	}
	return nil
}

func (s *Store) DeleteMetricEntry(id string) error {
	res, err := s.db.Exec(`
		UPDATE metric_entries SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete metric entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("metric entry not found: %s", id)
	}
	return nil
}

func scanMetricEntry(row rowScanner) (models.MetricEntry, error) {
	var e models.MetricEntry
	var kind, createdAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &kind, &e.Name, &e.Value, &e.Unit, &e.Day, &e.Note, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.MetricEntry{}, err
	}

	e.Kind = models.MetricKind(kind)
	if e.CreatedAt, err = parseTime(createdAt, "created_at", e.ID); err != nil {
		return models.MetricEntry{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt, "updated_at", e.ID); err != nil {
		return models.MetricEntry{}, err
	}
	e.DeletedAt = parseTimePtr(deletedAt, "deleted_at", e.ID)

	return e, nil
}
