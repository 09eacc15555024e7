package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"tracklit/internal/models"
)

const transactionColumns = `id, day, amount, currency, category, payee, note, created_at, updated_at, deleted_at`

func (s *Store) AddTransaction(t models.Transaction) error {
	_, err := s.db.Exec(`
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.Day, t.Amount, t.Currency, t.Category, t.Payee, t.Note,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339), formatTimePtr(t.DeletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (s *Store) GetTransaction(id string) (models.Transaction, error) {
	row := s.db.QueryRow(`
		SELECT `+transactionColumns+`
		FROM transactions WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanTransaction(row)
}

func (s *Store) GetTransactions(startDay, endDay string) ([]models.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
		ORDER BY day, created_at`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (s *Store) UpdateTransaction(t models.Transaction) error {
	res, err := s.db.Exec(`
		UPDATE transactions
		SET day = $1, amount = $2, currency = $3, category = $4, payee = $5, note = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL`,
		t.Day, t.Amount, t.Currency, t.Category, t.Payee, t.Note,
		t.UpdatedAt.Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction not found: %s", t.ID)
	}
	return nil
}

func (s *Store) DeleteTransaction(id string) error {
	res, err := s.db.Exec(`
		UPDATE transactions SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

func (s *Store) SummarizeTransactions(startDay, endDay string) ([]models.CategorySummary, error) {
	rows, err := s.db.Query(`
		SELECT category, COUNT(*), SUM(amount)
		FROM transactions
		WHERE day >= $1 AND day <= $2 AND deleted_at IS NULL
		GROUP BY category
		ORDER BY category`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.CategorySummary
	for rows.Next() {
		var cs models.CategorySummary
		if err := rows.Scan(&cs.Category, &cs.Count, &cs.Total); err != nil {
			return nil, err
		}
		summaries = append(summaries, cs)
	}
	return summaries, rows.Err()
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	var createdAt, updatedAt string
	var deletedAt sql.NullString

	err := row.Scan(&t.ID, &t.Day, &t.Amount, &t.Currency, &t.Category, &t.Payee, &t.Note, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return models.Transaction{}, err
	}

	if t.CreatedAt, err = parseTime(createdAt, "created_at", t.ID); err != nil {
		return models.Transaction{}, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt, "updated_at", t.ID); err != nil {
		return models.Transaction{}, err
	}
	t.DeletedAt = parseTimePtr(deletedAt, "deleted_at", t.ID)

	return t, nil
}
