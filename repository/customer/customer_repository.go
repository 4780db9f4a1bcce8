package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sahanperera/repairshop-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CustomerRepository interface {
	GetAll(ctx context.Context) ([]model.CustomerEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CustomerEntity, error)
	GetByPhone(ctx context.Context, phone string) (*model.CustomerEntity, error)
	EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CustomerEntity) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, upd *model.CustomerUpdate) error
	InsertPhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64, phones []string) error
	DeletePhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error)
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const (
	customerAggBase = `SELECT c.customer_id, c.firstName, c.lastName, c.email, c.type,
COALESCE(GROUP_CONCAT(t.phone_number ORDER BY t.phone_number), '') AS phones
FROM customers c
LEFT JOIN customer_telephones t ON t.customer_id = c.customer_id`

	customerAggGroup = ` GROUP BY c.customer_id, c.firstName, c.lastName, c.email, c.type`

	insertCustomerQuery = `INSERT INTO customers (firstName, lastName, email, type) VALUES (?, ?, ?, ?)`
	updateCustomerQuery = `UPDATE customers SET firstName = ?, lastName = ?, email = ?, type = ? WHERE customer_id = ?`
	deleteCustomerQuery = `DELETE FROM customers WHERE customer_id = ?`

	insertPhonesBase  = `INSERT INTO customer_telephones (customer_id, phone_number) VALUES `
	deletePhonesQuery = `DELETE FROM customer_telephones WHERE customer_id = ?`

	customerEmailCount = `SELECT COUNT(*) FROM customers WHERE email = ?`
	customerPhoneCount = `SELECT COUNT(*) FROM customer_telephones WHERE phone_number = ?`
)

func (s *SQL) GetAll(ctx context.Context) ([]model.CustomerEntity, error) {
	query := customerAggBase + customerAggGroup + " ORDER BY c.customer_id"
	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CustomerEntity, 0)
	for rows.Next() {
		var ent model.CustomerEntity
		if err := rows.StructScan(&ent); err != nil {
			return nil, err
		}
		items = append(items, ent)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CustomerEntity, error) {
	query := customerAggBase + " WHERE c.customer_id = ?" + customerAggGroup
	var ent model.CustomerEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&ent); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *SQL) GetByPhone(ctx context.Context, phone string) (*model.CustomerEntity, error) {
	query := customerAggBase +
		" WHERE c.customer_id IN (SELECT customer_id FROM customer_telephones WHERE phone_number = ?)" +
		customerAggGroup + " LIMIT 1"
	var ent model.CustomerEntity
	if err := s.conn.QueryRowxContext(ctx, query, phone).StructScan(&ent); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

// EmailExists reports whether another customer row already uses the email.
// excludeID is 0 on registration and the row's own id on update.
func (s *SQL) EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error) {
	query := customerEmailCount
	args := []any{email}
	if excludeID != 0 {
		query += " AND customer_id <> ?"
		args = append(args, excludeID)
	}

	var count int
	if err := s.conn.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int
	if err := s.conn.GetContext(ctx, &count, customerPhoneCount, phone); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.CustomerEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertCustomerQuery, data.FirstName, data.LastName, data.Email, data.CustomerType)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, upd *model.CustomerUpdate) error {
	// Pointers bind as-is: an absent field writes NULL (full-replace PUT).
	_, err := tx.ExecContext(ctx, updateCustomerQuery, upd.FirstName, upd.LastName, upd.Email, upd.CustomerType, id)
	return err
}

func (s *SQL) InsertPhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64, phones []string) error {
	if len(phones) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(phones))
	args := make([]any, 0, len(phones)*2)
	for _, phone := range phones {
		placeholders = append(placeholders, "(?, ?)")
		args = append(args, id, phone)
	}

	query := insertPhonesBase + strings.Join(placeholders, ", ")
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) DeletePhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deletePhonesQuery, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteCustomerQuery, id)
	return err
}

// UpdateColumns runs the partial update. Keys are trusted column names; the
// caller filters the payload against its allow-list first.
func (s *SQL) UpdateColumns(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error) {
	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for _, col := range []string{"firstName", "lastName", "email", "type"} {
		if val, ok := columns[col]; ok {
			sets = append(sets, fmt.Sprintf("%s = ?", col))
			args = append(args, val)
		}
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)

	query := "UPDATE customers SET " + strings.Join(sets, ", ") + " WHERE customer_id = ?"
	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
