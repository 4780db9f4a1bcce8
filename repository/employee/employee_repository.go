package employee

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sahanperera/repairshop-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]model.EmployeeEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.EmployeeEntity, error)
	EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error)
	UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewEmployee) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, upd *model.EmployeeUpdate) error
	InsertPhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64, phones []string) error
	DeletePhonesTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

func NewEmployeeRepository(conn *sqlx.DB) EmployeeRepository {
	return &SQL{conn: conn}
}

// The password column is never selected on read paths.
const (
	employeeAggBase = `SELECT e.employee_id, e.first_name, e.last_name, e.email, e.nic, e.role, e.username,
COALESCE(DATE_FORMAT(e.dob, '%Y-%m-%d'), '') AS dob,
COALESCE(GROUP_CONCAT(p.phone_number ORDER BY p.phone_number), '') AS phones
FROM employees e
LEFT JOIN employee_phones p ON p.employee_id = e.employee_id`

	employeeAggGroup = ` GROUP BY e.employee_id, e.first_name, e.last_name, e.email, e.nic, e.role, e.username, e.dob`

	insertEmployeeQuery = `INSERT INTO employees (first_name, last_name, email, nic, role, username, password, dob) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateEmployeeQuery = `UPDATE employees SET first_name = ?, last_name = ?, email = ?, nic = ?, role = ?, username = ?, password = ?, dob = ? WHERE employee_id = ?`
	deleteEmployeeQuery = `DELETE FROM employees WHERE employee_id = ?`

	insertPhonesBase  = `INSERT INTO employee_phones (employee_id, phone_number) VALUES `
	deletePhonesQuery = `DELETE FROM employee_phones WHERE employee_id = ?`

	employeeEmailCount    = `SELECT COUNT(*) FROM employees WHERE email = ?`
	employeeUsernameCount = `SELECT COUNT(*) FROM employees WHERE username = ?`
	employeePhoneCount    = `SELECT COUNT(*) FROM employee_phones WHERE phone_number = ?`
)

func (s *SQL) GetAll(ctx context.Context) ([]model.EmployeeEntity, error) {
	query := employeeAggBase + employeeAggGroup + " ORDER BY e.employee_id"
	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EmployeeEntity, 0)
	for rows.Next() {
		var ent model.EmployeeEntity
		if err := rows.StructScan(&ent); err != nil {
			return nil, err
		}
		items = append(items, ent)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.EmployeeEntity, error) {
	query := employeeAggBase + " WHERE e.employee_id = ?" + employeeAggGroup
	var ent model.EmployeeEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&ent); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *SQL) EmailExists(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return s.exists(ctx, employeeEmailCount, email, excludeID)
}

func (s *SQL) UsernameExists(ctx context.Context, username string, excludeID uint64) (bool, error) {
	return s.exists(ctx, employeeUsernameCount, username, excludeID)
}

func (s *SQL) exists(ctx context.Context, baseQuery, value string, excludeID uint64) (bool, error) {
	query := baseQuery
	args := []any{value}
	if excludeID != 0 {
		query += " AND employee_id <> ?"
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
	if err := s.conn.GetContext(ctx, &count, employeePhoneCount, phone); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.NewEmployee) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertEmployeeQuery,
		data.FirstName, data.LastName, data.Email, data.NIC, data.Role, data.Username, data.PasswordHash, data.DOB)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, upd *model.EmployeeUpdate) error {
	// Pointers bind as-is: an absent field writes NULL (full-replace PUT).
	_, err := tx.ExecContext(ctx, updateEmployeeQuery,
		upd.FirstName, upd.LastName, upd.Email, upd.NIC, upd.Role, upd.Username, upd.PasswordHash, upd.DOB, id)
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
	_, err := tx.ExecContext(ctx, deleteEmployeeQuery, id)
	return err
}
