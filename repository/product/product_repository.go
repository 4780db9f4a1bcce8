package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sahanperera/repairshop-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetAll(ctx context.Context) ([]model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	Create(ctx context.Context, data *model.ProductEntity) (uint64, error)
	Update(ctx context.Context, id uint64, upd *model.ProductUpdate) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsQuery  = `SELECT product_id, product_name, model, model_no, product_image FROM products ORDER BY product_id`
	getProductQuery    = `SELECT product_id, product_name, model, model_no, product_image FROM products WHERE product_id = ?`
	insertProductQuery = `INSERT INTO products (product_name, model, model_no, product_image) VALUES (?, ?, ?, ?)`
	updateProductQuery = `UPDATE products SET product_name = ?, model = ?, model_no = ?, product_image = ? WHERE product_id = ?`
	deleteProductQuery = `DELETE FROM products WHERE product_id = ?`
)

func (s *SQL) GetAll(ctx context.Context) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var ent model.ProductEntity
		if err := rows.StructScan(&ent); err != nil {
			return nil, err
		}
		items = append(items, ent)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var ent model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&ent); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ent, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery, data.ProductName, data.Model, data.ModelNo, data.ProductImage)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, upd *model.ProductUpdate) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery, upd.ProductName, upd.Model, upd.ModelNo, upd.ProductImage, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}
