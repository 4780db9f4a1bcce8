package model

type ProductEntity struct {
	ProductID    uint64  `db:"product_id"`
	ProductName  string  `db:"product_name"`
	Model        string  `db:"model"`
	ModelNo      string  `db:"model_no"`
	ProductImage *string `db:"product_image"`
}

type Product struct {
	ProductID    uint64  `json:"product_id"`
	ProductName  string  `json:"productName"`
	Model        string  `json:"model"`
	ModelNo      string  `json:"modelNo"`
	ProductImage *string `json:"productImage"`
}

func (e *ProductEntity) ToProduct() Product {
	return Product{
		ProductID:    e.ProductID,
		ProductName:  e.ProductName,
		Model:        e.Model,
		ModelNo:      e.ModelNo,
		ProductImage: e.ProductImage,
	}
}

// AddProductRequest is built from multipart form values; the optional image
// file is handled separately by the filestore.
type AddProductRequest struct {
	ProductName string `json:"productName" validate:"required,max=100"`
	Model       string `json:"model" validate:"required,max=50"`
	ModelNo     string `json:"modelNo" validate:"required,max=30"`
}

type UpdateProductRequest struct {
	ProductName *string `json:"productName" validate:"omitempty,max=100"`
	Model       *string `json:"model" validate:"omitempty,max=50"`
	ModelNo     *string `json:"modelNo" validate:"omitempty,max=30,alphanum"`
}

type AddProductResponse struct {
	Message   string `json:"message"`
	ProductID uint64 `json:"productId"`
}

// ProductUpdate is the column image written by a full update. A nil
// ProductImage leaves the stored path untouched only when no new file was
// uploaded and the column was already NULL; other fields follow the
// overwrite-with-NULL PUT contract.
type ProductUpdate struct {
	ProductName  *string
	Model        *string
	ModelNo      *string
	ProductImage *string
}
