package transport

import (
	"net/http"

	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	validatorx "github.com/sahanperera/repairshop-backend/utils/validator"
)

const maxUploadMemory = 10 << 20 // 10 MiB

// AddProduct handler
// @Summary Add product
// @Description Add a product; multipart form with an optional productImage file
// @Tags Products
// @Accept mpfd
// @Produce json
// @Param productName formData string true "Product name"
// @Param model formData string true "Model"
// @Param modelNo formData string true "Model number"
// @Param productImage formData file false "Product image"
// @Success 201 {object} model.AddProductResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Router /api/products/add [post]
func (s *RestHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.AddProductRequest{
		ProductName: r.FormValue("productName"),
		Model:       r.FormValue("model"),
		ModelNo:     r.FormValue("modelNo"),
	}

	// Validation runs before the file is written so a rejected request
	// never leaves an orphaned upload behind.
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	imagePath, err := s.saveProductImage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	productID, err := s.ProductApp.Add(ctx, &req, imagePath)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, model.AddProductResponse{
		Message:   "Product added successfully",
		ProductID: productID,
	})
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept mpfd
// @Produce json
// @Param id path int true "Product ID"
// @Param productImage formData file false "Product image"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ValidationErrorResponse
// @Router /api/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	req := model.UpdateProductRequest{
		ProductName: formValue(r, "productName"),
		Model:       formValue(r, "model"),
		ModelNo:     formValue(r, "modelNo"),
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationErrors(w, err)
		return
	}

	imagePath, err := s.saveProductImage(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ProductApp.Update(ctx, id, &req, imagePath); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Product updated successfully")
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.MessageResponse
// @Router /api/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Product deleted successfully")
}

// GetAllProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} model.Product
// @Router /api/products/all [get]
func (s *RestHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.ProductApp.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, products)
}

// GetProduct handler
// @Summary Get product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} model.MessageResponse
// @Router /api/products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	product, err := s.ProductApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, product)
}

// saveProductImage stores the optional productImage part and returns its
// path reference, or nil when no file was uploaded.
func (s *RestHandler) saveProductImage(r *http.Request) (*string, error) {
	file, header, err := r.FormFile("productImage")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	path, err := s.Files.Save(file, header)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// formValue distinguishes an absent form field from an empty one; absent
// fields stay nil and overwrite their column with NULL downstream.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
