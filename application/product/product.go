package product

import (
	"context"
	"fmt"

	"github.com/sahanperera/repairshop-backend/cmd/config"
	"github.com/sahanperera/repairshop-backend/constant"
	"github.com/sahanperera/repairshop-backend/model"
	productrepo "github.com/sahanperera/repairshop-backend/repository/product"
	redisrepo "github.com/sahanperera/repairshop-backend/repository/redis"
	"github.com/sahanperera/repairshop-backend/utils/errors"
	"github.com/sahanperera/repairshop-backend/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	Add(ctx context.Context, req *model.AddProductRequest, imagePath *string) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest, imagePath *string) error
	Delete(ctx context.Context, id uint64) error
	GetAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
}

type productAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{
		config:      config,
		productRepo: productRepo,
		redisRepo:   redisRepo,
	}
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

// Add inserts the product row. imagePath is the stored reference of the
// optional uploaded file; modelNo uniqueness is intentionally not checked.
func (s *productAppImpl) Add(ctx context.Context, req *model.AddProductRequest, imagePath *string) (uint64, error) {
	productID, err := s.productRepo.Create(ctx, &model.ProductEntity{
		ProductName:  req.ProductName,
		Model:        req.Model,
		ModelNo:      req.ModelNo,
		ProductImage: imagePath,
	})
	if err != nil {
		logger.Error("[AddProduct] err productRepo.Create", zap.String("error", err.Error()))
		return 0, err
	}

	return productID, nil
}

// Update overwrites the product columns with the supplied values. Without a
// new upload the stored image reference is carried forward.
func (s *productAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest, imagePath *string) error {
	if imagePath == nil {
		existing, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			logger.Error("[UpdateProduct] err productRepo.GetByID", zap.String("error", err.Error()))
			return err
		}
		if existing != nil {
			imagePath = existing.ProductImage
		}
	}

	err := s.productRepo.Update(ctx, id, &model.ProductUpdate{
		ProductName:  req.ProductName,
		Model:        req.Model,
		ModelNo:      req.ModelNo,
		ProductImage: imagePath,
	})
	if err != nil {
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *productAppImpl) Delete(ctx context.Context, id uint64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *productAppImpl) GetAll(ctx context.Context) ([]model.Product, error) {
	entities, err := s.productRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAllProducts] err productRepo.GetAll", zap.String("error", err.Error()))
		return nil, err
	}

	products := make([]model.Product, 0, len(entities))
	for i := range entities {
		products = append(products, entities[i].ToProduct())
	}
	return products, nil
}

func (s *productAppImpl) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var cached model.Product
	hit, err := s.redisRepo.GetEntity(ctx, productCacheKey(id), &cached)
	if err != nil {
		logger.Warn("[GetProduct] cache read failed", zap.String("error", err.Error()))
	}
	if hit {
		return &cached, nil
	}

	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, err
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	product := entity.ToProduct()
	if err := s.redisRepo.CacheEntity(ctx, productCacheKey(id), product, s.config.Cache.TTL); err != nil {
		logger.Warn("[GetProduct] cache write failed", zap.String("error", err.Error()))
	}

	return &product, nil
}

func (s *productAppImpl) invalidate(ctx context.Context, id uint64) {
	if err := s.redisRepo.Delete(ctx, productCacheKey(id)); err != nil {
		logger.Warn("[Product] cache invalidation failed", zap.Uint64("product_id", id), zap.String("error", err.Error()))
	}
}
