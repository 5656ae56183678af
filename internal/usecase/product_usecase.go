package usecase

import (
	"context"
	"errors"

	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrMissingProductID = errors.New("product has not been persisted")
)

type ProductUsecase interface {
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetAll(ctx context.Context, page, limit int) ([]entity.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) ([]entity.Product, error)
	GetByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error)
	GetByAvailability(ctx context.Context, available bool) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	productRepo  repository.ProductRepository
	auditService service.AuditService
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	productRepo repository.ProductRepository,
	auditService service.AuditService,
) ProductUsecase {
	return &productUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		productRepo:  productRepo,
		auditService: auditService,
	}
}

func (u *productUsecase) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := u.validator.Validate(product); err != nil {
		u.log.Warnf("Invalid product: %v", u.validator.FormatValidationErrors(err))
		return nil, err
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	// Audit is best effort; the service already logs failures.
	_ = u.auditService.LogCreate(ctx, u.db, entity.AuditActionProductCreate, "product", product.ID.String(), product)

	return product, nil
}

func (u *productUsecase) GetAll(ctx context.Context, page, limit int) ([]entity.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit

	return u.productRepo.FindAll(ctx, limit, offset)
}

func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (u *productUsecase) GetByName(ctx context.Context, name string) ([]entity.Product, error) {
	return u.productRepo.FindByName(ctx, name)
}

func (u *productUsecase) GetByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error) {
	return u.productRepo.FindByCategory(ctx, category)
}

func (u *productUsecase) GetByAvailability(ctx context.Context, available bool) ([]entity.Product, error) {
	return u.productRepo.FindByAvailability(ctx, available)
}

func (u *productUsecase) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if !product.Persisted() {
		return nil, ErrMissingProductID
	}

	if err := u.validator.Validate(product); err != nil {
		u.log.Warnf("Invalid product: %v", u.validator.FormatValidationErrors(err))
		return nil, err
	}

	existing, err := u.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		u.log.Warnf("Failed to update product %s: %+v", product.ID, err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, u.db, entity.AuditActionProductUpdate, "product", product.ID.String(), existing, product)

	return product, nil
}

func (u *productUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete product %s: %+v", id, err)
		return err
	}

	_ = u.auditService.LogDelete(ctx, u.db, entity.AuditActionProductDelete, "product", id.String(), existing)

	return nil
}
