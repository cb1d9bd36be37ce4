package catalogrepo

import (
	"context"

	"comanda/internal/core/domain/model/catalog"
	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader using GORM. Each lookup is
// batched: one query for the snapshot rows, one for their recipes with the
// ingredient names joined in.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetProducts returns the snapshots of the requested products, keyed by
// id. Ids that do not resolve under the tenant are absent from the map.
func (r *GormCatalogReader) GetProducts(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) (map[kernel.UUID]catalog.Product, error) {
	products := make(map[kernel.UUID]catalog.Product)
	if len(ids) == 0 {
		return products, nil
	}

	raw := rawIDs(ids)

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND tenant_id = ?", raw, tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	recipes, err := r.readRecipes(ctx, tenantID, raw, "product_recipe_items", "product_id")
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		products[id] = catalog.Product{
			ID:                  id,
			Name:                dto.Name,
			Price:               dto.Price,
			Recipe:              recipes[id],
			UsesDirectInventory: dto.UsesDirectInventory,
			Stock:               dto.Stock,
		}
	}

	return products, nil
}

// GetOptions returns the snapshots of the requested personalization
// options, keyed by id, with the same absence semantics as GetProducts.
func (r *GormCatalogReader) GetOptions(
	ctx context.Context,
	tenantID kernel.UUID,
	ids []kernel.UUID,
) (map[kernel.UUID]catalog.Option, error) {
	options := make(map[kernel.UUID]catalog.Option)
	if len(ids) == 0 {
		return options, nil
	}

	raw := rawIDs(ids)

	var dtos []OptionDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "id IN ? AND tenant_id = ?", raw, tenantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	recipes, err := r.readRecipes(ctx, tenantID, raw, "option_recipe_items", "option_id")
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		categoryID, catErr := kernel.UUIDFromBytes(dto.CategoryID[:])
		if catErr != nil {
			return nil, catErr
		}

		options[id] = catalog.Option{
			ID:                  id,
			CategoryID:          categoryID,
			Name:                dto.Name,
			ExtraPrice:          dto.ExtraPrice,
			Recipe:              recipes[id],
			UsesDirectInventory: dto.UsesDirectInventory,
			Stock:               dto.Stock,
		}
	}

	return options, nil
}

// readRecipes loads the recipe rows of the given owners with the
// ingredient names joined in, keyed by owner id.
func (r *GormCatalogReader) readRecipes(
	ctx context.Context,
	tenantID kernel.UUID,
	ownerIDs []uuid.UUID,
	tableName string,
	ownerColumn string,
) (map[kernel.UUID][]catalog.RecipeItem, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		"SELECT r."+ownerColumn+", r.ingredient_id, i.name, r.quantity "+
			"FROM "+tableName+" r "+
			"JOIN ingredients i ON i.id = r.ingredient_id "+
			"WHERE r."+ownerColumn+" IN ? AND r.tenant_id = ?",
		ownerIDs, tenantID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := make(map[kernel.UUID][]catalog.RecipeItem)
	for rows.Next() {
		var ownerRaw, ingredientRaw uuid.UUID
		var item catalog.RecipeItem

		err = rows.Scan(&ownerRaw, &ingredientRaw, &item.IngredientName, &item.Quantity)
		if err != nil {
			return nil, err
		}

		ownerID, idErr := kernel.UUIDFromBytes(ownerRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		item.IngredientID, idErr = kernel.UUIDFromBytes(ingredientRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		recipes[ownerID] = append(recipes[ownerID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}

// AddProduct persists a product snapshot with its recipe rows. Intended
// for catalog seeding and tests; the order engine itself never writes
// products.
func (r *GormCatalogReader) AddProduct(ctx context.Context, tenantID kernel.UUID, product catalog.Product) error {
	dto := ProductDTO{
		ID:                  product.ID.Bytes(),
		TenantID:            tenantID.Bytes(),
		Name:                product.Name,
		Price:               product.Price,
		UsesDirectInventory: product.UsesDirectInventory,
		Stock:               product.Stock,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	for _, item := range product.Recipe {
		recipeDTO := ProductRecipeItemDTO{
			ProductID:    product.ID.Bytes(),
			IngredientID: item.IngredientID.Bytes(),
			TenantID:     tenantID.Bytes(),
			Quantity:     item.Quantity,
		}
		if err := r.db.WithContext(ctx).Create(&recipeDTO).Error; err != nil {
			return err
		}
	}

	return nil
}

// AddOption persists an option snapshot with its recipe rows.
func (r *GormCatalogReader) AddOption(ctx context.Context, tenantID kernel.UUID, option catalog.Option) error {
	dto := OptionDTO{
		ID:                  option.ID.Bytes(),
		TenantID:            tenantID.Bytes(),
		CategoryID:          option.CategoryID.Bytes(),
		Name:                option.Name,
		ExtraPrice:          option.ExtraPrice,
		UsesDirectInventory: option.UsesDirectInventory,
		Stock:               option.Stock,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	for _, item := range option.Recipe {
		recipeDTO := OptionRecipeItemDTO{
			OptionID:     option.ID.Bytes(),
			IngredientID: item.IngredientID.Bytes(),
			TenantID:     tenantID.Bytes(),
			Quantity:     item.Quantity,
		}
		if err := r.db.WithContext(ctx).Create(&recipeDTO).Error; err != nil {
			return err
		}
	}

	return nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
