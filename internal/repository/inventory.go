package repository

import (
	"context"
	"fmt"

	"github.com/stockpile/inventory-api/internal/domain"
	"github.com/stockpile/inventory-api/internal/repository/dao"
)

var (
	ErrItemSKUExists = dao.ErrItemSKUExists
	ErrItemNotFound  = dao.ErrItemNotFound
)

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]dao.Item, error)
	Update(ctx context.Context, ownerID uint, item dao.Item) (dao.Item, error)
	Delete(ctx context.Context, ownerID, itemID uint) (dao.Item, error)
}

type InventoryRepository struct {
	dao ItemDAO
}

func NewInventoryRepository(dao ItemDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InventoryRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Item, error) {
	found, err := r.dao.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwner -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, it := range found {
		items = append(items, r.daoToDomain(it))
	}

	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, ownerID uint, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, ownerID, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InventoryRepository) Delete(ctx context.Context, ownerID, itemID uint) (domain.Item, error) {
	deleted, err := r.dao.Delete(ctx, ownerID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *InventoryRepository) domainToDAO(i domain.Item) dao.Item {
	return dao.Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Category:    i.Category,
		Supplier:    i.Supplier,
		MinStock:    i.MinStock,
		Location:    i.Location,
		SKU:         i.SKU,
		UserID:      i.UserID,
	}
}

func (r *InventoryRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Category:    i.Category,
		Supplier:    i.Supplier,
		MinStock:    i.MinStock,
		Location:    i.Location,
		SKU:         i.SKU,
		UserID:      i.UserID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
