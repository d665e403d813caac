package service

import (
	"context"
	"fmt"

	"github.com/stockpile/inventory-api/internal/domain"
	"github.com/stockpile/inventory-api/internal/repository"
)

var (
	ErrItemSKUExists = repository.ErrItemSKUExists
	ErrItemNotFound  = repository.ErrItemNotFound
)

type InventoryRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]domain.Item, error)
	Update(ctx context.Context, ownerID uint, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, ownerID, itemID uint) (domain.Item, error)
}

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

func (s *InventoryService) ListItems(ctx context.Context, ownerID uint) ([]domain.Item, error) {
	items, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}

	return items, nil
}

// CreateItem stamps the item with the caller's identity before persisting.
// The owner is always the resolved caller, never a field from the body.
func (s *InventoryService) CreateItem(ctx context.Context, ownerID uint, item domain.Item) (domain.Item, error) {
	item.UserID = ownerID

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, ownerID, itemID uint, item domain.Item) (domain.Item, error) {
	item.ID = itemID
	item.UserID = ownerID

	updated, err := s.repo.Update(ctx, ownerID, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, ownerID, itemID uint) (domain.Item, error) {
	deleted, err := s.repo.Delete(ctx, ownerID, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
