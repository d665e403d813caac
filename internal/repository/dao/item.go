package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrItemSKUExists = errors.New("item sku already exists")
	ErrItemNotFound  = errors.New("item not found")
)

type Item struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	Quantity    int     `gorm:"not null;default:0"`
	Price       float64 `gorm:"type:decimal(10,2);not null;default:0"`
	Category    string
	Supplier    string
	MinStock    int `gorm:"not null;default:0"`
	Location    string
	SKU         string `gorm:"unique;not null"`

	UserID uint `gorm:"not null;index"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Item{}, ErrItemSKUExists
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return Item{}, ErrItemSKUExists
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByOwner(ctx context.Context, ownerID uint) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Update replaces the editable columns of the row matching both the item ID
// and the owner ID. The owner is part of the UPDATE predicate itself, so a
// row belonging to another user is simply never matched. Zero rows affected
// is reported as ErrItemNotFound whether the ID is absent or foreign.
func (d *ItemDAO) Update(ctx context.Context, ownerID uint, item Item) (Item, error) {
	result := d.db.WithContext(ctx).
		Model(&item).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", item.ID, ownerID).
		Select("name", "description", "quantity", "price", "category", "supplier", "min_stock", "location", "sku").
		Updates(item)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Item{}, ErrItemSKUExists
		}

		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return item, nil
}

// Delete removes the row matching both IDs and returns its prior state via
// a RETURNING clause, keeping the whole operation a single statement.
func (d *ItemDAO) Delete(ctx context.Context, ownerID, itemID uint) (Item, error) {
	var deleted []Item

	result := d.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", itemID, ownerID).
		Delete(&deleted)
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 || len(deleted) == 0 {
		return Item{}, ErrItemNotFound
	}

	return deleted[0], nil
}
