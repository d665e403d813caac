package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRequest_PermissiveNumericParsing(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantQuantity int
		wantPrice    float64
		wantMinStock int
	}{
		{
			name:         "plain numbers",
			body:         `{"name":"Widget","sku":"W-1","quantity":5,"price":9.99,"min_stock":2}`,
			wantQuantity: 5,
			wantPrice:    9.99,
			wantMinStock: 2,
		},
		{
			name:         "numeric strings",
			body:         `{"name":"Widget","sku":"W-1","quantity":"5","price":"9.99","min_stock":"2"}`,
			wantQuantity: 5,
			wantPrice:    9.99,
			wantMinStock: 2,
		},
		{
			name:         "unparseable coerces to zero",
			body:         `{"name":"Widget","sku":"W-1","quantity":"lots","price":"cheap","min_stock":"few"}`,
			wantQuantity: 0,
			wantPrice:    0,
			wantMinStock: 0,
		},
		{
			name:         "null coerces to zero",
			body:         `{"name":"Widget","sku":"W-1","quantity":null,"price":null,"min_stock":null}`,
			wantQuantity: 0,
			wantPrice:    0,
			wantMinStock: 0,
		},
		{
			name:         "absent fields default to zero",
			body:         `{"name":"Widget","sku":"W-1"}`,
			wantQuantity: 0,
			wantPrice:    0,
			wantMinStock: 0,
		},
		{
			name:         "negative quantity is allowed",
			body:         `{"name":"Widget","sku":"W-1","quantity":-3}`,
			wantQuantity: -3,
			wantPrice:    0,
			wantMinStock: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ItemRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantQuantity, int(req.Quantity))
			assert.Equal(t, tt.wantPrice, float64(req.Price))
			assert.Equal(t, tt.wantMinStock, int(req.MinStock))
		})
	}
}

func TestItemRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ItemRequest{Name: "Widget", SKU: "W-1"}).Validate())
	assert.Error(t, (&ItemRequest{SKU: "W-1"}).Validate())
	assert.Error(t, (&ItemRequest{Name: "Widget"}).Validate())
	assert.Error(t, (&ItemRequest{}).Validate())
}

func TestItemRequest_ToDomain(t *testing.T) {
	req := ItemRequest{
		Name:        "Widget",
		Description: "a widget",
		Quantity:    5,
		Price:       9.99,
		Category:    "tools",
		Supplier:    "acme",
		MinStock:    2,
		Location:    "shelf 3",
		SKU:         "W-1",
	}

	item := req.ToDomain()
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 9.99, item.Price)
	assert.Equal(t, "W-1", item.SKU)
	assert.Zero(t, item.ID)
	assert.Zero(t, item.UserID)
}
