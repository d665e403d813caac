package request

import (
	"encoding/json"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/stockpile/inventory-api/internal/domain"
)

// FlexInt accepts a JSON number or a numeric string. Anything unparseable
// coerces to zero instead of failing the request.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			*f = FlexInt(v)
			return nil
		}
		if v, err := n.Float64(); err == nil {
			*f = FlexInt(int(v))
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexInt(int(v))
		}
	}

	return nil
}

// FlexFloat is the decimal counterpart of FlexInt.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if v, err := n.Float64(); err == nil {
			*f = FlexFloat(v)
			return nil
		}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(v)
		}
	}

	return nil
}

type ItemRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    FlexInt   `json:"quantity"`
	Price       FlexFloat `json:"price"`
	Category    string    `json:"category"`
	Supplier    string    `json:"supplier"`
	MinStock    FlexInt   `json:"min_stock"`
	Location    string    `json:"location"`
	SKU         string    `json:"sku"`
}

func (req *ItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.SKU, validation.Required),
	)
}

func (req *ItemRequest) ToDomain() domain.Item {
	return domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    int(req.Quantity),
		Price:       float64(req.Price),
		Category:    req.Category,
		Supplier:    req.Supplier,
		MinStock:    int(req.MinStock),
		Location:    req.Location,
		SKU:         req.SKU,
	}
}
