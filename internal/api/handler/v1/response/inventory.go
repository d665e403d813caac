package response

import "github.com/stockpile/inventory-api/internal/domain"

type DeleteItemResponse struct {
	Message string      `json:"message"`
	Item    domain.Item `json:"item"`
}
