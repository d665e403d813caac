package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stockpile/inventory-api/internal/api/handler/v1/request"
	"github.com/stockpile/inventory-api/internal/api/handler/v1/response"
	"github.com/stockpile/inventory-api/internal/domain"
	"github.com/stockpile/inventory-api/internal/service"
)

type InventoryService interface {
	ListItems(ctx context.Context, ownerID uint) ([]domain.Item, error)
	CreateItem(ctx context.Context, ownerID uint, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, ownerID, itemID uint, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, ownerID, itemID uint) (domain.Item, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List the caller's inventory
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory [get]
// @Security     BearerAuth
func (h *InventoryHandler) HandleListItems(ctx *gin.Context) {
	ownerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), ownerID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleCreateItem godoc
// @Summary      Create an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      request.ItemRequest  true  "item fields"
// @Success      201      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory [post]
// @Security     BearerAuth
func (h *InventoryHandler) HandleCreateItem(ctx *gin.Context) {
	ownerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	var req request.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrItemSKUExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemSKUExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateItem godoc
// @Summary      Replace an inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        itemID   path      int                  true  "item ID"
// @Param        request  body      request.ItemRequest  true  "item fields"
// @Success      200      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory/{itemID} [put]
// @Security     BearerAuth
func (h *InventoryHandler) HandleUpdateItem(ctx *gin.Context) {
	ownerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		// A malformed ID matches no row, same as a foreign one.
		response.RenderErr(ctx, response.ErrNotFound("item", "id", ctx.Param("itemID")))

		return
	}

	var req request.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateItem(ctx.Request.Context(), ownerID, uint(itemID), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "id", itemID))
		case errors.Is(err, service.ErrItemSKUExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemSKUExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteItem godoc
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Param        itemID  path      int  true  "item ID"
// @Success      200     {object}  response.DeleteItemResponse
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /inventory/{itemID} [delete]
// @Security     BearerAuth
func (h *InventoryHandler) HandleDeleteItem(ctx *gin.Context) {
	ownerID, respErr := getCallerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrNotFound("item", "id", ctx.Param("itemID")))

		return
	}

	deleted, err := h.svc.DeleteItem(ctx.Request.Context(), ownerID, uint(itemID))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "id", itemID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.DeleteItemResponse{
		Message: "item deleted",
		Item:    deleted,
	})
}
