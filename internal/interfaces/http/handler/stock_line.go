package handler

import (
	appinv "github.com/erp/production/internal/application/inventory"
	"github.com/erp/production/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockLineHandler handles stock line endpoints
type StockLineHandler struct {
	BaseHandler
	inventoryService *appinv.InventoryService
}

// NewStockLineHandler creates a new StockLineHandler
func NewStockLineHandler(inventoryService *appinv.InventoryService) *StockLineHandler {
	return &StockLineHandler{inventoryService: inventoryService}
}

// ListStockLinesQuery is the query string of GET /stock-lines
type ListStockLinesQuery struct {
	dto.ListRequest
	WarehouseID   string `form:"warehouse_id" binding:"omitempty,uuid"`
	ProductTypeID string `form:"product_type_id" binding:"omitempty,uuid"`
	InStockOnly   bool   `form:"in_stock_only"`
}

// Receive godoc
//
//	@ID				receiveStock
//	@Summary		Receive stock
//	@Description	Adds quantity to the stock line for the key, creating it on first receipt
//	@Tags			stock-lines
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appinv.ReceiveStockRequest	true	"Receipt payload"
//	@Success		201	{object}	dto.Response{data=appinv.StockLineResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/stock-lines [post]
func (h *StockLineHandler) Receive(c *gin.Context) {
	var req appinv.ReceiveStockRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := h.inventoryService.ReceiveStock(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, line)
}

// GetByID godoc
//
//	@ID				getStockLine
//	@Summary		Get stock line
//	@Description	Returns quantity and unit cost of a stock line
//	@Tags			stock-lines
//	@Produce		json
//	@Param			id	path	string	true	"Stock line ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appinv.StockLineResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/stock-lines/{id} [get]
func (h *StockLineHandler) GetByID(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}

	line, err := h.inventoryService.GetStockLine(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, line)
}

// List godoc
//
//	@ID				listStockLines
//	@Summary		List stock lines
//	@Description	Returns a page of stock lines, optionally filtered by warehouse or product type
//	@Tags			stock-lines
//	@Produce		json
//	@Param			warehouse_id	query	string	false	"Warehouse ID"	format(uuid)
//	@Param			product_type_id	query	string	false	"Product type ID"	format(uuid)
//	@Param			in_stock_only	query	bool	false	"Only lines with positive quantity"
//	@Param			page	query	int	false	"Page number"	default(1)
//	@Param			page_size	query	int	false	"Page size"	default(20)
//	@Success		200	{object}	dto.Response{data=[]appinv.StockLineResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/stock-lines [get]
func (h *StockLineHandler) List(c *gin.Context) {
	query := ListStockLinesQuery{ListRequest: dto.DefaultListRequest()}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := appinv.StockLineListFilter{
		InStockOnly: query.InStockOnly,
		Page:        query.Page,
		PageSize:    query.PageSize,
		OrderBy:     query.OrderBy,
		OrderDir:    query.OrderDir,
	}
	if query.WarehouseID != "" {
		id := uuid.MustParse(query.WarehouseID)
		filter.WarehouseID = &id
	}
	if query.ProductTypeID != "" {
		id := uuid.MustParse(query.ProductTypeID)
		filter.ProductTypeID = &id
	}

	lines, total, err := h.inventoryService.ListStockLines(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, lines, total, query.Page, query.PageSize)
}

// Movements godoc
//
//	@ID				listStockMovements
//	@Summary		List stock movements
//	@Description	Returns the movement journal of a stock line, newest first
//	@Tags			stock-lines
//	@Produce		json
//	@Param			id	path	string	true	"Stock line ID"	format(uuid)
//	@Param			page	query	int	false	"Page number"	default(1)
//	@Param			page_size	query	int	false	"Page size"	default(20)
//	@Success		200	{object}	dto.Response{data=[]appinv.StockMovementResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/stock-lines/{id}/movements [get]
func (h *StockLineHandler) Movements(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	query := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	movements, total, err := h.inventoryService.ListMovements(c.Request.Context(), id, query.Page, query.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, movements, total, query.Page, query.PageSize)
}
