package handler

import (
	appprod "github.com/erp/production/internal/application/production"
	"github.com/gin-gonic/gin"
)

// ProductionOrderHandler handles production order endpoints
type ProductionOrderHandler struct {
	BaseHandler
	productionService *appprod.ProductionService
}

// NewProductionOrderHandler creates a new ProductionOrderHandler
func NewProductionOrderHandler(productionService *appprod.ProductionService) *ProductionOrderHandler {
	return &ProductionOrderHandler{productionService: productionService}
}

// CompleteLinesRequest is the body of a batch completion
type CompleteLinesRequest struct {
	Lines []appprod.CompleteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// Create godoc
//
//	@ID				createProductionOrder
//	@Summary		Create production order
//	@Description	Debits every material line from its stock line and stores the order with its cost allocation
//	@Tags			production-orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appprod.CreateOrderRequest	true	"Order payload"
//	@Success		201	{object}	dto.Response{data=appprod.OrderResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		422	{object}	dto.Response	"Business rule violated"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/production-orders [post]
func (h *ProductionOrderHandler) Create(c *gin.Context) {
	var req appprod.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.productionService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID godoc
//
//	@ID				getProductionOrder
//	@Summary		Get production order
//	@Description	Returns the order with its material lines and allocations
//	@Tags			production-orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appprod.OrderResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/production-orders/{id} [get]
func (h *ProductionOrderHandler) GetByID(c *gin.Context) {
	orderID, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}

	order, err := h.productionService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// PendingLines godoc
//
//	@ID				listPendingProductionLines
//	@Summary		List pending lines
//	@Description	Returns the material lines of the order not yet completed
//	@Tags			production-orders
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=[]appprod.MaterialLineResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/production-orders/{id}/pending-lines [get]
func (h *ProductionOrderHandler) PendingLines(c *gin.Context) {
	orderID, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}

	lines, err := h.productionService.ListPendingLines(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, lines)
}

// CompleteLine godoc
//
//	@ID				completeProductionLine
//	@Summary		Complete material line
//	@Description	Records the actual output of one material line and credits its target stock line
//	@Tags			production-orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"	format(uuid)
//	@Param			lineId	path	string	true	"Material line ID"	format(uuid)
//	@Param			request	body	appprod.CompleteLineRequest	true	"Completion payload"
//	@Success		200	{object}	dto.Response{data=appprod.CompletionResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		422	{object}	dto.Response	"Business rule violated"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/production-orders/{id}/lines/{lineId}/complete [post]
func (h *ProductionOrderHandler) CompleteLine(c *gin.Context) {
	orderID, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	lineID, ok := h.ParamUUID(c, "lineId")
	if !ok {
		return
	}

	var req appprod.CompleteLineRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.ConsumptionID = lineID

	output, err := h.productionService.CompleteOrderLine(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, output)
}

// CompleteLines godoc
//
//	@ID				completeProductionLines
//	@Summary		Complete material lines
//	@Description	Completes several material lines of one order in a single transaction
//	@Tags			production-orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Order ID"	format(uuid)
//	@Param			request	body	CompleteLinesRequest	true	"Batch completion payload"
//	@Success		200	{object}	dto.Response{data=[]appprod.CompletionResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		422	{object}	dto.Response	"Business rule violated"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/production-orders/{id}/lines/complete [post]
func (h *ProductionOrderHandler) CompleteLines(c *gin.Context) {
	orderID, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}

	var req CompleteLinesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.productionService.CompleteOrderLines(c.Request.Context(), orderID, req.Lines)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
