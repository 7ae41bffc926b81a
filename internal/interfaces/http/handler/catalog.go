package handler

import (
	"context"

	appcatalog "github.com/erp/production/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles the reference catalog endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *appcatalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func createHandler[Req, Resp any](h *CatalogHandler, create func(context.Context, Req) (*Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if !h.BindJSON(c, &req) {
			return
		}
		resp, err := create(c.Request.Context(), req)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Created(c, resp)
	}
}

func getHandler[Resp any](h *CatalogHandler, get func(context.Context, uuid.UUID) (*Resp, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.ParamUUID(c, "id")
		if !ok {
			return
		}
		resp, err := get(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
	}
}

// CreateWarehouse godoc
//
//	@ID				createWarehouse
//	@Summary		Create warehouse
//	@Description	Registers a warehouse in the catalog
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appcatalog.CreateWarehouseRequest	true	"Warehouse payload"
//	@Success		201	{object}	dto.Response{data=appcatalog.WarehouseResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/warehouses [post]
func (h *CatalogHandler) CreateWarehouse(c *gin.Context) {
	createHandler(h, h.catalogService.CreateWarehouse)(c)
}

// CreateProductType godoc
//
//	@ID				createProductType
//	@Summary		Create product type
//	@Description	Registers a product type in the catalog
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appcatalog.CreateProductTypeRequest	true	"Product type payload"
//	@Success		201	{object}	dto.Response{data=appcatalog.ProductTypeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/product-types [post]
func (h *CatalogHandler) CreateProductType(c *gin.Context) {
	createHandler(h, h.catalogService.CreateProductType)(c)
}

// CreateColorCode godoc
//
//	@ID				createColorCode
//	@Summary		Create color code
//	@Description	Registers a color code in the catalog
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appcatalog.CreateColorCodeRequest	true	"Color code payload"
//	@Success		201	{object}	dto.Response{data=appcatalog.ColorCodeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/color-codes [post]
func (h *CatalogHandler) CreateColorCode(c *gin.Context) {
	createHandler(h, h.catalogService.CreateColorCode)(c)
}

// CreateServiceType godoc
//
//	@ID				createServiceType
//	@Summary		Create service type
//	@Description	Registers a service type in the catalog
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appcatalog.CreateServiceTypeRequest	true	"Service type payload"
//	@Success		201	{object}	dto.Response{data=appcatalog.ServiceTypeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/service-types [post]
func (h *CatalogHandler) CreateServiceType(c *gin.Context) {
	createHandler(h, h.catalogService.CreateServiceType)(c)
}

// CreateArtisan godoc
//
//	@ID				createArtisan
//	@Summary		Create artisan
//	@Description	Registers an artisan in the catalog
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body	appcatalog.CreateArtisanRequest	true	"Artisan payload"
//	@Success		201	{object}	dto.Response{data=appcatalog.ArtisanResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		409	{object}	dto.Response	"Concurrent modification"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/artisans [post]
func (h *CatalogHandler) CreateArtisan(c *gin.Context) {
	createHandler(h, h.catalogService.CreateArtisan)(c)
}

// GetWarehouse godoc
//
//	@ID				getWarehouse
//	@Summary		Get warehouse
//	@Description	Returns a warehouse by ID
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	string	true	"Warehouse ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appcatalog.WarehouseResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/warehouses/{id} [get]
func (h *CatalogHandler) GetWarehouse(c *gin.Context) {
	getHandler(h, h.catalogService.GetWarehouse)(c)
}

// GetProductType godoc
//
//	@ID				getProductType
//	@Summary		Get product type
//	@Description	Returns a product type by ID
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	string	true	"Product type ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appcatalog.ProductTypeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/product-types/{id} [get]
func (h *CatalogHandler) GetProductType(c *gin.Context) {
	getHandler(h, h.catalogService.GetProductType)(c)
}

// GetColorCode godoc
//
//	@ID				getColorCode
//	@Summary		Get color code
//	@Description	Returns a color code by ID
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	string	true	"Color code ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appcatalog.ColorCodeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/color-codes/{id} [get]
func (h *CatalogHandler) GetColorCode(c *gin.Context) {
	getHandler(h, h.catalogService.GetColorCode)(c)
}

// GetServiceType godoc
//
//	@ID				getServiceType
//	@Summary		Get service type
//	@Description	Returns a service type by ID
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	string	true	"Service type ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appcatalog.ServiceTypeResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/service-types/{id} [get]
func (h *CatalogHandler) GetServiceType(c *gin.Context) {
	getHandler(h, h.catalogService.GetServiceType)(c)
}

// GetArtisan godoc
//
//	@ID				getArtisan
//	@Summary		Get artisan
//	@Description	Returns an artisan by ID
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path	string	true	"Artisan ID"	format(uuid)
//	@Success		200	{object}	dto.Response{data=appcatalog.ArtisanResponse}
//	@Failure		400	{object}	dto.Response	"Validation failed"
//	@Failure		404	{object}	dto.Response	"Not found"
//	@Failure		500	{object}	dto.Response	"Internal error"
//	@Router			/catalog/artisans/{id} [get]
func (h *CatalogHandler) GetArtisan(c *gin.Context) {
	getHandler(h, h.catalogService.GetArtisan)(c)
}
