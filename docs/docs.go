// Package docs holds the generated OpenAPI document of the production API.
// Regenerate with: swag init -g cmd/server/main.go -o docs --overridesFile .swaggo
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support",
			"email": "support@example.com"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/catalog/artisans": {
			"post": {
				"operationId": "createArtisan",
				"summary": "Create artisan",
				"description": "Registers an artisan in the catalog",
				"tags": [
					"catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Artisan payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appcatalog.CreateArtisanRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ArtisanResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/artisans/{id}": {
			"get": {
				"operationId": "getArtisan",
				"summary": "Get artisan",
				"description": "Returns an artisan by ID",
				"tags": [
					"catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Artisan ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ArtisanResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/color-codes": {
			"post": {
				"operationId": "createColorCode",
				"summary": "Create color code",
				"description": "Registers a color code in the catalog",
				"tags": [
					"catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Color code payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appcatalog.CreateColorCodeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ColorCodeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/color-codes/{id}": {
			"get": {
				"operationId": "getColorCode",
				"summary": "Get color code",
				"description": "Returns a color code by ID",
				"tags": [
					"catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Color code ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ColorCodeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/product-types": {
			"post": {
				"operationId": "createProductType",
				"summary": "Create product type",
				"description": "Registers a product type in the catalog",
				"tags": [
					"catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Product type payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appcatalog.CreateProductTypeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ProductTypeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/product-types/{id}": {
			"get": {
				"operationId": "getProductType",
				"summary": "Get product type",
				"description": "Returns a product type by ID",
				"tags": [
					"catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Product type ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ProductTypeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/service-types": {
			"post": {
				"operationId": "createServiceType",
				"summary": "Create service type",
				"description": "Registers a service type in the catalog",
				"tags": [
					"catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Service type payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appcatalog.CreateServiceTypeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ServiceTypeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/service-types/{id}": {
			"get": {
				"operationId": "getServiceType",
				"summary": "Get service type",
				"description": "Returns a service type by ID",
				"tags": [
					"catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Service type ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.ServiceTypeResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/warehouses": {
			"post": {
				"operationId": "createWarehouse",
				"summary": "Create warehouse",
				"description": "Registers a warehouse in the catalog",
				"tags": [
					"catalog"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Warehouse payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appcatalog.CreateWarehouseRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.WarehouseResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/catalog/warehouses/{id}": {
			"get": {
				"operationId": "getWarehouse",
				"summary": "Get warehouse",
				"description": "Returns a warehouse by ID",
				"tags": [
					"catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Warehouse ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appcatalog.WarehouseResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/production-orders": {
			"post": {
				"operationId": "createProductionOrder",
				"summary": "Create production order",
				"description": "Debits every material line from its stock line and stores the order with its cost allocation",
				"tags": [
					"production-orders"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Order payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appprod.CreateOrderRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appprod.OrderResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"422": {
						"description": "Business rule violated",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/production-orders/{id}": {
			"get": {
				"operationId": "getProductionOrder",
				"summary": "Get production order",
				"description": "Returns the order with its material lines and allocations",
				"tags": [
					"production-orders"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Order ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appprod.OrderResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/production-orders/{id}/lines/complete": {
			"post": {
				"operationId": "completeProductionLines",
				"summary": "Complete material lines",
				"description": "Completes several material lines of one order in a single transaction",
				"tags": [
					"production-orders"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Order ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Batch completion payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CompleteLinesRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/appprod.CompletionResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"422": {
						"description": "Business rule violated",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/production-orders/{id}/lines/{lineId}/complete": {
			"post": {
				"operationId": "completeProductionLine",
				"summary": "Complete material line",
				"description": "Records the actual output of one material line and credits its target stock line",
				"tags": [
					"production-orders"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Order ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Material line ID",
						"name": "lineId",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Completion payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appprod.CompleteLineRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appprod.CompletionResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"422": {
						"description": "Business rule violated",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/production-orders/{id}/pending-lines": {
			"get": {
				"operationId": "listPendingProductionLines",
				"summary": "List pending lines",
				"description": "Returns the material lines of the order not yet completed",
				"tags": [
					"production-orders"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Order ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/appprod.MaterialLineResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/stock-lines": {
			"post": {
				"operationId": "receiveStock",
				"summary": "Receive stock",
				"description": "Adds quantity to the stock line for the key, creating it on first receipt",
				"tags": [
					"stock-lines"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Receipt payload",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/appinv.ReceiveStockRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appinv.StockLineResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"409": {
						"description": "Concurrent modification",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			},
			"get": {
				"operationId": "listStockLines",
				"summary": "List stock lines",
				"description": "Returns a page of stock lines, optionally filtered by warehouse or product type",
				"tags": [
					"stock-lines"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Warehouse ID",
						"name": "warehouse_id",
						"in": "query",
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Product type ID",
						"name": "product_type_id",
						"in": "query",
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Only lines with positive quantity",
						"name": "in_stock_only",
						"in": "query",
						"type": "boolean"
					},
					{
						"description": "Page number",
						"name": "page",
						"in": "query",
						"type": "integer",
						"default": 1
					},
					{
						"description": "Page size",
						"name": "page_size",
						"in": "query",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/appinv.StockLineResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/stock-lines/{id}": {
			"get": {
				"operationId": "getStockLine",
				"summary": "Get stock line",
				"description": "Returns quantity and unit cost of a stock line",
				"tags": [
					"stock-lines"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Stock line ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/appinv.StockLineResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		},
		"/stock-lines/{id}/movements": {
			"get": {
				"operationId": "listStockMovements",
				"summary": "List stock movements",
				"description": "Returns the movement journal of a stock line, newest first",
				"tags": [
					"stock-lines"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Stock line ID",
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"description": "Page number",
						"name": "page",
						"in": "query",
						"type": "integer",
						"default": 1
					},
					{
						"description": "Page size",
						"name": "page_size",
						"in": "query",
						"type": "integer",
						"default": 20
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/dto.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/appinv.StockMovementResponse"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/dto.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"appcatalog.ArtisanRateRequest": {
			"type": "object",
			"required": [
				"service_type_id"
			],
			"properties": {
				"rate_per_unit": {
					"type": "string"
				},
				"service_type_id": {
					"type": "string"
				}
			}
		},
		"appcatalog.ArtisanRateResponse": {
			"type": "object",
			"properties": {
				"rate_per_unit": {
					"type": "string"
				},
				"service_type_id": {
					"type": "string"
				}
			}
		},
		"appcatalog.ArtisanResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"rates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/appcatalog.ArtisanRateResponse"
					}
				}
			}
		},
		"appcatalog.ColorCodeResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"hex": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"appcatalog.CreateArtisanRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 100
				},
				"phone": {
					"type": "string",
					"maxLength": 30
				},
				"rates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/appcatalog.ArtisanRateRequest"
					}
				}
			}
		},
		"appcatalog.CreateColorCodeRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"hex": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"maxLength": 100
				}
			}
		},
		"appcatalog.CreateProductTypeRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"name": {
					"type": "string",
					"maxLength": 100
				},
				"unit": {
					"type": "string",
					"maxLength": 20
				}
			}
		},
		"appcatalog.CreateServiceTypeRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 100
				},
				"overhead_rate": {
					"type": "string"
				}
			}
		},
		"appcatalog.CreateWarehouseRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"location": {
					"type": "string",
					"maxLength": 500
				},
				"name": {
					"type": "string",
					"maxLength": 100
				}
			}
		},
		"appcatalog.ProductTypeResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"unit": {
					"type": "string"
				}
			}
		},
		"appcatalog.ServiceTypeResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"overhead_rate": {
					"type": "string"
				}
			}
		},
		"appcatalog.WarehouseResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"appinv.ColorInput": {
			"type": "object",
			"properties": {
				"color_code_id": {
					"type": "string"
				},
				"description": {
					"type": "string",
					"maxLength": 200
				},
				"kind": {
					"type": "string",
					"enum": [
						"none",
						"catalog",
						"freeform"
					]
				}
			}
		},
		"appinv.ColorResponse": {
			"type": "object",
			"properties": {
				"color_code_id": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				}
			}
		},
		"appinv.ReceiveStockRequest": {
			"type": "object",
			"required": [
				"product_type_id",
				"warehouse_id"
			],
			"properties": {
				"color": {
					"$ref": "#/definitions/appinv.ColorInput"
				},
				"product_type_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string"
				},
				"reference": {
					"type": "string",
					"maxLength": 100
				},
				"unit_cost": {
					"type": "string"
				},
				"unit_price": {
					"type": "string"
				},
				"warehouse_id": {
					"type": "string"
				}
			}
		},
		"appinv.StockLineKeyInput": {
			"type": "object",
			"required": [
				"product_type_id",
				"warehouse_id"
			],
			"properties": {
				"color": {
					"$ref": "#/definitions/appinv.ColorInput"
				},
				"product_type_id": {
					"type": "string"
				},
				"warehouse_id": {
					"type": "string"
				}
			}
		},
		"appinv.StockLineResponse": {
			"type": "object",
			"properties": {
				"color": {
					"$ref": "#/definitions/appinv.ColorResponse"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"product_type_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string"
				},
				"total_value": {
					"type": "string"
				},
				"unit_cost": {
					"type": "string"
				},
				"unit_price": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"version": {
					"type": "integer"
				},
				"warehouse_id": {
					"type": "string"
				}
			}
		},
		"appinv.StockMovementResponse": {
			"type": "object",
			"properties": {
				"balance_quantity": {
					"type": "string"
				},
				"balance_unit_cost": {
					"type": "string"
				},
				"direction": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"occurred_at": {
					"type": "string"
				},
				"quantity": {
					"type": "string"
				},
				"reference": {
					"type": "string"
				},
				"source_id": {
					"type": "string"
				},
				"source_type": {
					"type": "string"
				},
				"stock_line_id": {
					"type": "string"
				},
				"unit_cost": {
					"type": "string"
				}
			}
		},
		"appprod.CompleteLineRequest": {
			"type": "object",
			"properties": {
				"actual_output_quantity": {
					"type": "string"
				},
				"consumption_id": {
					"type": "string"
				},
				"target": {
					"$ref": "#/definitions/appprod.TargetRequest"
				},
				"waste_quantity": {
					"type": "string"
				}
			}
		},
		"appprod.CompletionResponse": {
			"type": "object",
			"properties": {
				"order": {
					"$ref": "#/definitions/appprod.OrderResponse"
				},
				"outputs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/appprod.OutputResponse"
					}
				}
			}
		},
		"appprod.CreateOrderRequest": {
			"type": "object",
			"required": [
				"artisan_id",
				"materials",
				"service_type_id"
			],
			"properties": {
				"artisan_id": {
					"type": "string"
				},
				"labor_rate_override": {
					"type": "string"
				},
				"materials": {
					"type": "array",
					"minItems": 1,
					"items": {
						"$ref": "#/definitions/appprod.MaterialRequest"
					}
				},
				"notes": {
					"type": "string",
					"maxLength": 2000
				},
				"order_date": {
					"type": "string"
				},
				"service_type_id": {
					"type": "string"
				}
			}
		},
		"appprod.MaterialLineResponse": {
			"type": "object",
			"properties": {
				"actual_output_quantity": {
					"type": "string"
				},
				"completed_at": {
					"type": "string"
				},
				"expected_output_quantity": {
					"type": "string"
				},
				"extraction_rate": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"labor_cost": {
					"type": "string"
				},
				"line_no": {
					"type": "integer"
				},
				"material_cost": {
					"type": "string"
				},
				"overhead_cost": {
					"type": "string"
				},
				"quantity_used": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"stock_line_id": {
					"type": "string"
				},
				"unit_cost_at_debit": {
					"type": "string"
				},
				"waste_quantity": {
					"type": "string"
				}
			}
		},
		"appprod.MaterialRequest": {
			"type": "object",
			"required": [
				"stock_line_id"
			],
			"properties": {
				"expected_output_quantity": {
					"type": "string"
				},
				"quantity_used": {
					"type": "string"
				},
				"stock_line_id": {
					"type": "string"
				}
			}
		},
		"appprod.OrderResponse": {
			"type": "object",
			"properties": {
				"artisan_id": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"labor_cost_per_unit": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/appprod.MaterialLineResponse"
					}
				},
				"notes": {
					"type": "string"
				},
				"order_date": {
					"type": "string"
				},
				"order_number": {
					"type": "string"
				},
				"outputs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/appprod.OutputResponse"
					}
				},
				"overhead_cost": {
					"type": "string"
				},
				"overhead_rate": {
					"type": "string"
				},
				"service_type_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"total_cost": {
					"type": "string"
				},
				"total_labor_cost": {
					"type": "string"
				},
				"total_material_cost": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				},
				"version": {
					"type": "integer"
				}
			}
		},
		"appprod.OutputResponse": {
			"type": "object",
			"properties": {
				"consumption_id": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"order_id": {
					"type": "string"
				},
				"quantity": {
					"type": "string"
				},
				"stock_line_id": {
					"type": "string"
				},
				"total_cost": {
					"type": "string"
				},
				"unit_cost": {
					"type": "string"
				}
			}
		},
		"appprod.TargetRequest": {
			"type": "object",
			"properties": {
				"key": {
					"$ref": "#/definitions/appinv.StockLineKeyInput"
				},
				"stock_line_id": {
					"type": "string"
				},
				"unit_price": {
					"type": "string"
				}
			}
		},
		"dto.ErrorInfo": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ValidationDetail"
					}
				},
				"message": {
					"type": "string"
				},
				"request_id": {
					"type": "string"
				},
				"timestamp": {
					"type": "string"
				}
			}
		},
		"dto.Meta": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer"
				},
				"page_size": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"total_pages": {
					"type": "integer"
				}
			}
		},
		"dto.Response": {
			"description": "Envelope every endpoint answers with",
			"type": "object",
			"properties": {
				"data": {},
				"error": {
					"$ref": "#/definitions/dto.ErrorInfo"
				},
				"meta": {
					"$ref": "#/definitions/dto.Meta"
				},
				"success": {
					"type": "boolean"
				}
			}
		},
		"dto.ValidationDetail": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.CompleteLinesRequest": {
			"type": "object",
			"required": [
				"lines"
			],
			"properties": {
				"lines": {
					"type": "array",
					"minItems": 1,
					"items": {
						"$ref": "#/definitions/appprod.CompleteLineRequest"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Production Costing API",
	Description:      "Production orders, stock lines and cost allocation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
