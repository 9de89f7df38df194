// Package docs registers the Swagger specifications served at /swagger.
package docs

import "github.com/swaggo/swag"

const errorResponseDef = `
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        }`

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/valuations": {
            "post": {
                "description": "Price an item with the pricing service and project its value over the next five years.\nAccepts JSON, or multipart/form-data with an optional image part.",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Value a used asset",
                "parameters": [
                    {"type": "string", "description": "Form session identifier", "name": "X-Session-ID", "in": "header"},
                    {"description": "Valuation form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateValuationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Valuation", "schema": {"$ref": "#/definitions/handlers.ValuationResponse"}},
                    "400": {"description": "Incomplete or invalid form", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Submission already in progress", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "413": {"description": "Image too large", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Pricing service unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/valuations/options": {
            "get": {
                "description": "List categories, conditions, brand tiers and the selectable purchase years",
                "produces": ["application/json"],
                "tags": ["valuations"],
                "summary": "Get valuation form options",
                "responses": {
                    "200": {"description": "Form options", "schema": {"$ref": "#/definitions/valuation.FormOptions"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CreateValuationRequest": {
            "type": "object",
            "properties": {
                "brand_tier": {"type": "string", "example": "premium"},
                "category": {"type": "string", "example": "electronics"},
                "condition": {"type": "string", "example": "good"},
                "original_price": {"type": "number", "example": 100000},
                "purchase_year": {"type": "integer", "example": 2024}
            }
        },
        "handlers.ValuationResponse": {
            "type": "object",
            "properties": {
                "display": {"$ref": "#/definitions/valuation.Display"},
                "image_url": {"type": "string"},
                "valuation": {"$ref": "#/definitions/services.Submission"}
            }
        },
        "services.Submission": {
            "type": "object",
            "properties": {
                "current_value_source": {"type": "string"},
                "input": {"$ref": "#/definitions/valuation.Input"},
                "local_current_value": {"type": "integer"},
                "result": {"$ref": "#/definitions/valuation.Result"}
            }
        },
        "valuation.Input": {
            "type": "object",
            "properties": {
                "brand_tier": {"type": "string"},
                "category": {"type": "string"},
                "condition": {"type": "string"},
                "original_price": {"type": "number"},
                "purchase_year": {"type": "integer"}
            }
        },
        "valuation.Result": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "brand_tier_multiplier": {"type": "number"},
                "condition_multiplier": {"type": "number"},
                "current_value": {"type": "integer"},
                "depreciation_rate": {"type": "number"},
                "future_prices": {"type": "array", "items": {"$ref": "#/definitions/valuation.PricePoint"}},
                "original_price": {"type": "number"}
            }
        },
        "valuation.PricePoint": {
            "type": "object",
            "properties": {
                "price": {"type": "integer"},
                "year": {"type": "integer"}
            }
        },
        "valuation.Display": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "brand_tier": {"type": "string"},
                "category": {"type": "string"},
                "condition": {"type": "string"},
                "current_value": {"type": "string"},
                "depreciated_percent": {"type": "integer"},
                "depreciation_rate": {"type": "string"},
                "future_prices": {"type": "array", "items": {"$ref": "#/definitions/valuation.DisplayPoint"}},
                "multipliers": {"type": "string"},
                "original_price": {"type": "string"}
            }
        },
        "valuation.DisplayPoint": {
            "type": "object",
            "properties": {
                "price": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "valuation.FormOptions": {
            "type": "object",
            "properties": {
                "brand_tiers": {"type": "array", "items": {"$ref": "#/definitions/valuation.Option"}},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/valuation.Option"}},
                "conditions": {"type": "array", "items": {"$ref": "#/definitions/valuation.Option"}},
                "purchase_years": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "valuation.Option": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },` + errorResponseDef + `
    }
}`

const pricingDocTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pricing"],
                "summary": "Pricing service status",
                "responses": {
                    "200": {"description": "Service is running", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/predict": {
            "post": {
                "description": "Estimate the resale price of a used item and record the prediction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pricing"],
                "summary": "Predict resale price",
                "parameters": [
                    {"description": "Item features", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PredictRequest"}}
                ],
                "responses": {
                    "200": {"description": "Estimated price", "schema": {"$ref": "#/definitions/handlers.PredictResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "description": "Get paginated predictions, newest first",
                "produces": ["application/json"],
                "tags": ["pricing"],
                "summary": "List prediction history",
                "parameters": [
                    {"type": "string", "description": "History API key, when configured", "name": "X-API-Key", "in": "header"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated history", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_ValuationLog"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.PredictRequest": {
            "type": "object",
            "required": ["age", "brand_tier", "condition", "original_price"],
            "properties": {
                "age": {"type": "integer", "minimum": 0, "example": 2},
                "brand_tier": {"type": "integer", "example": 3},
                "condition": {"type": "integer", "example": 4},
                "original_price": {"type": "number", "example": 100000}
            }
        },
        "handlers.PredictResponse": {
            "type": "object",
            "properties": {
                "estimated_price": {"type": "number", "example": 65000}
            }
        },
        "models.ValuationLog": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "brand_tier": {"type": "integer"},
                "condition": {"type": "integer"},
                "created_at": {"type": "string"},
                "estimated_price": {"type": "number"},
                "id": {"type": "string"},
                "original_price": {"type": "number"}
            }
        },
        "pagination.PageResponse-models_ValuationLog": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.ValuationLog"}},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },` + errorResponseDef + `
    }
}`

// SwaggerInfo holds exported Swagger Info for the valuation API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "SmartVal API",
	Description:      "SmartVal values used assets: a remote resale price plus a five year depreciation projection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// PricingSwaggerInfo holds exported Swagger Info for the pricing service.
var PricingSwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SmartVal Pricing Service",
	Description:      "Estimates resale prices for used assets and keeps a prediction history.",
	InfoInstanceName: "pricing",
	SwaggerTemplate:  pricingDocTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	swag.Register(PricingSwaggerInfo.InstanceName(), PricingSwaggerInfo)
}
