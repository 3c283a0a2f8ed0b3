// Package docs регистрирует swagger-спецификацию каталога меню.
// Код сгенерирован swag и отформатирован вручную.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/menu/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Список позиций меню",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItem"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Создать позицию меню",
                "parameters": [
                    {"description": "Поля позиции", "name": "item", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/models.MenuItemCreate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            }
        },
        "/menu/category/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Позиции меню по категории",
                "parameters": [
                    {"type": "string", "description": "Категория", "name": "category", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItem"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/menu/{item_id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Позиция меню по id",
                "parameters": [
                    {"type": "integer", "description": "ID позиции", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Обновить позицию меню",
                "parameters": [
                    {"type": "integer", "description": "ID позиции", "name": "item_id", "in": "path", "required": true},
                    {"description": "Изменяемые поля", "name": "item", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/models.MenuItemUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ValidationErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Удалить позицию меню",
                "parameters": [
                    {"type": "integer", "description": "ID позиции", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/menu/{item_id}/availability": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Сменить доступность позиции",
                "parameters": [
                    {"type": "integer", "description": "ID позиции", "name": "item_id", "in": "path", "required": true},
                    {"type": "boolean", "description": "Новое значение", "name": "is_available", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string"},
                            "rule": {"type": "string"},
                            "value": {}
                        }
                    }
                }
            }
        },
        "models.MenuItem": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "cuisine": {"type": "string"},
                "rating": {"type": "number"},
                "is_available": {"type": "boolean"}
            }
        },
        "models.MenuItemCreate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "cuisine": {"type": "string"},
                "rating": {"type": "number"},
                "is_available": {"type": "boolean"}
            }
        },
        "models.MenuItemUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "category": {"type": "string"},
                "cuisine": {"type": "string"},
                "rating": {"type": "number"},
                "is_available": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo содержит метаданные спецификации.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Menu Catalog Service API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
