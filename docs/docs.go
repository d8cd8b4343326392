// Package docs holds the Swagger definition served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/books": {
            "post": {
                "summary": "Create a book",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string"},
                                "author": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreatedResponse"}},
                    "400": {"description": "Missing title", "schema": {"$ref": "#/definitions/CreateError"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/CreateError"}}
                }
            }
        },
        "/books/{bookId}": {
            "get": {
                "summary": "Get a book's details",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "bookId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Book"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/books/{bookId}/pages": {
            "get": {
                "summary": "List a book's pages in creation order",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "bookId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Page"}}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "summary": "Upload a page image and start its analysis",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "bookId", "in": "path", "required": true, "type": "string"},
                    {"name": "image", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created, analysis pending", "schema": {"$ref": "#/definitions/CreatedResponse"}},
                    "400": {"description": "No image file provided", "schema": {"$ref": "#/definitions/CreateError"}},
                    "404": {"description": "Book not found", "schema": {"$ref": "#/definitions/CreateError"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/CreateError"}}
                }
            }
        },
        "/pages/{pageId}": {
            "get": {
                "summary": "Get one page, including its analysis status",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "pageId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Page"}},
                    "404": {"description": "Page not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tts": {
            "post": {
                "summary": "Synthesize speech from text",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "text": {"type": "string"},
                                "voice": {"type": "string", "description": "Optional, defaults to nova"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Audio created", "schema": {"$ref": "#/definitions/TTSResponse"}},
                    "400": {"description": "No text provided / Invalid voice option", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Healthy"},
                    "503": {"description": "Dependency unavailable"}
                }
            }
        }
    },
    "definitions": {
        "Book": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "author": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "Page": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "bookId": {"type": "string"},
                "imageUrl": {"type": "string"},
                "pageContent": {"$ref": "#/definitions/PageContent"},
                "status": {"type": "string", "enum": ["processing", "completed", "error"]},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "PageContent": {
            "type": "object",
            "properties": {
                "header": {"type": "string", "x-nullable": true},
                "footer": {"type": "string", "x-nullable": true},
                "body": {"type": "string"},
                "page": {"type": "string", "x-nullable": true},
                "filename": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "CreateError": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "x-nullable": true},
                "error": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "TTSResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "path": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Orator API",
	Description:      "Backend for the Orator scanning and read-aloud mobile app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
