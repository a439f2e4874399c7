// Package docs registers the sandbox's OpenAPI description with swag so
// gin-swagger can serve it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
        "/health/db": {"get": {"summary": "Local store health", "responses": {"200": {"description": "ok"}, "503": {"description": "unavailable"}}}},
        "/auth/login": {"post": {"summary": "Log in", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "token", "schema": {"$ref": "#/definitions/AuthResponse"}}, "401": {"description": "invalid credentials"}}}},
        "/auth/register": {"post": {"summary": "Create an account", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}], "responses": {"201": {"description": "token", "schema": {"$ref": "#/definitions/AuthResponse"}}, "422": {"description": "validation failed"}}}},
        "/auth/me": {"get": {"summary": "Current user", "security": [{"Bearer": []}], "responses": {"200": {"description": "user"}, "401": {"description": "unauthorized"}}}},
        "/{resource}": {
            "parameters": [{"in": "path", "name": "resource", "required": true, "type": "string", "enum": ["clients", "ecoles", "formateurs", "sessions", "users"]}],
            "get": {"summary": "List records", "security": [{"Bearer": []}], "parameters": [
                {"in": "query", "name": "query", "type": "string", "description": "field|value or field|op|value, separated by ';'"},
                {"in": "query", "name": "order", "type": "string", "description": "field|asc,field|desc"},
                {"in": "query", "name": "page", "type": "integer"},
                {"in": "query", "name": "per_page", "type": "integer"}
            ], "responses": {"200": {"description": "records"}}},
            "post": {"summary": "Create a record", "security": [{"Bearer": []}], "responses": {"201": {"description": "created"}, "400": {"description": "bad JSON"}, "422": {"description": "validation failed"}}}
        },
        "/{resource}/{id}": {
            "parameters": [
                {"in": "path", "name": "resource", "required": true, "type": "string"},
                {"in": "path", "name": "id", "required": true, "type": "integer"}
            ],
            "get": {"summary": "Get a record", "security": [{"Bearer": []}], "responses": {"200": {"description": "record"}, "404": {"description": "not found"}}},
            "put": {"summary": "Sparse update: absent keys are kept, null clears", "security": [{"Bearer": []}], "responses": {"200": {"description": "updated"}, "404": {"description": "not found"}, "422": {"description": "validation failed"}}},
            "delete": {"summary": "Delete a record", "security": [{"Bearer": []}], "responses": {"204": {"description": "deleted"}, "404": {"description": "not found"}}}
        },
        "/{parent}/{id}/sessions": {
            "parameters": [
                {"in": "path", "name": "parent", "required": true, "type": "string", "enum": ["clients", "ecoles", "formateurs"]},
                {"in": "path", "name": "id", "required": true, "type": "integer"}
            ],
            "get": {"summary": "Sessions referencing a record", "security": [{"Bearer": []}], "responses": {"200": {"description": "sessions"}, "404": {"description": "not found"}}}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "RegisterRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "nom": {"type": "string"}, "prenom": {"type": "string"}}},
        "AuthResponse": {"type": "object", "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}, "user": {"type": "object"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "trainhub sandbox",
	Description:      "In-memory backend speaking the trainhub wire protocol.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
