// Package docs registers the OpenAPI descriptor served by gin-swagger.
// Kept by hand in the layout `swag init` produces; update alongside router.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {"tags": ["categorias"], "summary": "Lista todas las categorías", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categorias"], "summary": "Crea una categoría", "responses": {"201": {"description": "Created"}, "409": {"description": "Nombre duplicado"}, "422": {"description": "Validación"}}}
        },
        "/categories/{id}": {
            "get": {"tags": ["categorias"], "summary": "Obtiene una categoría", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrada"}}},
            "delete": {"tags": ["categorias"], "summary": "Elimina una categoría sin referencias", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "No Content"}, "404": {"description": "No encontrada"}, "409": {"description": "En uso"}}}
        },
        "/products": {
            "get": {"tags": ["productos"], "summary": "Lista productos", "parameters": [{"name": "skip", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["productos"], "summary": "Crea un producto", "responses": {"201": {"description": "Created"}, "404": {"description": "Categoría no encontrada"}}}
        },
        "/products/{id}": {
            "get": {"tags": ["productos"], "summary": "Obtiene un producto", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}},
            "put": {"tags": ["productos"], "summary": "Actualiza un producto", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}},
            "delete": {"tags": ["productos"], "summary": "Elimina un producto", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}}
        },
        "/products/by-category/{category_id}": {
            "get": {"tags": ["productos"], "summary": "Productos de una categoría", "parameters": [{"name": "category_id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/products/{id}/desserts": {
            "get": {"tags": ["productos"], "summary": "Postres relacionados", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}}
        },
        "/desserts": {
            "get": {"tags": ["postres"], "summary": "Lista postres", "parameters": [{"name": "skip", "in": "query", "type": "integer"}, {"name": "limit", "in": "query", "type": "integer"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["postres"], "summary": "Crea un postre", "responses": {"201": {"description": "Created"}, "404": {"description": "Categoría no encontrada"}}}
        },
        "/desserts/{id}": {
            "get": {"tags": ["postres"], "summary": "Obtiene un postre", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}},
            "put": {"tags": ["postres"], "summary": "Actualiza un postre", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}},
            "delete": {"tags": ["postres"], "summary": "Elimina un postre", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}}
        },
        "/desserts/by-category/{category_id}": {
            "get": {"tags": ["postres"], "summary": "Postres de una categoría", "parameters": [{"name": "category_id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}
        },
        "/desserts/{id}/products": {
            "get": {"tags": ["postres"], "summary": "Productos relacionados", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No encontrado"}}}
        },
        "/search/{term}": {
            "get": {"tags": ["busqueda"], "summary": "Busca en productos, postres y categorías", "parameters": [{"name": "term", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/menu/pdf": {
            "get": {"tags": ["menu"], "summary": "Menú imprimible", "produces": ["application/pdf"], "responses": {"200": {"description": "PDF"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API Cafetería El Rincón Mexicano",
	Description:      "Productos, postres y categorías de una cafetería mexicana con relaciones entre tablas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
