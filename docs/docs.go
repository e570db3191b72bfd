// Package docs registra el documento OpenAPI que sirve /swagger.
// Sigue el formato de `swag init` y las anotaciones @Router de los handlers;
// al cambiar una ruta hay que actualizar ambos.
package docs

import "github.com/swaggo/swag"

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
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Liveness",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/recommendations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recommendations"],
                "summary": "Genera dieta, vacunas y cuidados para un perfil",
                "parameters": [
                    {"in": "body", "name": "profile", "required": true, "schema": {"$ref": "#/definitions/recommendations.ProfileInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recommendations.View"}},
                    "400": {"description": "invalid json body"},
                    "422": {"description": "alguna sección no se pudo generar", "schema": {"$ref": "#/definitions/recommendations.View"}}
                }
            }
        },
        "/breeds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Lista razas del catálogo",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "enum": ["toy", "small", "medium", "large", "giant"]},
                    {"type": "string", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "invalid category"}}
            }
        },
        "/breeds/{breedID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "Detalle de raza; el contenido premium depende del plan",
                "parameters": [{"type": "string", "name": "breedID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "breed not found"}}
            }
        },
        "/onboarding/steps/{step}/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Valida un paso del cuestionario",
                "parameters": [
                    {"type": "integer", "name": "step", "in": "path", "required": true, "enum": [1, 2, 3]},
                    {"in": "body", "name": "submission", "required": true, "schema": {"$ref": "#/definitions/onboarding.Submission"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "unknown step"}, "422": {"description": "campos faltantes o inválidos"}}
            }
        },
        "/onboarding/complete": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Completa el onboarding y devuelve las recomendaciones",
                "parameters": [
                    {"in": "body", "name": "submission", "required": true, "schema": {"$ref": "#/definitions/onboarding.Submission"}}
                ],
                "responses": {"201": {"description": "Created"}, "422": {"description": "paso incompleto o edad/peso inválidos"}}
            }
        },
        "/checkout/subscriptions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Crea la suscripción premium (cartão ou PIX)",
                "parameters": [
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/checkout.SubscribeInput"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "validación o rechazo del gateway"}, "500": {"description": "gateway no configurado"}}
            }
        }
    },
    "definitions": {
        "recommendations.ProfileInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "string", "example": "3"},
                "age_unit": {"type": "string", "enum": ["months", "years"]},
                "weight": {"type": "string", "example": "12.5"},
                "gender": {"type": "string", "enum": ["male", "female"]},
                "size": {"type": "string", "enum": ["small", "medium", "large", "giant"]},
                "activity_level": {"type": "string", "enum": ["low", "moderate", "high"]},
                "health_conditions": {"type": "string"},
                "current_diet": {"type": "string"},
                "allergies": {"type": "string"}
            }
        },
        "recommendations.View": {
            "type": "object",
            "properties": {
                "plan": {"type": "string", "enum": ["free", "premium"]},
                "diet": {"type": "array", "items": {"type": "string"}},
                "vaccines": {"type": "array", "items": {"type": "object"}},
                "care": {"type": "array", "items": {"type": "object"}},
                "locked": {"type": "array", "items": {"type": "string"}},
                "errors": {"type": "array", "items": {"type": "object"}}
            }
        },
        "onboarding.Submission": {
            "type": "object",
            "properties": {
                "owner": {"type": "object"},
                "pet": {"type": "object"},
                "details": {"type": "object"}
            }
        },
        "checkout.SubscribeInput": {
            "type": "object",
            "properties": {
                "customer": {"type": "object"},
                "billing_type": {"type": "string", "enum": ["CREDIT_CARD", "PIX"]},
                "credit_card": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetID API",
	Description:      "Recomendaciones de dieta, vacunas y cuidados para perros, catálogo de razas y checkout premium.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
