package routes

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterDocsRoutes publishes the OpenAPI document for the wallet API.
func RegisterDocsRoutes(app *fiber.App) {
	doc := openAPIDocument()
	app.Get("/api-docs", func(c *fiber.Ctx) error {
		return c.JSON(doc)
	})
}

func openAPIDocument() fiber.Map {
	jsonBody := func(schema fiber.Map) fiber.Map {
		return fiber.Map{
			"required": true,
			"content":  fiber.Map{fiber.MIMEApplicationJSON: fiber.Map{"schema": schema}},
		}
	}
	jsonResponse := func(description string, schema fiber.Map) fiber.Map {
		return fiber.Map{
			"description": description,
			"content":     fiber.Map{fiber.MIMEApplicationJSON: fiber.Map{"schema": schema}},
		}
	}
	ref := func(name string) fiber.Map { return fiber.Map{"$ref": "#/components/schemas/" + name} }
	errResponse := func(description string) fiber.Map { return jsonResponse(description, ref("Error")) }
	pathParam := func(name string) fiber.Map {
		return fiber.Map{"in": "path", "name": name, "required": true, "schema": fiber.Map{"type": "string"}}
	}
	queryParam := func(name, typ string, required bool, def any) fiber.Map {
		schema := fiber.Map{"type": typ}
		if def != nil {
			schema["default"] = def
		}
		return fiber.Map{"in": "query", "name": name, "required": required, "schema": schema}
	}

	return fiber.Map{
		"openapi": "3.0.0",
		"info": fiber.Map{
			"title":       "Wallet API",
			"version":     "1.0.0",
			"description": "Wallet Management System API",
		},
		"paths": fiber.Map{
			"/setup": fiber.Map{
				"post": fiber.Map{
					"summary": "Initialize a new wallet",
					"requestBody": jsonBody(fiber.Map{
						"type": "object",
						"properties": fiber.Map{
							"name":    fiber.Map{"type": "string"},
							"balance": fiber.Map{"type": "number"},
						},
					}),
					"responses": fiber.Map{
						"200": jsonResponse("Wallet created", ref("Wallet")),
						"400": errResponse("Invalid body or opening balance"),
					},
				},
			},
			"/transact/{walletId}": fiber.Map{
				"post": fiber.Map{
					"summary":    "Execute a transaction; positive amounts credit, negative amounts debit",
					"parameters": []fiber.Map{pathParam("walletId")},
					"requestBody": jsonBody(fiber.Map{
						"type":     "object",
						"required": []string{"amount"},
						"properties": fiber.Map{
							"amount":      fiber.Map{"type": "number"},
							"description": fiber.Map{"type": "string"},
						},
					}),
					"responses": fiber.Map{
						"200": jsonResponse("Transaction applied", fiber.Map{
							"type": "object",
							"properties": fiber.Map{
								"balance":       fiber.Map{"type": "number"},
								"transactionId": fiber.Map{"type": "string"},
							},
						}),
						"400": errResponse("Insufficient funds or invalid amount"),
						"404": errResponse("Wallet not found"),
						"429": errResponse("Too many transactions"),
					},
				},
			},
			"/transactions": fiber.Map{
				"get": fiber.Map{
					"summary": "Fetch transactions, most recent first",
					"parameters": []fiber.Map{
						queryParam("walletId", "string", true, nil),
						queryParam("skip", "integer", false, 0),
						queryParam("limit", "integer", false, 10),
					},
					"responses": fiber.Map{
						"200": jsonResponse("Transaction page", fiber.Map{"type": "array", "items": ref("Transaction")}),
					},
				},
			},
			"/wallet/{id}": fiber.Map{
				"get": fiber.Map{
					"summary":    "Get wallet details",
					"parameters": []fiber.Map{pathParam("id")},
					"responses": fiber.Map{
						"200": jsonResponse("Wallet", ref("Wallet")),
						"404": errResponse("Wallet not found"),
					},
				},
			},
		},
		"components": fiber.Map{
			"schemas": fiber.Map{
				"Wallet": fiber.Map{
					"type": "object",
					"properties": fiber.Map{
						"id":        fiber.Map{"type": "string"},
						"name":      fiber.Map{"type": "string"},
						"balance":   fiber.Map{"type": "number"},
						"createdAt": fiber.Map{"type": "string", "format": "date-time"},
					},
				},
				"Transaction": fiber.Map{
					"type": "object",
					"properties": fiber.Map{
						"id":               fiber.Map{"type": "string"},
						"walletId":         fiber.Map{"type": "string"},
						"amount":           fiber.Map{"type": "number"},
						"type":             fiber.Map{"type": "string", "enum": []string{"CREDIT", "DEBIT"}},
						"resultingBalance": fiber.Map{"type": "number"},
						"description":      fiber.Map{"type": "string"},
						"createdAt":        fiber.Map{"type": "string", "format": "date-time"},
					},
				},
				"Error": fiber.Map{
					"type":       "object",
					"properties": fiber.Map{"error": fiber.Map{"type": "string"}},
				},
			},
		},
	}
}
