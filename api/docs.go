// Package api contains the OpenAPI description served at /docs.
//
// Regenerate it with go generate after changing the handler annotations.
package api

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
        "/": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "description": "Entrypoint for the API, listing all endpoints",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "description": "Returns the application health and, if not healthy, an error",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "description": "Returns general information about the v1 API",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "options": {
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "delete": {
                "tags": [
                    "v1"
                ],
                "summary": "Delete everything",
                "description": "Permanently deletes all resources and restores the default categories. Unlocked repayment sessions end.",
                "parameters": [
                    {
                        "name": "confirm",
                        "in": "query",
                        "required": false,
                        "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/budgets": {
            "options": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budgets",
                "description": "Creates new budgets. The used amount is computed from the expenses of the category.",
                "parameters": [
                    {
                        "name": "budgets",
                        "in": "body",
                        "required": true,
                        "description": "Budgets",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "description": "Returns a list of budgets with their usage",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": false,
                        "description": "Filter by name",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category ID",
                        "type": "string"
                    },
                    {
                        "name": "period",
                        "in": "query",
                        "required": false,
                        "description": "Filter by period",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first budget returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of budgets to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "options": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "description": "Returns a specific budget",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "description": "Updates an existing budget. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "description": "Budget",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "description": "Deletes a budget",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/categories": {
            "options": {
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Categories"
                ],
                "summary": "Create categories",
                "description": "Creates new categories. The ID of a category is derived from its name.",
                "parameters": [
                    {
                        "name": "categories",
                        "in": "body",
                        "required": true,
                        "description": "Categories",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "description": "Returns the categories ordered by type and name. Income categories come first.",
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by type, 'income' or 'expense'",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/categories/{type}/{id}": {
            "options": {
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "description": "Type of the category",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID of the category",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            },
            "get": {
                "tags": [
                    "Categories"
                ],
                "summary": "Get category",
                "description": "Returns a specific category",
                "parameters": [
                    {
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "description": "Type of the category",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID of the category",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "description": "of the same type already uses it. Incomes, expenses, budgets and match rules move along with the ID.",
                "parameters": [
                    {
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "description": "Type of the category",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID of the category",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "description": "Category",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "description": "their incomes, expenses and budgets are then moved to \"other\".",
                "parameters": [
                    {
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "description": "Type of the category",
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID of the category",
                        "type": "string"
                    },
                    {
                        "name": "reassign",
                        "in": "query",
                        "required": false,
                        "description": "Move entries using the category to 'other'",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/dashboard": {
            "options": {
                "tags": [
                    "Overview"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "Overview"
                ],
                "summary": "Get dashboard",
                "description": "Only the chart buckets depend on the period.",
                "parameters": [
                    {
                        "name": "period",
                        "in": "query",
                        "required": false,
                        "description": "One of 'week', 'month' or 'year'. Defaults to 'month'.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/debts": {
            "options": {
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Debts"
                ],
                "summary": "Create debts",
                "description": "Creates new debts. New debts start with nothing paid.",
                "parameters": [
                    {
                        "name": "debts",
                        "in": "body",
                        "required": true,
                        "description": "Debts",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Debts"
                ],
                "summary": "Get debts",
                "description": "Returns a list of debts ordered by end date",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": false,
                        "description": "Filter by name",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search for this text in name and creditor",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first debt returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of debts to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/debts/{id}": {
            "options": {
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Debts"
                ],
                "summary": "Get debt",
                "description": "Returns a specific debt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Debts"
                ],
                "summary": "Update debt",
                "description": "Updates an existing debt. Only values to be updated need to be specified. The paid amount only changes with payments.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "debt",
                        "in": "body",
                        "required": true,
                        "description": "Debt",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Debts"
                ],
                "summary": "Delete debt",
                "description": "Deletes a debt",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/debts/{id}/payments": {
            "options": {
                "tags": [
                    "Debts"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Debts"
                ],
                "summary": "Pay debt",
                "description": "Adds a payment to a debt. Payments must not exceed the remaining amount.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "description": "Payment",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/expenses": {
            "options": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Create expenses",
                "description": "Creates new expenses. New expenses are always open. Expenses without category are categorized by the match rules.",
                "parameters": [
                    {
                        "name": "expenses",
                        "in": "body",
                        "required": true,
                        "description": "Expenses",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Get expenses",
                "description": "Returns a list of expenses, newest first",
                "parameters": [
                    {
                        "name": "description",
                        "in": "query",
                        "required": false,
                        "description": "Filter by description",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search for this text in the description",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category ID",
                        "type": "string"
                    },
                    {
                        "name": "fromDate",
                        "in": "query",
                        "required": false,
                        "description": "Expenses on and after this date, YYYY-MM-DD",
                        "type": "string"
                    },
                    {
                        "name": "untilDate",
                        "in": "query",
                        "required": false,
                        "description": "Expenses on and before this date, YYYY-MM-DD",
                        "type": "string"
                    },
                    {
                        "name": "amountLessOrEqual",
                        "in": "query",
                        "required": false,
                        "description": "Amount less than or equal to this",
                        "type": "string"
                    },
                    {
                        "name": "amountMoreOrEqual",
                        "in": "query",
                        "required": false,
                        "description": "Amount more than or equal to this",
                        "type": "string"
                    },
                    {
                        "name": "paymentMethod",
                        "in": "query",
                        "required": false,
                        "description": "Filter by payment method",
                        "type": "string"
                    },
                    {
                        "name": "paymentStatus",
                        "in": "query",
                        "required": false,
                        "description": "Filter by payment status, 'open' or 'paid'",
                        "type": "string"
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "description": "Filter by month, YYYY-MM",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first expense returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of expenses to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/expenses/{id}": {
            "options": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Get expense",
                "description": "Returns a specific expense",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Update expense",
                "description": "The budgets of the previous and the new category are recomputed.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "description": "Expense",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Delete expense",
                "description": "Deletes an expense. The budgets of its category are recomputed.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/expenses/{id}/paid": {
            "options": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Expenses"
                ],
                "summary": "Mark expense as paid",
                "description": "Sets the payment status of an expense to paid",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/export": {
            "options": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Export",
                "description": "Exports all data. The response can be sent to the import endpoint as is.",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/goals": {
            "options": {
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Goals"
                ],
                "summary": "Create goals",
                "description": "Creates new goals. New goals start with nothing saved.",
                "parameters": [
                    {
                        "name": "goals",
                        "in": "body",
                        "required": true,
                        "description": "Goals",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Goals"
                ],
                "summary": "Get goals",
                "description": "Returns a list of goals ordered by deadline",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": false,
                        "description": "Filter by name",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search for this text in name and description",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first goal returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of goals to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/goals/{id}": {
            "options": {
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Goals"
                ],
                "summary": "Get goal",
                "description": "Returns a specific goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Goals"
                ],
                "summary": "Update goal",
                "description": "Updates an existing goal. Only values to be updated need to be specified. The saved amount only changes with deposits.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "description": "Goal",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Goals"
                ],
                "summary": "Delete goal",
                "description": "Deletes a goal",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/goals/{id}/deposits": {
            "options": {
                "tags": [
                    "Goals"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Goals"
                ],
                "summary": "Deposit to goal",
                "description": "Adds an amount to the saved amount of a goal. Deposits may exceed the target.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "deposit",
                        "in": "body",
                        "required": true,
                        "description": "Deposit",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/import": {
            "options": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Import",
                "description": "Replaces all data with the data in the request body. The repayment password is kept.",
                "parameters": [
                    {
                        "name": "confirm",
                        "in": "query",
                        "required": true,
                        "description": "Confirmation to replace all data. Must have the value 'yes-replace-everything'",
                        "type": "string"
                    },
                    {
                        "name": "snapshot",
                        "in": "body",
                        "required": true,
                        "description": "Data as returned by the export",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/import/ofx": {
            "options": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Persistence"
                ],
                "summary": "Preview bank statement",
                "description": "Entries that have been imported before list the IDs of the existing entries.",
                "parameters": [
                    {
                        "name": "file",
                        "in": "formData",
                        "required": true,
                        "description": "File to import",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/incomes": {
            "options": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Create incomes",
                "description": "Creates new incomes. Incomes without category are categorized by the match rules.",
                "parameters": [
                    {
                        "name": "incomes",
                        "in": "body",
                        "required": true,
                        "description": "Incomes",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Get incomes",
                "description": "Returns a list of incomes, newest first",
                "parameters": [
                    {
                        "name": "description",
                        "in": "query",
                        "required": false,
                        "description": "Filter by description",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search for this text in the description",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category ID",
                        "type": "string"
                    },
                    {
                        "name": "fromDate",
                        "in": "query",
                        "required": false,
                        "description": "Incomes on and after this date, YYYY-MM-DD",
                        "type": "string"
                    },
                    {
                        "name": "untilDate",
                        "in": "query",
                        "required": false,
                        "description": "Incomes on and before this date, YYYY-MM-DD",
                        "type": "string"
                    },
                    {
                        "name": "amountLessOrEqual",
                        "in": "query",
                        "required": false,
                        "description": "Amount less than or equal to this",
                        "type": "string"
                    },
                    {
                        "name": "amountMoreOrEqual",
                        "in": "query",
                        "required": false,
                        "description": "Amount more than or equal to this",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first income returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of incomes to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/incomes/{id}": {
            "options": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Get income",
                "description": "Returns a specific income",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Update income",
                "description": "Updates an existing income. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "description": "Income",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Incomes"
                ],
                "summary": "Delete income",
                "description": "Deletes an income",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/match-rules": {
            "options": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Create match rules",
                "description": "Creates new match rules. The category must exist for the type of the rule.",
                "parameters": [
                    {
                        "name": "matchRules",
                        "in": "body",
                        "required": true,
                        "description": "Match rules",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Get match rules",
                "description": "Returns a list of match rules in the order they are evaluated",
                "parameters": [
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by entry type, 'income' or 'expense'",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Filter by category ID",
                        "type": "string"
                    },
                    {
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "description": "Filter by pattern",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first match rule returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of match rules to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/match-rules/{id}": {
            "options": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Get match rule",
                "description": "Returns a specific match rule",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Update match rule",
                "description": "Updates an existing match rule. Only values to be updated need to be specified.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "matchRule",
                        "in": "body",
                        "required": true,
                        "description": "Match rule",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Match Rules"
                ],
                "summary": "Delete match rule",
                "description": "Deletes a match rule",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/month-closures": {
            "options": {
                "tags": [
                    "Month Closures"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "Month Closures"
                ],
                "summary": "Get month closures",
                "description": "Returns all month closures, newest first",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "post": {
                "tags": [
                    "Month Closures"
                ],
                "summary": "Close month",
                "description": "Closes the current month. Every unpaid expense of the month is copied to the same day of the next month.",
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/repayments": {
            "options": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Create repayments",
                "description": "Creates new repayments. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "repayments",
                        "in": "body",
                        "required": true,
                        "description": "Repayments",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Get repayments",
                "description": "Returns a list of repayments, newest first. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "person",
                        "in": "query",
                        "required": false,
                        "description": "Filter by person",
                        "type": "string"
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Filter by type, 'owed-to-me' or 'owed-by-me'",
                        "type": "string"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "The offset of the first repayment returned. Defaults to 0.",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Maximum number of repayments to return. Defaults to 50.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/repayments/session": {
            "options": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Get repayment session",
                "description": "Returns if a repayment password is set up and if the request carries an unlocked session",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "post": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Unlock repayments",
                "description": "The token is returned and set as cookie. Send it in the X-Repayment-Session header or the cookie.",
                "parameters": [
                    {
                        "name": "unlock",
                        "in": "body",
                        "required": true,
                        "description": "Password",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Lock repayments",
                "description": "Ends the repayment session of the request",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/repayments/{id}": {
            "options": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "get": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Get repayment",
                "description": "Returns a specific repayment. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "patch": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Update repayment",
                "description": "Updates an existing repayment. Only values to be updated need to be specified. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    },
                    {
                        "name": "repayment",
                        "in": "body",
                        "required": true,
                        "description": "Repayment",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            },
            "delete": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Delete repayment",
                "description": "Deletes a repayment. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/repayments/{id}/paid": {
            "options": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "tags": [
                    "Repayments"
                ],
                "summary": "Settle repayment",
                "description": "Marks a repayment as paid. Paid repayments are removed. Requires an unlocked session.",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/v1/reports": {
            "options": {
                "tags": [
                    "Overview"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "tags": [
                    "Overview"
                ],
                "summary": "Get report",
                "description": "Returns totals, statistics and the trend series for a period",
                "parameters": [
                    {
                        "name": "period",
                        "in": "query",
                        "required": false,
                        "description": "One of 'month', 'quarter' or 'year'. Defaults to 'month'.",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "500": {
                        "description": "Internal Server Error"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "description": "Returns the software version of the API",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "options": {
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "FinSight",
	Description:      "The backend for FinSight, a personal finance tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
