package schema

import "strings" // Joining category names

// Roles a user may hold. Unenforced by the API.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Categories a product may belong to.
var Categories = []string{"electronics", "clothing", "food", "books", "other"}

// Users is the schema for POST /api/users.
var Users = New("User",
	Field{
		Name:     "name",
		Kind:     String,
		Required: true,
		Trim:     true,
		Messages: map[string]string{MsgRequired: "Please provide a name"},
	},
	Field{
		Name:     "email",
		Kind:     String,
		Required: true,
		Trim:     true,
		Rules:    "max=255",
		Messages: map[string]string{
			MsgRequired: "Please provide an email",
			"max":       "Email cannot be more than 255 characters",
		},
	},
	Field{
		Name:     "password",
		Kind:     String,
		Required: true,
		Rules:    "min=6",
		Messages: map[string]string{
			MsgRequired: "Please provide a password",
			"min":       "Password must be at least 6 characters",
		},
	},
	Field{
		Name:    "role",
		Kind:    String,
		Rules:   "oneof=" + RoleUser + " " + RoleAdmin,
		Default: RoleUser,
	},
)

// Products is the schema for POST /api/products.
var Products = New("Product",
	Field{
		Name:     "name",
		Kind:     String,
		Required: true,
		Trim:     true,
		Rules:    "max=100",
		Messages: map[string]string{
			MsgRequired: "Please provide a product name",
			"max":       "Product name cannot be more than 100 characters",
		},
	},
	Field{
		Name:     "description",
		Kind:     String,
		Required: true,
		Rules:    "max=1000",
		Messages: map[string]string{
			MsgRequired: "Please provide a product description",
			"max":       "Description cannot be more than 1000 characters",
		},
	},
	Field{
		Name:     "price",
		Kind:     Number,
		Required: true,
		Rules:    "min=0",
		Messages: map[string]string{
			MsgRequired: "Please provide a product price",
			"min":       "Price must be positive",
		},
	},
	Field{
		Name:     "category",
		Kind:     String,
		Required: true,
		Rules:    "oneof=" + strings.Join(Categories, " "),
		Messages: map[string]string{MsgRequired: "Please provide a product category"},
	},
	Field{
		Name:    "inStock",
		Kind:    Boolean,
		Default: true,
	},
	Field{
		Name:     "createdBy",
		Kind:     Reference,
		Required: true,
	},
)
