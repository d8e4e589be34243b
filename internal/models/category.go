package models

// Category is an entry in the reference catalogue shown by the client.
// Transactions store categories as free-form strings; the catalogue only
// suggests names.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Kind  Kind   `json:"type"`
}
