package entity

import "time"

// CatalogItem is a requestable supply. Items are never hard-deleted; IsActive
// is flipped instead so historical line items keep resolving.
type CatalogItem struct {
	ID           int64     `json:"id"`
	ItemName     string    `json:"item_name"`
	Category     string    `json:"category"`
	RoleCategory string    `json:"role_category"`
	Unit         string    `json:"unit"`
	Description  string    `json:"description"`
	AddedBy      string    `json:"added_by"`
	AddedByName  string    `json:"added_by_name,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
