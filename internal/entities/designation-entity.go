package entities

import "github.com/aarondl/null/v8"

// Designation - должность. Title необязателен: в выпадающем списке тогда показывается Name.
type Designation struct {
	Name  string      `json:"name"`
	Title null.String `json:"title"`
}

// Label - подпись для выпадающего списка.
func (d Designation) Label() string {
	if d.Title.Valid && d.Title.String != "" {
		return d.Title.String
	}
	return d.Name
}
