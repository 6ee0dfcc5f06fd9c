// Package output serializes parse results.
package output

import (
	"encoding/json"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
)

// ToJSON serializes a parse result.
func ToJSON(result *models.ParseResult, pretty bool) ([]byte, error) {
	return marshal(result, pretty)
}

// RowsToJSON serializes the flattened menu rows of a result.
func RowsToJSON(result *models.ParseResult, pretty bool) ([]byte, error) {
	rows := result.Menu.Flatten()
	if rows == nil {
		rows = []models.MenuRow{}
	}
	return marshal(rows, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
