// Package messmenu parses mess menu spreadsheets into a weekly menu.
package messmenu

import "github.com/addy-2709genius/messmenu-go/pkg/messmenu/parser"

// Options configures parsing behavior.
type Options struct {
	// HeaderScanRows bounds the header row search. Zero means the default (15).
	HeaderScanRows int `yaml:"header_scan_rows"`
	// MinDayMatches is the number of day-name cells that marks the header row.
	// Zero means the default (3).
	MinDayMatches int `yaml:"min_day_matches"`
	// UsePrintArea restricts parsing to the first sheet's print area when one is defined.
	// If nil, defaults to false.
	UsePrintArea *bool `yaml:"use_print_area"`
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldUsePrintArea returns whether to crop the sheet to its print area.
func (o Options) ShouldUsePrintArea() bool {
	if o.UsePrintArea != nil {
		return *o.UsePrintArea
	}
	return false
}

// StructureParams returns the structure detection parameters implied by o.
func (o Options) StructureParams() parser.StructureParams {
	params := parser.DefaultStructureParams()
	if o.HeaderScanRows > 0 {
		params.HeaderScanRows = o.HeaderScanRows
	}
	if o.MinDayMatches > 0 {
		params.MinDayMatches = o.MinDayMatches
	}
	return params
}
