package parser

import (
	"strings"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// FindPrintArea returns the first print area that applies to sheetName.
// A reference without a sheet prefix belongs to the defined name's scope.
func FindPrintArea(f *excelize.File, sheetName string) (models.PrintArea, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		if area, ok := printAreaFor(dn.RefersTo, dn.Scope, sheetName); ok {
			return area, true
		}
	}
	return models.PrintArea{}, false
}

// printAreaFor scans a comma separated list like 'Mess Menu'!$A$1:$H$40 for
// the first range on sheetName.
func printAreaFor(refersTo, scope, sheetName string) (models.PrintArea, bool) {
	for _, ref := range strings.Split(refersTo, ",") {
		sheet, rng := splitSheetRef(ref)
		if sheet == "" {
			sheet = scope
		}
		if sheet != sheetName {
			continue
		}
		if area, ok := areaFromRange(rng); ok {
			return area, true
		}
	}
	return models.PrintArea{}, false
}

// splitSheetRef splits "Sheet!A1:B2" into its unquoted sheet name and range.
func splitSheetRef(ref string) (string, string) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ref
	}
	sheet := ref[:idx]
	if len(sheet) >= 2 && sheet[0] == '\'' && sheet[len(sheet)-1] == '\'' {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, ref[idx+1:]
}

// areaFromRange converts $A$1:$D$10 to a PrintArea with ordered corners.
func areaFromRange(rng string) (models.PrintArea, bool) {
	corners := strings.Split(strings.ReplaceAll(rng, "$", ""), ":")
	if len(corners) != 2 {
		return models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(corners[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(corners[1])
	if err != nil {
		return models.PrintArea{}, false
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
