package messmenu

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/parser"
	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"
)

// ParseFile parses the menu workbook at path.
// The error is non-nil only when the file cannot be read; parse failures are
// reported in the result.
func ParseFile(path string, opts Options) (*models.ParseResult, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(buf, opts), nil
}

// ParseReader parses a menu workbook read from r.
func ParseReader(r io.Reader, opts Options) *models.ParseResult {
	buf, err := io.ReadAll(r)
	if err != nil {
		result := newResult()
		fail(result, newStructuralError(err.Error(), err))
		return result
	}
	return Parse(buf, opts)
}

// Parse parses an xlsx workbook held in buf. Only the first sheet is read.
// It never panics and never returns nil.
func Parse(buf []byte, opts Options) (result *models.ParseResult) {
	result = newResult()
	defer recoverInto(result)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		fail(result, newStructuralError(err.Error(), fmt.Errorf("%w: %v", ErrInvalidFormat, err)))
		return result
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	grid, err := parser.ReadGrid(f, sheetName)
	if err != nil {
		fail(result, newStructuralError(err.Error(), fmt.Errorf("%w: %v", ErrInvalidFormat, err)))
		return result
	}

	if opts.ShouldUsePrintArea() {
		if area, ok := parser.FindPrintArea(f, sheetName); ok {
			klog.V(2).Infof("cropping sheet %q to print area %+v", sheetName, area)
			grid = area.Crop(grid)
		}
	}

	parseGrid(result, grid, opts)
	return result
}

// ParseGrid parses an already loaded grid.
func ParseGrid(grid models.Grid, opts Options) (result *models.ParseResult) {
	result = newResult()
	defer recoverInto(result)

	parseGrid(result, grid, opts)
	return result
}

func parseGrid(result *models.ParseResult, grid models.Grid, opts Options) {
	result.UsedRange = parser.UsedRange(grid)

	if grid.Len() < 2 {
		fail(result, newStructuralError("Invalid Excel format: Not enough rows", ErrNotEnoughRows))
		return
	}

	analysis := parser.AnalyzeStructure(grid, opts.StructureParams())
	result.Structure = analysis
	if !analysis.Found() {
		fail(result, newStructuralError(
			"Could not find day headers in the Excel file. Please ensure the file contains day names (Monday, Tuesday, etc.).",
			ErrNoDayHeaders))
		return
	}
	klog.V(2).Infof("header row %d, date row %d", analysis.HeaderRowIndex, analysis.DateRowIndex)

	columns, warnings := parser.DiscoverColumns(grid.Row(analysis.HeaderRowIndex), grid.Row(analysis.DateRowIndex))
	result.Warnings = append(result.Warnings, warnings...)
	if len(columns) == 0 {
		fail(result, newStructuralError(
			"No valid day columns found. Please ensure your Excel file has day headers (Monday, Tuesday, etc.).",
			ErrNoDayColumns))
		return
	}

	menu := models.NewWeeklyMenu()
	for _, col := range columns {
		if col.Date != "" {
			date := col.Date
			menu[col.Day].Date = &date
		}
	}

	sections := parser.DetectSections(grid, analysis.HeaderRowIndex)
	for _, meal := range models.AllMeals {
		section := sections[meal]
		n := parser.ExtractItems(grid, section, columns, menu)
		klog.V(2).Infof("%s: rows %d-%d, %d items", meal, section.StartRow, section.EndRow, n)
	}

	found := parser.FoundDays(columns)
	stats, warnings := parser.Validate(menu, found)
	result.Menu = menu
	result.Stats = stats
	result.Warnings = append(result.Warnings, warnings...)

	if stats.TotalItems == 0 {
		err := &ContentError{DaysFound: stats.DaysFound}
		result.Errors = append(result.Errors, err.Error())
		result.Failure = err
	}
}

func newResult() *models.ParseResult {
	return &models.ParseResult{
		Menu:      models.NewWeeklyMenu(),
		Errors:    []string{},
		Warnings:  []string{},
		Stats:     models.EmptyStats(),
		Structure: models.StructureAnalysis{HeaderRowIndex: -1, DateRowIndex: -1},
	}
}

// fail records a structural failure and resets the menu and stats.
func fail(result *models.ParseResult, err *StructuralError) {
	klog.V(1).Infof("menu parse failed: %v", err)
	result.Menu = models.NewWeeklyMenu()
	result.Stats = models.EmptyStats()
	result.Errors = append(result.Errors, err.Error())
	result.Failure = err
}

func recoverInto(result *models.ParseResult) {
	if r := recover(); r != nil {
		klog.Errorf("panic while parsing menu: %v", r)
		fail(result, newStructuralError(fmt.Sprint(r), fmt.Errorf("%w: %v", ErrInvalidFormat, r)))
	}
}
