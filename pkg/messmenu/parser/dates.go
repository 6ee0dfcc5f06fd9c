package parser

import (
	"math"
	"strconv"
	"time"

	"github.com/addy-2709genius/messmenu-go/pkg/messmenu/models"
	"github.com/araddon/dateparse"
)

const isoLayout = "2006-01-02"

// maxSerial is the first serial past 9999-12-31.
const maxSerial = 2958466

// excelEpoch is day zero of spreadsheet date serials.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateParser converts a raw cell value to an ISO date, reporting success.
type dateParser func(v interface{}) (string, bool)

// dateParsers are tried in priority order; the first success wins.
var dateParsers = []dateParser{
	parseISODate,
	parseSlashDate,
	parseSerialDate,
	parseGenericDate,
}

// ExtractDate converts a date cell to "YYYY-MM-DD", or "" when no parser accepts it.
func ExtractDate(v interface{}) string {
	if models.CellText(v) == "" {
		return ""
	}
	for _, parse := range dateParsers {
		if iso, ok := parse(v); ok {
			return iso
		}
	}
	return ""
}

// DateFromHeader reads a D/M/Y date embedded in header text such as "Monday 15/12/25".
func DateFromHeader(text string) string {
	iso, _ := parseSlashDate(text)
	return iso
}

func parseISODate(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = models.CellText(s)
	if !isoDatePattern.MatchString(s) {
		return "", false
	}
	if _, err := time.Parse(isoLayout, s); err != nil {
		return "", false
	}
	return s, true
}

func parseSlashDate(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	m := slashDatePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range values; reject when it did.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(isoLayout), true
}

func parseSerialDate(v interface{}) (string, bool) {
	n, ok := models.CellNumber(v)
	if !ok || n <= 0 || n >= maxSerial {
		return "", false
	}
	return excelEpoch.AddDate(0, 0, int(math.Floor(n))).Format(isoLayout), true
}

func parseGenericDate(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	t, err := dateparse.ParseAny(models.CellText(s))
	if err != nil || t.Year() <= 1900 || t.Year() > 9999 {
		return "", false
	}
	return t.Format(isoLayout), true
}
