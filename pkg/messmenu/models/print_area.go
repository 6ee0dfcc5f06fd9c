package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Crop returns the part of g inside the area. Cells outside the area are dropped.
func (a PrintArea) Crop(g Grid) Grid {
	var out Grid
	for r := a.R1 - 1; r < a.R2 && r < len(g); r++ {
		if r < 0 {
			continue
		}
		row := g[r]
		var cropped []interface{}
		for c := a.C1 - 1; c < a.C2 && c < len(row); c++ {
			if c < 0 {
				continue
			}
			cropped = append(cropped, row[c])
		}
		out = append(out, cropped)
	}
	return out
}
