package format

import "strconv"

// AutoForeground picks "black" or "white" for text over a "#RRGGBB"
// background, using the ITU-R 601 luma weights. Unparseable input falls back
// to black.
func AutoForeground(hexColor string) string {
	c := hexColor
	if len(c) > 0 && c[0] == '#' {
		c = c[1:]
	}
	if len(c) != 6 {
		return "black"
	}
	r, errR := strconv.ParseInt(c[0:2], 16, 32)
	g, errG := strconv.ParseInt(c[2:4], 16, 32)
	b, errB := strconv.ParseInt(c[4:6], 16, 32)
	if errR != nil || errG != nil || errB != nil {
		return "black"
	}
	y := (r*299 + g*587 + b*114) / 1000
	if y > 140 {
		return "black"
	}
	return "white"
}
