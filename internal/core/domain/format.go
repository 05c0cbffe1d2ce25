package domain

import "fmt"

var byteUnits = []string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders n with decimal (SI) units and two decimals, e.g. "10.00 MB".
func FormatBytes(n uint64) string {
	value := float64(n)
	unit := 0
	for value >= 1000 && unit < len(byteUnits)-1 {
		value /= 1000
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}
