package fsutils

import "strconv"

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// SizeText returns a short human readable size, e.g. "318B", "4KB", "2MB".
func SizeText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div // round to nearest
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
