package models

import "fmt"

// SizeBase selects the multiplier between successive size units
type SizeBase int

const (
	SizeBaseBinary  SizeBase = iota // 1024, KiB/MiB/...
	SizeBaseDecimal                 // 1000, KB/MB/...
)

// Unit multipliers for each base
const (
	BinaryUnit  = 1024
	DecimalUnit = 1000
)

var (
	binaryUnits  = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	decimalUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}
)

// String returns the config spelling of the base
func (b SizeBase) String() string {
	if b == SizeBaseDecimal {
		return "decimal"
	}
	return "binary"
}

// FormatSize renders n in the largest unit whose scaled value is >= 1, with two fraction digits.
// Values past the last unit stay in PB/PiB.
func FormatSize(n uint64, base SizeBase) string {
	divisor := float64(BinaryUnit)
	units := binaryUnits[:]
	if base == SizeBaseDecimal {
		divisor = DecimalUnit
		units = decimalUnits[:]
	}

	value := float64(n)
	unit := 0
	for value >= divisor && unit < len(units)-1 {
		value /= divisor
		unit++
	}

	return fmt.Sprintf("%.2f %s", value, units[unit])
}

// Format renders a size, or "-" when absent
func (s Size) Format(base SizeBase) string {
	if !s.Known {
		return "-"
	}
	return FormatSize(s.Bytes, base)
}
