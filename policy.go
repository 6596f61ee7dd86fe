package imagecore

import "fmt"

// NumericMode selects how transformed channel values are stored.
type NumericMode int

const (
	// QuantizedMode rounds and clamps results to [0, QuantumRange] and
	// applies the YCC correction curve.
	QuantizedMode NumericMode = iota
	// ExtendedMode stores results unrounded and unclamped.
	ExtendedMode
)

// String returns the mode name.
func (m NumericMode) String() string {
	switch m {
	case QuantizedMode:
		return "quantized"
	case ExtendedMode:
		return "extended"
	default:
		return "unknown"
	}
}

// DefaultMaxMap is the default lookup table resolution.
const DefaultMaxMap = 65535

// Policy is the numeric policy shared by the table builder and the pixel
// driver.
type Policy struct {
	Mode NumericMode
	// MaxMap is the largest table index.
	MaxMap int
}

// Quantized returns the fixed-point policy with the given table resolution.
func Quantized(maxMap int) Policy {
	return Policy{Mode: QuantizedMode, MaxMap: maxMap}
}

// Extended returns the high dynamic range policy.
func Extended() Policy {
	return Policy{Mode: ExtendedMode, MaxMap: DefaultMaxMap}
}

// ParsePolicy builds a policy from a mode name.
func ParsePolicy(mode string, maxMap int) (Policy, error) {
	if maxMap <= 0 {
		maxMap = DefaultMaxMap
	}
	switch mode {
	case "", "quantized":
		return Quantized(maxMap), nil
	case "extended", "hdri":
		return Policy{Mode: ExtendedMode, MaxMap: maxMap}, nil
	}
	return Policy{}, fmt.Errorf("%w: numeric mode %q", ErrUnsupported, mode)
}

// Validate checks the table resolution.
func (p Policy) Validate() error {
	if p.MaxMap < 1 || p.MaxMap > 1<<24 {
		return fmt.Errorf("%w: max map %d", ErrUnsupported, p.MaxMap)
	}
	return nil
}

// Quantized reports whether results are rounded and clamped.
func (p Policy) Quantized() bool {
	return p.Mode == QuantizedMode
}

// ToMap quantizes a channel value to a table index. NaN maps to 0.
func (p Policy) ToMap(q Quantum) int {
	if !(q > 0) {
		return 0
	}
	v := float64(q) * QuantumScale
	if v >= 1.0 {
		return p.MaxMap
	}
	return int(float64(p.MaxMap)*v + 0.5)
}

// FromMap converts a value in table units back to a channel value.
func (p Policy) FromMap(v float64) Quantum {
	if !p.Quantized() {
		return Quantum(QuantumRange / float64(p.MaxMap) * v)
	}
	if v <= 0 {
		return 0
	}
	if v >= float64(p.MaxMap) {
		return QuantumRange
	}
	return Quantum(float64(int64(QuantumRange/float64(p.MaxMap)*v + 0.5)))
}

// Clamp stores a value in channel units.
func (p Policy) Clamp(v float64) Quantum {
	if !p.Quantized() {
		return Quantum(v)
	}
	if v <= 0 {
		return 0
	}
	if v >= QuantumRange {
		return QuantumRange
	}
	return Quantum(float64(int64(v + 0.5)))
}
