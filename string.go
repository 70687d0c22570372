package gauge

import "fmt"

// formatFixed renders x with two decimal places, matching the source
// library's "{0:.2f}" formatting.
func formatFixed(x float64) string { return fmt.Sprintf("%.2f", x) }

// formatSigned renders x with two decimal places and an explicit sign,
// matching the source library's "{0:+.2f}" formatting.
func formatSigned(x float64) string { return fmt.Sprintf("%+.2f", x) }

// String renders the gauge for diagnostics: "<Gauge v/max>" when min is 0
// and both bounds are scalar, otherwise "<Gauge v between min~max>".
func (g *Gauge) String() string {
	return g.format(0)
}

func (g *Gauge) format(at float64) string {
	value := g.Get(at)
	_, maxIsGauge := g.max.(*Gauge)
	_, minIsGauge := g.min.(*Gauge)
	hyper := maxIsGauge || minIsGauge

	maxRepr := boundRepr(g.max)
	minRepr := boundRepr(g.min)

	minIsZero := !minIsGauge && g.min.(Scalar) == 0
	if !hyper && minIsZero {
		return fmt.Sprintf("<Gauge %s/%s>", formatFixed(value), maxRepr)
	}
	return fmt.Sprintf("<Gauge %s between %s~%s>", formatFixed(value), minRepr, maxRepr)
}

func boundRepr(b Bound) string {
	if g, ok := b.(*Gauge); ok {
		return g.String()
	}
	return formatFixed(float64(b.(Scalar)))
}
