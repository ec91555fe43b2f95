package rule

import (
	"errors"

	"github.com/telewatch/telewatch/internal/domain/metric"
)

// ErrMetricUnavailable is returned when a rule references a metric key that
// is absent from the snapshot. The rule is skipped for the tick; a missing
// key is never evaluated as zero.
var ErrMetricUnavailable = errors.New("metric unavailable")

// Outcome is the result of evaluating one rule against a snapshot.
type Outcome struct {
	Fired  bool
	Actual float64
}

// Compare applies op to actual and threshold. Comparisons are on float64
// with no coercion; eq is exact floating equality, so eq on derived rates
// like ingest_per_min is reliable only for integral values.
func Compare(actual float64, op Operator, threshold float64) bool {
	switch op {
	case OpGT:
		return actual > threshold
	case OpGTE:
		return actual >= threshold
	case OpLT:
		return actual < threshold
	case OpLTE:
		return actual <= threshold
	case OpEQ:
		return actual == threshold
	}
	return false
}

// Evaluate applies a rule's operator and threshold to the snapshot value of
// its metric. Pure function: no I/O, deterministic given inputs.
func Evaluate(r *AlertRule, snap metric.Snapshot) (Outcome, error) {
	actual, ok := snap[r.Metric]
	if !ok {
		return Outcome{}, ErrMetricUnavailable
	}
	return Outcome{
		Fired:  Compare(actual, r.Operator, r.Threshold),
		Actual: actual,
	}, nil
}
