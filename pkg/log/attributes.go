// Package log defines standard attribute keys for metric-evaluation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in evalgo. Using these standard keys enables better
// log analysis, monitoring, and debugging of evaluation pipelines.
//
// The keys follow a hierarchical naming convention (e.g., "metric.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Metric and Operation Context
// These attributes identify the metric and operation being performed.
const (
	// MetricNameKey identifies the metric being computed.
	// Examples: "LogLoss", "AUC", "Accuracy"
	MetricNameKey = "metric.name"

	// ModelNameKey identifies the type of estimator or encoder involved.
	// Examples: "LabelBinarizer"
	ModelNameKey = "model.name"

	// EstimatorKindKey records the resolved estimator kind.
	// Values: "binary", "multiclass"
	EstimatorKindKey = "metric.estimator_kind"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "metrics", "preprocessing"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the evaluation lifecycle.
	// Examples: "evaluation", "preprocessing"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of observations (rows) being scored.
	SamplesKey = "data.samples"

	// ClassesKey indicates the number of class levels (columns) in play.
	ClassesKey = "data.classes"

	// FeaturesKey indicates the number of feature columns, where applicable.
	FeaturesKey = "data.features"
)

// Metric Results and Numerics
const (
	// LossKey records a computed loss value.
	LossKey = "metrics.loss"

	// AccuracyKey records a computed accuracy value in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// AggregationKey records the aggregation mode used ("mean" or "sum").
	AggregationKey = "metrics.aggregation"

	// ClampedKey records how many observations hit the stability floor.
	ClampedKey = "metrics.clamped"

	// StabilityFloorKey records the floor substituted for near-zero probabilities.
	StabilityFloorKey = "metrics.stability_floor"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "TOO_FEW_CLASSES"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "DimensionError", "ValueError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check probability matrix shape"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit          = "fit"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationScore        = "score"

	// Standard phases
	PhaseEvaluation    = "evaluation"
	PhasePreprocessing = "preprocessing"

	// Standard error codes
	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorTooFewClasses     = "TOO_FEW_CLASSES"
)
