// Package log defines standard attribute keys for numerical operations.
//
// This file contains predefined attribute keys that provide consistency
// across all logging in QuadGo. Using these standard keys enables better
// log analysis, monitoring, and debugging of quadrature workloads.
//
// The keys follow a hierarchical naming convention (e.g., "quad.order",
// "perf.duration_ms") to enable structured log filtering.
package log

// Operation Context
// These attributes identify the component and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "quadrature", "parallel"
	ComponentKey = "component"

	// OperationKey specifies the numerical operation being performed.
	// Standard values: "rule", "expectation", "moment", "validate"
	OperationKey = "op"
)

// Quadrature Context
// These attributes describe the rule being computed or evaluated.
const (
	// OrderKey records the quadrature order k (number of points).
	OrderKey = "quad.order"

	// BatchSizeKey records the size of a batch expectation evaluation.
	BatchSizeKey = "quad.batch_size"

	// CacheHitKey records whether a rule lookup was served from cache.
	CacheHitKey = "quad.cache_hit"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic
	// handling. Examples: "INVALID_ORDER", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error encountered.
	// Examples: "ValidationError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
const (
	OperationRule        = "rule"
	OperationExpectation = "expectation"
	OperationMoment      = "moment"
	OperationValidate    = "validate"

	// Standard error codes
	ErrorInvalidOrder      = "INVALID_ORDER"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
)
