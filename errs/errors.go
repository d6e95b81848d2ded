// Package errs defines the sentinel errors shared across curvecompress packages.
//
// All validation failures at public entry points wrap or return one of these
// sentinels, so callers can classify failures with errors.Is without parsing
// error strings.
package errs

import "errors"

// Input validation errors.
var (
	// ErrNoSamples indicates a nil or empty sample slice was provided.
	ErrNoSamples = errors.New("no samples provided")

	// ErrTooFewSamples indicates the sample slice has fewer points than the
	// operation requires (2 in general, 4 for fixed-count B-spline fits).
	ErrTooFewSamples = errors.New("too few samples")

	// ErrUnsortedSamples indicates sample times are not non-decreasing.
	// Samples are validated, never auto-sorted, to preserve caller intent.
	ErrUnsortedSamples = errors.New("samples not sorted by time")

	// ErrInvalidTolerance indicates a non-positive error tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be positive")

	// ErrInvalidImportanceThreshold indicates a non-positive importance threshold.
	ErrInvalidImportanceThreshold = errors.New("importance threshold must be positive")

	// ErrInvalidPointCount indicates a requested control point count outside [2, n].
	ErrInvalidPointCount = errors.New("control point count out of range")

	// ErrInvalidPointRange indicates minPoints/maxPoints do not form a valid range.
	ErrInvalidPointRange = errors.New("invalid point count range")

	// ErrInvalidWeights indicates a negative importance weight.
	ErrInvalidWeights = errors.New("importance weights must be non-negative")

	// ErrEmptyCurve indicates a compressed curve with no segments.
	ErrEmptyCurve = errors.New("compressed curve has no segments")

	// ErrInvalidSegment indicates a malformed curve segment (reversed time span,
	// missing control points, or discontinuity between adjacent segments).
	ErrInvalidSegment = errors.New("invalid curve segment")
)

// Blob format errors.
var (
	// ErrInvalidHeaderSize indicates the blob is shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid blob header size")

	// ErrInvalidMagicNumber indicates the blob header magic does not match.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType indicates an unknown payload compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidPayloadLength indicates the payload length field disagrees with
	// the actual blob size.
	ErrInvalidPayloadLength = errors.New("invalid payload length")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header, i.e. the blob is corrupted.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidSegmentType indicates an unknown segment type byte in the payload.
	ErrInvalidSegmentType = errors.New("invalid segment type")
)
