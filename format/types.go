// Package format defines the closed enum types shared across curvecompress:
// compression methods, data kind hints, segment types and blob payload
// compression algorithms.
package format

type (
	Method          uint8
	DataKind        uint8
	SegmentType     uint8
	CompressionType uint8
)

const (
	// MethodRDPLinear simplifies with importance-weighted RDP and joins the
	// surviving points with linear segments.
	MethodRDPLinear Method = 0x1
	// MethodRDPBSpline simplifies with RDP, then re-fits each survivor gap with
	// adaptive cubic B-spline segments.
	MethodRDPBSpline Method = 0x2
	// MethodRDPBezier simplifies with RDP, then re-fits each survivor gap with
	// adaptive Bezier segments.
	MethodRDPBezier Method = 0x3
	// MethodBSpline fits adaptive cubic B-spline segments over the whole range.
	MethodBSpline Method = 0x4
	// MethodBezier fits adaptive Bezier segments over the whole range.
	// This is the default method: it maps directly onto a host engine's
	// Hermite keyframe representation.
	MethodBezier Method = 0x5
)

const (
	KindGeneric   DataKind = 0x1 // KindGeneric represents data with no known shape.
	KindAnimation DataKind = 0x2 // KindAnimation represents smooth authored motion data.
	KindSensor    DataKind = 0x3 // KindSensor represents noisy measured data.
	KindFinancial DataKind = 0x4 // KindFinancial represents spiky value-over-time data.
)

const (
	SegmentLinear  SegmentType = 0x1 // SegmentLinear is a straight line between two points.
	SegmentBezier  SegmentType = 0x2 // SegmentBezier is a cubic Hermite/Bezier span.
	SegmentBSpline SegmentType = 0x3 // SegmentBSpline is a uniform cubic B-spline span.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m Method) String() string {
	switch m {
	case MethodRDPLinear:
		return "RDP-Linear"
	case MethodRDPBSpline:
		return "RDP-BSpline"
	case MethodRDPBezier:
		return "RDP-Bezier"
	case MethodBSpline:
		return "BSpline"
	case MethodBezier:
		return "Bezier"
	default:
		return "Unknown"
	}
}

func (k DataKind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindAnimation:
		return "Animation"
	case KindSensor:
		return "SensorData"
	case KindFinancial:
		return "FinancialData"
	default:
		return "Unknown"
	}
}

func (s SegmentType) String() string {
	switch s {
	case SegmentLinear:
		return "Linear"
	case SegmentBezier:
		return "Bezier"
	case SegmentBSpline:
		return "BSpline"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
