package model

const (
	// DefaultMaxLineSize is the maximum size (in bytes) of a single input
	// line. Long-message vector files carry lines of tens of kilobytes;
	// 1MB leaves ample headroom.
	DefaultMaxLineSize = 1024 * 1024

	// DefaultAlgorithm is the digest used by verify when none is configured.
	DefaultAlgorithm = "skein512"

	// DefaultJobs bounds how many vector files verify processes at once.
	DefaultJobs = 4

	// DefaultReportFormat selects the verify report renderer.
	DefaultReportFormat = "text"
)
