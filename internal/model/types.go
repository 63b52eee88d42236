package model

// Record represents one test vector extracted from a labeled input file.
// It is the canonical type shared by the converter and the verifier.
// Length, Message and Digest hold the raw text that followed the
// "Len = ", "Msg = " and "MD = " labels, untouched except for trimming.
type Record struct {
	Length  string // bit length, echoed verbatim into converter output
	Message string // hex digits, even count
	Digest  string // hex digits, even count
}

// Mismatch describes one vector whose computed digest differed from the
// digest recorded in the file.
type Mismatch struct {
	Index    int    `json:"index" yaml:"index"`
	Length   string `json:"length" yaml:"length"`
	Expected string `json:"expected" yaml:"expected"`
	Got      string `json:"got" yaml:"got"`
}

// FileReport aggregates verification results for a single vector file.
type FileReport struct {
	Path       string     `json:"path" yaml:"path"`
	Algorithm  string     `json:"algorithm" yaml:"algorithm"`
	Passed     int        `json:"passed" yaml:"passed"`
	Failed     int        `json:"failed" yaml:"failed"`
	Skipped    int        `json:"skipped" yaml:"skipped"` // Len not a byte multiple
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
	Err        string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether every vector in the file verified.
func (r FileReport) OK() bool {
	return r.Err == "" && r.Failed == 0
}
