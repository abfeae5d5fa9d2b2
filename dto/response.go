package dto

// ErrorResponse is the generic error envelope for the HTTP surface.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalysisError replaces the whole result when the extracted data failed the
// post-hoc validation pass. RawText is echoed so a human can inspect what the
// heuristics were working with.
type AnalysisError struct {
	Error   string `json:"error"`
	Reason  string `json:"reason"`
	RawText string `json:"rawText"`
}
