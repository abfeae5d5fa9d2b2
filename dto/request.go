package dto

// ParseTextRequest feeds already-extracted OCR text straight into the engine,
// bypassing the image pipeline. Useful for debugging and for callers that run
// their own OCR.
type ParseTextRequest struct {
	Text string `json:"text" binding:"required"`
}
