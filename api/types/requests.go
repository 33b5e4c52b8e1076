package types

// SubmitConversionRequest is the body for submitting a conversion batch.
// Sources may be local file paths or HTTP(S) URLs; remote sources are
// downloaded before being queued. DestinationDir overrides the configured
// output directory when set.
type SubmitConversionRequest struct {
	Sources        []string `json:"sources" binding:"required"`
	DestinationDir string   `json:"destination_dir,omitempty"`
}
