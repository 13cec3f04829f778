package repository

// CaptureTag marks every memo written by this service.
const CaptureTag = "#capture"

// ListTasksOptions holds the parameters for listing tasks from Memos.
type ListTasksOptions struct {
	Tag   string // Filter by a specific tag, defaults to CaptureTag
	Limit int    // Max number of results (default 20)
}
