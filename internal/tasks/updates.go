package tasks

// ProgressUpdate represents a progress event during a catalog operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchAuthors Phase = iota
	FetchCategories
	SearchAuthors
	UpdateAuthor
	Compensate
	MergeStores
)

func (p Phase) String() string {
	switch p {
	case FetchAuthors:
		return "fetch_authors"
	case FetchCategories:
		return "fetch_categories"
	case SearchAuthors:
		return "search_authors"
	case UpdateAuthor:
		return "update_author"
	case Compensate:
		return "compensate"
	case MergeStores:
		return "merge_stores"
	default:
		return ""
	}
}

// sendProgress emits an update without blocking when nobody is listening.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
