package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Field length limits
const (
	// WebTitleMaxLen is the title ceiling for the web API.
	WebTitleMaxLen = 200

	// DetailMaxLen is the optional detail ceiling for the web API.
	DetailMaxLen = 2000

	// ConsoleTitleMaxLen is the description ceiling for the console app.
	ConsoleTitleMaxLen = 500
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
