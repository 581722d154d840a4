package response

// Standard messages and codes for the JSON response envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)

// DateFormat is the wire format for date-only fields (due dates).
const DateFormat = "2006-01-02"
