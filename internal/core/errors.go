package core

// Error mapping for the HTTP surface.
//
// Parser failures are branched on their sentinel values with errors.Is —
// never by matching message text. Storage and transport failures, which
// arrive as opaque driver errors, fall back to case-insensitive pattern
// matching the way support staff see them.
//
// Codes:
//
//	LF001 - file is not valid UTF-8
//	LF002 - header marker not found
//	LF003 - header produced no columns
//	LF004 - internal width invariant violation
//	UPL001 - upload not found
//	FILE001 - file too large
//	FILE002 - no file provided
//	DB001 - database unreachable
//	DB002 - operation timed out
//	ERR000 - anything else

import (
	"errors"
	"strings"

	"github.com/JonMunkholm/BatesView/internal/loadfile"
)

// ErrUploadNotFound indicates the requested upload ID does not exist.
var ErrUploadNotFound = errors.New("upload not found")

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// MapError translates a technical error into a UserMessage.
func MapError(err error) UserMessage {
	switch {
	case errors.Is(err, loadfile.ErrDecode):
		return UserMessage{
			Message: "The file is not valid UTF-8 text",
			Action:  "Re-export the load file with UTF-8 encoding",
			Code:    "LF001",
		}
	case errors.Is(err, loadfile.ErrHeaderNotFound):
		return UserMessage{
			Message: "The file's header was not recognized",
			Action:  "Check that this is a Bates load file ending its header with \"Native Link\"",
			Code:    "LF002",
		}
	case errors.Is(err, loadfile.ErrEmptyHeader):
		return UserMessage{
			Message: "The file's header contains no columns",
			Action:  "Check the file for a corrupted or truncated header line",
			Code:    "LF003",
		}
	case errors.Is(err, loadfile.ErrSchemaMismatch):
		return UserMessage{
			Message: "An internal error occurred while aligning rows",
			Action:  "Please report this file to support",
			Code:    "LF004",
		}
	case errors.Is(err, ErrUploadNotFound):
		return UserMessage{
			Message: "The requested upload does not exist",
			Action:  "Check the upload ID or reload the upload history",
			Code:    "UPL001",
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "file too large"), strings.Contains(msg, "request body too large"):
		return UserMessage{
			Message: "The file exceeds the maximum upload size",
			Action:  "Split the load file or raise UPLOAD_MAX_FILE_SIZE",
			Code:    "FILE001",
		}
	case strings.Contains(msg, "no file provided"):
		return UserMessage{
			Message: "No file was selected",
			Action:  "Choose a load file to upload",
			Code:    "FILE002",
		}
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"):
		return UserMessage{
			Message: "The database is unreachable",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		}
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "context deadline exceeded"):
		return UserMessage{
			Message: "The operation timed out",
			Action:  "Try a smaller file or try again later",
			Code:    "DB002",
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
}
