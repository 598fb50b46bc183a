package output

import (
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SessionResponse represents the session state in JSON. The token is
// masked.
type SessionResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token,omitempty"`
	User   *model.User `json:"user,omitempty"`
}

// NewSessionResponse creates a SessionResponse; a nil session is
// "logged_out".
func NewSessionResponse(s *model.Session) *SessionResponse {
	if s == nil {
		return &SessionResponse{Status: "logged_out"}
	}
	u := s.User
	return &SessionResponse{
		Status: "logged_in",
		Token:  logging.MaskPartial(s.Token, 15),
		User:   &u,
	}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// VersionResponse represents the version command output in JSON.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}

// PrintSession outputs the session state in JSON format.
func (j *JSONFormatter) PrintSession(s *model.Session) error {
	return j.JSON(NewSessionResponse(s))
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}

// PrintVersion outputs version information in JSON format.
func (j *JSONFormatter) PrintVersion(version, commit string) error {
	return j.JSON(VersionResponse{Version: version, Commit: commit})
}
