// Package faults defines the failure categories shared by every component
// boundary. All remote and local failures collapse to a *Error so the entry
// point only has to distinguish success from failure, while the diagnostic
// log keeps the category and remediation hint.
package faults

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// Category names one failure class.
type Category string

const (
	ConfigMissing   Category = "ConfigMissing"
	CredentialLoad  Category = "CredentialLoadError"
	AuthFlow        Category = "AuthFlowFailure"
	ChannelNotFound Category = "ChannelNotFound"
	Permission      Category = "PermissionError"
	FileNotFound    Category = "FileNotFound"
	RemoteTransport Category = "RemoteTransportError"
	InvalidSchedule Category = "InvalidScheduleError"
)

// Error is a categorized failure. Hint, when non-empty, tells the operator
// how to recover and belongs in the diagnostic log next to the cause.
type Error struct {
	Category Category
	Hint     string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Category)
	}
	return fmt.Sprintf("%s: %v", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err under the given category.
func New(category Category, hint string, err error) *Error {
	return &Error{Category: category, Hint: hint, Err: err}
}

// CategoryOf returns the category carried by err, or RemoteTransport when
// err carries none.
func CategoryOf(err error) Category {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Category
	}
	return RemoteTransport
}

// API error reasons documented by the YouTube Data API.
const (
	reasonInsufficientPermissions = "insufficientPermissions"
	reasonSignupRequired          = "youtubeSignupRequired"
	reasonInvalidPublishAt        = "invalidPublishAt"
)

// Classify maps a remote call failure onto a category. Already-categorized
// errors pass through unchanged; anything unrecognized is a transport error.
func Classify(err error) *Error {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr
	}

	text := err.Error()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		for _, item := range apiErr.Errors {
			text += " " + item.Reason
		}
		text += " " + apiErr.Body
	}

	switch {
	case strings.Contains(text, reasonInsufficientPermissions):
		return New(Permission, "token lacks the required scopes; delete the stored token and re-authenticate", err)
	case strings.Contains(text, reasonSignupRequired):
		return New(ChannelNotFound, "this account has no YouTube channel; create one in YouTube Studio", err)
	case strings.Contains(text, reasonInvalidPublishAt):
		return New(InvalidSchedule, "the scheduled publish time was rejected; retry with immediate publishing", err)
	}
	return New(RemoteTransport, "", err)
}
