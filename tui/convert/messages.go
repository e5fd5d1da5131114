package convert

import (
	"errors"
	"time"

	"github.com/CrestNiraj12/threadreader/domain"
)

// User-facing strings.
const (
	MsgInvalidURL      = "Please enter a valid Twitter/X URL"
	MsgTransportFailed = "An error occurred while processing the thread"
	MsgProcessFailed   = "Failed to process thread"
	MsgCached          = "Retrieved from cache"
	MsgCopyFailed      = "Failed to copy text"

	LabelCopy   = "Copy Text"
	LabelCopied = "Copied!"
)

// CopyResetDelay is how long "Copied!" stays before the label reverts.
const CopyResetDelay = 2 * time.Second

// FailureMessage maps a processor error to the text shown to the user.
// Server rejections use the server's message when it sent one; anything
// else is reported as a generic transport failure.
func FailureMessage(err error) string {
	if errors.Is(err, domain.ErrEmptyURL) {
		return MsgInvalidURL
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MsgProcessFailed
	}
	return MsgTransportFailed
}
