package entity

import "errors"

var (
	// ErrMissingField covers submissions without a conversation id or
	// transcript. Rejected synchronously, the sender owns redelivery.
	ErrMissingField = errors.New("missing required field")

	// ErrDuplicateConversation marks a redelivered conversation id.
	ErrDuplicateConversation = errors.New("conversation already ingested")

	ErrNotFound = errors.New("interview not found")

	// Scoring failures. Each is retried at most once by the adapter, then
	// the submission is marked scoring_failed.
	ErrModelCall                = errors.New("model call failed")
	ErrModelResponseUnparseable = errors.New("model response unparseable")
	ErrScoreOutOfRange          = errors.New("satisfaction score out of range")
)
