package models

// CaptureEvent is published for every successful block capture.
type CaptureEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	BlockID    string `json:"block_id"`    // BlockID is the captured block.
	OwnerID    int64  `json:"owner_id"`    // OwnerID is the user who now owns the block.
	CapturedAt int64  `json:"captured_at"` // CapturedAt is the Unix timestamp (in milliseconds) of the capture.
}
