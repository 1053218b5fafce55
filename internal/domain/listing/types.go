package listing

type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusClaimed, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can never transition again.
// Claimed and Expired never revert to Available.
func (s Status) IsTerminal() bool {
	return s == StatusClaimed || s == StatusExpired
}

type Source string

const (
	// SourceReadyNow is a made-to-order item that was never picked up.
	SourceReadyNow Source = "mto_abandonment"
	// SourceBatchSurplus is an end-of-period leftover batch.
	SourceBatchSurplus Source = "batch_surplus"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceReadyNow, SourceBatchSurplus:
		return true
	default:
		return false
	}
}
