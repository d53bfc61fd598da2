package room

type Status string

const (
	StatusFree     Status = "free"
	StatusBusy     Status = "busy"
	StatusOperated Status = "operated"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusBusy, StatusOperated:
		return true
	default:
		return false
	}
}
