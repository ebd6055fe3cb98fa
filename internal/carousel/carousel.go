package carousel

import (
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

// Role is the visual position of a thumbnail relative to the selection
type Role string

const (
	RoleCenter Role = "center"
	RolePrev1  Role = "prev-1"
	RolePrev2  Role = "prev-2"
	RoleNext1  Role = "next-1"
	RoleNext2  Role = "next-2"
	RoleFar    Role = "far"
)

// Status is the engine lifecycle state derived from State
type Status int

const (
	StatusEmpty Status = iota
	StatusReady
	StatusBusy
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	case StatusBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// State is the complete navigation state of one loaded set.
// If Items is non-empty, 0 <= Current < len(Items).
type State struct {
	Items   []models.Image
	Current int
	Busy    bool
}

func (s State) Status() Status {
	switch {
	case len(s.Items) == 0:
		return StatusEmpty
	case s.Busy:
		return StatusBusy
	default:
		return StatusReady
	}
}

// Selected returns the current image, if any
func (s State) Selected() (models.Image, bool) {
	if len(s.Items) == 0 {
		return models.Image{}, false
	}
	return s.Items[s.Current], true
}

// Normalize wraps idx into [0, n). It returns 0 when n <= 0.
func Normalize(idx, n int) int {
	if n <= 0 {
		return 0
	}
	return ((idx % n) + n) % n
}

// RoleAt maps a circular offset from the selection to a role
func RoleAt(offset int) Role {
	switch offset {
	case 0:
		return RoleCenter
	case -1:
		return RolePrev1
	case -2:
		return RolePrev2
	case 1:
		return RoleNext1
	case 2:
		return RoleNext2
	default:
		return RoleFar
	}
}

// Offset is the signed circular distance from current to i, folded into
// [-n/2, n/2].
func Offset(i, current, n int) int {
	rel := i - current
	half := n / 2
	if rel < -half {
		rel += n
	}
	if rel > half {
		rel -= n
	}
	return rel
}

// Classify assigns one role to every index of an n item strip
func Classify(current, n int) []Role {
	roles := make([]Role, n)
	for i := range roles {
		roles[i] = RoleAt(Offset(i, current, n))
	}
	return roles
}
