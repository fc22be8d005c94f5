package state

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StorageKey names the persisted blob.
const StorageKey = "productive-v7-storage"

// SnapshotVersion is bumped whenever the blob layout changes incompatibly.
// Blobs carrying another version are discarded in favour of seed data.
const SnapshotVersion = 1

var (
	ErrNoSnapshot           = errors.New("no stored snapshot")
	ErrIncompatibleSnapshot = errors.New("incompatible snapshot version")
)

// Snapshot is the complete persisted state of a Container.
type Snapshot struct {
	Version            int            `json:"version"`
	Tasks              []Task         `json:"tasks"`
	FocusSessions      []FocusSession `json:"focusSessions"`
	PerformanceHistory History        `json:"performanceHistory"`
	Timers             Timers         `json:"timers"`
	Alarms             []Alarm        `json:"alarms"`
	Settings           Settings       `json:"settings"`
	Auth               Auth           `json:"auth"`
}

// Persister loads and saves snapshots. Load returns ErrNoSnapshot when
// nothing has been stored yet.
type Persister interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

func Encode(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIncompatibleSnapshot, s.Version, SnapshotVersion)
	}
	return &s, nil
}

// clone returns a deep copy of s.
func (s Snapshot) clone() Snapshot {
	out := s
	if s.Tasks != nil {
		out.Tasks = make([]Task, len(s.Tasks))
		for i, t := range s.Tasks {
			out.Tasks[i] = t.clone()
		}
	}
	if s.FocusSessions != nil {
		out.FocusSessions = append([]FocusSession(nil), s.FocusSessions...)
	}
	if s.Alarms != nil {
		out.Alarms = append([]Alarm(nil), s.Alarms...)
	}
	out.Settings = s.Settings.clone()
	return out
}

func (t Task) clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

func (s Settings) clone() Settings {
	if s.Widgets != nil {
		w := make(map[Widget]bool, len(s.Widgets))
		for k, v := range s.Widgets {
			w[k] = v
		}
		s.Widgets = w
	}
	return s
}
