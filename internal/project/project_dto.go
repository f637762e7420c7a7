package project

import (
	"bytes"
	"encoding/json"
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on-hold"

	MaxLeaders = 2
)

var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusOnHold}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Ref points at an employee. The HR API sends either the bare id or the
// populated employee document.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	type plain Ref
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}

// Refs accepts a single reference as well as a list.
type Refs []Ref

func (rs *Refs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*rs = nil
		return nil
	}
	if b[0] != '[' {
		var one Ref
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*rs = Refs{one}
		return nil
	}
	var many []Ref
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*rs = many
	return nil
}

// IDs returns the referenced ids in order, without blanks or repeats.
func (rs Refs) IDs() []string {
	ids := make([]string, 0, len(rs))
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}
	return ids
}

// Dedup keeps the first occurrence of each id, preferring one that carries a
// name.
func (rs Refs) Dedup() Refs {
	out := make(Refs, 0, len(rs))
	index := make(map[string]int, len(rs))
	for _, r := range rs {
		if r.ID == "" {
			continue
		}
		if i, ok := index[r.ID]; ok {
			if out[i].Name == "" {
				out[i].Name = r.Name
			}
			continue
		}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	return out
}

type Project struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Leaders     Refs       `json:"projectLeader"`
	Members     Refs       `json:"projectMembers"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func (p Project) normalized() Project {
	p.Leaders = p.Leaders.Dedup()
	p.Members = p.Members.Dedup()
	return p
}

type CreateRequest struct {
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Description    string     `json:"description,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ProjectLeader  Refs       `json:"projectLeader"`
	ProjectMembers Refs       `json:"projectMembers"`
}

// CreatePayload is what the HR API receives: references flattened to ids.
type CreatePayload struct {
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Description    string     `json:"description,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	ProjectLeader  []string   `json:"projectLeader"`
	ProjectMembers []string   `json:"projectMembers"`
}

type ListView struct {
	Status    string         `json:"status"`
	Error     string         `json:"error,omitempty"`
	Projects  []Project      `json:"projects"`
	ByStatus  map[string]int `json:"byStatus"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
