package board

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
)

// memberRecord is the persisted form of a member: a flat record with
// the full field set, no nested mappings. The snapshot is a JSON array
// of these in store order.
type memberRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Stage     string `json:"stage"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func encodeSnapshot(members []*domain.Member) (string, error) {
	records := make([]memberRecord, 0, len(members))
	for _, m := range members {
		records = append(records, memberRecord{
			ID:        m.ID,
			Title:     string(m.Title),
			Name:      m.Name,
			Age:       m.Age,
			Email:     m.Email,
			Phone:     m.Phone,
			Stage:     string(m.Stage),
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
			UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshaling %d records: %w", len(records), err)
	}
	return string(raw), nil
}

func decodeSnapshot(raw string) ([]*domain.Member, error) {
	var records []memberRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}

	members := make([]*domain.Member, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("record %d: missing id", i)
		}
		if !domain.ValidStages[domain.Stage(r.Stage)] {
			return nil, fmt.Errorf("record %d: unknown stage %q", i, r.Stage)
		}
		m := &domain.Member{
			ID:    r.ID,
			Title: domain.Salutation(r.Title),
			Name:  r.Name,
			Age:   r.Age,
			Email: r.Email,
			Phone: r.Phone,
			Stage: domain.Stage(r.Stage),
		}
		// Timestamps are display metadata; a snapshot written by hand
		// may omit them, which is tolerated.
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			m.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
			m.UpdatedAt = t
		}
		members = append(members, m)
	}
	return members, nil
}
