package domain

import "time"

const (
	GroupA = "A"
	GroupB = "B"
	GroupC = "C"
)

// ValidGroup reports whether g is one of the three voting groups.
func ValidGroup(g string) bool {
	return g == GroupA || g == GroupB || g == GroupC
}

// Member slot labels, used for auth-code import/export matching.
const (
	SlotLeader  = "leader"
	SlotMember2 = "member2"
	SlotMember3 = "member3"
	SlotMember4 = "member4"
)

type Team struct {
	CreatedAt       time.Time `json:"created_at"`
	TeamName        string    `json:"team_name"`
	LeaderName      string    `json:"leader_name"`
	Member2Name     string    `json:"member2_name,omitempty"`
	Member3Name     string    `json:"member3_name,omitempty"`
	Member4Name     string    `json:"member4_name,omitempty"`
	TeamGroup       string    `json:"team_group"`
	LeaderAuthCode  string    `json:"leader_auth_code,omitempty"`
	Member2AuthCode string    `json:"member2_auth_code,omitempty"`
	Member3AuthCode string    `json:"member3_auth_code,omitempty"`
	Member4AuthCode string    `json:"member4_auth_code,omitempty"`
	ID              int64     `json:"id"`
	TeamNumber      int       `json:"team_number"`
	TotalMembers    int       `json:"total_members"`
}

type MemberSlot struct {
	Label string
	Name  string
	Code  string
}

// MemberSlots returns the occupied member slots in roster order.
func (t *Team) MemberSlots() []MemberSlot {
	slots := make([]MemberSlot, 0, 4)
	if t.LeaderName != "" {
		slots = append(slots, MemberSlot{Label: SlotLeader, Name: t.LeaderName, Code: t.LeaderAuthCode})
	}
	if t.Member2Name != "" {
		slots = append(slots, MemberSlot{Label: SlotMember2, Name: t.Member2Name, Code: t.Member2AuthCode})
	}
	if t.Member3Name != "" {
		slots = append(slots, MemberSlot{Label: SlotMember3, Name: t.Member3Name, Code: t.Member3AuthCode})
	}
	if t.Member4Name != "" {
		slots = append(slots, MemberSlot{Label: SlotMember4, Name: t.Member4Name, Code: t.Member4AuthCode})
	}
	return slots
}

// SetSlotCode stores code in the slot identified by label. It reports
// whether the label named a known slot.
func (t *Team) SetSlotCode(label, code string) bool {
	switch label {
	case SlotLeader:
		t.LeaderAuthCode = code
	case SlotMember2:
		t.Member2AuthCode = code
	case SlotMember3:
		t.Member3AuthCode = code
	case SlotMember4:
		t.Member4AuthCode = code
	default:
		return false
	}
	return true
}
