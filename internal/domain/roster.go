package domain

// RosterEntry is one parsed row of a roster upload before auth codes
// are assigned.
type RosterEntry struct {
	TeamName     string
	LeaderName   string
	Member2Name  string
	Member3Name  string
	Member4Name  string
	TeamGroup    string
	TeamNumber   int
	TotalMembers int
}

// AuthCodeEntry is one parsed row of an auth-code upload, keyed by
// (team number, team name, member slot).
type AuthCodeEntry struct {
	TeamName     string
	MemberSlot   string
	LdapNickname string
	AuthCode     string
	TeamNumber   int
}

type RosterImportSummary struct {
	TeamsImported int `json:"teams_imported"`
}

// AuthCodeImportSummary reports how many rows matched a team slot.
// Unmatched rows are counted, not treated as fatal.
type AuthCodeImportSummary struct {
	Updated   int `json:"updated"`
	Unmatched int `json:"unmatched"`
}
