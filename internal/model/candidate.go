package model

// Candidate represents a person running in an election.  A candidate may
// be affiliated with one party; the affiliation is optional.  This struct
// corresponds to a row in the `candidates` table joined against `parties`.
//
// Fields:
//  ID                – primary key identifier, assigned by the database.
//  FirstName         – candidate's first name.
//  LastName          – candidate's last name.
//  IndustryConnected – 0/1 flag recording an industry connection.
//  PartyID           – optional reference to parties.id.
//  PartyName         – party name from the join; nil when the candidate
//                      has no party or the reference matches no row.
type Candidate struct {
	ID                int64   `json:"id"`                 // candidates.id
	FirstName         string  `json:"first_name"`         // candidates.first_name
	LastName          string  `json:"last_name"`          // candidates.last_name
	IndustryConnected int64   `json:"industry_connected"` // candidates.industry_connected
	PartyID           *int64  `json:"party_id"`           // candidates.party_id
	PartyName         *string `json:"party_name"`         // parties.name via LEFT JOIN
}
