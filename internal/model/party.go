package model

// Party represents a reference record a candidate may be associated
// with.  Parties are read-only from this API's perspective; rows are
// seeded at schema creation and never written by a route.
//
// Fields:
//  ID   – primary key identifier.
//  Name – party name.
type Party struct {
	ID   int64  `json:"id"`   // parties.id
	Name string `json:"name"` // parties.name
}
