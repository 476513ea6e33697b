package models

// Session identifies the user working in the current session. The name pair
// is captured once at login and is display-only, never verified.
type Session struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s Session) DisplayName() string {
	return s.FirstName + " " + s.LastName
}
