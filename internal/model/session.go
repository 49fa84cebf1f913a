package model

// Session is a key-value record stored under "session:{user_id}".
type Session struct {
	UserID      string         `json:"user_id"`
	SessionData map[string]any `json:"session_data"`
	Active      bool           `json:"active"`
}

func (s Session) Live() bool { return s.Active }

type SessionCreate struct {
	UserID      string         `json:"user_id" validate:"required"`
	SessionData map[string]any `json:"session_data" validate:"required"`
}

// SessionPatch shallow-merges SessionData into the stored data.
type SessionPatch struct {
	SessionData Optional[map[string]any] `json:"session_data"`
}

func (p SessionPatch) Validate() error {
	return validateFields(namedField{"session_data", p.SessionData})
}
