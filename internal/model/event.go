package model

// Event is a document-store record. Date is kept as the caller sent it.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	IsDeleted   bool   `json:"is_deleted"`
}

func (e Event) Live() bool { return !e.IsDeleted }

// EventCreate is the POST /events payload. Description defaults to "".
type EventCreate struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description"`
}

type EventPatch struct {
	Title       Optional[string] `json:"title"`
	Date        Optional[string] `json:"date"`
	Description Optional[string] `json:"description"`
}

func (p EventPatch) Validate() error {
	return validateFields(
		namedField{"title", p.Title},
		namedField{"date", p.Date},
		namedField{"description", p.Description},
	)
}
