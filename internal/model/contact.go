package model

// Contact is a document-store record. ID is the hex form of the generated
// ObjectID.
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	IsDeleted bool   `json:"is_deleted"`
}

func (c Contact) Live() bool { return !c.IsDeleted }

type ContactCreate struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type ContactPatch struct {
	Name  Optional[string] `json:"name"`
	Phone Optional[string] `json:"phone"`
}

func (p ContactPatch) Validate() error {
	return validateFields(
		namedField{"name", p.Name},
		namedField{"phone", p.Phone},
	)
}
