package model

type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

func (r Role) Live() bool { return r.IsActive }

type RoleCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type RolePatch struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (p RolePatch) Validate() error {
	return validateFields(
		namedField{"name", p.Name},
		namedField{"description", p.Description},
	)
}
