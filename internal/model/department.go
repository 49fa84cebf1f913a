package model

type Department struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"is_active"`
}

func (d Department) Live() bool { return d.IsActive }

type DepartmentCreate struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type DepartmentPatch struct {
	Name     Optional[string] `json:"name"`
	Location Optional[string] `json:"location"`
}

func (p DepartmentPatch) Validate() error {
	return validateFields(
		namedField{"name", p.Name},
		namedField{"location", p.Location},
	)
}
