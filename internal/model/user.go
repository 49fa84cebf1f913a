package model

// User is a relational account record. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active"`
}

func (u User) Live() bool { return u.IsActive }

// UserCreate is the POST /users payload.
type UserCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserPatch is the PATCH /users/:id payload.
type UserPatch struct {
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
}

func (p UserPatch) Validate() error {
	return validateFields(
		namedField{"name", p.Name},
		namedField{"email", p.Email},
		namedField{"password", p.Password},
	)
}
