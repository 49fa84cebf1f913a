package service

import (
	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

type (
	UserService       = Service[int64, model.User, model.UserCreate, model.UserPatch]
	DepartmentService = Service[int64, model.Department, model.DepartmentCreate, model.DepartmentPatch]
	RoleService       = Service[int64, model.Role, model.RoleCreate, model.RolePatch]
	ContactService    = Service[string, model.Contact, model.ContactCreate, model.ContactPatch]
	EventService      = Service[string, model.Event, model.EventCreate, model.EventPatch]
	ConfigService     = Service[string, model.Config, model.ConfigCreate, model.ConfigPatch]
	SessionService    = Service[string, model.Session, model.SessionCreate, model.SessionPatch]
)

// NewUserService hashes passwords before they reach the repository.
func NewUserService(repo repository.UserRepository) UserService {
	s := newResourceService("User", repo)
	s.beforeCreate = func(in *model.UserCreate) error {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return err
		}
		in.Password = hash
		return nil
	}
	s.beforeUpdate = func(p *model.UserPatch) error {
		if !p.Password.Present() {
			return nil
		}
		hash, err := hashPassword(p.Password.Value)
		if err != nil {
			return err
		}
		p.Password.Value = hash
		return nil
	}
	return s
}

func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return newResourceService("Department", repo)
}

func NewRoleService(repo repository.RoleRepository) RoleService {
	return newResourceService("Role", repo)
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return newResourceService("Contact", repo)
}

func NewEventService(repo repository.EventRepository) EventService {
	return newResourceService("Event", repo)
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return newResourceService("Config", repo)
}

func NewSessionService(repo repository.SessionRepository) SessionService {
	return newResourceService("Session", repo)
}
