package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/model"
	"agendaapi/internal/service"
	"agendaapi/internal/validator"
)

// Int64ID parses an auto-increment identifier from the path.
func Int64ID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ierr.WithError(err).WithHint("invalid id").Mark(ierr.ErrValidation)
	}
	return id, nil
}

// StringID decodes a percent-encoded path segment, so keys such as "my key"
// are addressable as /config/my%20key. Backends decide whether it names a
// record.
func StringID(raw string) (string, error) {
	id, err := url.PathUnescape(raw)
	if err != nil {
		return "", ierr.WithError(err).WithHint("invalid id").Mark(ierr.ErrValidation)
	}
	return id, nil
}

// RegisterResource mounts the five CRUD routes of one resource under path.
func RegisterResource[K comparable, R model.Record, C any, P model.Patch](
	router fiber.Router,
	path string,
	svc service.Service[K, R, C, P],
	parse func(string) (K, error),
	v *validator.Validator,
) {
	router.Get(path, List(svc))
	router.Post(path, Create(svc, v))
	router.Get(path+"/:id", Get(svc, parse))
	router.Patch(path+"/:id", Update(svc, parse))
	router.Delete(path+"/:id", Delete(svc, parse))
}

func List[K comparable, R model.Record, C any, P model.Patch](svc service.Service[K, R, C, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		if items == nil {
			items = []R{}
		}
		return c.JSON(items)
	}
}

func Get[K comparable, R model.Record, C any, P model.Patch](svc service.Service[K, R, C, P], parse func(string) (K, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parse(utils.CopyString(c.Params("id")))
		if err != nil {
			return respondError(c, err)
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	}
}

// Create decodes and validates the payload, then answers 201 with the stored
// record.
func Create[K comparable, R model.Record, C any, P model.Patch](svc service.Service[K, R, C, P], v *validator.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in C
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := v.Struct(in); err != nil {
			return respondError(c, err)
		}
		rec, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// Update applies a partial update. Fields missing from the body are left
// untouched; the service rejects an empty or null-carrying patch.
func Update[K comparable, R model.Record, C any, P model.Patch](svc service.Service[K, R, C, P], parse func(string) (K, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parse(utils.CopyString(c.Params("id")))
		if err != nil {
			return respondError(c, err)
		}
		var patch P
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		rec, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rec)
	}
}

func Delete[K comparable, R model.Record, C any, P model.Patch](svc service.Service[K, R, C, P], parse func(string) (K, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parse(utils.CopyString(c.Params("id")))
		if err != nil {
			return respondError(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": svc.Name() + " deleted"})
	}
}
