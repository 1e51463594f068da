package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError maps storage-layer constraint violations to the error taxonomy.
// Application-level checks run first; this is the defensive second line in
// case they raced or were bypassed.
//
//	23505 unique_violation      -> 409
//	23503 foreign_key_violation -> 400
//	23P01 exclusion_violation   -> 409
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "duplicate value for a unique field"
		case "23503":
			return http.StatusBadRequest, "referenced record does not exist"
		case "23P01":
			return http.StatusConflict, "overlapping assignment rejected by the storage layer"
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
