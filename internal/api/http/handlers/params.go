package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

// parseIDParam coerces a path parameter to int64 or fails with a type
// mismatch error.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewTypeMismatch(raw, name, "int64")
	}
	return id, nil
}

// parseActiveOnly reads the activeOnly query flag, falling back to the
// endpoint default when absent. A malformed value fails with a type
// mismatch error.
func parseActiveOnly(c *fiber.Ctx, def bool) (bool, error) {
	raw := c.Query("activeOnly")
	if raw == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.NewTypeMismatch(raw, "activeOnly", "bool")
	}
	return parsed, nil
}
