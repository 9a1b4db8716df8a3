// internal/utils/pagination.go
package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/javajoker/saree-sanctuary/internal/validation"
)

// MaxLimit caps every listing endpoint.
const MaxLimit = 100

var limitRules = "gte=1,lte=" + strconv.Itoa(MaxLimit)

// GetLimitParam reads the limit query parameter. Absent means defaultLimit; values that
// are not integers in [1, MaxLimit] are rejected rather than clamped.
func GetLimitParam(c *gin.Context, defaultLimit int) (int, []ValidationError) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, GetValidationErrors(&validation.Error{Field: "limit", Constraint: validation.ConstraintInteger})
	}

	if err := validate.Var(limit, limitRules); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			err = &validation.Error{Field: "limit", Constraint: tagOf(fieldErrs[0])}
		}
		return 0, GetValidationErrors(err)
	}
	return limit, nil
}

func SetLimitHeaders(c *gin.Context, limit, count int) {
	c.Header("X-Per-Page", strconv.Itoa(limit))
	c.Header("X-Result-Count", strconv.Itoa(count))
}
