// internal/handlers/errors.go
package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/saree-sanctuary/internal/i18n"
	"github.com/javajoker/saree-sanctuary/internal/store"
	"github.com/javajoker/saree-sanctuary/internal/utils"
	"github.com/javajoker/saree-sanctuary/internal/validation"
)

// respondError maps service errors onto the response envelope. resource names the
// translation prefix used for not-found messages.
func respondError(c *gin.Context, err error, resource string) {
	_ = c.Error(err)

	if _, ok := validation.AsError(err); ok {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		utils.ServiceUnavailableResponse(c)
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	default:
		utils.InternalErrorResponse(c, "")
	}
}

// bindDocument decodes the request body into a JSON object. Numbers stay json.Number so
// amounts in paise are never rounded through float64.
func bindDocument(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil || payload == nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationBody), nil)
		return nil, false
	}
	return payload, true
}

// limitParam reads ?limit, writing the validation response itself on failure.
func limitParam(c *gin.Context, defaultLimit int) (int, bool) {
	limit, errs := utils.GetLimitParam(c, defaultLimit)
	if len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs)
		return 0, false
	}
	return limit, true
}
