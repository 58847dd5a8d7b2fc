package api

import (
	"net/http"

	"carhire-booking/internal/handler/httperr"
	"carhire-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errInvalidID             = errs.Mark(errs.New("invalid id"), errs.ErrValidation)
	errInvalidIdempotencyKey = errs.Mark(errs.New("Idempotency-Key must be a UUID"), errs.ErrValidation)
)

// pathID aborts with 400 when the named path parameter is not a UUID.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// The header is optional. A present but malformed key is rejected rather than ignored.
func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, errInvalidIdempotencyKey
	}
	return &key, nil
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrValidation), "Invalid request", nil)
}
