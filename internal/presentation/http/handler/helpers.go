package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/innkeeper-api/internal/domain/pricing"
	"github.com/sangkips/innkeeper-api/internal/presentation/http/dto/response"
	"github.com/sangkips/innkeeper-api/pkg/apperror"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// pathID parses the :id route parameter, writing a 400 response when invalid
func pathID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindError reports a request body or query that failed to bind
func bindError(c *gin.Context, err error) {
	response.BadRequest(c, "Invalid request: "+err.Error())
}

// parseDateRange reads optional start/end calendar dates. The end date is
// inclusive so it becomes the start of the following day.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t := pricing.ParseDate(start)
		if t.IsZero() {
			return nil, nil, apperror.NewFieldError("start_date", "must be a date (YYYY-MM-DD)")
		}
		from = &t
	}
	if end != "" {
		t := pricing.ParseDate(end)
		if t.IsZero() {
			return nil, nil, apperror.NewFieldError("end_date", "must be a date (YYYY-MM-DD)")
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, nil
}
