package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sagarp07/college-portal/backend/internal/storage"
	"github.com/sagarp07/college-portal/backend/internal/validation"
)

// ErrorResponse is the failure envelope for admin endpoints. Validation
// failures carry every field error from the attempt so the form can
// show all problems at once.
type ErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

func validationFailed(c echo.Context, errs validation.FieldErrors) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Message: "Validation failed",
		Errors:  errs,
	})
}

// mediaUploadFailed reports a resolver failure, which is distinct from
// field validation: the input may be fine, the storage collaborator is not.
func mediaUploadFailed(c echo.Context, field string, err error) error {
	return c.JSON(http.StatusBadGateway, ErrorResponse{
		Message: "Failed to store uploaded media",
		Errors: []validation.FieldError{
			validation.Invalid(field, validation.KindMediaUploadFailed, err.Error()),
		},
	})
}

// storeFailed reports a persistence failure so clients can tell
// "fix your input" apart from "try again later".
func storeFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Storage unavailable, try again later: " + err.Error(),
	})
}

// Accepted layouts for multipart date fields. The admin forms submit
// plain dates; API clients may send RFC 3339.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value, field string, errs *validation.FieldErrors) time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{} // required check reports the missing field
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	*errs = append(*errs, validation.Invalid(field, validation.KindInvalidDate,
		field+" must be a valid date (YYYY-MM-DD)"))
	return time.Time{}
}

// parseCount parses a non-negative presence counter; an absent value
// defaults to 0. Negative values are left for the gte check to report.
func parseCount(value, field string, errs *validation.FieldErrors) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, validation.Invalid(field, validation.KindInvalidValue,
			field+" must be a whole number"))
		return 0
	}
	return n
}

func parseFloat(value, field string, errs *validation.FieldErrors) (float64, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		*errs = append(*errs, validation.Missing(field))
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, validation.Invalid(field, validation.KindInvalidValue,
			field+" must be a number"))
		return 0, false
	}
	return f, true
}

// resolveAll resolves a batch of uploads to URLs, stopping at the first
// failure; a half-stored gallery is reported as MediaUploadFailed.
func resolveAll(ctx context.Context, resolver storage.Resolver, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := resolver.Resolve(ctx, fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func paginationParams(c echo.Context) (skip, limit int64) {
	skip, _ = strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 10 // Default limit
	}
	return skip, limit
}
