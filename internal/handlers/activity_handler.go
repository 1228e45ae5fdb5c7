package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sagarp07/college-portal/backend/internal/models"
	"github.com/sagarp07/college-portal/backend/internal/repositories"
	"github.com/sagarp07/college-portal/backend/internal/storage"
	"github.com/sagarp07/college-portal/backend/internal/validation"
)

// ActivityHandler handles HTTP requests related to college activities
type ActivityHandler struct {
	activityRepository repositories.ActivityRepository
	mediaResolver      storage.Resolver
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo repositories.ActivityRepository, resolver storage.Resolver) *ActivityHandler {
	return &ActivityHandler{
		activityRepository: activityRepo,
		mediaResolver:      resolver,
	}
}

// RegisterActivityRoutes registers activity-related routes
func (h *ActivityHandler) RegisterActivityRoutes(g *echo.Group) {
	g.POST("/events/activities/add-activities", h.CreateActivity)
	g.GET("/events/activities", h.GetActivities)
	g.GET("/events/activities/:id", h.GetActivity)
	g.PUT("/events/activities/:id", h.UpdateActivity)
	g.DELETE("/events/activities/:id", h.DeleteActivity)
}

// CreateActivity accepts the admin form's multipart submission: field
// values plus coverImageURL (one file), photos and videos (many).
// Uploads are resolved to URLs first; the assembled record is then
// validated as a whole and inserted only if every check passes.
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid multipart payload")
	}

	ctx := c.Request().Context()

	coverURL := ""
	if files := form.File["coverImageURL"]; len(files) > 0 {
		coverURL, err = h.mediaResolver.Resolve(ctx, files[0])
		if err != nil {
			return mediaUploadFailed(c, "coverImageURL", err)
		}
	}
	photoURLs, err := resolveAll(ctx, h.mediaResolver, form.File["photos"])
	if err != nil {
		return mediaUploadFailed(c, "photos", err)
	}
	videoURLs, err := resolveAll(ctx, h.mediaResolver, form.File["videos"])
	if err != nil {
		return mediaUploadFailed(c, "videos", err)
	}

	var errs validation.FieldErrors

	activity := &models.Activity{
		Title:             strings.TrimSpace(c.FormValue("title")),
		Description:       strings.TrimSpace(c.FormValue("description")),
		ActivityType:      strings.TrimSpace(c.FormValue("activityType")),
		Date:              parseDate(c.FormValue("date"), "date", &errs),
		ChiefGuest:        strings.TrimSpace(c.FormValue("chiefGuest")),
		Venue:             strings.TrimSpace(c.FormValue("venue")),
		StudentsPresent:   parseCount(c.FormValue("studentsPresent"), "studentsPresent", &errs),
		VolunteersPresent: parseCount(c.FormValue("volunteersPresent"), "volunteersPresent", &errs),
		Videos:            videoURLs,
		CoverImageURL:     coverURL,
		Photos:            photoURLs,
	}
	if activity.CoverImageURL == "" {
		activity.CoverImageURL = models.DefaultCoverImage
	}

	// Program references are loose: the IDs must parse, their
	// existence is not checked.
	for _, raw := range form.Value["programs"] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		objID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			errs = append(errs, validation.Invalid("programs", validation.KindInvalidValue,
				"programs must contain valid record IDs"))
			continue
		}
		activity.Programs = append(activity.Programs, objID)
	}

	errs = append(errs, validation.Validate(activity)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.activityRepository.Create(ctx, activity); err != nil {
		return storeFailed(c, err)
	}

	return c.JSON(http.StatusCreated, activity)
}

// GetActivity retrieves an activity by ID
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	activity, err := h.activityRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, activity)
}

// GetActivities retrieves activities with pagination
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	skip, limit := paginationParams(c)
	activities, err := h.activityRepository.GetAll(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, activities)
}

// UpdateActivity applies a partial update and re-validates the merged record
func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	var req models.UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	activity, err := h.activityRepository.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var errs validation.FieldErrors
	if req.Title != nil {
		activity.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		activity.Description = strings.TrimSpace(*req.Description)
	}
	if req.ActivityType != nil {
		activity.ActivityType = strings.TrimSpace(*req.ActivityType)
	}
	if req.Date != nil {
		activity.Date = parseDate(*req.Date, "date", &errs)
	}
	if req.ChiefGuest != nil {
		activity.ChiefGuest = strings.TrimSpace(*req.ChiefGuest)
	}
	if req.Venue != nil {
		activity.Venue = strings.TrimSpace(*req.Venue)
	}
	if req.StudentsPresent != nil {
		activity.StudentsPresent = *req.StudentsPresent
	}
	if req.VolunteersPresent != nil {
		activity.VolunteersPresent = *req.VolunteersPresent
	}
	if req.Videos != nil {
		activity.Videos = req.Videos
	}
	if req.CoverImageURL != nil {
		activity.CoverImageURL = strings.TrimSpace(*req.CoverImageURL)
	}
	if req.Photos != nil {
		activity.Photos = req.Photos
	}

	errs = append(errs, validation.Validate(activity)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.activityRepository.Update(ctx, c.Param("id"), activity); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		return storeFailed(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes an activity by ID
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	if err := h.activityRepository.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Activity not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
