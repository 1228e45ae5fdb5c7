package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sagarp07/college-portal/backend/internal/models"
	"github.com/sagarp07/college-portal/backend/internal/repositories"
	"github.com/sagarp07/college-portal/backend/internal/storage"
	"github.com/sagarp07/college-portal/backend/internal/validation"
)

// FarewellHandler handles HTTP requests related to farewell events
type FarewellHandler struct {
	farewellRepository repositories.FarewellRepository
	mediaResolver      storage.Resolver
}

// NewFarewellHandler creates a new FarewellHandler
func NewFarewellHandler(farewellRepo repositories.FarewellRepository, resolver storage.Resolver) *FarewellHandler {
	return &FarewellHandler{
		farewellRepository: farewellRepo,
		mediaResolver:      resolver,
	}
}

// RegisterFarewellRoutes registers farewell-related routes
func (h *FarewellHandler) RegisterFarewellRoutes(g *echo.Group) {
	g.POST("/events/farewells/add-farewell", h.CreateFarewell)
	g.GET("/events/farewells", h.GetFarewells)
	g.GET("/events/farewells/:id", h.GetFarewell)
	g.PUT("/events/farewells/:id", h.UpdateFarewell)
	g.DELETE("/events/farewells/:id", h.DeleteFarewell)
}

func duplicateDate(c echo.Context) error {
	return c.JSON(http.StatusConflict, ErrorResponse{
		Message: "Validation failed",
		Errors: []validation.FieldError{
			validation.Invalid("date", validation.KindDuplicateDate,
				"a farewell already exists for that date"),
		},
	})
}

// CreateFarewell accepts a multipart submission for a farewell event.
// The duplicate-date check happens inside the store at insert, so two
// concurrent submissions for one date cannot both succeed.
func (h *FarewellHandler) CreateFarewell(c echo.Context) error {
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

	var errs validation.FieldErrors

	farewell := &models.Farewell{
		Title:                    strings.TrimSpace(c.FormValue("title")),
		Description:              strings.TrimSpace(c.FormValue("description")),
		Date:                     parseDate(c.FormValue("date"), "date", &errs),
		Venue:                    strings.TrimSpace(c.FormValue("venue")),
		FinalYearStudentsPresent: parseCount(c.FormValue("finalYearStudentsPresent"), "finalYearStudentsPresent", &errs),
		JuniorPresent:            parseCount(c.FormValue("juniorPresent"), "juniorPresent", &errs),
		CoverImageURL:            coverURL,
		Photos:                   photoURLs,
	}

	errs = append(errs, validation.Validate(farewell)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.farewellRepository.Create(ctx, farewell); err != nil {
		if errors.Is(err, repositories.ErrDuplicateDate) {
			return duplicateDate(c)
		}
		return storeFailed(c, err)
	}

	return c.JSON(http.StatusCreated, farewell)
}

// GetFarewell retrieves a farewell record by ID
func (h *FarewellHandler) GetFarewell(c echo.Context) error {
	farewell, err := h.farewellRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Farewell not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, farewell)
}

// GetFarewells retrieves farewell records with pagination
func (h *FarewellHandler) GetFarewells(c echo.Context) error {
	skip, limit := paginationParams(c)
	farewells, err := h.farewellRepository.GetAll(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, farewells)
}

// UpdateFarewell applies a partial update and re-validates the merged record
func (h *FarewellHandler) UpdateFarewell(c echo.Context) error {
	var req models.UpdateFarewellRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	farewell, err := h.farewellRepository.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Farewell not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var errs validation.FieldErrors
	if req.Title != nil {
		farewell.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		farewell.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		farewell.Date = parseDate(*req.Date, "date", &errs)
	}
	if req.Venue != nil {
		farewell.Venue = strings.TrimSpace(*req.Venue)
	}
	if req.FinalYearStudentsPresent != nil {
		farewell.FinalYearStudentsPresent = *req.FinalYearStudentsPresent
	}
	if req.JuniorPresent != nil {
		farewell.JuniorPresent = *req.JuniorPresent
	}
	if req.CoverImageURL != nil {
		farewell.CoverImageURL = strings.TrimSpace(*req.CoverImageURL)
	}
	if req.Photos != nil {
		farewell.Photos = req.Photos
	}

	errs = append(errs, validation.Validate(farewell)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.farewellRepository.Update(ctx, c.Param("id"), farewell); err != nil {
		if errors.Is(err, repositories.ErrDuplicateDate) {
			return duplicateDate(c)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Farewell not found")
		}
		return storeFailed(c, err)
	}
	return c.JSON(http.StatusOK, farewell)
}

// DeleteFarewell removes a farewell record by ID
func (h *FarewellHandler) DeleteFarewell(c echo.Context) error {
	if err := h.farewellRepository.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Farewell not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
