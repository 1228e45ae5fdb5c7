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

// AlumniHandler handles HTTP requests related to alumni records
type AlumniHandler struct {
	alumniRepository repositories.AlumniRepository
	mediaResolver    storage.Resolver
}

// NewAlumniHandler creates a new AlumniHandler
func NewAlumniHandler(alumniRepo repositories.AlumniRepository, resolver storage.Resolver) *AlumniHandler {
	return &AlumniHandler{
		alumniRepository: alumniRepo,
		mediaResolver:    resolver,
	}
}

// RegisterAlumniRoutes registers alumni-related routes
func (h *AlumniHandler) RegisterAlumniRoutes(g *echo.Group) {
	g.POST("/alumni/add-alumni", h.CreateAlumni)
	g.GET("/alumni", h.GetAlumniList)
	g.GET("/alumni/:id", h.GetAlumni)
	g.PUT("/alumni/:id", h.UpdateAlumni)
	g.DELETE("/alumni/:id", h.DeleteAlumni)
}

// CreateAlumni accepts the admin form's multipart submission: alumni
// fields plus a single coverImageURL file. On any field failing, the
// whole submission is rejected and nothing is persisted.
func (h *AlumniHandler) CreateAlumni(c echo.Context) error {
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

	var errs validation.FieldErrors

	alumni := &models.Alumni{
		FullName:       strings.TrimSpace(c.FormValue("fullName")),
		Email:          strings.TrimSpace(c.FormValue("email")),
		ContactNumber:  strings.TrimSpace(c.FormValue("contactNumber")),
		EnrollmentNo:   strings.TrimSpace(c.FormValue("enrollmentNo")),
		Gender:         strings.TrimSpace(c.FormValue("gender")),
		Department:     strings.TrimSpace(c.FormValue("department")),
		GraduationYear: parseCount(c.FormValue("graduationYear"), "graduationYear", &errs),
		Company:        strings.TrimSpace(c.FormValue("company")),
		Address:        strings.TrimSpace(c.FormValue("address")),
		CoverImageURL:  coverURL,
	}

	errs = append(errs, validation.Validate(alumni)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.alumniRepository.Create(ctx, alumni); err != nil {
		return storeFailed(c, err)
	}

	return c.JSON(http.StatusCreated, alumni)
}

// GetAlumni retrieves an alumni record by ID
func (h *AlumniHandler) GetAlumni(c echo.Context) error {
	alumni, err := h.alumniRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Alumni record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alumni)
}

// GetAlumniList retrieves alumni records with pagination
func (h *AlumniHandler) GetAlumniList(c echo.Context) error {
	skip, limit := paginationParams(c)
	alumni, err := h.alumniRepository.GetAll(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alumni)
}

// UpdateAlumni applies a partial update and re-validates the merged record
func (h *AlumniHandler) UpdateAlumni(c echo.Context) error {
	var req models.UpdateAlumniRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	alumni, err := h.alumniRepository.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Alumni record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.FullName != nil {
		alumni.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		alumni.Email = strings.TrimSpace(*req.Email)
	}
	if req.ContactNumber != nil {
		alumni.ContactNumber = strings.TrimSpace(*req.ContactNumber)
	}
	if req.EnrollmentNo != nil {
		alumni.EnrollmentNo = strings.TrimSpace(*req.EnrollmentNo)
	}
	if req.Gender != nil {
		alumni.Gender = strings.TrimSpace(*req.Gender)
	}
	if req.Department != nil {
		alumni.Department = strings.TrimSpace(*req.Department)
	}
	if req.GraduationYear != nil {
		alumni.GraduationYear = *req.GraduationYear
	}
	if req.Company != nil {
		alumni.Company = strings.TrimSpace(*req.Company)
	}
	if req.Address != nil {
		alumni.Address = strings.TrimSpace(*req.Address)
	}
	if req.CoverImageURL != nil {
		alumni.CoverImageURL = strings.TrimSpace(*req.CoverImageURL)
	}

	if errs := validation.Validate(alumni); len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.alumniRepository.Update(ctx, c.Param("id"), alumni); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Alumni record not found")
		}
		return storeFailed(c, err)
	}
	return c.JSON(http.StatusOK, alumni)
}

// DeleteAlumni removes an alumni record by ID
func (h *AlumniHandler) DeleteAlumni(c echo.Context) error {
	if err := h.alumniRepository.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Alumni record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
