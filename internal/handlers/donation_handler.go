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

// ClothDonationHandler handles HTTP requests related to donation drives
type ClothDonationHandler struct {
	donationRepository repositories.ClothDonationRepository
	mediaResolver      storage.Resolver
}

// NewClothDonationHandler creates a new ClothDonationHandler
func NewClothDonationHandler(donationRepo repositories.ClothDonationRepository, resolver storage.Resolver) *ClothDonationHandler {
	return &ClothDonationHandler{
		donationRepository: donationRepo,
		mediaResolver:      resolver,
	}
}

// RegisterDonationRoutes registers donation-related routes
func (h *ClothDonationHandler) RegisterDonationRoutes(g *echo.Group) {
	g.POST("/events/cloth-donations/add-donation", h.CreateDonation)
	g.GET("/events/cloth-donations", h.GetDonations)
	g.GET("/events/cloth-donations/:id", h.GetDonation)
	g.PUT("/events/cloth-donations/:id", h.UpdateDonation)
	g.DELETE("/events/cloth-donations/:id", h.DeleteDonation)
}

// CreateDonation accepts a multipart submission for a donation drive
func (h *ClothDonationHandler) CreateDonation(c echo.Context) error {
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

	latitude, _ := parseFloat(c.FormValue("latitude"), "latitude", &errs)
	longitude, _ := parseFloat(c.FormValue("longitude"), "longitude", &errs)

	donation := &models.ClothDonation{
		Title:            strings.TrimSpace(c.FormValue("title")),
		Description:      strings.TrimSpace(c.FormValue("description")),
		Date:             parseDate(c.FormValue("date"), "date", &errs),
		Location:         models.GeoLocation{Latitude: latitude, Longitude: longitude},
		StudentsReceived: parseCount(c.FormValue("studentsReceived"), "studentsReceived", &errs),
		ParentsReceived:  parseCount(c.FormValue("parentsReceived"), "parentsReceived", &errs),
		CoverImageURL:    coverURL,
		Photos:           photoURLs,
	}

	errs = append(errs, validation.Validate(donation)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.donationRepository.Create(ctx, donation); err != nil {
		return storeFailed(c, err)
	}

	return c.JSON(http.StatusCreated, donation)
}

// GetDonation retrieves a donation record by ID
func (h *ClothDonationHandler) GetDonation(c echo.Context) error {
	donation, err := h.donationRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Donation record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, donation)
}

// GetDonations retrieves donation records with pagination
func (h *ClothDonationHandler) GetDonations(c echo.Context) error {
	skip, limit := paginationParams(c)
	donations, err := h.donationRepository.GetAll(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, donations)
}

// UpdateDonation applies a partial update and re-validates the merged record
func (h *ClothDonationHandler) UpdateDonation(c echo.Context) error {
	var req models.UpdateClothDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	donation, err := h.donationRepository.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Donation record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var errs validation.FieldErrors
	if req.Title != nil {
		donation.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		donation.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		donation.Date = parseDate(*req.Date, "date", &errs)
	}
	if req.Latitude != nil {
		donation.Location.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		donation.Location.Longitude = *req.Longitude
	}
	if req.StudentsReceived != nil {
		donation.StudentsReceived = *req.StudentsReceived
	}
	if req.ParentsReceived != nil {
		donation.ParentsReceived = *req.ParentsReceived
	}
	if req.CoverImageURL != nil {
		donation.CoverImageURL = strings.TrimSpace(*req.CoverImageURL)
	}
	if req.Photos != nil {
		donation.Photos = req.Photos
	}

	errs = append(errs, validation.Validate(donation)...)
	if len(errs) > 0 {
		return validationFailed(c, errs)
	}

	if err := h.donationRepository.Update(ctx, c.Param("id"), donation); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Donation record not found")
		}
		return storeFailed(c, err)
	}
	return c.JSON(http.StatusOK, donation)
}

// DeleteDonation removes a donation record by ID
func (h *ClothDonationHandler) DeleteDonation(c echo.Context) error {
	if err := h.donationRepository.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Donation record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
