package client

import (
	"fmt"
	"mime/multipart"
	"strconv"
)

// FileAttachment is one file selected for upload.
type FileAttachment struct {
	FileName string
	Content  []byte
}

// Payload is a typed submission for one admin form. Each implementation
// declares the backend's exact multipart keys once, so the form and the
// wire format cannot drift apart.
type Payload interface {
	endpoint() string
	build(w *multipart.Writer) error
	reset()
}

func writeFile(w *multipart.Writer, field string, file *FileAttachment) error {
	part, err := w.CreateFormFile(field, file.FileName)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Content)
	return err
}

func writeFiles(w *multipart.Writer, field string, files []FileAttachment) error {
	for i := range files {
		if err := writeFile(w, field, &files[i]); err != nil {
			return fmt.Errorf("failed to attach %s: %w", field, err)
		}
	}
	return nil
}

// ActivitySubmission mirrors the Add Activity admin form.
type ActivitySubmission struct {
	Title             string
	Description       string
	ActivityType      string
	Date              string // YYYY-MM-DD
	ChiefGuest        string
	Venue             string
	StudentsPresent   int
	VolunteersPresent int
	Programs          []string // referenced Program record IDs

	CoverImage *FileAttachment
	Photos     []FileAttachment
	Videos     []FileAttachment
}

func (s *ActivitySubmission) endpoint() string {
	return "/api/admin/dashboard/events/activities/add-activities"
}

func (s *ActivitySubmission) build(w *multipart.Writer) error {
	fields := map[string]string{
		"title":             s.Title,
		"description":       s.Description,
		"activityType":      s.ActivityType,
		"date":              s.Date,
		"chiefGuest":        s.ChiefGuest,
		"venue":             s.Venue,
		"studentsPresent":   strconv.Itoa(s.StudentsPresent),
		"volunteersPresent": strconv.Itoa(s.VolunteersPresent),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return err
		}
	}
	for _, program := range s.Programs {
		if err := w.WriteField("programs", program); err != nil {
			return err
		}
	}
	if s.CoverImage != nil {
		if err := writeFile(w, "coverImageURL", s.CoverImage); err != nil {
			return err
		}
	}
	if err := writeFiles(w, "photos", s.Photos); err != nil {
		return err
	}
	return writeFiles(w, "videos", s.Videos)
}

func (s *ActivitySubmission) reset() {
	*s = ActivitySubmission{}
}

// DonationSubmission mirrors the Add Cloth Donation admin form.
type DonationSubmission struct {
	Title            string
	Description      string
	Date             string
	Latitude         float64
	Longitude        float64
	StudentsReceived int
	ParentsReceived  int

	CoverImage *FileAttachment
	Photos     []FileAttachment
}

func (s *DonationSubmission) endpoint() string {
	return "/api/admin/dashboard/events/cloth-donations/add-donation"
}

func (s *DonationSubmission) build(w *multipart.Writer) error {
	fields := map[string]string{
		"title":            s.Title,
		"description":      s.Description,
		"date":             s.Date,
		"latitude":         strconv.FormatFloat(s.Latitude, 'f', -1, 64),
		"longitude":        strconv.FormatFloat(s.Longitude, 'f', -1, 64),
		"studentsReceived": strconv.Itoa(s.StudentsReceived),
		"parentsReceived":  strconv.Itoa(s.ParentsReceived),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return err
		}
	}
	if s.CoverImage != nil {
		if err := writeFile(w, "coverImageURL", s.CoverImage); err != nil {
			return err
		}
	}
	return writeFiles(w, "photos", s.Photos)
}

func (s *DonationSubmission) reset() {
	*s = DonationSubmission{}
}

// FarewellSubmission mirrors the Add Farewell admin form.
type FarewellSubmission struct {
	Title                    string
	Description              string
	Date                     string
	Venue                    string
	FinalYearStudentsPresent int
	JuniorPresent            int

	CoverImage *FileAttachment
	Photos     []FileAttachment
}

func (s *FarewellSubmission) endpoint() string {
	return "/api/admin/dashboard/events/farewells/add-farewell"
}

func (s *FarewellSubmission) build(w *multipart.Writer) error {
	fields := map[string]string{
		"title":                    s.Title,
		"description":              s.Description,
		"date":                     s.Date,
		"venue":                    s.Venue,
		"finalYearStudentsPresent": strconv.Itoa(s.FinalYearStudentsPresent),
		"juniorPresent":            strconv.Itoa(s.JuniorPresent),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return err
		}
	}
	if s.CoverImage != nil {
		if err := writeFile(w, "coverImageURL", s.CoverImage); err != nil {
			return err
		}
	}
	return writeFiles(w, "photos", s.Photos)
}

func (s *FarewellSubmission) reset() {
	*s = FarewellSubmission{}
}

// AlumniSubmission mirrors the Add Alumni admin form. Optional fields
// left empty are omitted from the payload, matching the form.
type AlumniSubmission struct {
	FullName       string
	Email          string
	ContactNumber  string
	EnrollmentNo   string
	Gender         string
	Department     string
	GraduationYear int
	Company        string
	Address        string

	CoverImage *FileAttachment
}

func (s *AlumniSubmission) endpoint() string {
	return "/api/admin/dashboard/alumni/add-alumni"
}

func (s *AlumniSubmission) build(w *multipart.Writer) error {
	fields := map[string]string{
		"fullName":      s.FullName,
		"email":         s.Email,
		"contactNumber": s.ContactNumber,
		"enrollmentNo":  s.EnrollmentNo,
		"gender":        s.Gender,
		"department":    s.Department,
		"company":       s.Company,
		"address":       s.Address,
	}
	if s.GraduationYear != 0 {
		fields["graduationYear"] = strconv.Itoa(s.GraduationYear)
	}
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(key, value); err != nil {
			return err
		}
	}
	if s.CoverImage != nil {
		if err := writeFile(w, "coverImageURL", s.CoverImage); err != nil {
			return err
		}
	}
	return nil
}

func (s *AlumniSubmission) reset() {
	*s = AlumniSubmission{}
}
