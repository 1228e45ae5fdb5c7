package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/sagarp07/college-portal/backend/internal/models"
)

func validActivity() *models.Activity {
	return &models.Activity{
		Title:             "Annual Sports Meet",
		Description:       "Inter-department athletics meet held on the main ground.",
		ActivityType:      "Sports",
		Date:              time.Now().Add(-24 * time.Hour),
		Venue:             "Main Ground",
		CoverImageURL:     "/uploads/default.png",
		StudentsPresent:   120,
		VolunteersPresent: 15,
	}
}

func validFarewell() *models.Farewell {
	return &models.Farewell{
		Title:         "Farewell 2024",
		Description:   "Farewell ceremony for the graduating batch.",
		Date:          time.Now().Add(-48 * time.Hour),
		Venue:         "Auditorium",
		CoverImageURL: "https://cdn.example.com/farewell.jpg",
	}
}

func validDonation() *models.ClothDonation {
	return &models.ClothDonation{
		Title:       "Winter Cloth Drive",
		Description: "Cloth collection drive for nearby villages.",
		Date:        time.Now().Add(-24 * time.Hour),
		Location:    models.GeoLocation{Latitude: 19.076, Longitude: 72.8777},
	}
}

func validAlumni() *models.Alumni {
	return &models.Alumni{
		FullName:       "Priya Sharma",
		Email:          "priya.sharma@example.com",
		ContactNumber:  "9876543210",
		EnrollmentNo:   "EN2019042",
		Gender:         "Female",
		Department:     "Computer Science",
		GraduationYear: 2023,
		CoverImageURL:  "/uploads/priya.png",
	}
}

func findKind(t *testing.T, errs FieldErrors, field string, kind ErrorKind) {
	t.Helper()
	for _, fe := range errs {
		if strings.HasPrefix(fe.Field, field) && fe.Kind == kind {
			return
		}
	}
	t.Fatalf("expected %s error for field %q, got %v", kind, field, errs)
}

func TestValidActivityPasses(t *testing.T) {
	if errs := Validate(validActivity()); errs != nil {
		t.Fatalf("expected valid activity, got %v", errs)
	}
}

func TestActivityRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*models.Activity)
	}{
		{"title", func(a *models.Activity) { a.Title = "" }},
		{"description", func(a *models.Activity) { a.Description = "" }},
		{"activityType", func(a *models.Activity) { a.ActivityType = "" }},
		{"date", func(a *models.Activity) { a.Date = time.Time{} }},
		{"venue", func(a *models.Activity) { a.Venue = "" }},
		{"coverImageURL", func(a *models.Activity) { a.CoverImageURL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			a := validActivity()
			tt.mutate(a)
			findKind(t, Validate(a), tt.field, KindMissingField)
		})
	}
}

func TestDescriptionLength(t *testing.T) {
	a := validActivity()
	a.Description = "123456789" // nine characters
	findKind(t, Validate(a), "description", KindTooShort)

	a.Description = "1234567890" // exactly ten
	if errs := Validate(a); errs != nil {
		t.Fatalf("ten character description should pass, got %v", errs)
	}
}

func TestActivityTypeEnum(t *testing.T) {
	a := validActivity()
	a.ActivityType = "Athletics"
	findKind(t, Validate(a), "activityType", KindInvalidEnum)

	for _, allowed := range models.ActivityTypes {
		a.ActivityType = allowed
		if errs := Validate(a); errs != nil {
			t.Fatalf("activity type %q should pass, got %v", allowed, errs)
		}
	}
}

func TestDateMustNotBeFuture(t *testing.T) {
	a := validActivity()
	a.Date = time.Now() // "now" passes
	if errs := Validate(a); errs != nil {
		t.Fatalf("current date should pass, got %v", errs)
	}

	a.Date = time.Now().Add(time.Second)
	findKind(t, Validate(a), "date", KindInvalidDate)
}

func TestVideoURLAllowList(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://x.com/a.mp4", true},
		{"https://x.com/a.MOV", true}, // extension match is case-insensitive
		{"http://x.com/a.webm", true},
		{"https://x.com/a.mp3", false},
		{"ftp://x.com/a.mp4", false},
		{"https://x.com/a", false},
	}
	for _, tt := range tests {
		a := validActivity()
		a.Videos = []string{tt.url}
		errs := Validate(a)
		if tt.ok && errs != nil {
			t.Errorf("video %q should pass, got %v", tt.url, errs)
		}
		if !tt.ok {
			findKind(t, errs, "videos", KindInvalidMediaURL)
		}
	}
}

func TestPhotoURLAllowList(t *testing.T) {
	tests := []struct {
		url string
		ok  bool
	}{
		{"https://x.com/a.png", true},
		{"https://x.com/a.JPEG", true},
		{"https://x.com/a.webp", true},
		{"ftp://x.com/a.png", false},
		{"https://x.com/a.bmp", false},
	}
	for _, tt := range tests {
		a := validActivity()
		a.Photos = []string{tt.url}
		errs := Validate(a)
		if tt.ok && errs != nil {
			t.Errorf("photo %q should pass, got %v", tt.url, errs)
		}
		if !tt.ok {
			findKind(t, errs, "photos", KindInvalidMediaURL)
		}
	}
}

func TestCoverImagePrefixes(t *testing.T) {
	a := validActivity()
	a.CoverImageURL = "https://cdn.x.com/cover.png"
	if errs := Validate(a); errs != nil {
		t.Fatalf("http cover should pass, got %v", errs)
	}

	a.CoverImageURL = "/uploads/cover.png"
	if errs := Validate(a); errs != nil {
		t.Fatalf("/uploads/ cover should pass, got %v", errs)
	}

	a.CoverImageURL = "file:///tmp/cover.png"
	findKind(t, Validate(a), "coverImageURL", KindInvalidMediaURL)
}

func TestNegativeCounts(t *testing.T) {
	a := validActivity()
	a.StudentsPresent = -1
	findKind(t, Validate(a), "studentsPresent", KindNegativeValue)

	// absent counters default to zero, which is valid
	a.StudentsPresent = 0
	a.VolunteersPresent = 0
	if errs := Validate(a); errs != nil {
		t.Fatalf("zero counts should pass, got %v", errs)
	}
}

func TestValidateAllCollectsEveryError(t *testing.T) {
	a := validActivity()
	a.Title = ""
	a.Description = "short"
	a.ActivityType = "Quiz"
	a.StudentsPresent = -2

	errs := Validate(a)
	if len(errs) != 4 {
		t.Fatalf("expected 4 collected errors, got %d: %v", len(errs), errs)
	}
	findKind(t, errs, "title", KindMissingField)
	findKind(t, errs, "description", KindTooShort)
	findKind(t, errs, "activityType", KindInvalidEnum)
	findKind(t, errs, "studentsPresent", KindNegativeValue)
}

func TestDonationGeoBounds(t *testing.T) {
	d := validDonation()
	if errs := Validate(d); errs != nil {
		t.Fatalf("expected valid donation, got %v", errs)
	}

	d.Location.Latitude = 90.5
	findKind(t, Validate(d), "latitude", KindOutOfRange)

	d = validDonation()
	d.Location.Longitude = -180.5
	findKind(t, Validate(d), "longitude", KindOutOfRange)
}

func TestDonationOptionalCover(t *testing.T) {
	d := validDonation()
	d.CoverImageURL = "" // donations may omit the cover image
	if errs := Validate(d); errs != nil {
		t.Fatalf("empty donation cover should pass, got %v", errs)
	}

	d.CoverImageURL = "https://x.com/a.pdf"
	findKind(t, Validate(d), "coverImageURL", KindInvalidMediaURL)
}

func TestFarewellRequiredCover(t *testing.T) {
	f := validFarewell()
	if errs := Validate(f); errs != nil {
		t.Fatalf("expected valid farewell, got %v", errs)
	}

	f.CoverImageURL = ""
	findKind(t, Validate(f), "coverImageURL", KindMissingField)

	f.CoverImageURL = "/uploads/cover.png" // farewell covers must be full URLs
	findKind(t, Validate(f), "coverImageURL", KindInvalidMediaURL)
}

func TestAlumniValidation(t *testing.T) {
	al := validAlumni()
	if errs := Validate(al); errs != nil {
		t.Fatalf("expected valid alumni, got %v", errs)
	}

	al.Email = ""
	findKind(t, Validate(al), "email", KindMissingField)

	al = validAlumni()
	al.Email = "not-an-email"
	findKind(t, Validate(al), "email", KindInvalidValue)

	al = validAlumni()
	al.Gender = "Unknown"
	findKind(t, Validate(al), "gender", KindInvalidEnum)

	al = validAlumni()
	al.GraduationYear = 0
	findKind(t, Validate(al), "graduationYear", KindMissingField)
}
