package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"

	"github.com/sagarp07/college-portal/backend/internal/models"
	"github.com/sagarp07/college-portal/backend/internal/validation"
)

type multipartBuilder struct {
	body   *bytes.Buffer
	writer *multipart.Writer
}

func newMultipartBuilder() *multipartBuilder {
	body := &bytes.Buffer{}
	return &multipartBuilder{body: body, writer: multipart.NewWriter(body)}
}

func (b *multipartBuilder) field(key, value string) *multipartBuilder {
	b.writer.WriteField(key, value)
	return b
}

func (b *multipartBuilder) file(key, filename string) *multipartBuilder {
	part, _ := b.writer.CreateFormFile(key, filename)
	part.Write([]byte("file-content"))
	return b
}

func (b *multipartBuilder) request(target string) *http.Request {
	b.writer.Close()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b.body.Bytes()))
	req.Header.Set(echo.HeaderContentType, b.writer.FormDataContentType())
	return req
}

func postMultipart(t *testing.T, handler echo.HandlerFunc, b *multipartBuilder) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(b.request("/"), rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	return resp
}

func yesterday() string {
	return time.Now().Add(-24 * time.Hour).Format("2006-01-02")
}

func activityForm() *multipartBuilder {
	return newMultipartBuilder().
		field("title", "Annual Sports Meet").
		field("description", "Inter-department athletics meet on the main ground.").
		field("activityType", "Sports").
		field("date", yesterday()).
		field("venue", "Main Ground").
		field("studentsPresent", "120").
		field("volunteersPresent", "15")
}

func TestCreateActivityStoresAllMediaURLs(t *testing.T) {
	repo := newFakeActivityRepo()
	handler := NewActivityHandler(repo, &fakeResolver{})

	b := activityForm().
		file("coverImageURL", "cover.png").
		file("photos", "one.jpg").
		file("photos", "two.jpg").
		file("videos", "clip.mp4")

	rec := postMultipart(t, handler.CreateActivity, b)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Activity
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created record: %v", err)
	}
	if len(created.Photos) != 2 {
		t.Errorf("expected 2 stored photos, got %d", len(created.Photos))
	}
	if len(created.Videos) != 1 {
		t.Errorf("expected 1 stored video, got %d", len(created.Videos))
	}
	if created.CoverImageURL == models.DefaultCoverImage {
		t.Error("uploaded cover should replace the default")
	}

	stored, err := repo.GetByID(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("record not persisted: %v", err)
	}
	if diff := cmp.Diff(created.Photos, stored.Photos); diff != "" {
		t.Errorf("stored photos differ from response (-want +got):\n%s", diff)
	}
}

func TestCreateActivityDefaultsCoverAndCounts(t *testing.T) {
	repo := newFakeActivityRepo()
	handler := NewActivityHandler(repo, &fakeResolver{})

	// counts and cover omitted entirely
	b := newMultipartBuilder().
		field("title", "Art Exhibition").
		field("description", "Student art exhibition in the gallery hall.").
		field("activityType", "Art").
		field("date", yesterday()).
		field("venue", "Gallery Hall")

	rec := postMultipart(t, handler.CreateActivity, b)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Activity
	json.Unmarshal(rec.Body.Bytes(), &created)
	if created.CoverImageURL != models.DefaultCoverImage {
		t.Errorf("expected default cover, got %q", created.CoverImageURL)
	}
	if created.StudentsPresent != 0 || created.VolunteersPresent != 0 {
		t.Errorf("absent counts should default to 0, got %d/%d",
			created.StudentsPresent, created.VolunteersPresent)
	}
}

func TestCreateActivityCollectsAllFieldErrors(t *testing.T) {
	handler := NewActivityHandler(newFakeActivityRepo(), &fakeResolver{})

	b := newMultipartBuilder().
		field("title", "   ").          // whitespace only trims to empty
		field("description", "  too short  "). // nine characters after trim
		field("activityType", "Quiz").
		field("date", time.Now().Add(48*time.Hour).Format("2006-01-02")).
		field("venue", "Main Ground").
		field("studentsPresent", "-1")

	rec := postMultipart(t, handler.CreateActivity, b)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeErrors(t, rec)
	want := map[string]validation.ErrorKind{
		"title":           validation.KindMissingField,
		"description":     validation.KindTooShort,
		"activityType":    validation.KindInvalidEnum,
		"date":            validation.KindInvalidDate,
		"studentsPresent": validation.KindNegativeValue,
	}
	got := make(map[string]validation.ErrorKind, len(resp.Errors))
	for _, fe := range resp.Errors {
		got[fe.Field] = fe.Kind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collected errors mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateActivityMediaUploadFailure(t *testing.T) {
	repo := newFakeActivityRepo()
	handler := NewActivityHandler(repo, &fakeResolver{fail: true})

	b := activityForm().file("coverImageURL", "cover.png")
	rec := postMultipart(t, handler.CreateActivity, b)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeErrors(t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Kind != validation.KindMediaUploadFailed {
		t.Fatalf("expected a single MediaUploadFailed error, got %v", resp.Errors)
	}
	if len(repo.records) != 0 {
		t.Error("no record should be persisted when media upload fails")
	}
}

func TestGetActivityNotFound(t *testing.T) {
	handler := NewActivityHandler(newFakeActivityRepo(), &fakeResolver{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("64f000000000000000000000")

	if err := handler.GetActivity(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
