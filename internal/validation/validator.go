package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Allow-listed media extensions, matched case-insensitively over the
// whole URL. Anything not http(s) or with another extension is rejected.
var (
	videoURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(mp4|mov|avi|mkv|webm)$`)
	imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|webp|gif)$`)
)

var validate = newValidate()

// Instance returns the shared validator with the portal's custom tags
// registered. Handlers and the Echo validator hook all use this one.
func Instance() *validator.Validate {
	return validate
}

func newValidate() *validator.Validate {
	v := validator.New()

	// Report json field names, not Go field names, so errors are
	// addressable by the form keys the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// pastdate rejects dates in the future relative to the server
	// clock. A date equal to "now" passes.
	v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.After(time.Now())
	})

	v.RegisterValidation("videourl", func(fl validator.FieldLevel) bool {
		return videoURLPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return imageURLPattern.MatchString(fl.Field().String())
	})

	// coverpath accepts anything served over http(s) plus locally
	// resolved uploads.
	v.RegisterValidation("coverpath", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "http") || strings.HasPrefix(s, "/uploads/")
	})

	return v
}

// Validate runs every check on the candidate record and returns all
// failures at once. A nil return means the record is valid. The same
// validate-all behavior applies to every entity.
func Validate(record any) FieldErrors {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{{Field: "", Kind: KindInvalidValue, Message: err.Error()}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, translate(fe))
	}
	return out
}
