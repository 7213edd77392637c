package user

import (
	"html"
	"strings"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/pkg/validate"
	"github.com/microcosm-cc/bluemonday"
)

// Profile attributes a caller may set through UpdateDetails.
const (
	fieldBio      = "bio"
	fieldWebsite  = "website"
	fieldLocation = "location"
)

var strict = bluemonday.StrictPolicy()

// ValidateRegistration reports every invalid field of req, keyed by its JSON name.
func ValidateRegistration(req domain.RegisterRequest) (bool, map[string]string) {
	errs := validate.Fields(req)
	return len(errs) == 0, errs
}

func ValidateSignIn(req domain.SignInRequest) (bool, map[string]string) {
	errs := validate.Fields(req)
	return len(errs) == 0, errs
}

// ReduceDetails keeps only the recognised profile fields. A field sent blank
// maps to "" so the stored value is cleared; an absent field is left out.
func ReduceDetails(req domain.UpdateDetailsRequest) map[string]string {
	details := map[string]string{}
	if req.Bio != nil {
		details[fieldBio] = clean(*req.Bio)
	}
	if req.Website != nil {
		website := clean(*req.Website)
		if website != "" && !strings.HasPrefix(website, "http") {
			website = "http://" + website
		}
		details[fieldWebsite] = website
	}
	if req.Location != nil {
		details[fieldLocation] = clean(*req.Location)
	}
	return details
}

// clean strips markup. The sanitizer escapes the text it keeps, so the
// escaping is undone to store the value as the caller typed it.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(strings.TrimSpace(s))))
}
