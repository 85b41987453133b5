// Package identity issues user records at login and applies profile
// edits. There is no credential verification: a name/email pair is
// enough to get a fresh user record.
package identity

import (
	"strings"
	"sync/atomic"

	"github.com/alexca-social/alexca/internal/domain"
	internal_errors "github.com/alexca-social/alexca/internal/errors"
	"github.com/google/uuid"
)

const (
	DefaultName        = "Пользователь"
	DefaultAccentColor = "#0EA5E9"
	DefaultDescription = "Новый пользователь на Alex CA"
	DefaultLanguage    = "ru"
)

type Language struct {
	Code domain.LanguageCode `json:"code"`
	Name string              `json:"name"`
}

var Languages = []Language{
	{"ru", "Русский"},
	{"en", "English"},
	{"be", "Беларуская"},
	{"uk", "Українська"},
	{"it", "Italiano"},
	{"es", "Español"},
	{"fr", "Français"},
	{"de", "Deutsch"},
	{"ar", "العربية"},
	{"zh", "中文"},
	{"ko", "한국어"},
	{"ja", "日本語"},
	{"pt", "Português"},
	{"nl", "Nederlands"},
	{"sr", "Српски"},
	{"kk", "Қазақша"},
	{"mn", "Монгол"},
	{"hi", "हिन्दी"},
}

type AccentColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var AccentColors = []AccentColor{
	{"Синий", "#0EA5E9"},
	{"Голубой", "#33C3F0"},
	{"Лазурный", "#D3E4FD"},
	{"Фиолетовый", "#8B5CF6"},
	{"Розовый", "#EC4899"},
	{"Зелёный", "#10B981"},
}

// Issuer hands out user records with monotonically increasing ids.
// The seed data occupies the low ids, so issued ones start above them.
type Issuer struct {
	nextId atomic.Int64
}

func NewIssuer() *Issuer {
	i := &Issuer{}
	i.nextId.Store(100)
	return i
}

// Issue creates a user record for a login. Terms of service must be
// agreed to; everything else falls back to defaults. The avatar ref is
// seeded with the email so the same login always renders the same
// identicon.
func (i *Issuer) Issue(name, email string, agreedToTerms bool) (domain.User, error) {
	if !agreedToTerms {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Terms of service must be accepted", StatusCode: 400}
	}

	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	seed := strings.TrimSpace(email)
	if seed == "" {
		seed = uuid.NewString()
	}

	return domain.User{
		Id:          i.nextId.Add(1),
		Name:        name,
		Email:       email,
		AvatarRef:   "/v1/avatars/" + seed,
		AccentColor: DefaultAccentColor,
		Description: DefaultDescription,
		Language:    DefaultLanguage,
	}, nil
}

// ApplyUpdate edits the profile fields in place. Accent color and
// language must come from the catalogs; nil fields stay unchanged.
func ApplyUpdate(user *domain.User, upd domain.ProfileUpdate) error {
	if upd.AccentColor != nil && !validAccentColor(*upd.AccentColor) {
		return &internal_errors.ErrorWithStatusCode{Message: "Unknown accent color", StatusCode: 400}
	}
	if upd.Language != nil && !validLanguage(*upd.Language) {
		return &internal_errors.ErrorWithStatusCode{Message: "Unknown language code", StatusCode: 400}
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) != "" {
		user.Name = *upd.Name
	}
	if upd.Description != nil {
		user.Description = *upd.Description
	}
	if upd.AccentColor != nil {
		user.AccentColor = *upd.AccentColor
	}
	if upd.Language != nil {
		user.Language = *upd.Language
	}
	return nil
}

func validAccentColor(value string) bool {
	for _, c := range AccentColors {
		if c.Value == value {
			return true
		}
	}
	return false
}

func validLanguage(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
