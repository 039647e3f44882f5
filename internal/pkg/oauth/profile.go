package oauth

import (
	"fmt"

	"github.com/markbates/goth"
)

// Provider names as they appear in routes, sessions and the auth_users table.
const (
	ProviderGoogle    = "google"
	ProviderFacebook  = "facebook"
	ProviderMicrosoft = "microsoft"
)

// Profile is the provider-independent shape of an authenticated user. It is
// what gets persisted to auth_users and written into the session.
type Profile struct {
	Provider string                 `json:"provider"`
	UserID   string                 `json:"provider_user_id"`
	Name     string                 `json:"name"`
	Email    string                 `json:"email"`
	Picture  string                 `json:"profile_picture"`
	RawData  map[string]interface{} `json:"raw_data"`
}

// Normalize maps a provider's native payload onto a Profile. Each provider
// exposes the same information under different keys, so the mapping is the
// one piece of per-provider logic the callback handler carries. The raw
// payload is preserved verbatim for forward compatibility.
func Normalize(u goth.User) (Profile, error) {
	p := Profile{
		Provider: u.Provider,
		RawData:  u.RawData,
	}

	switch u.Provider {
	case ProviderGoogle:
		p.UserID = firstNonEmpty(rawString(u.RawData, "sub"), u.UserID)
		p.Name = firstNonEmpty(rawString(u.RawData, "name"), u.Name)
		p.Email = firstNonEmpty(rawString(u.RawData, "email"), u.Email)
		p.Picture = firstNonEmpty(rawString(u.RawData, "picture"), u.AvatarURL)
	case ProviderFacebook:
		p.UserID = firstNonEmpty(rawString(u.RawData, "id"), u.UserID)
		p.Name = firstNonEmpty(rawString(u.RawData, "name"), u.Name)
		p.Email = firstNonEmpty(rawString(u.RawData, "email"), u.Email)
		// Facebook nests the avatar under picture.data.url
		p.Picture = firstNonEmpty(nestedString(u.RawData, "picture", "data", "url"), u.AvatarURL)
	case ProviderMicrosoft:
		p.UserID = firstNonEmpty(rawString(u.RawData, "id"), u.UserID)
		p.Name = firstNonEmpty(rawString(u.RawData, "displayName"), u.Name)
		// Graph reports mail as null for accounts without a mailbox
		p.Email = firstNonEmpty(rawString(u.RawData, "mail"), rawString(u.RawData, "userPrincipalName"), u.Email)
	default:
		return Profile{}, fmt.Errorf("oauth: unsupported provider %q", u.Provider)
	}

	if p.UserID == "" {
		return Profile{}, fmt.Errorf("oauth: provider %s returned no subject id", u.Provider)
	}

	return p, nil
}

// rawString reads a top-level string field from a provider payload.
func rawString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// nestedString walks nested maps and returns the string at the end of the
// path, or "" if any hop is missing or not a map.
func nestedString(m map[string]interface{}, path ...string) string {
	cur := m
	for i, key := range path {
		if cur == nil {
			return ""
		}
		if i == len(path)-1 {
			if s, ok := cur[key].(string); ok {
				return s
			}
			return ""
		}
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			return ""
		}
		cur = next
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
