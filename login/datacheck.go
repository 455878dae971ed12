package login

import (
	"sort"
	"strconv"
	"strings"
)

// DataCheckString builds the canonical string Telegram signs: every present
// field rendered as "name=value", sorted by field name, joined with newlines.
// Absent optional fields are dropped entirely; auth_date is rendered as epoch
// seconds. The ordering must match Telegram's byte for byte or every hash
// comparison fails.
func DataCheckString(profile Profile) string {
	id := strconv.FormatInt(profile.ID, 10)
	authDate := strconv.FormatInt(profile.AuthDate.Unix(), 10)

	parts := []dataPart{
		{name: "id", value: &id},
		{name: "first_name", value: profile.FirstName},
		{name: "last_name", value: profile.LastName},
		{name: "username", value: profile.Username},
		{name: "photo_url", value: profile.PhotoURL},
		{name: "auth_date", value: &authDate},
	}

	present := parts[:0]
	for _, p := range parts {
		if p.value != nil {
			present = append(present, p)
		}
	}
	sort.Slice(present, func(i, j int) bool {
		return present[i].name < present[j].name
	})

	var sb strings.Builder
	for i, p := range present {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.name)
		sb.WriteByte('=')
		sb.WriteString(*p.value)
	}
	return sb.String()
}

type dataPart struct {
	name  string
	value *string
}
