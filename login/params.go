package login

import (
	"strconv"
	"time"

	apperrors "github.com/RazorNd/telegram-login/errors"
)

// UserFromParams builds a User from the raw field→value mapping the widget
// appended to the redirect URL.
//
// The keys id, auth_date, and hash are required; a missing or unparseable
// required value returns a bad-request *errors.AppError and the validators
// never see the payload. Optional keys are kept as-is, so a present empty
// string stays distinguishable from an absent field.
func UserFromParams(params map[string]string) (User, error) {
	hash, ok := params["hash"]
	if !ok {
		return User{}, apperrors.MissingField("hash")
	}

	rawID, ok := params["id"]
	if !ok {
		return User{}, apperrors.MissingField("id")
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return User{}, apperrors.InvalidFormat("id").WithCause(err)
	}

	rawAuthDate, ok := params["auth_date"]
	if !ok {
		return User{}, apperrors.MissingField("auth_date")
	}
	epoch, err := strconv.ParseInt(rawAuthDate, 10, 64)
	if err != nil {
		return User{}, apperrors.InvalidFormat("auth_date").WithCause(err)
	}

	return User{
		Profile: Profile{
			ID:        id,
			AuthDate:  time.Unix(epoch, 0).UTC(),
			FirstName: optional(params, "first_name"),
			LastName:  optional(params, "last_name"),
			Username:  optional(params, "username"),
			PhotoURL:  optional(params, "photo_url"),
		},
		Hash: hash,
	}, nil
}

func optional(params map[string]string, key string) *string {
	if value, ok := params[key]; ok {
		return &value
	}
	return nil
}
