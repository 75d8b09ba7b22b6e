// Package services holds the client actions. Each action performs one API
// call and returns the state.Msg describing its outcome; the caller
// dispatches the pending message and reduces the result.
package services

import (
	"errors"

	"github.com/dmitrijs2005/gophtasks/internal/client/client"
)

const msgUnavailable = "Server is unavailable, try again later"

// messageOf returns the text shown to the user for err.
func messageOf(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	default:
		return err.Error()
	}
}
