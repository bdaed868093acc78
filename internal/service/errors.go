package service

import (
	"net/http"

	infraerrors "github.com/aaron-lee-hebert/seller-metrics/internal/pkg/errors"
)

// Stable reason codes for the sync error taxonomy. Callers distinguish
// outcomes by reason, never by message text.
const (
	ReasonNotConnected       = "ACCOUNT_NOT_CONNECTED"
	ReasonReauthRequired     = "REAUTHORIZATION_REQUIRED"
	ReasonTokenRefreshFailed = "TOKEN_REFRESH_FAILED"
	ReasonFetchFailed        = "FETCH_FAILED"
	ReasonCredentialConflict = "CREDENTIAL_CONFLICT"
	ReasonConnectFailed      = "CONNECT_FAILED"
)

// ErrCredentialConflict is returned by CredentialRepository.Update when
// the row was modified since it was read. The losing sync run fails
// cleanly instead of overwriting telemetry.
var ErrCredentialConflict = infraerrors.New(http.StatusConflict, ReasonCredentialConflict,
	"credential was modified by a concurrent sync run")

func errNotConnected() error {
	return infraerrors.New(http.StatusConflict, ReasonNotConnected, "account not connected")
}

func errReauthRequired() error {
	return infraerrors.New(http.StatusUnauthorized, ReasonReauthRequired,
		"refresh token expired, account must be reconnected")
}

func errTokenRefreshFailed(cause error) error {
	return infraerrors.Wrap(cause, http.StatusBadGateway, ReasonTokenRefreshFailed,
		"token refresh failed: "+cause.Error())
}

func errFetchFailed(cause error) error {
	return infraerrors.Wrap(cause, http.StatusBadGateway, ReasonFetchFailed,
		"record fetch failed: "+cause.Error())
}
