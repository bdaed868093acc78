package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorStringCarriesReason(t *testing.T) {
	err := New(http.StatusConflict, "ACCOUNT_NOT_CONNECTED", "account not connected")

	require.Equal(t, "ACCOUNT_NOT_CONNECTED: account not connected", err.Error())
	// The reason must survive fmt verbs: sync results join errors as
	// plain strings and clients match on the reason code.
	require.Contains(t, fmt.Sprintf("%v", err), "ACCOUNT_NOT_CONNECTED")
}

func TestErrorStringFallbacks(t *testing.T) {
	require.Equal(t, "boom", (&Error{Message: "boom"}).Error())
	require.Equal(t, "FETCH_FAILED", (&Error{Reason: "FETCH_FAILED"}).Error())
}

func TestMessageStripsReasonPrefix(t *testing.T) {
	err := New(http.StatusUnauthorized, "REAUTHORIZATION_REQUIRED", "reconnect required")

	require.Equal(t, "reconnect required", Message(err))
}

func TestMessagePlainError(t *testing.T) {
	require.Equal(t, "pq: connection refused", Message(stderrors.New("pq: connection refused")))
}

func TestWrapParticipatesInErrorsIs(t *testing.T) {
	cause := stderrors.New("upstream timeout")
	err := Wrap(cause, http.StatusBadGateway, "FETCH_FAILED", "record fetch failed")

	require.ErrorIs(t, err, cause)
	require.Equal(t, http.StatusBadGateway, StatusCode(err))
	require.Equal(t, "FETCH_FAILED", ReasonCode(err))
	require.True(t, IsReason(err, "FETCH_FAILED"))
}
