package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

func newCredentialRepoMock(t *testing.T) (*credentialRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &credentialRepository{sql: db}, mock
}

func testCredentialForUpdate() *service.Credential {
	accessExp := time.Now().Add(time.Hour)
	return &service.Credential{
		ID:                   1,
		UserID:               1,
		Provider:             service.ProviderMarketplace,
		AccessTokenCipher:    "cipher-access",
		RefreshTokenCipher:   "cipher-refresh",
		AccessTokenExpiresAt: &accessExp,
		Connected:            true,
		ExternalAccountID:    "acct-1",
		SyncVersion:          3,
	}
}

func TestCredentialRepositoryUpdateBumpsVersion(t *testing.T) {
	repo, mock := newCredentialRepoMock(t)
	cred := testCredentialForUpdate()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE marketplace_credentials")).
		WithArgs(
			cred.ID,
			int64(3),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			cred.Connected,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), cred))
	require.EqualValues(t, 4, cred.SyncVersion)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepositoryUpdateStaleVersion(t *testing.T) {
	repo, mock := newCredentialRepoMock(t)
	cred := testCredentialForUpdate()

	// Zero rows matched: another run bumped sync_version first.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE marketplace_credentials")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), cred)
	require.ErrorIs(t, err, service.ErrCredentialConflict)
	require.EqualValues(t, 3, cred.SyncVersion, "a losing write must not bump the local version")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepositoryUpdateExecError(t *testing.T) {
	repo, mock := newCredentialRepoMock(t)
	cred := testCredentialForUpdate()

	execErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("UPDATE marketplace_credentials")).
		WillReturnError(execErr)

	err := repo.Update(context.Background(), cred)
	require.ErrorIs(t, err, execErr)
	require.NoError(t, mock.ExpectationsWereMet())
}
