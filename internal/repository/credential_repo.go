package repository

import (
	"context"
	"database/sql"

	"github.com/aaron-lee-hebert/seller-metrics/ent"
	dbcredential "github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

type credentialRepository struct {
	client *ent.Client
	sql    sqlExecutor
}

// NewCredentialRepository creates the credential store. Reads go through
// ent; the optimistic-concurrency update is raw SQL because the version
// compare-and-bump must be a single statement.
func NewCredentialRepository(client *ent.Client, sqlDB *sql.DB) service.CredentialRepository {
	return &credentialRepository{client: client, sql: sqlDB}
}

func (r *credentialRepository) GetByUserAndProvider(ctx context.Context, userID int64, provider service.ProviderKind) (*service.Credential, error) {
	row, err := r.client.MarketplaceCredential.Query().
		Where(
			dbcredential.UserIDEQ(userID),
			dbcredential.ProviderEQ(string(provider)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return mapCredential(row), nil
}

func (r *credentialRepository) Create(ctx context.Context, cred *service.Credential) error {
	builder := r.client.MarketplaceCredential.Create().
		SetUserID(cred.UserID).
		SetProvider(string(cred.Provider)).
		SetConnected(cred.Connected).
		SetSyncVersion(1).
		SetNillableAccessTokenCipher(nilIfEmpty(cred.AccessTokenCipher)).
		SetNillableRefreshTokenCipher(nilIfEmpty(cred.RefreshTokenCipher)).
		SetNillableAccessTokenExpiresAt(cred.AccessTokenExpiresAt).
		SetNillableRefreshTokenExpiresAt(cred.RefreshTokenExpiresAt).
		SetNillableExternalAccountID(nilIfEmpty(cred.ExternalAccountID)).
		SetNillableAccountDisplayName(nilIfEmpty(cred.AccountDisplayName)).
		SetNillableScope(nilIfEmpty(cred.Scope)).
		SetNillableLastSyncedAt(cred.LastSyncedAt).
		SetNillableLastSyncError(nilIfEmpty(cred.LastSyncError))

	row, err := builder.Save(ctx)
	if err != nil {
		return err
	}
	cred.ID = int64(row.ID)
	cred.SyncVersion = row.SyncVersion
	cred.CreatedAt = row.CreatedAt
	cred.UpdatedAt = row.UpdatedAt
	return nil
}

const credentialUpdateQuery = `
	UPDATE marketplace_credentials
	SET access_token_cipher = $3,
		refresh_token_cipher = $4,
		access_token_expires_at = $5,
		refresh_token_expires_at = $6,
		connected = $7,
		external_account_id = $8,
		account_display_name = $9,
		scope = $10,
		last_synced_at = $11,
		last_sync_error = $12,
		sync_version = sync_version + 1,
		updated_at = NOW()
	WHERE id = $1 AND sync_version = $2`

// Update writes the credential guarded by its sync_version. A stale
// version means a concurrent run already wrote the row; the caller gets
// ErrCredentialConflict and must not retry blindly.
func (r *credentialRepository) Update(ctx context.Context, cred *service.Credential) error {
	result, err := r.sql.ExecContext(ctx, credentialUpdateQuery,
		cred.ID,
		cred.SyncVersion,
		nilIfEmpty(cred.AccessTokenCipher),
		nilIfEmpty(cred.RefreshTokenCipher),
		cred.AccessTokenExpiresAt,
		cred.RefreshTokenExpiresAt,
		cred.Connected,
		nilIfEmpty(cred.ExternalAccountID),
		nilIfEmpty(cred.AccountDisplayName),
		nilIfEmpty(cred.Scope),
		cred.LastSyncedAt,
		nilIfEmpty(cred.LastSyncError),
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return service.ErrCredentialConflict
	}
	cred.SyncVersion++
	return nil
}

func (r *credentialRepository) ListConnected(ctx context.Context) ([]service.Credential, error) {
	rows, err := r.client.MarketplaceCredential.Query().
		Where(dbcredential.ConnectedEQ(true)).
		Order(ent.Asc(dbcredential.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	creds := make([]service.Credential, 0, len(rows))
	for _, row := range rows {
		creds = append(creds, *mapCredential(row))
	}
	return creds, nil
}

func mapCredential(row *ent.MarketplaceCredential) *service.Credential {
	if row == nil {
		return nil
	}
	return &service.Credential{
		ID:                    int64(row.ID),
		UserID:                row.UserID,
		Provider:              service.ProviderKind(row.Provider),
		AccessTokenCipher:     derefString(row.AccessTokenCipher),
		RefreshTokenCipher:    derefString(row.RefreshTokenCipher),
		AccessTokenExpiresAt:  copyTimePtr(row.AccessTokenExpiresAt),
		RefreshTokenExpiresAt: copyTimePtr(row.RefreshTokenExpiresAt),
		Connected:             row.Connected,
		ExternalAccountID:     derefString(row.ExternalAccountID),
		AccountDisplayName:    derefString(row.AccountDisplayName),
		Scope:                 derefString(row.Scope),
		LastSyncedAt:          copyTimePtr(row.LastSyncedAt),
		LastSyncError:         derefString(row.LastSyncError),
		SyncVersion:           row.SyncVersion,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}
