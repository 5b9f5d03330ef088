package repositories

import "context"

const adminTokenKey = "kejora_admin_token"

// TokenRepository stores the opaque bearer token issued by the upstream
// admin login, scoped to the browser session.
type TokenRepository struct {
	kv KV
}

func NewTokenRepository(kv KV) *TokenRepository {
	return &TokenRepository{kv: kv}
}

func (r *TokenRepository) Set(ctx context.Context, sessionID, token string) error {
	return r.kv.Set(ctx, adminTokenKey+":"+sessionID, token)
}

// Get returns "" when no token is stored.
func (r *TokenRepository) Get(ctx context.Context, sessionID string) (string, error) {
	return r.kv.Get(ctx, adminTokenKey+":"+sessionID)
}

func (r *TokenRepository) Clear(ctx context.Context, sessionID string) error {
	return r.kv.Del(ctx, adminTokenKey+":"+sessionID)
}
