package repository

import "context"

// CredentialProvider is the read side used on every request. Get reports
// false when no value is stored under key.
type CredentialProvider interface {
	Get(key string) (string, bool)
}

type CredentialRepository interface {
	CredentialProvider
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
