package login

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	credentialRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/credential"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/sessions"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
)

type fakeCredentials struct {
	creds map[string]*domain.Credential
	err   error
}

func (f *fakeCredentials) GetByUsername(_ context.Context, username string) (*domain.Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	cred, ok := f.creds[username]
	if !ok {
		return nil, credentialRepo.ErrCredentialNotFound
	}
	return cred, nil
}

func newTestUseCase(t *testing.T, creds *fakeCredentials) (*UseCase, *sessions.Store) {
	t.Helper()
	store := sessions.NewStore(time.Hour, nil)
	return NewUseCase(creds, store, logger.NewNop()), store
}

func TestExecute_PlaintextPassword(t *testing.T) {
	uc, store := newTestUseCase(t, &fakeCredentials{creds: map[string]*domain.Credential{
		"acme": {Username: "acme", Password: "secret", Email: "ops@acme.com"},
	}})

	resp, err := uc.Execute(context.Background(), &Request{Username: " acme ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "acme", resp.Supplier)
	assert.Equal(t, "ops@acme.com", resp.Email)

	session, err := store.Get(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "acme", session.Supplier)
}

func TestExecute_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	uc, _ := newTestUseCase(t, &fakeCredentials{creds: map[string]*domain.Credential{
		"acme": {Username: "acme", Password: string(hash)},
	}})

	_, err = uc.Execute(context.Background(), &Request{Username: "acme", Password: "s3cret"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{Username: "acme", Password: string(hash)})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExecute_Failures(t *testing.T) {
	creds := &fakeCredentials{creds: map[string]*domain.Credential{
		"acme": {Username: "acme", Password: "secret"},
	}}
	uc, _ := newTestUseCase(t, creds)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Username: "acme", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Execute(ctx, &Request{Username: "ghost", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Execute(ctx, &Request{Username: "", Password: "secret"})
	require.ErrorIs(t, err, ErrInvalidInput)

	creds.err = errors.New("sheet timeout")
	_, err = uc.Execute(ctx, &Request{Username: "acme", Password: "secret"})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}
