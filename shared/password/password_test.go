package password_test

import (
	"strings"
	"testing"

	"alora/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "short password", password: "abc"},
		{name: "empty password", password: "", expectedErr: password.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("clinic-admin")
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{name: "matching password", password: "clinic-admin", hash: hash},
		{name: "wrong password", password: "clinic-admim", hash: hash, expectedErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expectedErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "clinic-admin", hash: "", expectedErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	err = password.Verify("clinic-admin", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashTooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", 73))

	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}
