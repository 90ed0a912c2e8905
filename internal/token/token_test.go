package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueResolve(t *testing.T) {
	svc := NewService("test-secret", 2*time.Hour)

	raw, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	userID, err := svc.Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestService_Resolve_Errors(t *testing.T) {
	svc := NewService("test-secret", 2*time.Hour)

	tests := []struct {
		name    string
		raw     func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty token",
			raw:     func(t *testing.T) string { return "" },
			wantErr: ErrMissing,
		},
		{
			name:    "garbage token",
			raw:     func(t *testing.T) string { return "not.a.token" },
			wantErr: ErrInvalid,
		},
		{
			name: "wrong signing key",
			raw: func(t *testing.T) string {
				other := NewService("other-secret", 2*time.Hour)
				raw, err := other.Issue(42)
				require.NoError(t, err)
				return raw
			},
			wantErr: ErrInvalid,
		},
		{
			name: "expired token",
			raw: func(t *testing.T) string {
				// Выпущен 3 часа назад при TTL в 2 часа
				raw, err := svc.issueAt(42, time.Now().Add(-3*time.Hour))
				require.NoError(t, err)
				return raw
			},
			wantErr: ErrExpired,
		},
		{
			name: "non-numeric subject",
			raw: func(t *testing.T) string {
				claims := jwt.RegisteredClaims{
					Subject:   "alice",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				}
				raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return raw
			},
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Resolve(tt.raw(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_RejectsUnsignedToken(t *testing.T) {
	svc := NewService("test-secret", 2*time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Resolve(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}
