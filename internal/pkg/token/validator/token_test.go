package validator

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "campus-test-key"

func signToken(t *testing.T, issuedAt time.Time, expire time.Duration, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "campus",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expire)),
		Subject:   "123",
	})
	tkn, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return tkn
}

func TestVerify(t *testing.T) {
	issuedAt := time.Unix(1516239022, 0)
	testCases := []struct {
		name    string
		token   string
		now     time.Time
		want    string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: signToken(t, issuedAt, 2*time.Hour, testKey),
			now:   issuedAt.Add(time.Hour),
			want:  "123",
		},
		{
			name:    "expired token",
			token:   signToken(t, issuedAt, 2*time.Hour, testKey),
			now:     issuedAt.Add(3 * time.Hour),
			wantErr: true,
		},
		{
			name:    "wrong signing key",
			token:   signToken(t, issuedAt, 2*time.Hour, "another-key"),
			now:     issuedAt.Add(time.Hour),
			wantErr: true,
		},
		{
			name:    "not a token",
			token:   "not.a.token",
			now:     issuedAt,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewJWTTokenVerifier(testKey)
			v.nowFunc = func() time.Time {
				return tc.now
			}
			sub, err := v.Verify(tc.token)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, sub)
		})
	}
}
