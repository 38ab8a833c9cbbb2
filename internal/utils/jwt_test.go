package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateJWTToken(issuer, userID, time.Hour, "secret-key", now)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, userID, token.UserID)

	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	require.True(t, ok, "could not cast claims to RegisteredClaims")
	assert.Equal(t, issuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt.Time))
	assert.True(t, now.Equal(claims.IssuedAt.Time))
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key, time.Now())
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	now := time.Now()
	genToken, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key", now)
	require.NoError(t, err)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", now)

	require.NoError(t, err)
	assert.Equal(t, int64(456), parsedToken.UserID)
	assert.Equal(t, genToken.SignedString, parsedToken.SignedString)
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	now := time.Now()
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "correct-key", now)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", now)

	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuedAt := time.Now()
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "key", issuedAt)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", issuedAt.Add(time.Hour+time.Second))

	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_ValidUntilExpiry(t *testing.T) {
	issuedAt := time.Now()
	genToken, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "key", issuedAt)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", issuedAt.Add(59*time.Minute))

	assert.NoError(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	now := time.Now()
	genToken, _ := GenerateJWTToken("real-issuer", 1, time.Hour, "key", now)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", now)

	assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer))
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", time.Now())
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", now)

	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", time.Now())

	assert.True(t, errors.Is(err, jwt.ErrTokenRequiredClaimMissing))
}

func TestValidateAndParseJWTToken_BadSubject(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		subject string
	}{
		{name: "empty", subject: ""},
		{name: "not a number", subject: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwt.RegisteredClaims{
				Issuer:    "iss",
				Subject:   tt.subject,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
			require.NoError(t, err)

			_, err = ValidateAndParseJWTToken(signed, "key", "iss", now)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "extra parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBearerHeader)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
