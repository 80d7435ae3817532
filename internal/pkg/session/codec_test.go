package session

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	in := &Claims{
		AdminId:   uuid.New(),
		Username:  "superadmin",
		IsAdmin:   true,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	token, err := codec.Issue(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := codec.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, in.AdminId, out.AdminId)
	assert.Equal(t, in.Username, out.Username)
	assert.Equal(t, in.IsAdmin, out.IsAdmin)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.True(t, in.UpdatedAt.Equal(out.UpdatedAt))
	assert.WithinDuration(t, time.Now(), out.IssuedAt, 5*time.Second)
}

func TestCodecRejectsTamperedToken(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Issue(&Claims{AdminId: uuid.New(), Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	// Flip one byte inside the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[3] == 'A' {
		payload[3] = 'B'
	} else {
		payload[3] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a")
	verifier := NewCodec("secret-b")

	token, err := issuer.Issue(&Claims{AdminId: uuid.New(), Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsGarbage(t *testing.T) {
	codec := NewCodec("test-secret")

	for _, tokenStr := range []string{
		"",
		"not-a-token",
		"a.b.c",
		"eyJhbGciOiJub25lIn0.eyJhZG1pbl9pZCI6IngifQ.", // alg=none
	} {
		_, err := codec.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q should be rejected", tokenStr)
	}
}

func TestCodecNonAdminClaims(t *testing.T) {
	codec := NewCodec("test-secret")

	token, err := codec.Issue(&Claims{AdminId: uuid.New(), Username: "viewer", IsAdmin: false})
	require.NoError(t, err)

	out, err := codec.Verify(token)
	require.NoError(t, err)
	assert.False(t, out.IsAdmin)
}
