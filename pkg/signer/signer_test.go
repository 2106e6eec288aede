package signer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/centrifuge/pkg/signer"
)

const testSecret = "f95bf295-bee6-4259-8912-0a58f4ecd30e"

func TestSigner_Token(t *testing.T) {
	t.Parallel()

	s, err := signer.New(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name               string
		userOrClient       string
		timestampOrChannel string
		info               string
		want               string
	}{
		{
			name:               "connection token without info",
			userOrClient:       "1",
			timestampOrChannel: "1491650279",
			want:               "558880399d21bd215e4d1558dd95efad9b82f829a1d44910fb611eeeffac3c50",
		},
		{
			name:               "connection token with info",
			userOrClient:       "1",
			timestampOrChannel: "1491650279",
			info:               `{"first_name":"Nikita","last_name":"Stenin"}`,
			want:               "37722e22cee00160d777fd8d594dd831a9d5404016d5515a2cffc7c102ea67ee",
		},
		{
			name:               "channel sign",
			userOrClient:       "0c951315-be0e-4516-b99e-05e60b0cc307",
			timestampOrChannel: "test-channel",
			want:               "02fc39b64c252108e80cfdcab2ef774f13a181f5149d21cebabd6eca08d231d2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Token(tt.userOrClient, tt.timestampOrChannel, tt.info))
		})
	}
}

func TestSigner_TokenIsDeterministic(t *testing.T) {
	t.Parallel()

	s := signer.MustNew(testSecret)
	first := s.Token("1", "1491650279", "")
	for range 10 {
		assert.Equal(t, first, s.Token("1", "1491650279", ""))
	}
}

func TestSigner_TokenChangesWithAnyInput(t *testing.T) {
	t.Parallel()

	s := signer.MustNew(testSecret)
	base := s.Token("1", "1491650279", "")

	variants := map[string]string{
		"user":      s.Token("2", "1491650279", ""),
		"timestamp": s.Token("1", "1491650280", ""),
		"info":      s.Token("1", "1491650279", "x"),
		"secret":    signer.MustNew(testSecret+"x").Token("1", "1491650279", ""),
	}

	seen := map[string]string{base: "base"}
	for name, v := range variants {
		assert.NotEqual(t, base, v, name)
		prev, dup := seen[v]
		assert.False(t, dup, "%s collides with %s", name, prev)
		seen[v] = name
	}
}

func TestSigner_APISign(t *testing.T) {
	t.Parallel()

	s := signer.MustNew(testSecret)
	body := []byte(`{"method":"publish","params":{"channel":"test-channel"}}`)

	assert.Equal(t, "11950468714031c2e0b95e284482ba6e8d9e17e1a6115eb0db6feded7581ebba", s.APISign(body))
}

func TestSign_PartsAreConcatenated(t *testing.T) {
	t.Parallel()

	split, err := signer.Sign(testSecret, []byte("1"), []byte("1491650279"), []byte(""))
	require.NoError(t, err)
	joined, err := signer.Sign(testSecret, []byte("11491650279"))
	require.NoError(t, err)

	assert.Equal(t, joined, split)
	assert.Equal(t, "558880399d21bd215e4d1558dd95efad9b82f829a1d44910fb611eeeffac3c50", split)
}

func TestSign_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := signer.Sign("", []byte("data"))
	require.ErrorIs(t, err, signer.ErrEmptySecret)

	_, err = signer.New("")
	require.ErrorIs(t, err, signer.ErrEmptySecret)

	assert.Panics(t, func() { signer.MustNew("") })
}
