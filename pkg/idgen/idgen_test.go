package idgen

import (
	"testing"

	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDRoundTrip(t *testing.T) {
	require.NoError(t, InitSqidsEncoder())

	for _, id := range []uint{1, 42, 123456} {
		publicID, err := GeneratePublicID(id, EntityTypeContactSubmission)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(publicID), 6)

		decoded, err := DecodePublicID(publicID, EntityTypeContactSubmission)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeRejectsOtherEntityTypes(t *testing.T) {
	require.NoError(t, InitSqidsEncoder())

	pageID, err := GeneratePublicID(7, EntityTypePage)
	require.NoError(t, err)
	_, err = DecodePublicID(pageID, EntityTypeContactSubmission)
	assert.ErrorIs(t, err, constant.ErrInvalidPublicID)

	_, err = DecodePublicID("!!", EntityTypePage)
	assert.ErrorIs(t, err, constant.ErrInvalidPublicID)
}

func TestDecodePublicIDBatch(t *testing.T) {
	require.NoError(t, InitSqidsEncoderWithSeed("fixed-seed"))

	a, err := GeneratePublicID(1, EntityTypePage)
	require.NoError(t, err)
	b, err := GeneratePublicID(2, EntityTypePage)
	require.NoError(t, err)

	ids, err := DecodePublicIDBatch([]string{a, b}, EntityTypePage)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, ids)

	_, err = DecodePublicIDBatch([]string{a, "bogus"}, EntityTypePage)
	assert.Error(t, err)
}
