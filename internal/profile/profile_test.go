package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/profile"
)

func TestProfile_Ordering(t *testing.T) {
	assert.True(t, profile.Minimum < profile.BasicWL)
	assert.True(t, profile.BasicWL < profile.Basic)
	assert.True(t, profile.Basic < profile.EN16931)
	assert.True(t, profile.EN16931 < profile.Extended)

	// Transitivity over the whole chain.
	all := profile.All()
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			assert.True(t, all[i] < all[j], "%s should be below %s", all[i], all[j])
			assert.True(t, all[j] >= all[i])
		}
	}
}

func TestProfile_URN(t *testing.T) {
	tests := []struct {
		profile profile.Profile
		urn     string
	}{
		{profile.Minimum, "urn:factur-x.eu:1p0:minimum"},
		{profile.BasicWL, "urn:factur-x.eu:1p0:basicwl"},
		{profile.Basic, "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic"},
		{profile.EN16931, "urn:cen.eu:en16931:2017"},
		{profile.Extended, "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.urn, tt.profile.URN())
	}
}

func TestParse(t *testing.T) {
	p, err := profile.Parse("en16931")
	require.NoError(t, err)
	assert.Equal(t, profile.EN16931, p)

	p, err = profile.Parse("BASICWL")
	require.NoError(t, err)
	assert.Equal(t, profile.BasicWL, p)

	p, err = profile.Parse("urn:factur-x.eu:1p0:minimum")
	require.NoError(t, err)
	assert.Equal(t, profile.Minimum, p)

	_, err = profile.Parse("full")
	assert.Error(t, err)
}

func TestProfile_String(t *testing.T) {
	assert.Equal(t, "MINIMUM", profile.Minimum.String())
	assert.Equal(t, "EXTENDED", profile.Extended.String())
	assert.False(t, profile.Profile(7).Valid())
}
