package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAbsenceType_Aliases(t *testing.T) {
	cases := map[string]AbsenceType{
		"Justifié":        AbsenceJustified,
		"absent_justifie": AbsenceJustified,
		"Non justifié":    AbsenceUnjustified,
		" non_justifie ":  AbsenceUnjustified,
		"Mise à pied":     AbsenceSuspension,
		"mise_a_pied":     AbsenceSuspension,
		"Présent":         AbsencePresent,
		"present":         AbsencePresent,
	}
	for in, want := range cases {
		got, err := ParseAbsenceType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAbsenceType("malade")
	assert.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("infraction")
	require.NoError(t, err)
	assert.Equal(t, CategoryInfraction, c)

	_, err = ParseCategory("bonus")
	assert.Error(t, err)
}

func TestSignedAmount(t *testing.T) {
	assert.Equal(t, int64(5000), Entry{Kind: KindAdjustment, Category: CategoryPrime, Amount: 5000}.SignedAmount())
	assert.Equal(t, int64(-3000), Entry{Kind: KindAdjustment, Category: CategoryInfraction, Amount: 3000}.SignedAmount())
	assert.Zero(t, Entry{Kind: KindRetard, Amount: 3000}.SignedAmount())
}

func TestDisplayKind(t *testing.T) {
	retard := Entry{Kind: KindRetard}
	justified := Entry{Kind: KindAbsence, AbsenceType: AbsenceJustified}
	suspension := Entry{Kind: KindAbsence, AbsenceType: AbsenceSuspension}
	present := Entry{Kind: KindAbsence, AbsenceType: AbsencePresent}
	prime := Entry{Kind: KindAdjustment, Category: CategoryPrime, Amount: 10}

	assert.Equal(t, DisplayNone, DisplayKind(nil))
	assert.Equal(t, DisplayNone, DisplayKind([]Entry{prime}))
	assert.Equal(t, DisplayRetard, DisplayKind([]Entry{retard, prime}))
	assert.Equal(t, DisplayJustified, DisplayKind([]Entry{retard, justified}))
	assert.Equal(t, DisplaySuspension, DisplayKind([]Entry{justified, suspension, retard}))
	assert.Equal(t, DisplayRetard, DisplayKind([]Entry{present, retard}))
	assert.Equal(t, DisplayPresent, DisplayKind([]Entry{present}))
}

func TestCountsAsAbsent(t *testing.T) {
	assert.True(t, AbsenceJustified.CountsAsAbsent())
	assert.True(t, AbsenceUnjustified.CountsAsAbsent())
	assert.True(t, AbsenceSuspension.CountsAsAbsent())
	assert.False(t, AbsencePresent.CountsAsAbsent())
}
