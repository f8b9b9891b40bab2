package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatibleDonors(t *testing.T) {
	tests := []struct {
		recipient string
		want      []string
	}{
		{APos, []string{APos, ANeg, OPos, ONeg}},
		{ANeg, []string{ANeg, ONeg}},
		{BPos, []string{BPos, BNeg, OPos, ONeg}},
		{BNeg, []string{BNeg, ONeg}},
		{ABPos, []string{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}},
		{ABNeg, []string{ANeg, BNeg, ABNeg, ONeg}},
		{OPos, []string{OPos, ONeg}},
		{ONeg, []string{ONeg}},
	}

	for _, tt := range tests {
		t.Run(tt.recipient, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, CompatibleDonors(tt.recipient))
		})
	}
}

func TestCompatibleDonors_UnknownFallsBackToSelf(t *testing.T) {
	assert.Equal(t, []string{"C+"}, CompatibleDonors("C+"))
	assert.Equal(t, []string{""}, CompatibleDonors(""))
}

func TestCompatibleDonors_ReturnsCopy(t *testing.T) {
	got := CompatibleDonors(ONeg)
	got[0] = "tampered"
	assert.Equal(t, []string{ONeg}, CompatibleDonors(ONeg))
}

func TestUniversalDonorAndRecipient(t *testing.T) {
	for _, recipient := range AllBloodTypes() {
		assert.Contains(t, CompatibleDonors(recipient), ONeg, "O- should give to %s", recipient)
		assert.Contains(t, CompatibleDonors(ABPos), recipient, "%s should give to AB+", recipient)
	}
	assert.NotContains(t, CompatibleDonors(ONeg), APos)
	assert.NotContains(t, CompatibleDonors(BNeg), ABNeg)
}

func TestValidBloodType(t *testing.T) {
	for _, bt := range AllBloodTypes() {
		assert.True(t, ValidBloodType(bt))
	}
	assert.False(t, ValidBloodType("a+"))
	assert.False(t, ValidBloodType("O"))
	assert.Equal(t, []string{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}, AllBloodTypes())
}

func TestAllBloodTypes_ReturnsCopy(t *testing.T) {
	got := AllBloodTypes()
	got[0] = "tampered"
	assert.Equal(t, APos, AllBloodTypes()[0])
}
