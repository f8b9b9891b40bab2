// Package matching holds the pure donor matching rules: ABO/Rh compatibility
// and great-circle distance filtering.
package matching

// Blood types in canonical display order.
const (
	APos  = "A+"
	ANeg  = "A-"
	BPos  = "B+"
	BNeg  = "B-"
	ABPos = "AB+"
	ABNeg = "AB-"
	OPos  = "O+"
	ONeg  = "O-"
)

var allTypes = []string{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}

// compatibleDonors maps a recipient type to the donor types that may supply it.
var compatibleDonors = map[string][]string{
	APos:  {APos, ANeg, OPos, ONeg},
	ANeg:  {ANeg, ONeg},
	BPos:  {BPos, BNeg, OPos, ONeg},
	BNeg:  {BNeg, ONeg},
	ABPos: {APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg},
	ABNeg: {ANeg, BNeg, ABNeg, ONeg},
	OPos:  {OPos, ONeg},
	ONeg:  {ONeg},
}

// CompatibleDonors returns the donor types that can give to recipient.
// Unknown types are treated as compatible only with themselves.
func CompatibleDonors(recipient string) []string {
	donors, ok := compatibleDonors[recipient]
	if !ok {
		return []string{recipient}
	}
	out := make([]string, len(donors))
	copy(out, donors)
	return out
}

// ValidBloodType reports whether t is one of the eight ABO/Rh types.
func ValidBloodType(t string) bool {
	_, ok := compatibleDonors[t]
	return ok
}

// AllBloodTypes returns the eight ABO/Rh types in display order.
func AllBloodTypes() []string {
	out := make([]string, len(allTypes))
	copy(out, allTypes)
	return out
}
