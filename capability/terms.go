package capability

import "github.com/siampay/paykit/types"

// installmentTerms is the static table of offered term lengths (months) per
// installment provider. It is independent of the live capability payload;
// the capability says whether a provider is available, this table says what
// terms it offers.
var installmentTerms = map[types.SourceType][]int{
	types.SourceTypeInstallmentBAY:         {3, 4, 6, 10},
	types.SourceTypeInstallmentBBL:         {4, 6, 8, 10},
	types.SourceTypeInstallmentFirstChoice: {3, 4, 6, 10, 12, 18, 24, 36},
	types.SourceTypeInstallmentMBB:         {6, 12, 18, 24},
	types.SourceTypeInstallmentKTC:         {3, 4, 5, 6, 7, 8, 9, 10},
	types.SourceTypeInstallmentKBank:       {3, 4, 6, 10},
	types.SourceTypeInstallmentSCB:         {3, 4, 6, 9, 10},
	types.SourceTypeInstallmentTTB:         {3, 4, 6, 10, 12},
	types.SourceTypeInstallmentUOB:         {3, 4, 6, 10},

	types.SourceTypeInstallmentWLBBAY:         {3, 4, 6, 9, 10},
	types.SourceTypeInstallmentWLBBBL:         {4, 6, 8, 10},
	types.SourceTypeInstallmentWLBFirstChoice: {3, 4, 6, 9, 10, 12, 18, 24, 36},
	types.SourceTypeInstallmentWLBKTC:         {3, 4, 5, 6, 7, 8, 9, 10},
	types.SourceTypeInstallmentWLBSCB:         {3, 4, 6, 9, 10},
	types.SourceTypeInstallmentWLBKBank:       {3, 6, 10},
	types.SourceTypeInstallmentWLBTTB:         {4, 6, 10},
	types.SourceTypeInstallmentWLBUOB:         {3, 4, 6, 10},
}

// AvailableTerms returns the term lengths offered by an installment
// provider, or an empty slice for anything not in the table. The returned
// slice is a copy.
func AvailableTerms(st types.SourceType) []int {
	terms, ok := installmentTerms[st]
	if !ok {
		return []int{}
	}
	return append([]int(nil), terms...)
}
