package model

// Artist represents one supported creator, built from a supporting-plan
// API record.
//
// The four identifier fields together form the artist's identity for
// ignore-rule matching: a rule pattern may match any one of them.
type Artist struct {
	// Name is the creator's display name. It also names the artist's
	// directory under the output root.
	Name string

	// PlanTitle is the title of the supported plan.
	PlanTitle string

	// UserID is the creator's numeric account id, as the API returns it.
	UserID string

	// CreatorID is the creator's URL slug.
	CreatorID string

	// PledgedFee is the monthly amount pledged to this creator, in the
	// currency's minor-unit-free integer form (e.g. yen).
	PledgedFee int
}

// Identifiers returns the strings an ignore rule is matched against,
// in a fixed order: name, plan title, user id, creator id.
func (a *Artist) Identifiers() []string {
	return []string{a.Name, a.PlanTitle, a.UserID, a.CreatorID}
}

// CanAccess reports whether a post with the given required fee is within
// this artist's pledged tier.
//
// Free posts (feeRequired == 0) are rejected: they are not gated content
// and are out of scope. Posts above the pledged fee are rejected because
// the account cannot read them even when the API lists them.
func (a *Artist) CanAccess(feeRequired int) bool {
	return feeRequired > 0 && feeRequired <= a.PledgedFee
}
