package credential

import "time"

// Record is one registered user. Email is the unique key, case-sensitive
// as stored. PasswordHash is always the digest of the current password and
// Salt. ResetToken and ResetTokenExpiry are both nil or both set.
//
// Record instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Record struct {
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"passwordHash"`
	Salt             string     `json:"salt"`
	CreatedAt        time.Time  `json:"createdAt"`
	ResetToken       *string    `json:"resetToken"`
	ResetTokenExpiry *time.Time `json:"resetTokenExpiry"`
}

// SetReset attaches a reset token and its expiry to the record.
func (r *Record) SetReset(token string, expiry time.Time) {
	r.ResetToken = &token
	r.ResetTokenExpiry = &expiry
}

// ClearReset removes any reset token state from the record.
func (r *Record) ClearReset() {
	r.ResetToken = nil
	r.ResetTokenExpiry = nil
}

// MatchesReset reports whether token matches the record's reset token and
// the expiry is strictly in the future at now. A record with no reset pair
// never matches. Expiry is exclusive: a token redeemed at exactly its
// expiry instant is rejected.
func (r *Record) MatchesReset(token string, now time.Time) bool {
	if r.ResetToken == nil || r.ResetTokenExpiry == nil {
		return false
	}
	return *r.ResetToken == token && r.ResetTokenExpiry.After(now)
}
