package models

import "time"

// User is one document in the users collection, keyed by the Telegram user
// id. Expiry is absent until the first successful payment and is only ever
// moved forward by a payment confirmation.
type User struct {
	UserID    int64      `bson:"user_id" json:"user_id"`
	Lang      string     `bson:"lang" json:"lang"`
	Expiry    *time.Time `bson:"expiry,omitempty" json:"expiry,omitempty"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Entitled reports whether the user holds playlist access at the given
// instant. A missing record or missing expiry counts as unentitled.
func (u *User) Entitled(now time.Time) bool {
	return u != nil && u.Expiry != nil && u.Expiry.After(now)
}
