package auth

// Identity is the verified caller behind a session token.
type Identity struct {
	OsuID int64  // registrant's osu! user id
	Name  string // osu! display name
}

// CanActAs reports whether the identity may act on behalf of osuID.
func (i *Identity) CanActAs(osuID int64) bool {
	return i != nil && i.OsuID == osuID
}
