package redis

const (
	// KeyPrefixLink is the prefix for link record keys
	KeyPrefixLink = "linkdeck:link:"
	// KeyLinkIndex is the sorted set of link IDs scored by order
	KeyLinkIndex = "linkdeck:links:index"
	// KeyPrefixUser is the prefix for user account keys
	KeyPrefixUser = "linkdeck:user:"
	// KeyPrefixSession is the prefix for session token keys
	KeyPrefixSession = "linkdeck:session:"
)

// LinkKey returns the Redis key for a link by ID
func LinkKey(id string) string {
	return KeyPrefixLink + id
}

// LinkIndexKey returns the key for the order-scored set of all link IDs
func LinkIndexKey() string {
	return KeyLinkIndex
}

// UserKey returns the Redis key for a user account
func UserKey(name string) string {
	return KeyPrefixUser + name
}

// SessionKey returns the Redis key for a session token
func SessionKey(token string) string {
	return KeyPrefixSession + token
}
