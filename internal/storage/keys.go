package storage

// Storage key layout. Global keys hold the session pointer and the credential
// table; everything else is partitioned per user id, so switching users swaps
// the entire visible data set without touching other accounts.
const (
	SessionKey     = "session"
	CredentialsKey = "credentials"
)

// SubmissionsKey returns the key holding a user's submission list.
func SubmissionsKey(userID string) string {
	return "submissions/" + userID
}

// ChatKey returns the key holding a user's chat log.
func ChatKey(userID string) string {
	return "chat/" + userID
}
