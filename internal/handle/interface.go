package handle

// HandleStore maps Discord members to their Codeforces handles.
// One handle per member; re-registration overwrites.
type HandleStore interface {
	Set(memberID, handle string) error
	Get(memberID string) (string, bool, error)
}
