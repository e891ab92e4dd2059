package codeforces

// LookupError is returned when the Codeforces API reports a failure or
// the request itself cannot be completed. Comment is the remote's
// human-readable reason and is safe to show to the end user verbatim.
type LookupError struct {
	Comment string
}

func (e *LookupError) Error() string {
	if e.Comment != "" {
		return e.Comment
	}
	return "could not reach Codeforces, please try again later"
}
