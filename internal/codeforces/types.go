package codeforces

// User is the public profile of a Codeforces handle.
// Rating and MaxRating are nil for unrated accounts.
type User struct {
	Handle       string `json:"handle"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Organization string `json:"organization"`
	Contribution int    `json:"contribution"`
	Rank         string `json:"rank"`
	Rating       *int   `json:"rating"`
	MaxRank      string `json:"maxRank"`
	MaxRating    *int   `json:"maxRating"`
	FriendOf     int    `json:"friendOfCount"`
	Avatar       string `json:"avatar"`
	TitlePhoto   string `json:"titlePhoto"`
}

// userInfoResponse is the envelope returned by the user.info endpoint.
// On failure, Status is "FAILED" and Comment carries the reason.
type userInfoResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  []User `json:"result"`
}

const statusOK = "OK"

// Tags is the fixed set of problem tags a duel can be restricted to.
// Capped at 25, which is also Discord's per-option choice limit.
var Tags = []string{
	"implementation",
	"math",
	"greedy",
	"dp",
	"data structures",
	"brute force",
	"constructive algorithms",
	"graphs",
	"sortings",
	"binary search",
	"dfs and similar",
	"trees",
	"strings",
	"number theory",
	"combinatorics",
	"geometry",
	"bitmasks",
	"two pointers",
	"dsu",
	"shortest paths",
	"probabilities",
	"divide and conquer",
	"hashing",
	"games",
	"interactive",
}

// IsValidTag reports whether tag belongs to the fixed tag set.
func IsValidTag(tag string) bool {
	for _, t := range Tags {
		if t == tag {
			return true
		}
	}
	return false
}
