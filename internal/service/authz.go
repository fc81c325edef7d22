package service

// Decision is the outcome of an ownership check
type Decision struct {
	Allowed    bool
	RedirectTo string // detail view of the owning post, set on denial
}

// AuthorizeMutation decides whether the actor may mutate or delete an
// entity owned by authorID. postID is the post the target belongs to:
// the target itself for posts, the parent post for comments. Denials
// carry that post's detail view as the redirect target. The transport
// layer guarantees actorID is an authenticated identity before any
// mutation reaches this check.
func AuthorizeMutation(actorID, authorID, postID string) Decision {
	if actorID != "" && actorID == authorID {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, RedirectTo: PostDetailPath(postID)}
}

// Canonical locations mutation outcomes direct to.

// GlobalFeedPath is the location of the global feed
func GlobalFeedPath() string {
	return "/v1/posts"
}

// PostDetailPath is the location of a post's detail view
func PostDetailPath(postID string) string {
	return "/v1/posts/" + postID
}

// ProfilePath is the location of a user's profile feed
func ProfilePath(username string) string {
	return "/v1/profiles/" + username + "/posts"
}

// LoginPath is where unauthenticated requests are sent
func LoginPath() string {
	return "/v1/auth/login"
}
