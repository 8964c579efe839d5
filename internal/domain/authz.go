package domain

// Ownership predicates used by the resource routes. All of them treat a nil
// user (no session) as a plain "not allowed" input rather than an error.

// CanMutatePost reports whether user may edit or delete post.
func CanMutatePost(user *User, post *Post) bool {
	return user != nil && post != nil && user.ID == post.UserID
}

// CanMutateProfile reports whether user may edit profile.
func CanMutateProfile(user *User, profile *Profile) bool {
	return user != nil && profile != nil && user.ID == profile.UserID
}

// CanViewProfileEditLink gates the edit affordance by the same ownership rule
// as the mutation itself.
func CanViewProfileEditLink(user *User, profile *Profile) bool {
	return CanMutateProfile(user, profile)
}
