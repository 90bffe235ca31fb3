// Package permissions gates every comment operation behind a pluggable
// policy pair. Deployments install their own policies once at startup;
// until then the AllowAll reference policy answers, so unconfigured
// setups stay usable.
package permissions

import "github.com/talkboard/api-comments/internal/auth"

// RootPolicy authorizes the collection operations.
type RootPolicy interface {
	CanListComments(id auth.Identity, contentType string, objectPK uint) bool
	CanCreateComment(id auth.Identity, contentType string, objectPK uint) bool
}

// DetailPolicy authorizes the single-comment operations.
type DetailPolicy interface {
	CanGetComment(id auth.Identity, contentType string, objectPK, commentID uint) bool
	CanUpdateComment(id auth.Identity, contentType string, objectPK, commentID uint) bool
	CanDeleteComment(id auth.Identity, contentType string, objectPK, commentID uint) bool
}

// AllowAll is the reference policy: every authenticated caller may do
// everything.
type AllowAll struct{}

func (AllowAll) CanListComments(auth.Identity, string, uint) bool        { return true }
func (AllowAll) CanCreateComment(auth.Identity, string, uint) bool       { return true }
func (AllowAll) CanGetComment(auth.Identity, string, uint, uint) bool    { return true }
func (AllowAll) CanUpdateComment(auth.Identity, string, uint, uint) bool { return true }
func (AllowAll) CanDeleteComment(auth.Identity, string, uint, uint) bool { return true }
