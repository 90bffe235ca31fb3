package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talkboard/api-comments/internal/auth"
)

func TestDefaultPoliciesAllowEverything(t *testing.T) {
	root, detail := Policies()
	id := auth.Identity{UserID: 1, Username: "alice"}

	assert.True(t, root.CanListComments(id, "article", 1))
	assert.True(t, root.CanCreateComment(id, "article", 1))
	assert.True(t, detail.CanGetComment(id, "article", 1, 2))
	assert.True(t, detail.CanUpdateComment(id, "article", 1, 2))
	assert.True(t, detail.CanDeleteComment(id, "article", 1, 2))
}

type adminOnly struct{ AllowAll }

func (adminOnly) CanCreateComment(id auth.Identity, _ string, _ uint) bool { return id.IsAdmin }

func TestSetReplacesPolicies(t *testing.T) {
	Set(adminOnly{}, AllowAll{})
	t.Cleanup(func() { Set(AllowAll{}, AllowAll{}) })

	root, _ := Policies()
	assert.False(t, root.CanCreateComment(auth.Identity{UserID: 1}, "article", 1))
	assert.True(t, root.CanCreateComment(auth.Identity{UserID: 1, IsAdmin: true}, "article", 1))

	// Predicates not overridden keep the embedded behavior.
	assert.True(t, root.CanListComments(auth.Identity{}, "article", 1))
}
