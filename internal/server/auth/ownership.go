package auth

import (
	"github.com/dmitrijs2005/gophposts/internal/common"
	"github.com/dmitrijs2005/gophposts/internal/server/models"
)

// AuthorizeMutation allows an update or delete of post only by its owner.
// Principals are compared by UserName alone, never by record identity.
func AuthorizeMutation(post *models.Post, actor *models.User) error {
	if post == nil {
		return common.ErrorNotFound
	}
	if actor == nil || actor.UserName == "" || post.Owner != actor.UserName {
		return common.ErrorForbidden
	}
	return nil
}
