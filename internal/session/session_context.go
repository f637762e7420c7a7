package session

import (
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	ginSessionKey = "portal_session"
	ginStoreKey   = "portal_store"
)

// Bind is called by the session middleware once the session is resolved.
func Bind(c *gin.Context, s Session, st *store.Store) {
	c.Set(ginSessionKey, s)
	c.Set(ginStoreKey, st)
	c.Set("user_id_validated", s.Email)
	c.Set("role", s.Role)
}

func Current(c *gin.Context) (Session, bool) {
	v, ok := c.Get(ginSessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

func CurrentStore(c *gin.Context) (*store.Store, bool) {
	v, ok := c.Get(ginStoreKey)
	if !ok {
		return nil, false
	}
	st, ok := v.(*store.Store)
	return st, ok && st != nil
}
