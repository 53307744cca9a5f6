// Package session wraps the cookie session with typed accessors for the
// logged-in user and for read-once flash messages.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yudistira/siswa_app_v1/internal/models"
)

const loginUser = "LOGIN_USER"

// Flash message keys.
const (
	FlashError = "error"
	FlashMsg   = "msg"
)

func init() {
	gob.Register(models.User{})
}

func SetLoginUser(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *models.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(models.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}

// AddFlash queues a one-time message under the given key.
func AddFlash(c *gin.Context, key, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg, key)
	return s.Save()
}

// Flashes drains the messages queued under key. Reading clears them, so a
// message is shown at most once.
func Flashes(c *gin.Context, key string) []string {
	s := sessions.Default(c)
	raw := s.Flashes(key)
	if len(raw) > 0 {
		// persist the removal so the message really is one-time
		_ = s.Save()
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
