package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// 测试专用的 session provider，直接从 gin 上下文里取预先塞好的 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get("_session")
	if !ok {
		return nil, errors.New("测试里没有塞 session")
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errors.New("测试里塞的 session 类型不对")
	}
	return sess, nil
}
