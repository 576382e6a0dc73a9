package queries

import (
	"context"

	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

type SessionQueries interface {
	Current(ctx context.Context) (*SessionView, error)
}

type sessionQueriesImpl struct {
	session *shared.SessionState
	clock   clock.Clock
}

func NewSessionQueries(session *shared.SessionState, clock clock.Clock) SessionQueries {
	return &sessionQueriesImpl{session: session, clock: clock}
}

func (q *sessionQueriesImpl) Current(_ context.Context) (*SessionView, error) {
	user, ok := q.session.User()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	if q.session.Expired(q.clock.Now()) {
		return nil, errs.ErrSessionExpired
	}
	return &SessionView{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Phone:     user.Phone,
		Address:   user.Address,
		ExpiresAt: q.session.ExpiresAt(),
	}, nil
}
