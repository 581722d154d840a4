package middleware

import (
	pkgLog "personal-task-tracker/pkg/log"
	"personal-task-tracker/pkg/scope"
)

type Middleware struct {
	l          pkgLog.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l pkgLog.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(requestsPerMin),
	}
}
