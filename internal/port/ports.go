// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
)

// AdvisorCaller forwards a prompt plus a profile snapshot to the
// generative-AI advisor and returns its free-text advice.
type AdvisorCaller interface {
	GetAdvice(ctx context.Context, req *domain.AdvisorRequest) (*domain.AdvisorResponse, error)
}

// Speaker synthesizes speech for a piece of advice. Implementations are
// best-effort: playback failure must be returned, not panicked, and the
// caller decides whether to absorb it.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
