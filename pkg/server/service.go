package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/codedlribeiro/research-agent/pkg/memory"
	"github.com/codedlribeiro/research-agent/pkg/research"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

// Service exposes the research pipeline and session memory to the HTTP
// handlers. The engine runs rounds sequentially; memory access is safe for
// concurrent readers.
type Service struct {
	engine *research.Engine
}

// NewService wraps an engine for HTTP use.
func NewService(engine *research.Engine) *Service {
	return &Service{engine: engine}
}

// Research runs one round for the question.
func (s *Service) Research(ctx context.Context, question string) (*research.RoundReport, error) {
	return s.engine.Research(ctx, question)
}

// History returns all rounds recorded this session.
func (s *Service) History() []memory.Round {
	return s.engine.Memory().Rounds()
}

// Round looks up a single round by ID.
func (s *Service) Round(id uuid.UUID) (memory.Round, bool) {
	return s.engine.Memory().RoundByID(id)
}

// Sources returns every result recorded this session.
func (s *Service) Sources() []sources.Result {
	return s.engine.Memory().AllResults()
}
