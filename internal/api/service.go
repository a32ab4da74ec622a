package api

import (
	"context"
	"log/slog"
	"time"

	"meetingaudio/internal/logging"
	"meetingaudio/internal/recording"
)

// ResolveMeetingAudioPath locates the recording in meetingFolder. It returns
// nil when the folder holds no recognized recording; failures carry a message
// naming the failing stage, the offending path and the OS cause.
func ResolveMeetingAudioPath(meetingFolder string) (*string, error) {
	result, err := recording.Resolve(meetingFolder)
	if err != nil {
		return nil, err
	}
	return optional(result.Path), nil
}

// Service performs lookups on behalf of the CLI and host integrations.
type Service struct {
	resolver *recording.Resolver
	logger   *slog.Logger
}

// NewService builds a Service logging through logger (nil discards).
func NewService(logger *slog.Logger) *Service {
	return &Service{
		resolver: recording.NewResolver(logger),
		logger:   logging.NewComponentLogger(logger, "api"),
	}
}

// Resolver exposes the underlying resolver so scans share it.
func (s *Service) Resolver() *recording.Resolver {
	return s.resolver
}

// ResolveAudioPath runs one lookup and returns both the wire response and the
// lookup error, if any.
func (s *Service) ResolveAudioPath(ctx context.Context, folder string) (AudioPathResponse, error) {
	logger := logging.WithContext(ctx, s.logger)
	started := time.Now()

	result, err := s.resolver.Resolve(ctx, folder)
	resp := FromResult(folder, result, err)
	if err != nil {
		logger.Warn("meeting audio lookup failed",
			logging.String("folder", folder),
			logging.String("kind", resp.Kind),
			logging.Error(err),
		)
		return resp, err
	}

	logger.Info("meeting audio lookup finished",
		logging.String("folder", folder),
		logging.Bool("found", resp.Found()),
		logging.Int("candidate_count", resp.CandidateCount),
		logging.Duration("elapsed", time.Since(started)),
	)
	return resp, nil
}
