package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcost/internal/logger"
	"github.com/bastiangx/wordcost/internal/utils"
	"github.com/bastiangx/wordcost/pkg/config"
	"github.com/bastiangx/wordcost/pkg/cost"
	"github.com/bastiangx/wordcost/pkg/dictionary"
	"github.com/bastiangx/wordcost/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Status codes used in ErrorResponse.
const (
	CodeBadRequest   = 400
	CodeInternal     = 500
	CodeLimitReached = 503
)

// Server handles msgpack IPC for cost queries.
type Server struct {
	dict          *dictionary.Index
	defaults      *search.Engine
	options       []search.Option
	maxWordLength int
	decoder       *msgpack.Decoder
	encoder       *msgpack.Encoder
	logger        *log.Logger
	requestCount  int
}

// NewServer creates a server speaking over stdin/stdout.
func NewServer(dict *dictionary.Index, cfg *config.Config) *Server {
	return NewServerWithIO(dict, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(dict *dictionary.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	opts := []search.Option{
		search.WithMinLength(cfg.Search.MinLength),
		search.WithMaxExpansions(cfg.Search.MaxExpansions),
	}
	return &Server{
		dict:          dict,
		defaults:      search.New(cfg.Costs, dict, opts...),
		options:       opts,
		maxWordLength: max(cfg.Server.MaxWordLength, dict.MaxLength()),
		decoder:       msgpack.NewDecoder(r),
		encoder:       msgpack.NewEncoder(w),
		logger:        logger.New("server"),
	}
}

// Start signals readiness and serves requests until the input stream ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server", "words", s.dict.Len(), "costs", s.defaults.Costs())
	if err := s.send(HealthResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			_ = s.sendError("", "invalid msgpack request", CodeBadRequest)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.requestCount++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the action field.
func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionCost:
		return s.handleCost(req)
	case ActionHealth:
		return s.send(HealthResponse{ID: req.ID, Status: "ok"})
	case ActionInfo:
		stats := s.dict.Stats()
		return s.send(InfoResponse{
			ID:        req.ID,
			Words:     stats["totalWords"],
			MaxLength: stats["maxLength"],
			Buckets:   stats["buckets"],
			Costs:     s.defaults.Costs().Ints(),
		})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleCost(req Request) error {
	origin := utils.NormalizeWord(req.Origin)
	target := utils.NormalizeWord(req.Target)
	// maxWordLength is never below the longest dictionary word.
	if len(origin) > s.maxWordLength || len(target) > s.maxWordLength {
		return s.sendError(req.ID, fmt.Sprintf("word exceeds maximum length of %d", s.maxWordLength), CodeBadRequest)
	}

	engine := s.defaults
	if len(req.Costs) > 0 {
		costs, err := cost.FromInts(req.Costs)
		if err != nil {
			return s.sendError(req.ID, err.Error(), CodeBadRequest)
		}
		engine = search.New(costs, s.dict, s.options...)
	}

	start := time.Now()
	res, err := engine.Search(context.Background(), origin, target)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, search.ErrExpansionLimit) {
			return s.sendError(req.ID, err.Error(), CodeLimitReached)
		}
		return s.sendError(req.ID, err.Error(), CodeInternal)
	}

	s.logger.Debugf("Took [ %v ] for %s -> %s", elapsed, origin, target)
	return s.send(CostResponse{
		ID:        req.ID,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		TimeTaken: elapsed.Microseconds(),
	})
}

// send encodes one response. Encoding failures are fatal for the stream.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encoding response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	s.logger.Debug("Request failed", "id", id, "error", message, "code", code)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
