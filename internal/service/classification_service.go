package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"billsense/internal/classifier"
	"billsense/internal/domain"
	"billsense/internal/metrics"
	"billsense/internal/port"
)

// ClassifyInput is the text handed over by the extraction step.
type ClassifyInput struct {
	Text       string
	HeaderText string
	RequestID  string
}

// ClassifyOutput wraps the classifier result with request-level details.
type ClassifyOutput struct {
	Result   classifier.Result
	CacheHit bool
}

// ClassificationOptions holds the request limits and diagnostics toggles.
type ClassificationOptions struct {
	MaxTextBytes int
	LogTrace     bool
}

// ClassificationService classifies extracted document text.
type ClassificationService interface {
	Classify(ctx context.Context, input ClassifyInput) (*ClassifyOutput, error)
}

type classificationService struct {
	classifier  *classifier.Classifier
	repo        port.ClassificationRepository
	cache       port.ResultCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
	opts        ClassificationOptions
	fingerprint string
}

// NewClassificationService creates a ClassificationService. cache and m may be nil.
func NewClassificationService(
	c *classifier.Classifier,
	repo port.ClassificationRepository,
	cache port.ResultCache,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ClassificationOptions,
) ClassificationService {
	return &classificationService{
		classifier:  c,
		repo:        repo,
		cache:       cache,
		metrics:     m,
		logger:      logger.Named("classification"),
		opts:        opts,
		fingerprint: c.Fingerprint(),
	}
}

// ComposeText joins the header text and the body the way the extraction
// step does before classification.
func ComposeText(header, body string) string {
	if header == "" {
		return body
	}
	return header + "\n\n" + body
}

// Classify rejects only an empty composed text. Whitespace is classified
// like any other text and ends up INVALID.
func (s *classificationService) Classify(ctx context.Context, input ClassifyInput) (*ClassifyOutput, error) {
	text := ComposeText(input.HeaderText, input.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}
	if s.opts.MaxTextBytes > 0 && len(text) > s.opts.MaxTextBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrTextTooLarge, len(text), s.opts.MaxTextBytes)
	}

	start := time.Now()
	key := s.cacheKey(text)

	matrix, cacheHit := s.lookup(ctx, key)
	if matrix == nil {
		matrix = s.classifier.BuildMatrix(text)
		s.store(ctx, key, matrix)
	}
	elapsed := time.Since(start)

	result := classifier.Translate(matrix)
	s.metrics.ObserveClassification(result.Type, result.CanAnalyze, result.Confidence, elapsed)
	s.logResult(input.RequestID, &result, cacheHit, elapsed)
	s.record(ctx, input.RequestID, text, matrix, cacheHit)

	return &ClassifyOutput{Result: result, CacheHit: cacheHit}, nil
}

func (s *classificationService) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(s.fingerprint + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// lookup returns the cached matrix for key, or nil when absent or the cache failed.
func (s *classificationService) lookup(ctx context.Context, key string) (*classifier.Matrix, bool) {
	if s.cache == nil {
		return nil, false
	}
	m, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.metrics.ObserveCache("hit")
		return m, true
	case errors.Is(err, domain.ErrCacheMiss):
		s.metrics.ObserveCache("miss")
	default:
		s.metrics.ObserveCache("error")
		s.logger.Warn("result cache lookup failed", zap.Error(err))
	}
	return nil, false
}

func (s *classificationService) store(ctx context.Context, key string, m *classifier.Matrix) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, m); err != nil {
		s.logger.Warn("result cache store failed", zap.Error(err))
	}
}

func (s *classificationService) logResult(requestID string, res *classifier.Result, cacheHit bool, elapsed time.Duration) {
	if s.opts.LogTrace && res.Matrix != nil {
		for _, phase := range res.Matrix.Trace {
			s.logger.Debug("classification phase",
				zap.String("request_id", requestID),
				zap.Int("phase", phase.Phase),
				zap.String("name", phase.Name),
				zap.String("outcome", phase.Outcome),
				zap.Strings("details", phase.Details),
			)
		}
	}

	s.logger.Info("document classified",
		zap.String("request_id", requestID),
		zap.String("type", string(res.Type)),
		zap.Int("confidence", res.Confidence),
		zap.Bool("can_analyze", res.CanAnalyze),
		zap.Bool("cache_hit", cacheHit),
		zap.Duration("elapsed", elapsed),
	)
}

// record writes the history row. Failures never affect the classification.
func (s *classificationService) record(ctx context.Context, requestID, text string, m *classifier.Matrix, cacheHit bool) {
	sum := sha256.Sum256([]byte(text))
	rec := &domain.ClassificationRecord{
		RequestID:               requestID,
		TextHash:                hex.EncodeToString(sum[:]),
		TextLength:              len(text),
		DocumentType:            m.FinalType,
		Confidence:              m.Confidence,
		CanAnalyze:              m.FinalType != domain.DocumentTypeInvalid,
		BillScore:               m.BillScore.Total,
		EOBScore:                m.EOBScore.Total,
		RequiredCategoriesScore: m.RequiredCategoriesScore,
		Disqualified:            m.Disqualified,
		Reasoning:               m.Reasoning,
		CacheHit:                cacheHit,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.metrics.ObserveHistoryError()
		s.logger.Warn("failed to record classification",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}
