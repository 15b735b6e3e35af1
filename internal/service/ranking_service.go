package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"psy-match/internal/domain"
	"psy-match/internal/metrics"
	"psy-match/internal/ranking"
	"psy-match/internal/repository"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidProfile = errors.New("invalid preference profile")
)

// RankingService resuelve el perfil del cliente y el pool de especialistas
// activos y los ordena con TOPSIS.
type RankingService struct {
	logger      *zap.Logger
	clients     repository.ClientRepository
	specialists repository.SpecialistRepository
	weights     ranking.Weights
	cache       RankingCache
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewRankingService crea el servicio. cache y m pueden ser nil.
func NewRankingService(
	logger *zap.Logger,
	clients repository.ClientRepository,
	specialists repository.SpecialistRepository,
	weights ranking.Weights,
	cache RankingCache,
	m *metrics.Metrics,
) *RankingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RankingService{
		logger:      logger,
		clients:     clients,
		specialists: specialists,
		weights:     weights,
		cache:       cache,
		metrics:     m,
		now:         time.Now,
	}
}

// Weights devuelve los pesos configurados.
func (s *RankingService) Weights() ranking.Weights {
	return s.weights
}

// RankByClient ordena los especialistas activos segun el perfil guardado del cliente.
func (s *RankingService) RankByClient(ctx context.Context, clientUserID string) ([]domain.SpecialistMatch, error) {
	start := s.now()
	client, err := s.clients.GetByUserID(ctx, clientUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.metrics.ObserveRanking(metrics.SourceClient, metrics.OutcomeNotFound, s.now().Sub(start), -1)
			return nil, fmt.Errorf("%w: user %s", ErrClientNotFound, clientUserID)
		}
		s.metrics.ObserveRanking(metrics.SourceClient, metrics.OutcomeError, s.now().Sub(start), -1)
		return nil, fmt.Errorf("get client: %w", err)
	}
	return s.rank(ctx, metrics.SourceClient, client.Preferences(), s.weights, start)
}

// RankByProfile ordena para un perfil ad hoc, sin cliente persistido.
// overrides reemplaza pesos por nombre de criterio solo para esta peticion.
func (s *RankingService) RankByProfile(ctx context.Context, profile domain.PreferenceProfile, overrides map[string]float64) ([]domain.SpecialistMatch, error) {
	start := s.now()
	if err := validateProfile(profile); err != nil {
		s.metrics.ObserveRanking(metrics.SourceProfile, metrics.OutcomeInvalid, s.now().Sub(start), -1)
		return nil, err
	}
	w, err := s.weights.With(overrides)
	if err != nil {
		s.metrics.ObserveRanking(metrics.SourceProfile, metrics.OutcomeInvalid, s.now().Sub(start), -1)
		return nil, err
	}
	return s.rank(ctx, metrics.SourceProfile, normalizeProfile(profile), w, start)
}

func validateProfile(p domain.PreferenceProfile) error {
	if math.IsNaN(p.Budget) || math.IsInf(p.Budget, 0) {
		return fmt.Errorf("%w: budget must be a finite number", ErrInvalidProfile)
	}
	if p.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidProfile)
	}
	return nil
}

func normalizeProfile(p domain.PreferenceProfile) domain.PreferenceProfile {
	return domain.Client{
		Budget:            p.Budget,
		Issues:            p.Issues,
		PreferredLanguage: p.PreferredLanguage,
		PreferredGender:   p.PreferredGender,
		PreferOnline:      p.PreferOnline,
		PreferOffline:     p.PreferOffline,
	}.Preferences()
}

func (s *RankingService) rank(ctx context.Context, source string, profile domain.PreferenceProfile, w ranking.Weights, start time.Time) ([]domain.SpecialistMatch, error) {
	key := cacheKey(profile, w)
	if s.cache != nil && key != "" {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.metrics.ObserveCache(metrics.CacheHit)
			s.metrics.ObserveRanking(source, metrics.OutcomeSuccess, s.now().Sub(start), len(cached))
			return cached, nil
		}
		s.metrics.ObserveCache(metrics.CacheMiss)
	}

	pool, err := s.specialists.ListActive(ctx)
	if err != nil {
		s.logger.Error("list specialists failed", zap.Error(err))
		s.metrics.ObserveRanking(source, metrics.OutcomeError, s.now().Sub(start), -1)
		return nil, fmt.Errorf("list specialists: %w", err)
	}

	results, err := ranking.Rank(pool, profile, w)
	if err != nil {
		s.metrics.ObserveRanking(source, metrics.OutcomeInvalid, s.now().Sub(start), len(pool))
		return nil, err
	}

	matches := make([]domain.SpecialistMatch, len(results))
	for i, r := range results {
		matches[i] = domain.SpecialistMatch{
			Specialist:  pool[r.Index],
			TopsisScore: r.Score,
			TopsisRank:  r.Rank,
			Band:        ranking.Band(r.Score),
			Criteria:    r.Criteria.Map(),
		}
	}

	if s.cache != nil && key != "" {
		s.cache.Set(ctx, key, matches)
	}

	elapsed := s.now().Sub(start)
	s.metrics.ObserveRanking(source, metrics.OutcomeSuccess, elapsed, len(pool))
	s.logger.Debug("ranking computed",
		zap.String("source", source),
		zap.Int("pool", len(pool)),
		zap.Duration("elapsed", elapsed),
	)
	return matches, nil
}

// cacheKey identifica un ranking por perfil normalizado y pesos.
func cacheKey(profile domain.PreferenceProfile, w ranking.Weights) string {
	payload, err := json.Marshal(struct {
		Profile domain.PreferenceProfile `json:"p"`
		Weights ranking.Weights          `json:"w"`
	}{profile, w})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
