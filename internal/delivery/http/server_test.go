package http_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/parking-registry/internal/config"
	httpdelivery "github.com/parking-registry/internal/delivery/http"
	"github.com/parking-registry/internal/delivery/http/handler"
	"github.com/parking-registry/internal/domain"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/repository/cache"
	"github.com/parking-registry/internal/usecase"
)

const (
	testSecret = "test-secret"
	testIssuer = "parking-auth"
)

// memoryParkingRepository keeps insertion order like the SQL store does.
type memoryParkingRepository struct {
	mu      sync.Mutex
	items   []domain.Parking
	listErr error
}

func (r *memoryParkingRepository) List(ctx context.Context) ([]*domain.Parking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Parking, 0, len(r.items))
	for i := range r.items {
		p := r.items[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *memoryParkingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Parking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryParkingRepository) GetByName(ctx context.Context, nombre string) (*domain.Parking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Nombre == nombre {
			p := r.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryParkingRepository) Create(ctx context.Context, parking *domain.Parking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *parking)
	return nil
}

func (r *memoryParkingRepository) Update(ctx context.Context, parking *domain.Parking) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == parking.ID {
			r.items[i] = *parking
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryParkingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type recordingSink struct {
	mu      sync.Mutex
	records []domain.AuditRecord
}

func (s *recordingSink) Record(ctx context.Context, record *domain.AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *record)
	return nil
}

func (s *recordingSink) Records() []domain.AuditRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.AuditRecord(nil), s.records...)
}

type staticStats struct{}

func (staticStats) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	return &domain.Statistics{TotalParkings: 2, TotalAlerts: 1}, nil
}

type checker struct{ err error }

func (c checker) Health(ctx context.Context) error { return c.err }

type ServerTestSuite struct {
	suite.Suite
	repo   *memoryParkingRepository
	sink   *recordingSink
	server *httpdelivery.Server
	token  string
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	logger := zap.NewNop()
	cfg := &config.Config{
		Auth: config.AuthConfig{Enabled: true, JWTSecret: testSecret, Issuer: testIssuer},
	}

	mr := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	cacheRepo := cache.NewCacheRepository(cache.NewRedisFromClient(client, logger))

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	s.repo = &memoryParkingRepository{}
	s.sink = &recordingSink{}
	clock := clockwork.NewRealClock()

	snapshot := usecase.NewParkingSnapshot(s.repo, cacheRepo, time.Minute, metrics, logger)
	parkingUC := usecase.NewParkingUseCase(s.repo, snapshot, clock, logger)
	nearestUC := usecase.NewNearestUseCase(snapshot, s.sink, usecase.DefaultAlertThresholdKm, clock, metrics, logger)
	statsUC := usecase.NewStatsUseCase(staticStats{}, cacheRepo, time.Minute, logger)

	s.server = httpdelivery.NewServer(
		cfg,
		logger,
		metrics,
		reg,
		handler.NewParkingHandler(parkingUC, nearestUC, logger),
		handler.NewStatsHandler(statsUC, logger),
		handler.NewHealthHandler(checker{}, nil, logger),
	)

	s.token = s.signToken(testSecret, testIssuer, time.Now().Add(time.Hour))
}

func (s *ServerTestSuite) signToken(secret, issuer string, expiresAt time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "tester",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte(secret))
	s.Require().NoError(err)
	return signed
}

func (s *ServerTestSuite) do(method, target, body, token string) (int, map[string]interface{}) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.server.App().Test(req, 5000)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

func errorCode(body map[string]interface{}) string {
	e, _ := body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

func (s *ServerTestSuite) createParking(nombre string, lat, lon float64) string {
	payload, err := json.Marshal(map[string]interface{}{
		"nombre":    nombre,
		"direccion": nombre + " 100",
		"latitud":   lat,
		"longitud":  lon,
	})
	s.Require().NoError(err)

	status, body := s.do(http.MethodPost, "/api/parkings", string(payload), s.token)
	s.Require().Equal(http.StatusCreated, status, body)
	return body["parking"].(map[string]interface{})["id"].(string)
}

func (s *ServerTestSuite) TestAuth_Rejections() {
	cases := map[string]string{
		"no token":     "",
		"wrong secret": s.signToken("other", testIssuer, time.Now().Add(time.Hour)),
		"wrong issuer": s.signToken(testSecret, "someone-else", time.Now().Add(time.Hour)),
		"expired":      s.signToken(testSecret, testIssuer, time.Now().Add(-time.Minute)),
		"garbage":      "not.a.token",
	}

	for name, token := range cases {
		status, body := s.do(http.MethodGet, "/api/parkings", "", token)
		s.Equal(http.StatusUnauthorized, status, name)
		s.Equal("UNAUTHORIZED", errorCode(body), name)
	}
}

func (s *ServerTestSuite) TestCRUDLifecycle() {
	id := s.createParking("Parking Centro", -34.6037, -58.3816)

	status, body := s.do(http.MethodGet, "/api/parkings", "", s.token)
	s.Equal(http.StatusOK, status)
	s.Equal("Listado de parkings obtenido correctamente", body["message"])
	s.Len(body["parkings"], 1)

	status, body = s.do(http.MethodGet, "/api/parkings/"+id, "", s.token)
	s.Equal(http.StatusOK, status)
	s.Equal("Parking Centro", body["parking"].(map[string]interface{})["nombre"])

	status, body = s.do(http.MethodPut, "/api/parkings/"+id, `{"direccion":"Calle Nueva 5"}`, s.token)
	s.Equal(http.StatusOK, status)
	updated := body["parking"].(map[string]interface{})
	s.Equal("Calle Nueva 5", updated["direccion"])
	s.Equal("Parking Centro", updated["nombre"])
	s.Equal(-34.6037, updated["latitud"])

	status, body = s.do(http.MethodDelete, "/api/parkings/"+id, "", s.token)
	s.Equal(http.StatusNoContent, status)
	s.Nil(body)

	status, body = s.do(http.MethodGet, "/api/parkings/"+id, "", s.token)
	s.Equal(http.StatusNotFound, status)
	s.Equal("PARKING_NOT_FOUND", errorCode(body))

	status, _ = s.do(http.MethodDelete, "/api/parkings/"+id, "", s.token)
	s.Equal(http.StatusNotFound, status)
}

func (s *ServerTestSuite) TestCreate_ValidationAndMalformedBody() {
	status, body := s.do(http.MethodPost, "/api/parkings",
		`{"nombre":"x","direccion":"y","latitud":95,"longitud":0}`, s.token)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("VALIDATION_FAILED", errorCode(body))
	details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
	s.Contains(details, "latitud")

	status, body = s.do(http.MethodPost, "/api/parkings", `{"nombre":`, s.token)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_REQUEST", errorCode(body))

	s.Empty(s.repo.items)
}

func (s *ServerTestSuite) TestUpdate_InvalidLatitudeLeavesParkingUntouched() {
	id := s.createParking("Parking Norte", -34.59, -58.41)

	status, body := s.do(http.MethodPut, "/api/parkings/"+id, `{"nombre":"Otro","latitud":120}`, s.token)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("VALIDATION_FAILED", errorCode(body))

	_, body = s.do(http.MethodGet, "/api/parkings/"+id, "", s.token)
	s.Equal("Parking Norte", body["parking"].(map[string]interface{})["nombre"])
}

func (s *ServerTestSuite) TestGet_MalformedIDIsNotFound() {
	status, body := s.do(http.MethodGet, "/api/parkings/not-a-uuid", "", s.token)
	s.Equal(http.StatusNotFound, status)
	s.Equal("PARKING_NOT_FOUND", errorCode(body))
}

func (s *ServerTestSuite) TestNearest_EmptyStore() {
	status, body := s.do(http.MethodGet, "/api/parkings/nearest?latitud=1&longitud=1", "", s.token)
	s.Equal(http.StatusNotFound, status)
	s.Equal("NO_PARKINGS", errorCode(body))
}

func (s *ServerTestSuite) TestNearest_Validation() {
	s.createParking("Parking Centro", -34.6037, -58.3816)

	for target, field := range map[string]string{
		"/api/parkings/nearest?longitud=1":            "latitud",
		"/api/parkings/nearest?latitud=95&longitud=1": "latitud",
		"/api/parkings/nearest?latitud=1&longitud=x":  "longitud",
	} {
		status, body := s.do(http.MethodGet, target, "", s.token)
		s.Equal(http.StatusUnprocessableEntity, status, target)
		details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
		s.Contains(details, field, target)
	}

	s.Empty(s.sink.Records())
}

func (s *ServerTestSuite) TestNearest_CloseAndFar() {
	s.createParking("Parking Centro", -34.6037, -58.3816)
	norte := s.createParking("Parking Norte", -34.5900, -58.4100)

	status, body := s.do(http.MethodGet, "/api/parkings/nearest?latitud=-34.5900&longitud=-58.4100", "", s.token)
	s.Equal(http.StatusOK, status)
	s.Equal(norte, body["parking"].(map[string]interface{})["id"])
	s.Equal(0.0, body["distance"])
	s.NotContains(body, "warning")
	s.Empty(s.sink.Records())

	status, body = s.do(http.MethodGet, "/api/parkings/nearest?latitud=-34.7&longitud=-58.5", "", s.token)
	s.Equal(http.StatusOK, status)
	s.Contains(body, "warning")
	s.Greater(body["distance"].(float64), 0.5)

	records := s.sink.Records()
	s.Require().Len(records, 1)
	s.Equal(-34.7, records[0].Latitud)
	s.Equal(-58.5, records[0].Longitud)
}

func (s *ServerTestSuite) TestNearest_StoreFailure() {
	s.repo.listErr = stderrors.New("db down")

	status, body := s.do(http.MethodGet, "/api/parkings/nearest?latitud=0&longitud=0", "", s.token)
	s.Equal(http.StatusInternalServerError, status)
	s.Equal("DATABASE_ERROR", errorCode(body))
}

func (s *ServerTestSuite) TestPublicEndpoints() {
	status, body := s.do(http.MethodGet, "/api/health", "", "")
	s.Equal(http.StatusOK, status)
	s.Equal("up", body["database"])
	s.Equal("disabled", body["redis"])

	status, body = s.do(http.MethodGet, "/api/stats", "", "")
	s.Equal(http.StatusOK, status)
	s.EqualValues(2, body["stats"].(map[string]interface{})["total_parkings"])

	status, body = s.do(http.MethodGet, "/api/unknown", "", "")
	s.Equal(http.StatusNotFound, status)
	s.Equal("ROUTE_NOT_FOUND", errorCode(body))
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/health", "", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.server.App().Test(req, 5000)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(raw), "parking_registry_http_requests_total")
}

func TestHealth_Unhealthy(t *testing.T) {
	app := httpdelivery.NewServer(
		&config.Config{},
		zap.NewNop(),
		observability.NewMetricsForTesting(),
		prometheus.NewRegistry(),
		nil,
		nil,
		handler.NewHealthHandler(checker{}, checker{err: stderrors.New("redis down")}, zap.NewNop()),
	).App()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
