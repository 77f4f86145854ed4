package service

import (
	"context"
	"testing"
	"time"

	domainevents "salonhub_backend/internal/events"
	"salonhub_backend/internal/providers/password"
	"salonhub_backend/internal/providers/repository"
	"salonhub_backend/platform/apperr"
	"salonhub_backend/platform/events"
	"salonhub_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type fakeRepo struct {
	providers map[uuid.UUID]repository.Provider
	byEmail   map[string]uuid.UUID
	bySlug    map[string]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		providers: make(map[uuid.UUID]repository.Provider),
		byEmail:   make(map[string]uuid.UUID),
		bySlug:    make(map[string]uuid.UUID),
	}
}

func (f *fakeRepo) CreateProvider(_ context.Context, fullName, email, phone, passwordHash, companyName, licenseNumber, slug string) (repository.Provider, error) {
	if _, exists := f.byEmail[email]; exists {
		return repository.Provider{}, apperr.Conflict("Email already registered")
	}
	if _, exists := f.bySlug[slug]; exists {
		return repository.Provider{}, apperr.Conflict("Company name already taken")
	}
	p := repository.Provider{
		ID:            uuid.New(),
		FullName:      fullName,
		Email:         email,
		Phone:         phone,
		PasswordHash:  passwordHash,
		CompanyName:   companyName,
		LicenseNumber: licenseNumber,
		Slug:          slug,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	f.providers[p.ID] = p
	f.byEmail[email] = p.ID
	f.bySlug[slug] = p.ID
	return p, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (repository.Provider, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return repository.Provider{}, apperr.NotFound("Provider not found")
	}
	return f.providers[id], nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return repository.Provider{}, apperr.NotFound("Provider not found")
	}
	return p, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (repository.Provider, error) {
	id, ok := f.bySlug[slug]
	if !ok {
		return repository.Provider{}, apperr.NotFound("Provider not found")
	}
	return f.providers[id], nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

type testConfig struct{}

func (testConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (testConfig) GetAccessTokenTTL() time.Duration { return time.Hour }

func newTestService() (*Service, *fakeRepo, *recordingBus) {
	repo := newFakeRepo()
	bus := &recordingBus{}
	svc := New(repo, testConfig{}, bus, logger.New("development"))
	return svc, repo, bus
}

func registerInput() RegisterInput {
	return RegisterInput{
		FullName:      "Maria Lopez",
		Email:         "Maria@Example.com",
		Phone:         "+12125550175",
		Password:      "supersecret1",
		CompanyName:   "Luxury Looks",
		LicenseNumber: "LIC-001",
	}
}

func TestRegister(t *testing.T) {
	svc, _, bus := newTestService()

	provider, token, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if provider.Email != "maria@example.com" {
		t.Fatalf("email not normalized: %q", provider.Email)
	}
	if provider.Slug != "luxury-looks" {
		t.Fatalf("slug = %q, want luxury-looks", provider.Slug)
	}
	if err := password.Compare(provider.PasswordHash, "supersecret1"); err != nil {
		t.Fatal("stored hash does not match password")
	}
	if token == "" {
		t.Fatal("expected access token")
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(bus.published))
	}
	evt, ok := bus.published[0].(domainevents.ProviderRegistered)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if evt.ProviderID != provider.ID {
		t.Fatal("event carries wrong provider id")
	}
}

func TestRegisterEmptyCompanyName(t *testing.T) {
	svc, _, _ := newTestService()

	in := registerInput()
	in.CompanyName = "!!!"
	_, _, err := svc.Register(context.Background(), in)
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	in := registerInput()
	in.CompanyName = "Other Salon"
	_, _, err := svc.Register(context.Background(), in)
	if apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()

	registered, _, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	provider, token, err := svc.Login(context.Background(), "maria@example.com", "supersecret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if provider.ID != registered.ID {
		t.Fatal("login returned wrong provider")
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != registered.ID.String() {
		t.Fatalf("token sub = %v, want %s", claims["sub"], registered.ID)
	}
	if claims["type"] != "access" {
		t.Fatalf("token type = %v", claims["type"])
	}
}

func TestLoginBadPassword(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "maria@example.com", "wrong")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err.(*apperr.Error).Message != "Invalid credentials" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestGetByIDOrSlug(t *testing.T) {
	svc, _, _ := newTestService()

	registered, _, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	byID, err := svc.GetByIDOrSlug(context.Background(), registered.ID.String())
	if err != nil || byID.ID != registered.ID {
		t.Fatalf("lookup by id failed: %v", err)
	}

	bySlug, err := svc.GetByIDOrSlug(context.Background(), "luxury-looks")
	if err != nil || bySlug.ID != registered.ID {
		t.Fatalf("lookup by slug failed: %v", err)
	}

	if _, err := svc.GetByIDOrSlug(context.Background(), "missing-salon"); apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
