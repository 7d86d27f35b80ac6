package service

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/gateway/razorpay"
	"github.com/Heman1223/bhuvik-enterprises/internal/repository"
	"github.com/Heman1223/bhuvik-enterprises/internal/upload"

	"github.com/stretchr/testify/mock"
)

type mockRegistrationsRepo struct {
	mock.Mock
}

func (m *mockRegistrationsRepo) CreatePaid(ctx context.Context, reg *domain.Registration, serialPrefix string) error {
	args := m.Called(ctx, reg, serialPrefix)

	return args.Error(0)
}

func (m *mockRegistrationsRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Registration, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Registration), args.Error(1)
}

func (m *mockRegistrationsRepo) GetAllPaid(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Registration), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(ctx context.Context, amount int64, currency string, receipt string) (*razorpay.Order, error) {
	args := m.Called(ctx, amount, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*razorpay.Order), args.Error(1)
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)

	return args.Bool(0)
}

func (m *mockGateway) KeyID() string {
	args := m.Called()

	return args.String(0)
}

type mockResumeStore struct {
	mock.Mock
}

func (m *mockResumeStore) Accept(fh *multipart.FileHeader) (*upload.StoredResume, error) {
	args := m.Called(fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*upload.StoredResume), args.Error(1)
}

func (m *mockResumeStore) Discard(name string) {
	m.Called(name)
}

func (m *mockResumeStore) Resolve(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

func (m *mockResumeStore) ExtractText(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

// fakeSerialRepo allocates serials the way the real repository does, with a
// per-year counter guarded by a lock, so concurrent commits can be checked for
// distinct contiguous numbers without a database.
type fakeSerialRepo struct {
	mu       sync.Mutex
	counters map[int]int64
	byOrder  map[string]*domain.Registration
}

var _ repository.Registrations = (*fakeSerialRepo)(nil)

func newFakeSerialRepo() *fakeSerialRepo {
	return &fakeSerialRepo{
		counters: make(map[int]int64),
		byOrder:  make(map[string]*domain.Registration),
	}
}

func (r *fakeSerialRepo) CreatePaid(_ context.Context, reg *domain.Registration, serialPrefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOrder[reg.PaymentOrderID]; ok {
		return domain.ErrDuplicateEntry
	}

	year := reg.CreatedAt.Year()
	r.counters[year]++
	reg.SerialNumber = repository.FormatSerial(serialPrefix, year, r.counters[year])
	r.byOrder[reg.PaymentOrderID] = reg

	return nil
}

func (r *fakeSerialRepo) GetByOrderID(_ context.Context, orderID string) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byOrder[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return reg, nil
}

func (r *fakeSerialRepo) GetAllPaid(_ context.Context) ([]domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Registration, 0, len(r.byOrder))
	for _, reg := range r.byOrder {
		out = append(out, *reg)
	}

	return out, nil
}

type staticGateway struct {
	verify bool
	keyID  string
}

func (g *staticGateway) CreateOrder(_ context.Context, amount int64, currency string, _ string) (*razorpay.Order, error) {
	return &razorpay.Order{ID: "order_static", Amount: amount, Currency: currency, Status: "created"}, nil
}

func (g *staticGateway) VerifySignature(_, _, _ string) bool { return g.verify }

func (g *staticGateway) KeyID() string { return g.keyID }

type staticResumeStore struct {
	mu       sync.Mutex
	accepted int
	discards []string
}

func (s *staticResumeStore) Accept(_ *multipart.FileHeader) (*upload.StoredResume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accepted++

	return &upload.StoredResume{Name: "stored.pdf", OriginalName: "resume.pdf"}, nil
}

func (s *staticResumeStore) Discard(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discards = append(s.discards, name)
}

func (s *staticResumeStore) Resolve(name string) (string, error) { return name, nil }

func (s *staticResumeStore) ExtractText(string) (string, error) { return "", nil }
