package app

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/academiq/academiq/internal/config"
	"github.com/academiq/academiq/internal/domain/model"
	testhelpers "github.com/academiq/academiq/internal/test"
	"github.com/academiq/academiq/internal/usecase"
)

func newTestFacade() (*SiteFacade, *testhelpers.OrderRepositoryStub, *testhelpers.NotifierRecorder) {
	contacts := &testhelpers.ContactRepositoryStub{}
	orders := &testhelpers.OrderRepositoryStub{}
	services := &testhelpers.ServiceRepositoryStub{}
	testimonials := &testhelpers.TestimonialRepositoryStub{}
	notifier := &testhelpers.NotifierRecorder{}

	facade := NewSiteFacade(
		usecase.NewContactUseCase(contacts, notifier),
		usecase.NewOrderUseCase(orders, &testhelpers.AttachmentStoreStub{}, notifier),
		usecase.NewCatalogUseCase(services, testimonials),
	)
	return facade, orders, notifier
}

func TestFacadeSubmitOrder(t *testing.T) {
	facade, orders, notifier := newTestFacade()

	order, err := facade.SubmitOrder(context.Background(), usecase.OrderSubmission{
		FullName:    "Omar Haddad",
		Email:       "omar@example.com",
		Phone:       "+971501234567",
		ServiceType: "thesis",
		Message:     "Details",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if len(orders.Orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(orders.Orders))
	}
	if len(notifier.Orders) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.Orders))
	}
}

func TestFacadeCatalog(t *testing.T) {
	facade, _, _ := newTestFacade()
	ctx := context.Background()

	created, err := facade.CreateService(ctx, model.Service{
		Title:            "Statistical Analysis",
		ShortDescription: "short",
		Description:      "long",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Slug != "statistical-analysis" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	active, err := facade.ActiveServices(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected one active service, got %d", len(active))
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestLifecycleStartStop(t *testing.T) {
	lc := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := &http.Server{Addr: freePort(t), Handler: mux}

	registerLifecycle(lifecycleParams{
		Lifecycle:  lc,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})
	if len(lc.Hooks) != 1 {
		t.Fatalf("expected one lifecycle hook, got %d", len(lc.Hooks))
	}

	ctx := context.Background()
	if err := lc.Hooks[0].OnStart(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get("http://" + server.Addr + "/ping")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if err := lc.Hooks[0].OnStop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, err := http.Get("http://" + server.Addr + "/ping"); err == nil {
		t.Fatal("expected server to be down after stop")
	}
}

func TestLifecycleListenFailureShutsDown(t *testing.T) {
	busy, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	defer busy.Close()

	lc := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	registerLifecycle(lifecycleParams{
		Lifecycle:  lc,
		Shutdowner: shutdowner,
		Logger:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Server:     &http.Server{Addr: busy.Addr().String()},
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	if err := lc.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("expected shutdown request after listen failure")
	}
}
