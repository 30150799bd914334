package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/swiftvtu/vtu_api/internal/flow"
)

type fakeKV struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func TestStore_RoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv, 30*time.Minute)
	ctx := context.Background()

	st := flow.NewState()
	st.Selection.Phone = "08021234567"
	st.Balance = 1500

	if err := store.Save(ctx, "sess-1", st); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ttl := kv.ttls["flow:session:sess-1"]; ttl != 30*time.Minute {
		t.Errorf("ttl = %v", ttl)
	}

	loaded, err := store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Selection.Phone != "08021234567" || loaded.Balance != 1500 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Step != flow.StepSelectPlan {
		t.Errorf("step = %d", loaded.Step)
	}
}

func TestStore_MissingSession(t *testing.T) {
	store := NewStore(newFakeKV(), time.Minute)
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv, time.Minute)
	ctx := context.Background()

	if err := store.Save(ctx, "sess-1", flow.NewState()); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "sess-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, "sess-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v after delete", err)
	}
}
