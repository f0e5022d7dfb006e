package cache

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/kridavyuha/forecast-dashboard/pkg/kvstore"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestChartCacheRendersOnce(t *testing.T) {
	c := New(kvstore.NewMemory(), time.Minute, quietLogger())
	key := ChartKey{DatasetID: "ds1", Kind: "trend", Type: "batsman", Player: "Kohli", Format: "png"}

	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("image-bytes"), nil
	}

	for i := 0; i < 3; i++ {
		img, err := c.Get(key, render)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(img) != "image-bytes" {
			t.Errorf("Get = %q", img)
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}

	other := key
	other.DatasetID = "ds2"
	c.Get(other, render)
	if calls != 2 {
		t.Errorf("new snapshot should miss the cache, render called %d times", calls)
	}
}

func TestChartCacheRenderError(t *testing.T) {
	kv := kvstore.NewMemory()
	c := New(kv, time.Minute, quietLogger())
	key := ChartKey{DatasetID: "ds1", Kind: "distribution", Type: "bowler", Format: "png"}

	boom := errors.New("boom")
	if _, err := c.Get(key, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("expected render error, got %v", err)
	}
	if _, err := kv.Get(key.String()); !errors.Is(err, kvstore.ErrNotFound) {
		t.Error("failed render must not be cached")
	}
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, error)                   { return "", errors.New("down") }
func (brokenStore) Set(string, interface{}, time.Duration) error { return errors.New("down") }
func (brokenStore) Delete(string) error                          { return nil }
func (brokenStore) Ping() error                                  { return errors.New("down") }

func TestChartCacheStoreDown(t *testing.T) {
	c := New(brokenStore{}, time.Minute, quietLogger())
	img, err := c.Get(ChartKey{Kind: "trend"}, func() ([]byte, error) { return []byte("ok"), nil })
	if err != nil {
		t.Fatalf("store failures should not fail Get: %v", err)
	}
	if string(img) != "ok" {
		t.Errorf("Get = %q", img)
	}
}

func TestChartKeyString(t *testing.T) {
	key := ChartKey{DatasetID: "abc", Kind: "trend", Type: "bowler", Player: "Bumrah", Format: "svg"}
	if got, want := key.String(), "chart_abc_trend_bowler_Bumrah_svg"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
