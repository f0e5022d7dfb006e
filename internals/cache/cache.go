package cache

import (
	"errors"
	"time"

	"github.com/kridavyuha/forecast-dashboard/pkg/kvstore"

	"github.com/sirupsen/logrus"
)

type ChartCache struct {
	KV  kvstore.KVStore
	TTL time.Duration
	Log *logrus.Logger
}

func New(kv kvstore.KVStore, ttl time.Duration, log *logrus.Logger) *ChartCache {
	return &ChartCache{
		KV:  kv,
		TTL: ttl,
		Log: log,
	}
}

func (k ChartKey) String() string {
	return "chart_" + k.DatasetID + "_" + k.Kind + "_" + k.Type + "_" + k.Player + "_" + k.Format
}

// Get returns the cached chart for key, rendering and storing it on a miss.
// A failing store only costs a re-render, so its errors are logged and not
// returned.
func (c *ChartCache) Get(key ChartKey, render func() ([]byte, error)) ([]byte, error) {
	k := key.String()

	val, err := c.KV.Get(k)
	switch {
	case err == nil:
		return []byte(val), nil
	case !errors.Is(err, kvstore.ErrNotFound):
		c.Log.WithError(err).WithField("key", k).Warn("chart cache read failed")
	}

	img, err := render()
	if err != nil {
		return nil, err
	}

	if err := c.KV.Set(k, img, c.TTL); err != nil {
		c.Log.WithError(err).WithField("key", k).Warn("chart cache write failed")
	}
	return img, nil
}
