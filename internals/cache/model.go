package cache

// ChartKey identifies one rendered chart of one dataset snapshot.
type ChartKey struct {
	DatasetID string
	Kind      string // "trend" or "distribution"
	Type      string
	Player    string
	Format    string
}
