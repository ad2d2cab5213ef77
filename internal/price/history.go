package price

// Capacity bounds the price history; the chart shows at most this many points.
const Capacity = 50

// Sample is one poll reading with its display label.
type Sample struct {
	Price float64
	Label string
}

// History is a capacity-bounded FIFO of samples. Oldest entries are evicted
// as new ones arrive. Not safe for concurrent use; the Poller serializes
// access.
type History struct {
	samples []Sample
	cap     int
}

func NewHistory() *History {
	return &History{cap: Capacity}
}

// Push appends a sample, evicting from the front once capacity is exceeded.
func (h *History) Push(s Sample) {
	h.samples = append(h.samples, s)
	if len(h.samples) > h.cap {
		h.samples = h.samples[len(h.samples)-h.cap:]
	}
}

func (h *History) Len() int { return len(h.samples) }

// Snapshot returns an independent copy of the current contents. Prices and
// labels are always the same length.
func (h *History) Snapshot() Snapshot {
	prices := make([]float64, len(h.samples))
	labels := make([]string, len(h.samples))
	for i, s := range h.samples {
		prices[i] = s.Price
		labels[i] = s.Label
	}
	return Snapshot{Prices: prices, Labels: labels}
}

// Snapshot is an immutable view of the history at one instant.
type Snapshot struct {
	Prices []float64
	Labels []string
}
