package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	searchStartedTotal   atomic.Uint64
	searchCompletedTotal atomic.Uint64
	searchFailedTotal    atomic.Uint64
	matchScoresTotal     atomic.Uint64
	suggestionsTotal     atomic.Uint64

	searchDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncSearchStarted increments the job search started counter.
func IncSearchStarted() {
	searchStartedTotal.Add(1)
}

// IncSearchCompleted increments the job search completed counter.
func IncSearchCompleted() {
	searchCompletedTotal.Add(1)
}

// IncSearchFailed increments the job search failed counter.
func IncSearchFailed() {
	searchFailedTotal.Add(1)
}

// AddMatchScores records how many postings were scored against a profile.
func AddMatchScores(n int) {
	if n > 0 {
		matchScoresTotal.Add(uint64(n))
	}
}

// IncSuggestions increments the role suggestion counter.
func IncSuggestions() {
	suggestionsTotal.Add(1)
}

// ObserveSearchDurationMs records a job search duration in milliseconds.
func ObserveSearchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	searchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "search_started_total", "Total job searches started", searchStartedTotal.Load())
	writeCounter(&buf, "search_completed_total", "Total job searches completed", searchCompletedTotal.Load())
	writeCounter(&buf, "search_failed_total", "Total job searches failed", searchFailedTotal.Load())
	writeCounter(&buf, "match_scores_total", "Total postings scored against a profile", matchScoresTotal.Load())
	writeCounter(&buf, "suggestions_total", "Total role suggestion requests served", suggestionsTotal.Load())
	writeHistogram(&buf, "search_duration_ms", "Job search duration in milliseconds", searchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
