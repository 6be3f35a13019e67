// Package timeseries builds the fixed-width month buckets backing dashboard
// charts. A bucket window always ends at the current calendar month;
// contributions outside the window are dropped on purpose so a series only
// represents its trailing N months.
package timeseries

import (
	"fmt"
	"time"
)

// Bucket is one calendar-month slot in a chart series. Key disambiguates
// same-named months across years.
type Bucket struct {
	Key   string
	Label string
	Total float64
}

// Now is swappable for deterministic bucket windows in tests.
var Now = time.Now

// MonthBuckets returns count buckets for the count months ending at the
// current month inclusive, oldest first.
func MonthBuckets(count int) []Bucket {
	if count <= 0 {
		return []Bucket{}
	}
	now := Now()
	buckets := make([]Bucket, 0, count)
	for i := 0; i < count; i++ {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, i-(count-1), 0)
		buckets = append(buckets, Bucket{
			Key:   bucketKey(month),
			Label: month.Month().String()[:3],
		})
	}
	return buckets
}

// AddAmount folds amount into the bucket matching at's year-month. Nil or
// zero timestamps and timestamps outside the window are silently ignored.
func AddAmount(buckets []Bucket, at *time.Time, amount float64) {
	if at == nil || at.IsZero() {
		return
	}
	key := bucketKey(*at)
	for i := range buckets {
		if buckets[i].Key == key {
			buckets[i].Total += amount
			return
		}
	}
}

// AddCount folds a single occurrence into the matching bucket.
func AddCount(buckets []Bucket, at *time.Time) {
	AddAmount(buckets, at, 1)
}

// Labels projects the bucket labels in window order.
func Labels(buckets []Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}

// Totals projects the bucket totals in window order.
func Totals(buckets []Bucket) []float64 {
	totals := make([]float64, len(buckets))
	for i, b := range buckets {
		totals[i] = b.Total
	}
	return totals
}

// Zero-based month index keeps keys aligned with what the storefront charts
// historically used.
func bucketKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month())-1)
}
