// Package mostfrequent implements the most-frequent-watermark selection
// policy shared by the text and zip codecs (spec.md §4.2.1).
package mostfrequent

import (
	"fmt"

	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/status"
)

// Select computes the set of values tied for maximum frequency in items
// (compared byte-exactly). If exactly one value wins, the result is k
// copies of it, where k is the winning frequency. If two or more values
// tie, the result is the concatenation of k copies of each tied value, and
// the returned status carries a MultipleMostFrequentWarning naming how many
// values tied. An empty input returns an empty result, successfully.
func Select(items [][]byte) ([][]byte, *status.Status) {
	st := status.New()

	result, err := selectMostFrequent(items)
	if err != nil {
		st.AddError("mostfrequent.select", err)
		return nil, st
	}

	if len(result.tied) == 0 {
		st.AddSuccess("mostfrequent.select", "no watermarks to select from")
		return nil, st
	}

	if len(result.tied) == 1 {
		st.AddSuccess("mostfrequent.select", fmt.Sprintf("selected 1 watermark, %d occurrence(s)", result.k))
		return repeat(result.tied[0], result.k), st
	}

	st.AddWarning("mostfrequent.select", &errs.MultipleMostFrequentWarning{Count: len(result.tied)})

	out := make([][]byte, 0, result.k*len(result.tied))
	for _, v := range result.tied {
		out = append(out, repeat(v, result.k)...)
	}
	return out, st
}

type selection struct {
	tied [][]byte
	k    int
}

// selectMostFrequent groups items by byte-exact equality and returns every
// value tied for the maximum group size. It is isolated behind a recover so
// an unexpected internal failure surfaces as errs.FrequencyAnalysisError
// rather than a panic escaping into caller code.
func selectMostFrequent(items [][]byte) (sel selection, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errs.FrequencyAnalysisError{Kind: fmt.Sprintf("%v", r)}
		}
	}()

	if len(items) == 0 {
		return selection{}, nil
	}

	type bucket struct {
		value []byte
		count int
	}

	var buckets []bucket
	for _, item := range items {
		matched := false
		for i := range buckets {
			if string(buckets[i].value) == string(item) {
				buckets[i].count++
				matched = true
				break
			}
		}
		if !matched {
			buckets = append(buckets, bucket{value: item, count: 1})
		}
	}

	maxCount := 0
	for _, b := range buckets {
		if b.count > maxCount {
			maxCount = b.count
		}
	}

	var tied [][]byte
	for _, b := range buckets {
		if b.count == maxCount {
			tied = append(tied, b.value)
		}
	}

	return selection{tied: tied, k: maxCount}, nil
}

func repeat(value []byte, k int) [][]byte {
	out := make([][]byte, k)
	for i := range out {
		out[i] = value
	}
	return out
}
