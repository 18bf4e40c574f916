package model

import (
	"reflect"
	"testing"
)

func TestProduct_Helpers(t *testing.T) {
	p := Product{Tags: "cat, mom ,, tee", Images: []ProductImage{{Src: "a.png"}, {Src: "b.png"}}}
	if p.ImageURL() != "a.png" {
		t.Errorf("ImageURL() = %q", p.ImageURL())
	}
	if !reflect.DeepEqual(p.TagList(), []string{"cat", "mom", "tee"}) {
		t.Errorf("TagList() = %v", p.TagList())
	}
	if (Product{}).ImageURL() != "" {
		t.Error("product without images should have no image")
	}
}

func TestSEOScoreBand(t *testing.T) {
	tests := []struct {
		score    *float64
		expected ScoreBand
	}{
		{nil, BandNone},
		{floatPtr(85), BandHigh},
		{floatPtr(80), BandHigh},
		{floatPtr(65), BandMid},
		{floatPtr(59), BandLow},
	}
	for _, tt := range tests {
		if got := SEOScoreBand(tt.score); got != tt.expected {
			t.Errorf("SEOScoreBand(%v) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestSEOResult_Pushable(t *testing.T) {
	if (SEOResult{SEOTitle: "t", Error: "boom"}).Pushable() {
		t.Error("errored preview must not be pushable")
	}
	if (SEOResult{}).Pushable() {
		t.Error("empty preview must not be pushable")
	}
	if !(SEOResult{SEOTitle: "t"}).Pushable() {
		t.Error("preview with title should be pushable")
	}
}

func TestBulkSEOResults_MergePreviews(t *testing.T) {
	previews := map[int64]SEOResult{
		1: {ProductID: 1, SEOTitle: "old"},
		3: {ProductID: 3, SEOTitle: "keep"},
	}
	results := BulkSEOResults{Results: []BulkSEOItem{
		{ProductID: 1, Title: "Tee", Pushed: true, SEO: SEOResult{SEOTitle: "new"}},
		{ProductID: 2, Title: "Mug", SEO: SEOResult{SEOTitle: "mug seo"}},
	}}

	if n := results.MergePreviews(previews); n != 2 {
		t.Errorf("MergePreviews() = %d, expected 2", n)
	}
	if previews[1].SEOTitle != "new" || !previews[1].Pushed || previews[1].Title != "Tee" {
		t.Errorf("preview 1 = %+v", previews[1])
	}
	if previews[2].ProductID != 2 {
		t.Errorf("preview 2 = %+v", previews[2])
	}
	if previews[3].SEOTitle != "keep" {
		t.Error("unrelated previews must be kept")
	}
}

func TestBulkSEOResults_JobError(t *testing.T) {
	results := BulkSEOResults{Results: []BulkSEOItem{{Error: "shopify down"}}}
	previews := map[int64]SEOResult{}
	if n := results.MergePreviews(previews); n != 0 || len(previews) != 0 {
		t.Errorf("job-level error must not become a preview, got %v", previews)
	}
	if results.JobError() != "shopify down" {
		t.Errorf("JobError() = %q", results.JobError())
	}
}

func TestBulkSEOItem_PreviewPushError(t *testing.T) {
	item := BulkSEOItem{ProductID: 4, PushError: "403", SEO: SEOResult{SEOTitle: "t"}}
	if got := item.Preview().Error; got != "push failed: 403" {
		t.Errorf("Preview().Error = %q", got)
	}
}
