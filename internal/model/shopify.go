package model

import "strings"

// ProductImage is a Shopify product image
type ProductImage struct {
	Src string `json:"src"`
}

// Product is a Shopify product as listed by the backend
type Product struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Handle   string         `json:"handle"`
	BodyHTML string         `json:"body_html"`
	Tags     string         `json:"tags"`
	Images   []ProductImage `json:"images"`
}

// ImageURL returns the first product image, or ""
func (p Product) ImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

// TagList splits the comma-separated Shopify tags
func (p Product) TagList() []string {
	var out []string
	for _, tag := range strings.Split(p.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// SEOResult is generated SEO copy for one product
type SEOResult struct {
	ProductID          int64    `json:"product_id"`
	Title              string   `json:"title"`
	SEOTitle           string   `json:"seo_title"`
	MetaDescription    string   `json:"meta_description"`
	ProductDescription string   `json:"product_description"`
	Tags               []string `json:"tags"`
	SEOScore           *float64 `json:"seo_score"`
	SEONotes           string   `json:"seo_notes"`
	ModelUsed          string   `json:"model_used"`
	Error              string   `json:"error,omitempty"`
	Pushed             bool     `json:"pushed,omitempty"`
}

// Pushable reports whether the preview can be pushed to the store
func (r SEOResult) Pushable() bool {
	return r.Error == "" && r.SEOTitle != ""
}

// SEOScoreBand classifies an SEO score out of 100
func SEOScoreBand(score *float64) ScoreBand {
	switch {
	case score == nil:
		return BandNone
	case *score >= 80:
		return BandHigh
	case *score >= 60:
		return BandMid
	default:
		return BandLow
	}
}

// PushSEORequest pushes reviewed SEO copy to the store
type PushSEORequest struct {
	ProductID          int64    `json:"product_id"`
	SEOTitle           string   `json:"seo_title"`
	MetaDescription    string   `json:"meta_description"`
	Tags               []string `json:"tags,omitempty"`
	ProductDescription string   `json:"product_description,omitempty"`
}

// NewPushSEORequest builds the push body from a preview
func NewPushSEORequest(r SEOResult) PushSEORequest {
	return PushSEORequest{
		ProductID:          r.ProductID,
		SEOTitle:           r.SEOTitle,
		MetaDescription:    r.MetaDescription,
		Tags:               r.Tags,
		ProductDescription: r.ProductDescription,
	}
}

// BulkSEORequest starts SEO generation for many products
type BulkSEORequest struct {
	ProductIDs    []int64 `json:"product_ids,omitempty"`
	UseSmartModel bool    `json:"use_smart_model"`
	AutoPush      bool    `json:"auto_push"`
}

// BulkSEOJob identifies a started bulk job
type BulkSEOJob struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// BulkSEOItem is one finished product of a bulk job
type BulkSEOItem struct {
	ProductID int64     `json:"product_id"`
	Title     string    `json:"title"`
	Pushed    bool      `json:"pushed"`
	PushError string    `json:"push_error,omitempty"`
	SEO       SEOResult `json:"seo"`
	Error     string    `json:"error,omitempty"`
}

// Preview returns the item as a per-product preview
func (i BulkSEOItem) Preview() SEOResult {
	r := i.SEO
	r.ProductID = i.ProductID
	if r.Title == "" {
		r.Title = i.Title
	}
	r.Pushed = r.Pushed || i.Pushed
	if r.Error == "" && i.PushError != "" {
		r.Error = "push failed: " + i.PushError
	}
	return r
}

// BulkSEOResults is the progress of a bulk job
type BulkSEOResults struct {
	JobID   string        `json:"job_id,omitempty"`
	Results []BulkSEOItem `json:"results"`
}

// MergePreviews writes bulk results into previews keyed by product id and
// returns how many products the job has finished.
func (b BulkSEOResults) MergePreviews(previews map[int64]SEOResult) int {
	n := 0
	for _, item := range b.Results {
		if item.ProductID == 0 {
			continue
		}
		previews[item.ProductID] = item.Preview()
		n++
	}
	return n
}

// JobError returns the failure of the whole job, reported as a result
// without a product.
func (b BulkSEOResults) JobError() string {
	for _, item := range b.Results {
		if item.ProductID == 0 && item.Error != "" {
			return item.Error
		}
	}
	return ""
}

// PushSEOAck acknowledges a push to the store
type PushSEOAck struct {
	Status    string `json:"status"`
	ProductID int64  `json:"product_id"`
	Handle    string `json:"handle"`
	Title     string `json:"title"`
}
