package model

import (
	"fmt"
	"strings"
)

// DesignStatus is the lifecycle stage of a saved design
type DesignStatus string

const (
	DesignDraft    DesignStatus = "draft"
	DesignReady    DesignStatus = "ready"
	DesignExported DesignStatus = "exported"
)

// DesignStatuses lists the statuses in cycle order
var DesignStatuses = []DesignStatus{DesignDraft, DesignReady, DesignExported}

// DesignStyles lists the style preferences a design can be generated with
var DesignStyles = []string{"Text-Only", "Graphic-Heavy", "Balanced"}

// Next returns the following status in the draft, ready, exported cycle.
// Unknown statuses are treated as draft.
func (s DesignStatus) Next() DesignStatus {
	switch s {
	case DesignReady:
		return DesignExported
	case DesignExported:
		return DesignDraft
	default:
		return DesignReady
	}
}

// ActionLabel returns the label of the button advancing from s
func (s DesignStatus) ActionLabel() string {
	switch s.Next() {
	case DesignReady:
		return "✓ Mark Ready"
	case DesignExported:
		return "🚀 Mark Exported"
	default:
		return "↩ Reset"
	}
}

// Valid reports whether s is one of the known statuses
func (s DesignStatus) Valid() bool {
	return s == DesignDraft || s == DesignReady || s == DesignExported
}

// SavedDesign is a design persisted in the vault
type SavedDesign struct {
	ID                 int          `json:"id"`
	Niche              string       `json:"niche"`
	Title              string       `json:"title"`
	Concept            string       `json:"concept"`
	DesignText         string       `json:"design_text"`
	ProductType        string       `json:"product_type"`
	StylePreference    string       `json:"style_preference"`
	DemandScore        *float64     `json:"demand_score"`
	Elements           []string     `json:"elements"`
	MockupURL          string       `json:"mockup_url"`
	ListingTitle       string       `json:"listing_title"`
	ListingDescription string       `json:"listing_description"`
	ListingTags        []string     `json:"listing_tags"`
	Status             DesignStatus `json:"status"`
	CreatedAt          Timestamp    `json:"created_at"`
	UpdatedAt          Timestamp    `json:"updated_at"`
}

// MaxListingTags is how many listing tags the vault card shows
const MaxListingTags = 8

// HasListing reports whether listing copy was attached to the design
func (d SavedDesign) HasListing() bool {
	return d.ListingTitle != "" || d.ListingDescription != "" || len(d.ListingTags) > 0
}

// ListingCopy formats the listing for the clipboard. It returns false when
// no listing copy exists yet.
func (d SavedDesign) ListingCopy() (string, bool) {
	if !d.HasListing() {
		return "", false
	}
	return fmt.Sprintf("TITLE: %s\n\nDESCRIPTION:\n%s\n\nTAGS: %s",
		d.ListingTitle, d.ListingDescription, strings.Join(d.ListingTags, ", ")), true
}

// VisibleTags returns at most MaxListingTags listing tags
func (d SavedDesign) VisibleTags() []string {
	if len(d.ListingTags) > MaxListingTags {
		return d.ListingTags[:MaxListingTags]
	}
	return d.ListingTags
}

// ProductIcon returns a marker for the product type
func ProductIcon(productType string) string {
	switch strings.ToLower(productType) {
	case "t-shirt", "tshirt", "tee":
		return "👕"
	case "hoodie", "sweatshirt":
		return "🧥"
	case "mug":
		return "☕"
	case "poster", "print", "wall art":
		return "🖼️"
	case "sticker":
		return "🏷️"
	case "tote", "tote bag", "bag":
		return "👜"
	case "phone case":
		return "📱"
	case "hat", "cap":
		return "🧢"
	default:
		return "🎨"
	}
}

// DesignKey identifies a design within a niche for save idempotence
func DesignKey(niche, title string) string {
	return strings.ToLower(strings.TrimSpace(niche)) + "\x00" + strings.ToLower(strings.TrimSpace(title))
}

// SaveDesignRequest is the body of a vault save
type SaveDesignRequest struct {
	Niche           string   `json:"niche"`
	Title           string   `json:"title"`
	Concept         string   `json:"concept,omitempty"`
	DesignText      string   `json:"design_text,omitempty"`
	ProductType     string   `json:"product_type,omitempty"`
	StylePreference string   `json:"style_preference,omitempty"`
	DemandScore     *float64 `json:"demand_score,omitempty"`
	Elements        []string `json:"elements,omitempty"`
	MockupURL       string   `json:"mockup_url,omitempty"`
}

// NewSaveDesignRequest builds a vault save from a generated idea
func NewSaveDesignRequest(niche, style string, idea DesignIdea, mockupURL string) SaveDesignRequest {
	req := SaveDesignRequest{
		Niche:           niche,
		Title:           idea.Title,
		Concept:         idea.Concept,
		DesignText:      idea.DesignText,
		ProductType:     idea.Product,
		StylePreference: style,
		Elements:        idea.Elements,
		MockupURL:       mockupURL,
	}
	if idea.DemandScore != 0 {
		score := idea.DemandScore.Float()
		req.DemandScore = &score
	}
	return req
}

// ListingUpdate attaches listing copy to a saved design
type ListingUpdate struct {
	Title       string   `json:"listing_title"`
	Description string   `json:"listing_description"`
	Tags        []string `json:"listing_tags"`
}

// IsEmpty reports whether the update carries nothing
func (u ListingUpdate) IsEmpty() bool {
	return u.Title == "" && u.Description == "" && len(u.Tags) == 0
}

// NicheCount is a niche with the number of designs saved for it
type NicheCount struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

// VaultStats summarizes the vault
type VaultStats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	TopNiches []NicheCount   `json:"top_niches"`
}

// TopNichesShown is how many top niches the stats bar lists
const TopNichesShown = 3

// VisibleNiches returns the leading niches for the stats bar
func (s VaultStats) VisibleNiches() []NicheCount {
	if len(s.TopNiches) > TopNichesShown {
		return s.TopNiches[:TopNichesShown]
	}
	return s.TopNiches
}

// Removed returns the stats after deleting one design with the given status
func (s VaultStats) Removed(status DesignStatus) VaultStats {
	out := VaultStats{Total: s.Total, TopNiches: s.TopNiches}
	if out.Total > 0 {
		out.Total--
	}
	out.ByStatus = make(map[string]int, len(s.ByStatus))
	for k, v := range s.ByStatus {
		out.ByStatus[k] = v
	}
	if out.ByStatus[string(status)] > 0 {
		out.ByStatus[string(status)]--
	}
	return out
}

// Moved returns the stats after a design changed status
func (s VaultStats) Moved(from, to DesignStatus) VaultStats {
	out := VaultStats{Total: s.Total, TopNiches: s.TopNiches, ByStatus: make(map[string]int, len(s.ByStatus))}
	for k, v := range s.ByStatus {
		out.ByStatus[k] = v
	}
	if out.ByStatus[string(from)] > 0 {
		out.ByStatus[string(from)]--
	}
	out.ByStatus[string(to)]++
	return out
}

// VaultFilter narrows the vault listing; empty fields mean all
type VaultFilter struct {
	Niche  string
	Status DesignStatus
	Style  string
}
