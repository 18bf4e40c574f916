package api

import (
	"encoding/json"
	"io"
	"strings"
)

// Fixed messages naming each failed operation
const (
	MsgFetchTrends     = "Failed to fetch trends"
	MsgFetchTrend      = "Failed to fetch trend"
	MsgOpenScrape      = "Failed to connect to scraper"
	MsgFetchProducts   = "Failed to fetch Shopify products"
	MsgGenerateSEO     = "Failed to generate SEO"
	MsgPushSEO         = "Failed to push SEO to Shopify"
	MsgStartBulkSEO    = "Failed to start bulk SEO"
	MsgFetchBulkSEO    = "Failed to fetch bulk SEO results"
	MsgFetchOrders     = "Failed to fetch orders"
	MsgFetchOrderStats = "Failed to fetch order stats"
	MsgSyncOrders      = "Failed to trigger order sync"
	MsgExploreNiche    = "Failed to explore niche"
	MsgGapAnalysis     = "Failed to fetch gap analysis"
	MsgFetchCalendar   = "Failed to fetch calendar"
	MsgAnalyzeNiche    = "Failed to analyze niche"
	MsgDesignBrief     = "Failed to generate design brief"
	MsgListingCopy     = "Failed to generate listing copy"
	MsgMockup          = "Failed to generate mockup"
	MsgVariations      = "Failed to generate variations"
	MsgFetchVault      = "Failed to fetch vault designs"
	MsgFetchVaultStats = "Failed to fetch vault stats"
	MsgSaveDesign      = "Failed to save design"
	MsgUpdateStatus    = "Failed to update status"
	MsgUpdateListing   = "Failed to update listing"
	MsgDeleteDesign    = "Failed to delete"
)

// maxDetailBytes bounds how much of an error body is kept
const maxDetailBytes = 4096

// Error is a failed backend operation. Error() returns only the fixed
// message so it can be shown to the user as is.
type Error struct {
	Message    string
	StatusCode int
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// readDetail extracts FastAPI's {"detail": ...} or the raw body text
func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxDetailBytes))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if len(payload.Detail) > 0 {
			var s string
			if json.Unmarshal(payload.Detail, &s) == nil {
				return s
			}
			return string(payload.Detail)
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
