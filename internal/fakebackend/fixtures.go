package fakebackend

import (
	"fmt"
	"time"

	"github.com/novraux/novraux-desk/internal/model"
)

// SampleScrape returns a scrape script that reports progress in steps of
// twenty and completes.
func SampleScrape(step time.Duration) []Frame {
	messages := []string{
		"Fetching Google Trends...",
		"Fetching TikTok hashtags...",
		"Fetching Pinterest pins...",
		"Scoring keywords...",
	}
	frames := make([]Frame, 0, len(messages)+1)
	for i, msg := range messages {
		frames = append(frames, Frame{
			Event: "progress",
			Data:  fmt.Sprintf(`{"status":%q,"progress":%d}`, msg, (i+1)*20),
			Delay: step,
		})
	}
	frames = append(frames, Frame{
		Event: "complete",
		Data:  `{"status":"Complete","progress":100}`,
		Delay: step,
	})
	return frames
}

// FailingScrape returns a scrape script that reports one step and fails
func FailingScrape(reason string) []Frame {
	return []Frame{
		{Event: "progress", Data: `{"status":"Fetching Google Trends...","progress":10}`},
		{Event: "error", Data: fmt.Sprintf(`{"status":%q,"progress":100}`, "Error: "+reason)},
	}
}

func score(v float64) *float64 { return &v }

func safe(v bool) *bool { return &v }

// DefaultFixtures is the demo data set
func DefaultFixtures() Fixtures {
	now := time.Now().UTC()
	ts := func(daysAgo int) model.Timestamp {
		return model.Timestamp{Time: now.AddDate(0, 0, -daysAgo)}
	}

	return Fixtures{
		Trends: []model.Trend{
			{
				ID: 1, Keyword: "retro camping", Source: "google", Score: score(8.4),
				CompetitionLevel: "low", IPSafe: safe(true), Momentum: model.MomentumRising,
				Urgency: model.UrgencyStandard, AvgInterest: score(64), ScrapeCount: 3,
				ProductSuggestions: []string{"t-shirt", "mug"}, ScoringCost: 0.0004,
				LastScoredAt: ts(1), CreatedAt: ts(12), EmojiTag: "🏕️",
			},
			{
				ID: 2, Keyword: "axolotl gamer", Source: "tiktok", Score: score(7.1),
				CompetitionLevel: "medium", IPSafe: safe(true), Momentum: model.MomentumRising,
				Urgency: model.UrgencyUrgent, AvgInterest: score(78), ScoringCost: 0.0004,
				DeepAnalysis: "Young audience, sticker friendly.", AnalysisCost: 0.012,
				CreatedAt: ts(3),
			},
			{
				ID: 3, Keyword: "pickleball grandma", Source: "pinterest", Score: score(5.2),
				CompetitionLevel: "high", IPSafe: safe(true), Momentum: model.MomentumStable,
				Urgency: model.UrgencyEvergreen, AvgInterest: score(41), CreatedAt: ts(30),
			},
			{
				ID: 4, Keyword: "mandalorian dad", Source: "redbubble", Score: score(6.0),
				CompetitionLevel: "high", IPSafe: safe(false), Momentum: model.MomentumDeclining,
				Urgency: model.UrgencyStandard, CreatedAt: ts(45),
			},
			{
				ID: 5, Keyword: "mushroom witch", Source: "etsy", Score: score(3.1),
				CompetitionLevel: "medium", IPSafe: safe(true), Momentum: model.MomentumStable,
				CreatedAt: ts(2),
			},
		},
		Products: []model.Product{
			{ID: 1001, Title: "Retro Camping Tee", Handle: "retro-camping-tee", Tags: "camping, retro, outdoors",
				Images: []model.ProductImage{{Src: "https://cdn.example/retro-camping.png"}}},
			{ID: 1002, Title: "Axolotl Gamer Mug", Handle: "axolotl-gamer-mug", Tags: "axolotl, gamer"},
			{ID: 1003, Title: "Pickleball Grandma Hoodie", Handle: "pickleball-grandma-hoodie", Tags: "pickleball"},
		},
		Orders: []model.Order{
			{ID: 1, Platform: "shopify", ExternalOrderID: "#1001", ProductTitle: "Retro Camping Tee", Quantity: 2,
				Revenue: 49.98, PrintfulCost: 25.90, Profit: 24.08, Status: "fulfilled", CreatedAt: ts(1)},
			{ID: 2, Platform: "etsy", ExternalOrderID: "E-77", ProductTitle: "Axolotl Gamer Mug", Quantity: 1,
				Revenue: 18.50, PrintfulCost: 9.25, Profit: 9.25, Status: "pending", CreatedAt: ts(2)},
			{ID: 3, Platform: "shopify", ExternalOrderID: "#1002", ProductTitle: "Retro Camping Tee", Quantity: 1,
				Revenue: 24.99, PrintfulCost: 12.95, Profit: 12.04, Status: "fulfilled", CreatedAt: ts(4)},
		},
		Calendar: []model.CalendarEvent{
			{ID: "valentines", Name: "Valentine's Day", Emoji: "💘", Date: "02-14", Category: "Holiday",
				Niches: []string{"couples", "galentines"}, LeadDays: 45, Color: "#e11d48"},
			{ID: "halloween", Name: "Halloween", Emoji: "🎃", Date: "10-31", Category: "Holiday",
				Niches: []string{"spooky", "witch", "pumpkin"}, LeadDays: 60, Color: "#f97316"},
			{ID: "christmas", Name: "Christmas", Emoji: "🎄", Date: "12-25", Category: "Holiday",
				Niches: []string{"ugly sweater", "santa"}, LeadDays: 75, Color: "#16a34a"},
			{ID: "earth-day", Name: "Earth Day", Emoji: "🌍", Date: "04-22", Category: "Awareness",
				Niches: []string{"eco", "plants"}, LeadDays: 30, Color: "#22c55e"},
			{ID: "world-cup-2030", Name: "World Cup 2030", Emoji: "⚽", Date: "2030-06-13", Category: "Sports",
				Niches: []string{"football", "fan gear"}, LeadDays: 90, Color: "#2563eb"},
		},
		Niches: map[string]model.NicheValidation{
			"retro camping": {
				Success:          true,
				Keyword:          "retro camping",
				ListingCount:     42,
				PriceStats:       model.PriceStats{Min: 14.99, Max: 34.99, Avg: 22.4, Median: 21.99},
				MarketGapReport:  "Few listings target vintage van owners.\nPastel palettes are underused.",
				OpportunityScore: 74,
				Platforms:        model.PlatformCounts{Etsy: 30, Redbubble: 12},
				TopCompetitors: []model.Competitor{
					{Title: "Camp Vibes Tee", Price: "$21.99", URL: "https://etsy.example/1", Platform: "etsy"},
					{Title: "Happy Camper", Price: "19.50", URL: "https://redbubble.example/2", Platform: "redbubble"},
				},
			},
		},
		Vault: []model.SavedDesign{
			{ID: 1, Niche: "retro camping", Title: "Happy Glamper", ProductType: "t-shirt",
				StylePreference: "Vintage", Status: model.DesignDraft, CreatedAt: ts(5), UpdatedAt: ts(5)},
			{ID: 2, Niche: "axolotl", Title: "Axolotl Squad", ProductType: "sticker",
				StylePreference: "Balanced", Status: model.DesignReady, CreatedAt: ts(3), UpdatedAt: ts(2),
				ListingTitle: "Axolotl Squad Sticker", ListingDescription: "Cute squad sticker.",
				ListingTags: []string{"axolotl", "sticker", "kawaii"}},
		},
		ScrapeFrames: SampleScrape(400 * time.Millisecond),
		BulkDelay:    700 * time.Millisecond,
	}
}
