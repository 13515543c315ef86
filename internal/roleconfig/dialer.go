package roleconfig

var dialerConfig = RoleConfig{
	Role: RoleDialer,
	Fields: []FieldSpec{
		{Name: "dials", Label: "Dials", Kind: KindCount},
		{Name: "connects", Label: "Connects", Kind: KindCount},
		{Name: "conversations", Label: "Conversations", Kind: KindCount},
		{Name: "qualifiedConversations", Label: "Qualified conversations", Kind: KindCount},
		{Name: "meetingsSet", Label: "Meetings set", Kind: KindCount},
		{Name: "meetingsShowed", Label: "Meetings showed", Kind: KindCount},
		{Name: "noShows", Label: "No-shows", Kind: KindCount},
		{Name: "closedDeals", Label: "Closed deals", Kind: KindCount},
		{Name: "revenueGenerated", Label: "Revenue generated", Kind: KindCurrency},
		{Name: "cashCollected", Label: "Cash collected", Kind: KindCurrency},
	},
	Rules: []Rule{
		{
			Field:   "connects",
			Message: "Connects cannot exceed dials",
			Failed:  func(m Metrics) bool { return m["connects"] > m["dials"] },
		},
		{
			Field:   "conversations",
			Message: "Conversations cannot exceed connects",
			Failed:  func(m Metrics) bool { return m["conversations"] > m["connects"] },
		},
		{
			Field:   "qualifiedConversations",
			Message: "Qualified conversations cannot exceed conversations",
			Failed:  func(m Metrics) bool { return m["qualifiedConversations"] > m["conversations"] },
		},
		{
			Field:   "meetingsShowed",
			Message: "Meetings showed cannot exceed meetings set",
			Failed:  func(m Metrics) bool { return m["meetingsShowed"] > m["meetingsSet"] },
		},
		{
			Field:   "noShows",
			Message: "No-shows cannot exceed meetings set",
			Failed:  func(m Metrics) bool { return m["noShows"] > m["meetingsSet"] },
		},
		{
			Field:   "meetingsSet",
			Message: "Meetings set must equal meetings showed plus no-shows",
			Failed:  func(m Metrics) bool { return m["meetingsSet"] != m["meetingsShowed"]+m["noShows"] },
		},
		{
			Field:   "closedDeals",
			Message: "Closed deals cannot exceed meetings showed",
			Failed:  func(m Metrics) bool { return m["closedDeals"] > m["meetingsShowed"] },
		},
		{
			Field:   "revenueGenerated",
			Message: "Revenue is required when deals were closed",
			Failed:  func(m Metrics) bool { return m["closedDeals"] > 0 && m["revenueGenerated"] <= 0 },
		},
		{
			Field:   "cashCollected",
			Message: "Cash collected requires at least one closed deal",
			Failed:  func(m Metrics) bool { return m["closedDeals"] <= 0 && m["cashCollected"] != 0 },
		},
	},
	Rates: []RateSpec{
		{Name: "connectRate", Numerator: "connects", Denominator: "dials"},
		{Name: "conversationRate", Numerator: "conversations", Denominator: "connects"},
		{Name: "showRate", Numerator: "meetingsShowed", Denominator: "meetingsSet"},
		{Name: "closeRate", Numerator: "closedDeals", Denominator: "meetingsShowed"},
	},
}
