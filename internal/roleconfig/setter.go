package roleconfig

var setterConfig = RoleConfig{
	Role: RoleSetter,
	Fields: []FieldSpec{
		{Name: "outboundCalls", Label: "Outbound calls", Kind: KindCount},
		{Name: "inboundCalls", Label: "Inbound calls", Kind: KindCount},
		{Name: "followUpCalls", Label: "Follow-up calls", Kind: KindCount},
		{Name: "callsProposed", Label: "Calls proposed", Kind: KindCount},
		{Name: "totalHighTicketSalesCallsBooked", Label: "High-ticket sales calls booked", Kind: KindCount},
		{Name: "setsScheduled", Label: "Sets scheduled", Kind: KindCount},
		{Name: "setsTaken", Label: "Sets taken", Kind: KindCount},
		{Name: "closedSets", Label: "Closed sets", Kind: KindCount},
		{Name: "revenueGenerated", Label: "Revenue generated", Kind: KindCurrency},
		{Name: "newCashCollected", Label: "New cash collected", Kind: KindCurrency},
		{Name: "recurringCashCollected", Label: "Recurring cash collected", Kind: KindCurrency},
		{Name: "downsellRevenue", Label: "Downsell revenue", Kind: KindCurrency},
	},
	Rules: []Rule{
		{
			Field:   "callsProposed",
			Message: "Calls proposed cannot exceed total calls made",
			Failed: func(m Metrics) bool {
				return m["callsProposed"] > m["outboundCalls"]+m["inboundCalls"]+m["followUpCalls"]
			},
		},
		{
			Field:   "totalHighTicketSalesCallsBooked",
			Message: "Booked sales calls cannot exceed calls proposed",
			Failed:  func(m Metrics) bool { return m["totalHighTicketSalesCallsBooked"] > m["callsProposed"] },
		},
		{
			Field:   "setsTaken",
			Message: "Sets taken cannot exceed sets scheduled",
			Failed:  func(m Metrics) bool { return m["setsTaken"] > m["setsScheduled"] },
		},
		{
			Field:   "closedSets",
			Message: "Closed sets cannot exceed sets taken",
			Failed:  func(m Metrics) bool { return m["closedSets"] > m["setsTaken"] },
		},
		{
			Field:   "revenueGenerated",
			Message: "Revenue cannot be less than the sum of cash collected and downsell revenue",
			Failed: func(m Metrics) bool {
				return m["revenueGenerated"] < m["newCashCollected"]+m["recurringCashCollected"]+m["downsellRevenue"]
			},
		},
		{
			Field:   "newCashCollected",
			Message: "New cash collected cannot exceed revenue",
			Failed:  func(m Metrics) bool { return m["newCashCollected"] > m["revenueGenerated"] },
		},
		{
			Field:   "recurringCashCollected",
			Message: "Recurring cash collected cannot exceed revenue",
			Failed:  func(m Metrics) bool { return m["recurringCashCollected"] > m["revenueGenerated"] },
		},
		{
			Field:   "downsellRevenue",
			Message: "Downsell revenue cannot exceed revenue",
			Failed:  func(m Metrics) bool { return m["downsellRevenue"] > m["revenueGenerated"] },
		},
	},
	Rates: []RateSpec{
		{Name: "bookingRate", Numerator: "totalHighTicketSalesCallsBooked", Denominator: "callsProposed"},
		{Name: "showRate", Numerator: "setsTaken", Denominator: "setsScheduled"},
		{Name: "closeRate", Numerator: "closedSets", Denominator: "setsTaken"},
	},
}
