package roleconfig

var closerConfig = RoleConfig{
	Role: RoleCloser,
	Fields: []FieldSpec{
		{Name: "dailyCallsBooked", Label: "Calls booked", Kind: KindCount},
		{Name: "shows", Label: "Shows", Kind: KindCount},
		{Name: "noShows", Label: "No-shows", Kind: KindCount},
		{Name: "cancelled", Label: "Cancelled", Kind: KindCount},
		{Name: "disqualified", Label: "Disqualified", Kind: KindCount},
		{Name: "rescheduled", Label: "Rescheduled", Kind: KindCount},
		{Name: "callsTaken", Label: "Calls taken", Kind: KindCount},
		{Name: "offersMade", Label: "Offers made", Kind: KindCount},
		{Name: "closes", Label: "Closes", Kind: KindCount},
		{Name: "cashCollected", Label: "Cash collected", Kind: KindCurrency},
		{Name: "revenueGenerated", Label: "Revenue generated", Kind: KindCurrency},
	},
	Rules: []Rule{
		{
			Field:   "dailyCallsBooked",
			Message: "Calls booked must equal shows, no-shows, cancelled, disqualified and rescheduled combined",
			Failed: func(m Metrics) bool {
				return m["dailyCallsBooked"] != m["shows"]+m["noShows"]+m["cancelled"]+m["disqualified"]+m["rescheduled"]
			},
		},
		{
			Field:   "shows",
			Message: "Shows cannot exceed the calls booked that were not cancelled, disqualified or rescheduled",
			Failed: func(m Metrics) bool {
				return m["shows"] > m["dailyCallsBooked"]-(m["cancelled"]+m["disqualified"]+m["rescheduled"])
			},
		},
		{
			Field:   "noShows",
			Message: "No-shows cannot exceed the remaining calls booked",
			Failed: func(m Metrics) bool {
				return m["noShows"] > m["dailyCallsBooked"]-(m["shows"]+m["cancelled"]+m["disqualified"]+m["rescheduled"])
			},
		},
		{
			Field:   "shows",
			Message: "Shows and no-shows require booked calls",
			Failed: func(m Metrics) bool {
				return m["dailyCallsBooked"] == 0 && (m["shows"] != 0 || m["noShows"] != 0)
			},
		},
		{
			Field:   "cancelled",
			Message: "Cancelled calls cannot exceed calls booked",
			Failed:  func(m Metrics) bool { return m["cancelled"] > m["dailyCallsBooked"] },
		},
		{
			Field:   "rescheduled",
			Message: "Rescheduled calls cannot exceed calls booked",
			Failed:  func(m Metrics) bool { return m["rescheduled"] > m["dailyCallsBooked"] },
		},
		{
			Field:   "callsTaken",
			Message: "Calls taken cannot exceed calls booked",
			Failed:  func(m Metrics) bool { return m["callsTaken"] > m["dailyCallsBooked"] },
		},
		{
			Field:   "offersMade",
			Message: "Offers made cannot exceed calls taken",
			Failed:  func(m Metrics) bool { return m["offersMade"] > m["callsTaken"] },
		},
		{
			Field:   "closes",
			Message: "Closes cannot exceed calls taken",
			Failed:  func(m Metrics) bool { return m["closes"] > m["callsTaken"] },
		},
		{
			Field:   "closes",
			Message: "Closes cannot exceed offers made",
			Failed:  func(m Metrics) bool { return m["closes"] > m["offersMade"] },
		},
		{
			Field:   "closes",
			Message: "Cash or revenue requires at least one close",
			Failed: func(m Metrics) bool {
				return (m["cashCollected"] > 0 || m["revenueGenerated"] > 0) && m["closes"] <= 0
			},
		},
	},
	Rates: []RateSpec{
		{Name: "showRate", Numerator: "shows", Denominator: "dailyCallsBooked"},
		{Name: "offerRate", Numerator: "offersMade", Denominator: "callsTaken"},
		{Name: "closeRate", Numerator: "closes", Denominator: "callsTaken"},
	},
}
