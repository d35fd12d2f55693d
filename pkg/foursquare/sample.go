package foursquare

// Built-in sample data returned when the Places API is unavailable, so the
// analysis pipeline stays demonstrable without credentials.

func sampleCompetitors(businessType string) []Record {
	samples := map[string][]Record{
		"restaurant": {
			{
				"id":          "sample1",
				"name":        "Downtown Cafe",
				"category":    "Coffee Shop",
				"address":     "123 Main Street",
				"distance":    250,
				"rating":      4.2,
				"price_level": 2,
				"phone":       "(555) 123-4567",
			},
			{
				"id":          "sample2",
				"name":        "Pizza Palace",
				"category":    "Pizza Restaurant",
				"address":     "456 Oak Avenue",
				"distance":    480,
				"rating":      4.0,
				"price_level": 2,
				"phone":       "(555) 987-6543",
			},
		},
		"retail": {
			{
				"id":          "sample3",
				"name":        "Fashion Boutique",
				"category":    "Clothing Store",
				"address":     "789 Shopping Street",
				"distance":    320,
				"rating":      4.1,
				"price_level": 3,
				"phone":       "(555) 456-7890",
			},
		},
		"fitness": {
			{
				"id":          "sample4",
				"name":        "FitZone Gym",
				"category":    "Fitness Center",
				"address":     "321 Health Boulevard",
				"distance":    600,
				"rating":      4.3,
				"price_level": 2,
				"phone":       "(555) 234-5678",
			},
		},
	}

	if records, ok := samples[businessType]; ok {
		return records
	}
	return samples["restaurant"]
}

func sampleLocalBusinesses() []Record {
	return []Record{
		{
			"id":       "local1",
			"name":     "Corner Market",
			"category": "Convenience Store",
			"address":  "100 Local Street",
			"rating":   3.8,
			"distance": 150,
			"hours": map[string]string{
				"Monday":    "6:00 AM - 10:00 PM",
				"Tuesday":   "6:00 AM - 10:00 PM",
				"Wednesday": "6:00 AM - 10:00 PM",
				"Thursday":  "6:00 AM - 10:00 PM",
				"Friday":    "6:00 AM - 11:00 PM",
				"Saturday":  "7:00 AM - 11:00 PM",
				"Sunday":    "8:00 AM - 9:00 PM",
			},
		},
		{
			"id":       "local2",
			"name":     "Local Fitness",
			"category": "Gym",
			"address":  "200 Workout Way",
			"rating":   4.5,
			"distance": 400,
			"hours": map[string]string{
				"Monday":    "5:00 AM - 11:00 PM",
				"Tuesday":   "5:00 AM - 11:00 PM",
				"Wednesday": "5:00 AM - 11:00 PM",
				"Thursday":  "5:00 AM - 11:00 PM",
				"Friday":    "5:00 AM - 10:00 PM",
				"Saturday":  "6:00 AM - 10:00 PM",
				"Sunday":    "7:00 AM - 9:00 PM",
			},
		},
		{
			"id":       "local3",
			"name":     "Daily Bread Bakery",
			"category": "Bakery",
			"address":  "300 Fresh Avenue",
			"rating":   4.7,
			"distance": 280,
			"hours": map[string]string{
				"Monday":    "6:00 AM - 6:00 PM",
				"Tuesday":   "6:00 AM - 6:00 PM",
				"Wednesday": "6:00 AM - 6:00 PM",
				"Thursday":  "6:00 AM - 6:00 PM",
				"Friday":    "6:00 AM - 7:00 PM",
				"Saturday":  "7:00 AM - 7:00 PM",
				"Sunday":    "8:00 AM - 5:00 PM",
			},
		},
	}
}

func sampleMarketOverview() *MarketOverview {
	return &MarketOverview{
		TotalBusinesses: 85,
		Categories: map[string]int{
			"Restaurants":   18,
			"Retail Stores": 15,
			"Services":      12,
			"Healthcare":    8,
			"Fitness":       6,
			"Beauty":        5,
			"Other":         21,
		},
		MarketScore:      6.8,
		OpportunityCount: 5,
		SaturationLevel:  "Medium",
		Location:         "Sample Location",
		Radius:           1000,
	}
}
