package seed

import "github.com/infinity-lifestyle/storefront/internal/models"

// Events returns the fixed event roster. Ticket availability is display-only
// inventory; there is no reservation system behind it.
func Events() []models.Event {
	return []models.Event{
		{
			ID:              "nova-launch-2026",
			Title:           "NOVA Universe Launch",
			Subtitle:        "The Future Begins Here",
			Description:     "Experience the grand unveiling of Nova's 2026 collection at Bashundhara Convention Center.",
			LongDescription: "Join us for an extraordinary evening as NOVA unveils its most ambitious collection yet, with live runway shows, interactive installations and first access to shop the new pieces. The evening features special performances, gourmet dining and networking with the NOVA design team.",
			Date:            "2026-02-15",
			Time:            "7:00 PM",
			Venue:           "Bashundhara Convention Center",
			Address:         "Kuril, Dhaka-1229",
			City:            "Dhaka",
			Image:           "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandNova,
			Category:        "Launch Event",
			Featured:        true,
			MapURL:          "https://maps.google.com/?q=Bashundhara+Convention+Center+Dhaka",
			Schedule: models.ScheduleBlocks{
				{Time: "7:00 PM", Title: "Red Carpet & Welcome", Description: "Guest arrival and cocktail reception"},
				{Time: "8:00 PM", Title: "Opening Ceremony", Description: "Welcome address and brand vision presentation", Speaker: "CEO, NOVA"},
				{Time: "8:30 PM", Title: "Runway Show", Description: "Universe Collection showcase"},
				{Time: "9:30 PM", Title: "Live Performance", Description: "Special musical performance", Speaker: "TBA Artist"},
				{Time: "10:00 PM", Title: "Collection Preview", Description: "Exclusive first access to shop the collection"},
				{Time: "11:00 PM", Title: "After Party", Description: "DJ set and networking"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "General Admission", Price: 5000, Benefits: []string{"Event access", "Welcome drink", "Collection preview"}, Available: 200},
				{Type: models.TicketVIP, Name: "VIP Pass", Price: 15000, Benefits: []string{"Priority seating", "Exclusive lounge access", "Complimentary dinner", "Gift bag", "Meet & greet"}, Available: 50},
				{Type: models.TicketVVIP, Name: "VVIP Experience", Price: 35000, Benefits: []string{"Front row seating", "Private lounge", "Premium dinner", "Exclusive merchandise", "After party access", "Personal concierge"}, Available: 20},
				{Type: models.TicketPlatinum, Name: "Platinum Table (8 guests)", Price: 200000, Benefits: []string{"Reserved table", "All VVIP benefits", "Brand ambassador meeting", "Exclusive collection preview", "Complimentary merchandise"}, Available: 5},
			},
		},
		{
			ID:              "xforce-championship-2026",
			Title:           "XFORCE Championship Night",
			Subtitle:        "Where Legends Are Made",
			Description:     "The ultimate gaming and esports championship at Radisson Blu Dhaka.",
			LongDescription: "XFORCE Championship Night brings together the best gamers for multiple tournament brackets, pro-player exhibitions and exclusive reveals, with cutting-edge setups, open tournaments and merchandise drops.",
			Date:            "2026-03-22",
			Time:            "4:00 PM",
			Venue:           "Radisson Blu Dhaka Water Garden",
			Address:         "Airport Road, Dhaka",
			City:            "Dhaka",
			Image:           "https://images.unsplash.com/photo-1511882150382-421056c89033?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandXForce,
			Category:        "Championship",
			Featured:        true,
			MapURL:          "https://maps.google.com/?q=Radisson+Blu+Dhaka+Water+Garden",
			Schedule: models.ScheduleBlocks{
				{Time: "4:00 PM", Title: "Registration & Setup", Description: "Check-in and tournament registration"},
				{Time: "5:00 PM", Title: "Opening Ceremony", Description: "XFORCE Championship inauguration", Speaker: "XFORCE Team"},
				{Time: "5:30 PM", Title: "Qualifier Rounds", Description: "Initial tournament brackets"},
				{Time: "7:00 PM", Title: "Pro Exhibition Match", Description: "Professional players showcase", Speaker: "Pro Gaming Team"},
				{Time: "8:00 PM", Title: "Semi-Finals", Description: "Top competitors battle"},
				{Time: "9:30 PM", Title: "Grand Finals", Description: "Championship final match"},
				{Time: "10:30 PM", Title: "Award Ceremony", Description: "Winners announcement and prizes"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Spectator Pass", Price: 2000, Benefits: []string{"Event access", "Viewing area", "XFORCE merchandise discount"}, Available: 500},
				{Type: models.TicketVIP, Name: "Competitor Pass", Price: 5000, Benefits: []string{"Tournament entry", "Gaming station access", "Competitor kit", "Practice sessions"}, Available: 128},
				{Type: models.TicketVVIP, Name: "Pro Lounge Access", Price: 20000, Benefits: []string{"Premium viewing", "Pro player meet & greet", "Exclusive merchandise", "Gaming gear showcase", "Dinner included"}, Available: 30},
			},
		},
		{
			ID:              "live-moment-beach-festival",
			Title:           "Live The Moment Beach Festival",
			Subtitle:        "Sunset Sessions by the Sea",
			Description:     "Three days of music, art, and lifestyle at Cox's Bazar.",
			LongDescription: "Escape to the world's longest natural sea beach for a three-day festival of music, art, fashion and wellness, with international DJs, live bands, art installations, beach yoga and pop-up shops.",
			Date:            "2026-04-10",
			EndDate:         "2026-04-12",
			Time:            "12:00 PM",
			Venue:           "Inani Beach Resort",
			Address:         "Inani, Cox's Bazar",
			City:            "Cox's Bazar",
			Image:           "https://images.unsplash.com/photo-1533174072545-7a4b6ad7a6c3?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1506157786151-b8491531f063?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandLiveMoment,
			Category:        "Festival",
			Featured:        true,
			MapURL:          "https://maps.google.com/?q=Inani+Beach+Cox+Bazar",
			Schedule: models.ScheduleBlocks{
				{Time: "12:00 PM", Title: "Festival Gates Open", Description: "Welcome to the beach"},
				{Time: "2:00 PM", Title: "Beach Yoga & Wellness", Description: "Guided meditation and yoga session", Speaker: "Wellness Expert"},
				{Time: "4:00 PM", Title: "Art Walk", Description: "Interactive art installations tour"},
				{Time: "6:00 PM", Title: "Sunset Session", Description: "DJ set with ocean views", Speaker: "Various Artists"},
				{Time: "8:00 PM", Title: "Main Stage Performance", Description: "Headline act", Speaker: "TBA Headliner"},
				{Time: "10:00 PM", Title: "Beach Bonfire", Description: "Acoustic sessions and chill vibes"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Day Pass", Price: 3500, Benefits: []string{"Single day access", "Beach activities", "Pop-up shop access"}, Available: 1000},
				{Type: models.TicketVIP, Name: "3-Day Festival Pass", Price: 8000, Benefits: []string{"Full festival access", "Priority entry", "Exclusive merchandise", "Lounge access"}, Available: 500},
				{Type: models.TicketVVIP, Name: "VIP Beach Cabana", Price: 50000, Benefits: []string{"Private cabana", "Butler service", "All meals included", "Artist meet & greet", "Spa access"}, Available: 20},
				{Type: models.TicketPlatinum, Name: "Platinum Beach House (10 guests)", Price: 300000, Benefits: []string{"Private beach house", "All VVIP benefits", "Private chef", "Yacht trip", "Exclusive party"}, Available: 5},
			},
		},
		{
			ID:              "infinity-gala-2026",
			Title:           "INFINITY Annual Gala",
			Subtitle:        "A Night of Infinite Possibilities",
			Description:     "The most prestigious fashion and lifestyle gala at InterContinental Dhaka.",
			LongDescription: "The INFINITY Annual Gala brings all three brands together for one black-tie evening of runway shows, exclusive collaborations, limited edition releases, celebrity appearances and gourmet dining.",
			Date:            "2026-05-20",
			Time:            "7:00 PM",
			Venue:           "InterContinental Dhaka",
			Address:         "1 Minto Road, Dhaka",
			City:            "Dhaka",
			Image:           "https://images.unsplash.com/photo-1519671482749-fd09be7ccebf?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1505236858219-8359eb29e329?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandInfinity,
			Category:        "Gala",
			Featured:        true,
			MapURL:          "https://maps.google.com/?q=InterContinental+Dhaka",
			Schedule: models.ScheduleBlocks{
				{Time: "7:00 PM", Title: "Champagne Reception", Description: "Welcome cocktails on the terrace"},
				{Time: "8:00 PM", Title: "Grand Opening", Description: "INFINITY vision and year in review", Speaker: "INFINITY Founders"},
				{Time: "8:30 PM", Title: "Nova Showcase", Description: "Exclusive collection preview"},
				{Time: "9:00 PM", Title: "XFORCE Showcase", Description: "Gaming lifestyle collection"},
				{Time: "9:30 PM", Title: "Live The Moment Showcase", Description: "Beach and lifestyle collection"},
				{Time: "10:00 PM", Title: "Gala Dinner", Description: "Seven-course culinary experience"},
				{Time: "11:30 PM", Title: "Awards & Recognition", Description: "Celebrating our community"},
				{Time: "12:00 AM", Title: "Grand Ball", Description: "Dancing and celebration"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketVIP, Name: "Individual Ticket", Price: 25000, Benefits: []string{"Gala access", "Full dinner", "Gift bag", "Collection preview"}, Available: 200},
				{Type: models.TicketVVIP, Name: "Couple Package", Price: 45000, Benefits: []string{"Priority seating", "Champagne table", "Exclusive gifts", "VIP lounge", "After party"}, Available: 50},
				{Type: models.TicketPlatinum, Name: "Corporate Table (10 guests)", Price: 400000, Benefits: []string{"Premium table", "Brand recognition", "All VVIP benefits", "Private meeting room", "Custom gift selection"}, Available: 10},
			},
		},
		{
			ID:              "nova-chittagong-pop-up",
			Title:           "NOVA Pop-up Experience",
			Subtitle:        "Luxury Comes to Chittagong",
			Description:     "Exclusive three-day pop-up store at Peninsula Chittagong.",
			LongDescription: "NOVA brings its signature luxury experience to Chittagong for the first time, featuring the complete 2026 collection, personalized styling sessions and limited edition pieces.",
			Date:            "2026-06-05",
			EndDate:         "2026-06-07",
			Time:            "11:00 AM",
			Venue:           "Peninsula Chittagong",
			Address:         "Bulbul Center, O.R. Nizam Road",
			City:            "Chittagong",
			Image:           "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandNova,
			Category:        "Pop-up Store",
			Featured:        false,
			MapURL:          "https://maps.google.com/?q=Peninsula+Chittagong",
			Schedule: models.ScheduleBlocks{
				{Time: "11:00 AM", Title: "Doors Open", Description: "Browse the collection"},
				{Time: "2:00 PM", Title: "Styling Session", Description: "Personal styling consultation", Speaker: "Nova Style Team"},
				{Time: "4:00 PM", Title: "Designer Talk", Description: "Meet the design team", Speaker: "Nova Design Director"},
				{Time: "6:00 PM", Title: "Evening Preview", Description: "Exclusive evening collection"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Free Entry", Price: 0, Benefits: []string{"Store access", "Collection browsing", "Refreshments"}, Available: 500},
				{Type: models.TicketVIP, Name: "VIP Styling Session", Price: 5000, Benefits: []string{"1-hour personal styling", "Exclusive discount", "Gift bag", "Priority access"}, Available: 30},
			},
		},
		{
			ID:              "xforce-sylhet-gaming",
			Title:           "XFORCE Gaming Meetup",
			Subtitle:        "Level Up in Sylhet",
			Description:     "Community gaming event at Rose View Hotel Sylhet.",
			LongDescription: "XFORCE brings competitive gaming to Sylhet with casual tournaments, pro-player meet and greets and exclusive merchandise drops. Open to all skill levels.",
			Date:            "2026-07-15",
			Time:            "3:00 PM",
			Venue:           "Rose View Hotel",
			Address:         "Shahjalal Upashahar",
			City:            "Sylhet",
			Image:           "https://images.unsplash.com/photo-1493711662062-fa541f7f3d24?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1552820728-8b83bb6b2b0a?w=1920",
			Status:          models.EventUpcoming,
			Brand:           models.BrandXForce,
			Category:        "Gaming Meetup",
			Featured:        false,
			MapURL:          "https://maps.google.com/?q=Rose+View+Hotel+Sylhet",
			Schedule: models.ScheduleBlocks{
				{Time: "3:00 PM", Title: "Check-in", Description: "Registration and setup"},
				{Time: "4:00 PM", Title: "Community Tournament", Description: "Open bracket tournament"},
				{Time: "6:00 PM", Title: "Pro Showcase", Description: "Watch professional gameplay", Speaker: "Pro Players"},
				{Time: "7:30 PM", Title: "Awards & Closing", Description: "Prizes and merchandise giveaway"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Spectator", Price: 500, Benefits: []string{"Event access", "Snacks", "Merchandise discount"}, Available: 200},
				{Type: models.TicketVIP, Name: "Tournament Entry", Price: 1500, Benefits: []string{"Tournament participation", "XFORCE t-shirt", "Prizes for winners"}, Available: 64},
			},
		},
		{
			ID:              "infinity-launch-2025",
			Title:           "INFINITY Brand Launch",
			Subtitle:        "The Beginning of Everything",
			Description:     "The historic launch of INFINITY at BICC Dhaka.",
			LongDescription: "On December 10, 2025, INFINITY introduced all three brands to the world at the Bangladesh International Convention Center, with spectacular performances and the unveiling of the inaugural collections.",
			Date:            "2025-12-10",
			Time:            "6:00 PM",
			Venue:           "BICC (Bangladesh International Convention Center)",
			Address:         "Agargaon, Dhaka",
			City:            "Dhaka",
			Image:           "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=1920",
			Status:          models.EventPast,
			Brand:           models.BrandInfinity,
			Category:        "Launch Event",
			Featured:        false,
			MapURL:          "https://maps.google.com/?q=BICC+Dhaka",
			Schedule: models.ScheduleBlocks{
				{Time: "6:00 PM", Title: "Red Carpet", Description: "Celebrity arrivals"},
				{Time: "7:00 PM", Title: "Brand Unveiling", Description: "The birth of INFINITY", Speaker: "Founders"},
				{Time: "8:00 PM", Title: "Collection Reveals", Description: "All three brands showcase"},
				{Time: "10:00 PM", Title: "Celebration Party", Description: "Live music and festivities"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Launch Pass", Price: 10000, Benefits: []string{"Full event access", "Dinner", "Launch merchandise"}, Available: 0},
			},
		},
		{
			ID:              "live-moment-sunset-2025",
			Title:           "Sunset Sessions Vol. 1",
			Subtitle:        "The First Sunset",
			Description:     "Inaugural beach party at Laboni Beach, Cox's Bazar.",
			LongDescription: "The first ever Live The Moment Sunset Session was a magical evening on Laboni Beach with live DJs, beach activities and spectacular sunset views.",
			Date:            "2025-11-20",
			Time:            "4:00 PM",
			Venue:           "Laboni Beach",
			Address:         "Cox's Bazar Seafront",
			City:            "Cox's Bazar",
			Image:           "https://images.unsplash.com/photo-1429962714451-bb934ecdc4ec?w=800",
			BannerImage:     "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=1920",
			Status:          models.EventPast,
			Brand:           models.BrandLiveMoment,
			Category:        "Beach Party",
			Featured:        false,
			MapURL:          "https://maps.google.com/?q=Laboni+Beach+Cox+Bazar",
			Schedule: models.ScheduleBlocks{
				{Time: "4:00 PM", Title: "Beach Gates Open", Description: "Welcome to paradise"},
				{Time: "5:30 PM", Title: "Sunset Session", Description: "DJ set as the sun sets", Speaker: "DJ Collective"},
				{Time: "8:00 PM", Title: "Bonfire Party", Description: "Beach bonfire and acoustic music"},
			},
			Tickets: models.TicketInfos{
				{Type: models.TicketGeneral, Name: "Beach Pass", Price: 2500, Benefits: []string{"Beach access", "Drinks", "Beach activities"}, Available: 0},
			},
		},
	}
}
