package main

import "wunderwohn/internal/app"

// sampleProperties is the demo catalog of twelve German listings.
var sampleProperties = []app.PropertyInput{
	{
		Title:         "Charming Apartment in Berlin Mitte",
		Description:   "Beautiful 2-bedroom apartment in the heart of Berlin with modern amenities and great transport links.",
		PropertyType:  "apartment",
		City:          "Berlin",
		State:         "Berlin",
		Address:       "Alexanderplatz 1, 10178 Berlin",
		PricePerNight: 120.0,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen", "Washing Machine", "TV", "Air Conditioning"},
		Images:        []string{"https://images.unsplash.com/photo-1703698800457-da754d6f454f"},
	},
	{
		Title:         "Historic House in Munich Old Town",
		Description:   "Traditional Bavarian house with authentic architecture, near Marienplatz with easy access to beer gardens and museums.",
		PropertyType:  "house",
		City:          "Munich",
		State:         "Bavaria",
		Address:       "Marienplatz 5, 80331 Munich",
		PricePerNight: 200.0,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "Garden", "Parking", "Fireplace"},
		Images:        []string{"https://images.unsplash.com/photo-1670145867818-1fbbbd12e800"},
	},
	{
		Title:         "Modern Riverside Apartment in Hamburg",
		Description:   "Contemporary apartment with views of Hamburg's canals, close to the Speicherstadt and HafenCity district.",
		PropertyType:  "apartment",
		City:          "Hamburg",
		State:         "Hamburg",
		Address:       "HafenCity 10, 20457 Hamburg",
		PricePerNight: 150.0,
		MaxGuests:     3,
		Bedrooms:      1,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen", "River View", "TV", "Balcony"},
		Images:        []string{"https://images.pexels.com/photos/31838667/pexels-photo-31838667.png"},
	},
	{
		Title:         "Cozy Canal House in Cologne",
		Description:   "Traditional house along Cologne's historic canals, walking distance to the cathedral.",
		PropertyType:  "house",
		City:          "Cologne",
		State:         "North Rhine-Westphalia",
		Address:       "Rheinauhafen 15, 50678 Cologne",
		PricePerNight: 180.0,
		MaxGuests:     5,
		Bedrooms:      2,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "Canal View", "Parking", "Pet Friendly"},
	},
	{
		Title:         "Luxury Apartment in Frankfurt Financial District",
		Description:   "High-end apartment in the banking quarter with skyline views.",
		PropertyType:  "apartment",
		City:          "Frankfurt",
		State:         "Hesse",
		Address:       "Zeil 50, 60313 Frankfurt am Main",
		PricePerNight: 250.0,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "City View", "Gym Access", "Concierge", "Air Conditioning"},
	},
	{
		Title:         "Charming Villa in Stuttgart Hills",
		Description:   "Spacious villa overlooking Stuttgart with a garden and pool.",
		PropertyType:  "villa",
		City:          "Stuttgart",
		State:         "Baden-Württemberg",
		Address:       "Königstraße 25, 70173 Stuttgart",
		PricePerNight: 300.0,
		MaxGuests:     8,
		Bedrooms:      4,
		Bathrooms:     3,
		Amenities:     []string{"WiFi", "Kitchen", "Garden", "Pool", "Parking", "City View"},
	},
	{
		Title:         "Elegant Loft in Dresden Historic Center",
		Description:   "Open-plan loft facing the rebuilt Neumarkt and the Frauenkirche.",
		PropertyType:  "loft",
		City:          "Dresden",
		State:         "Saxony",
		Address:       "Neumarkt 8, 01067 Dresden",
		PricePerNight: 140.0,
		MaxGuests:     3,
		Bedrooms:      1,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen", "Historic View", "TV", "Heating"},
	},
	{
		Title:         "Seaside Apartment in Kiel Baltic Coast",
		Description:   "Bright apartment on the Kiellinie promenade with Baltic Sea views.",
		PropertyType:  "apartment",
		City:          "Kiel",
		State:         "Schleswig-Holstein",
		Address:       "Kiellinie 20, 24105 Kiel",
		PricePerNight: 110.0,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen", "Sea View", "Balcony", "Beach Access"},
	},
	{
		Title:         "Mountain Chalet in Garmisch-Partenkirchen",
		Description:   "Alpine chalet at the foot of the Zugspitze, ideal for ski trips.",
		PropertyType:  "chalet",
		City:          "Garmisch-Partenkirchen",
		State:         "Bavaria",
		Address:       "Alpspitzstraße 12, 82467 Garmisch-Partenkirchen",
		PricePerNight: 220.0,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "Mountain View", "Fireplace", "Ski Storage", "Garden"},
	},
	{
		Title:         "Industrial Loft in Düsseldorf Art Quarter",
		Description:   "Converted loft near the Königsallee galleries and studios.",
		PropertyType:  "loft",
		City:          "Düsseldorf",
		State:         "North Rhine-Westphalia",
		Address:       "Königsallee 100, 40212 Düsseldorf",
		PricePerNight: 170.0,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"WiFi", "Kitchen", "Art Gallery Access", "TV", "Air Conditioning", "Workspace"},
	},
	{
		Title:         "Historic Townhouse in Heidelberg Old Town",
		Description:   "Townhouse on the Hauptstraße with a view of Heidelberg Castle.",
		PropertyType:  "townhouse",
		City:          "Heidelberg",
		State:         "Baden-Württemberg",
		Address:       "Hauptstraße 45, 69117 Heidelberg",
		PricePerNight: 190.0,
		MaxGuests:     5,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "Historic Charm", "Castle View", "Garden", "Parking"},
	},
	{
		Title:         "Modern Penthouse in Leipzig City Center",
		Description:   "Top-floor penthouse on Augustusplatz with a rooftop terrace.",
		PropertyType:  "penthouse",
		City:          "Leipzig",
		State:         "Saxony",
		Address:       "Augustusplatz 15, 04109 Leipzig",
		PricePerNight: 280.0,
		MaxGuests:     6,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"WiFi", "Kitchen", "Panoramic View", "Rooftop Terrace", "Elevator", "Premium Appliances"},
	},
}
