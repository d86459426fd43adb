// Package catalog holds the fixed reference data for the 2025 season:
// every bookable Grand Prix and its seating areas with INR unit prices
// and capacities. The data is loaded once at startup — into MySQL by the
// schema initializer or directly into the in-memory store — and is
// read-only afterwards.
package catalog

// Area is a seeded seating area. PriceINR is the unit price in the
// reference currency; conversion to the settlement currency happens in
// the booking engine.
type Area struct {
	Name     string
	PriceINR int64
	Capacity int
}

// Event is a seeded Grand Prix with its seating areas in display order.
type Event struct {
	Name      string
	Country   string
	RaceDate  string
	ImagePath string
	Areas     []Area
}

// Events returns the seed catalog in fixed display order.
func Events() []Event {
	return []Event{
		{
			Name: "Abu Dhabi Grand Prix", Country: "UAE", RaceDate: "Dec 06-08", ImagePath: "tracks/abu dhabi track.jpg",
			Areas: []Area{
				{"Main Grandstand", 350000, 5000},
				{"North Straight", 180000, 3000},
				{"North Grandstand", 185000, 3500},
				{"West Straight", 195000, 2500},
				{"West Grandstand", 205000, 4000},
				{"Marina Grandstand", 250000, 3000},
				{"South Grandstand", 210000, 4500},
				{"General Admission", 80000, 10000},
			},
		},
		{
			Name: "Australian Grand Prix", Country: "Australia", RaceDate: "Mar 21-23", ImagePath: "tracks/australia track.jpg",
			Areas: []Area{
				{"Stewart Grandstand", 115000, 1500},
				{"Hill Grandstand", 85000, 2000},
				{"Ricciardo Grandstand", 95000, 1800},
				{"Jones Grandstand", 90000, 1200},
				{"Moss Grandstand", 90000, 1200},
				{"Fangio Grandstand", 120000, 2500},
				{"Senna Grandstand", 110000, 1000},
				{"Prost Grandstand", 112000, 1000},
				{"Lauda Grandstand", 98000, 1300},
				{"Schumacher Grandstand", 92000, 1400},
				{"Webber Grandstand", 88000, 1600},
				{"Vettel Grandstand", 88000, 1600},
				{"Waite Grandstand", 82000, 1700},
				{"Clark Grandstand", 83000, 1700},
				{"Button Grandstand", 84000, 1700},
			},
		},
		{
			Name: "Azerbaijan Grand Prix", Country: "Azerbaijan", RaceDate: "Sep 13-15", ImagePath: "tracks/azerbaijan track.jpg",
			Areas: []Area{
				{"Absheron (Main)", 280000, 4000},
				{"Champions Club", 250000, 500},
				{"Zafar Grandstand", 160000, 1000},
				{"Khazar Grandstand", 155000, 1200},
				{"Icheri Sheher", 150000, 800},
				{"Sahil Grandstand", 145000, 1500},
				{"Bulvar Grandstand", 130000, 1500},
				{"Mugham Grandstand", 125000, 1000},
				{"Giz Galasi", 120000, 1000},
				{"Marine Grandstand", 115000, 1000},
				{"Azneft Grandstand", 110000, 1000},
				{"Philarmoniya", 100000, 900},
				{"General Admission", 60000, 8000},
			},
		},
		{
			Name: "Dutch Grand Prix", Country: "Netherlands", RaceDate: "Aug 29-31", ImagePath: "tracks/dutch track.jpg",
			Areas: []Area{
				{"Pit Grandstand", 450000, 3000},
				{"Paddock Club", 1200000, 200},
				{"Hairpin Grandstand 1 & 2", 210000, 4000},
				{"Arena Grandstand 1", 250000, 5000},
				{"Champions Club", 950000, 400},
			},
		},
		{
			Name: "Italian Grand Prix", Country: "Italy", RaceDate: "Sep 05-07", ImagePath: "tracks/italy track.jpg",
			Areas: []Area{
				{"Main Straight (1)", 420000, 3000},
				{"Laterale Destra (4)", 380000, 2500},
				{"Piscina (5)", 210000, 1500},
				{"Alta Velocita (6a-c)", 250000, 2000},
				{"Prima Variante (8a-b)", 220000, 2200},
				{"Seconda Variante (9-10)", 195000, 2800},
				{"Variante Ascari (16-19)", 175000, 3000},
				{"Parabolica (22-23b)", 190000, 3500},
				{"General Admission", 90000, 15000},
			},
		},
		{
			Name: "Las Vegas Grand Prix", Country: "USA", RaceDate: "Nov 20-22", ImagePath: "tracks/las vegas track.jpg",
			Areas: []Area{
				{"Heineken Silver (Main)", 800000, 6000},
				{"Sphere Zone (SG1-8)", 650000, 8000},
				{"T-Mobile Zone", 600000, 7000},
				{"West Harmon Zone", 500000, 4000},
				{"Caesar's Palace Experience", 950000, 1000},
				{"Flamingo General Admission", 250000, 5000},
			},
		},
		{
			Name: "Qatar Grand Prix", Country: "Qatar", RaceDate: "Nov 28-30", ImagePath: "tracks/qatar track.jpg",
			Areas: []Area{
				{"Main Grandstand", 300000, 6000},
				{"North Grandstand", 220000, 4000},
				{"T2 Grandstand", 190000, 2000},
				{"T3 Grandstand", 195000, 2000},
				{"T16 Grandstand", 180000, 2500},
				{"General Admission", 95000, 12000},
			},
		},
		{
			Name: "British Grand Prix", Country: "UK", RaceDate: "Jul 04-06", ImagePath: "tracks/silverstone track.jpg",
			Areas: []Area{
				{"Hamilton Straight A/B", 550000, 7000},
				{"Abbey A/B", 380000, 4000},
				{"Farm Curve", 370000, 3000},
				{"Village A/B", 360000, 4500},
				{"The Loop", 355000, 2500},
				{"Aintree", 350000, 2500},
				{"Wellington Straight", 340000, 3000},
				{"Luffield", 325000, 3200},
				{"Woodcote A/B", 320000, 3500},
				{"National Pits Straight", 480000, 2000},
				{"Copse A/B/C", 310000, 4000},
				{"Becketts", 350000, 3800},
				{"Stowe A/B/C", 290000, 5000},
				{"Vale / Club", 420000, 4200},
				{"General Admission", 150000, 20000},
			},
		},
		{
			Name: "Singapore Grand Prix", Country: "Singapore", RaceDate: "Oct 03-05", ImagePath: "tracks/singapore track.jpg",
			Areas: []Area{
				{"Super Pit Grandstand", 650000, 2000},
				{"Pit Grandstand", 450000, 4000},
				{"Turn 1 Grandstand", 250000, 3000},
				{"Turn 2 Grandstand", 240000, 3000},
				{"Republic Grandstand", 220000, 2500},
				{"Raffles Grandstand", 210000, 2500},
				{"Bayfront Grandstand", 190000, 3500},
				{"Padang Grandstand", 180000, 4000},
				{"Connaught Grandstand", 160000, 3200},
				{"Orange @ Empress", 150000, 2800},
				{"Promenade Grandstand", 170000, 2000},
			},
		},
		{
			Name: "United States Grand Prix", Country: "USA", RaceDate: "Oct 17-19", ImagePath: "tracks/us track.jpg",
			Areas: []Area{
				{"Main Grandstand", 480000, 6000},
				{"Turn 1 Grandstand", 350000, 4000},
				{"Turn 4 Grandstand", 290000, 3500},
				{"Turn 9 Grandstand", 285000, 3000},
				{"Turn 12 Grandstand", 280000, 3200},
				{"Turn 13 Grandstand", 270000, 2000},
				{"Turn 15 Grandstand", 320000, 4500},
				{"Turn 19 Grandstand", 310000, 3800},
				{"Turn 19B Grandstand", 300000, 1500},
				{"General Admission", 160000, 18000},
			},
		},
	}
}
