package seed

import "movie-booking/internal/data/entity"

type demoUser struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     entity.UserRole
}

var demoUsers = []demoUser{
	{Name: "Admin User", Email: "admin@cinemabooking.com", Password: "admin123", Phone: "9876543210", Role: entity.RoleAdmin},
	{Name: "John Doe", Email: "john.doe@example.com", Password: "password123", Phone: "9876543211", Role: entity.RoleUser},
	{Name: "Priya Sharma", Email: "priya.sharma@example.com", Password: "password123", Phone: "9876543212", Role: entity.RoleUser},
}

type demoMovie struct {
	Title         string
	Description   string
	Genre         []string
	Director      string
	Cast          []entity.CastMember
	Duration      int
	Language      []string
	IMDb          float64
	Certification entity.Certification
	Poster        string
	ReleaseDate   string
	Pricing       entity.Pricing
	Popularity    float64
	BookingCount  int
}

var demoMovies = []demoMovie{
	{
		Title:       "RRR",
		Description: "A fictional story about two legendary revolutionaries and their journey away from home before they started fighting for their country in the 1920s.",
		Genre:       []string{"Action", "Drama", "History"},
		Director:    "S. S. Rajamouli",
		Cast: []entity.CastMember{
			{Name: "N. T. Rama Rao Jr.", Role: "Komaram Bheem"},
			{Name: "Ram Charan", Role: "Alluri Sitarama Raju"},
			{Name: "Alia Bhatt", Role: "Sita"},
		},
		Duration:      187,
		Language:      []string{"Telugu", "Hindi", "Tamil"},
		IMDb:          7.8,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/400/600.jpg",
		ReleaseDate:   "2022-03-25",
		Pricing:       entity.Pricing{Premium: 400, Regular: 280, Economy: 200},
		Popularity:    95,
		BookingCount:  25000,
	},
	{
		Title:       "K.G.F: Chapter 2",
		Description: "In the blood-soaked Kolar Gold Fields, Rocky's name strikes fear into his foes. While his allies look up to him, the government sees him as a threat to law and order.",
		Genre:       []string{"Action", "Crime", "Drama"},
		Director:    "Prashanth Neel",
		Cast: []entity.CastMember{
			{Name: "Yash", Role: "Rocky"},
			{Name: "Sanjay Dutt", Role: "Adheera"},
			{Name: "Raveena Tandon", Role: "Ramika Sen"},
		},
		Duration:      168,
		Language:      []string{"Kannada", "Hindi", "Telugu"},
		IMDb:          8.4,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/401/600.jpg",
		ReleaseDate:   "2022-04-14",
		Pricing:       entity.Pricing{Premium: 350, Regular: 250, Economy: 180},
		Popularity:    92,
		BookingCount:  22000,
	},
	{
		Title:       "Pushpa: The Rise",
		Description: "Violence erupts between red sandalwood smugglers and the police charged with bringing down their organization in the Seshachalam forests of South India.",
		Genre:       []string{"Action", "Crime", "Drama"},
		Director:    "Sukumar",
		Cast: []entity.CastMember{
			{Name: "Allu Arjun", Role: "Pushpa Raj"},
			{Name: "Rashmika Mandanna", Role: "Srivalli"},
			{Name: "Fahadh Faasil", Role: "Bhanwar Singh Shekhawat"},
		},
		Duration:      179,
		Language:      []string{"Telugu", "Hindi", "Tamil"},
		IMDb:          7.6,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/402/600.jpg",
		ReleaseDate:   "2021-12-17",
		Pricing:       entity.Pricing{Premium: 380, Regular: 260, Economy: 190},
		Popularity:    88,
		BookingCount:  18000,
	},
	{
		Title:       "Brahmastra Part One: Shiva",
		Description: "A DJ with superpowers and his ladylove embark on a mission to protect the Brahmastra, a weapon of enormous energy, from dark forces closing in on them.",
		Genre:       []string{"Action", "Adventure", "Fantasy"},
		Director:    "Ayan Mukerji",
		Cast: []entity.CastMember{
			{Name: "Ranbir Kapoor", Role: "Shiva"},
			{Name: "Alia Bhatt", Role: "Isha"},
			{Name: "Amitabh Bachchan", Role: "Professor Arvind Chaturvedi"},
		},
		Duration:      167,
		Language:      []string{"Hindi", "Telugu", "Tamil"},
		IMDb:          5.6,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/403/600.jpg",
		ReleaseDate:   "2022-09-09",
		Pricing:       entity.Pricing{Premium: 420, Regular: 300, Economy: 220},
		Popularity:    75,
		BookingCount:  15000,
	},
	{
		Title:       "Vikram",
		Description: "Members of a black ops team must track and eliminate a gang of masked murderers.",
		Genre:       []string{"Action", "Crime", "Thriller"},
		Director:    "Lokesh Kanagaraj",
		Cast: []entity.CastMember{
			{Name: "Kamal Haasan", Role: "Agent Vikram"},
			{Name: "Vijay Sethupathi", Role: "Santhanam"},
			{Name: "Fahadh Faasil", Role: "Amar"},
		},
		Duration:      174,
		Language:      []string{"Tamil", "Hindi", "Telugu"},
		IMDb:          8.4,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/404/600.jpg",
		ReleaseDate:   "2022-06-03",
		Pricing:       entity.Pricing{Premium: 360, Regular: 240, Economy: 170},
		Popularity:    90,
		BookingCount:  20000,
	},
	{
		Title:       "Avatar: The Way of Water",
		Description: "Jake Sully lives with his newfound family formed on the extrasolar moon Pandora. Once a familiar threat returns to finish what was previously started, Jake must work with Neytiri.",
		Genre:       []string{"Action", "Adventure", "Sci-Fi"},
		Director:    "James Cameron",
		Cast: []entity.CastMember{
			{Name: "Sam Worthington", Role: "Jake Sully"},
			{Name: "Zoe Saldana", Role: "Neytiri"},
			{Name: "Sigourney Weaver", Role: "Kiri"},
		},
		Duration:      192,
		Language:      []string{"English", "Hindi"},
		IMDb:          7.9,
		Certification: entity.CertificationUA,
		Poster:        "https://picsum.photos/405/600.jpg",
		ReleaseDate:   "2022-12-16",
		Pricing:       entity.Pricing{Premium: 450, Regular: 320, Economy: 250},
		Popularity:    85,
		BookingCount:  16000,
	},
}
