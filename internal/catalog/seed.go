package catalog

import "lumina-workers/internal/models"

func avatar(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200/200"
}

var seedRecords = []models.Influencer{
	{ID: "1", Name: "Elara Vance", Handle: "@elara.vibe", Platform: models.PlatformInstagram, Location: "Los Angeles, USA",
		Followers: "42.5K", EngagementRate: "8.4%", AvgLikes: "3.2K", EstValue: "$1,200", AvatarURL: avatar("elara"),
		Niche: []string{"Fashion", "Lifestyle", "Sustainable"}},
	{ID: "2", Name: "Marcus Chen", Handle: "@marcus.lens", Platform: models.PlatformInstagram, Location: "New York, USA",
		Followers: "28.1K", EngagementRate: "7.1%", AvgLikes: "1.8K", EstValue: "$850", AvatarURL: avatar("marcus"),
		Niche: []string{"Technology", "Photography", "Travel"}},
	{ID: "3", Name: "Sarah Jenkins", Handle: "@sarah.daily", Platform: models.PlatformInstagram, Location: "London, UK",
		Followers: "155K", EngagementRate: "6.5%", AvgLikes: "12.1K", EstValue: "$2,500", AvatarURL: avatar("sarah"),
		Niche: []string{"Health", "Food", "Wellness"}},
	{ID: "8", Name: "Chef Davi", Handle: "@davi.cooks", Platform: models.PlatformInstagram, Location: "Chicago, USA",
		Followers: "85K", EngagementRate: "5.2%", AvgLikes: "4K", EstValue: "$1,800", AvatarURL: avatar("davi"),
		Niche: []string{"Food", "Cooking"}},
	{ID: "10", Name: "Elena Rostova", Handle: "@elena.style", Platform: models.PlatformInstagram, Location: "Berlin, Germany",
		Followers: "12K", EngagementRate: "9.5%", AvgLikes: "1.2K", EstValue: "$400", AvatarURL: avatar("elena"),
		Niche: []string{"Fashion", "Minimalism"}},
	{ID: "11", Name: "Jake & Fin", Handle: "@adventure.bros", Platform: models.PlatformInstagram, Location: "Sydney, Australia",
		Followers: "350K", EngagementRate: "4.1%", AvgLikes: "15K", EstValue: "$4,200", AvatarURL: avatar("jake"),
		Niche: []string{"Travel", "Adventure"}},

	{ID: "4", Name: "Alex Rivera", Handle: "@alex.tech", Platform: models.PlatformYouTube, Location: "Austin, USA",
		Followers: "680K", EngagementRate: "3.9%", AvgLikes: "25K", EstValue: "$5,500", AvatarURL: avatar("alex"),
		Niche: []string{"Technology", "Reviews"}},
	{ID: "5", Name: "Mike Chen", Handle: "@circuit.break", Platform: models.PlatformYouTube, Location: "Toronto, Canada",
		Followers: "120K", EngagementRate: "6.8%", AvgLikes: "8.5K", EstValue: "$2,200", AvatarURL: avatar("mike"),
		Niche: []string{"Technology", "Gaming"}},
	{ID: "12", Name: "Yoga with Jen", Handle: "@jen.flow", Platform: models.PlatformYouTube, Location: "Los Angeles, USA",
		Followers: "1.2M", EngagementRate: "5.5%", AvgLikes: "45K", EstValue: "$8,500", AvatarURL: avatar("jen"),
		Niche: []string{"Health", "Yoga", "Wellness"}},

	{ID: "6", Name: "Bella Hadid", Handle: "@bella.looks", Platform: models.PlatformTikTok, Location: "Milan, Italy",
		Followers: "2.1M", EngagementRate: "4.5%", AvgLikes: "85K", EstValue: "$12,000", AvatarURL: avatar("bella"),
		Niche: []string{"Fashion", "Modeling"}},
	{ID: "7", Name: "Urban Fit", Handle: "@urban.fit", Platform: models.PlatformTikTok, Location: "New York, USA",
		Followers: "320K", EngagementRate: "7.2%", AvgLikes: "22K", EstValue: "$3,500", AvatarURL: avatar("urban"),
		Niche: []string{"Health", "Fitness", "Fashion"}},
	{ID: "13", Name: "Comedy Central", Handle: "@laugh.out", Platform: models.PlatformTikTok, Location: "London, UK",
		Followers: "5.5M", EngagementRate: "12.5%", AvgLikes: "600K", EstValue: "$25,000", AvatarURL: avatar("laugh"),
		Niche: []string{"Entertainment", "Comedy"}},
	{ID: "14", Name: "Eco Warrior", Handle: "@green.life", Platform: models.PlatformTikTok, Location: "Portland, USA",
		Followers: "45K", EngagementRate: "15.2%", AvgLikes: "8K", EstValue: "$950", AvatarURL: avatar("eco"),
		Niche: []string{"Sustainability", "Lifestyle"}},
}

// Seed returns the built-in catalog.
func Seed() *Catalog {
	c, err := New(seedRecords)
	if err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	return c
}
