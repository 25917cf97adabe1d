package hero

// Content is the hero section payload. Purely presentational: nothing in
// the catalog or cart consumes it.
type Content struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	BackgroundURL string `json:"backgroundUrl"`
	VideoURL      string `json:"videoUrl"`
}

// Default is served whenever the hero_contents table is empty or
// unreachable.
func Default() Content {
	return Content{
		Title:         "Crafting Excellence in Every Stitch",
		Subtitle:      "Discover a wide range of premium textiles and apparel.",
		BackgroundURL: "/hero-bg.jpg",
		VideoURL:      "/apparel.mp4",
	}
}
