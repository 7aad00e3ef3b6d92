package repository

import (
	"context"
	"fmt"

	"github.com/sakif/filmstudio/internal/model"
)

// SeedProjects is the showcase every fresh store starts with. Order matters:
// seeding assigns ids 1, 2, 3 in this order.
var SeedProjects = []model.NewProject{
	{
		Title:        "Gold Standard",
		Type:         "Luxury Advertisement",
		Description:  "An elegant advertisement showcasing premium products with cinematic flair and artistic direction.",
		ThumbnailURL: "https://pixabay.com/get/g43e7ceea15389fe00a8ef158862142d6a284542504a5cfa9b56d5921fbaf9f497202f92fa4040c443bdf503ae0e44e3a79313b65ce36ab4dec92951552f07fdb_1280.jpg",
		VideoURL:     "https://player.vimeo.com/video/556579479",
	},
	{
		Title:        "Shadows & Light",
		Type:         "Short Film",
		Description:  "A character-driven narrative exploring themes of duality through expert cinematography.",
		ThumbnailURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.1.0&auto=format&fit=crop&w=600&h=400&q=80",
		VideoURL:     "https://player.vimeo.com/video/449735432",
	},
	{
		Title:        "Retro Revival",
		Type:         "Automotive Commercial",
		Description:  "A nostalgic journey capturing the timeless essence of automotive excellence.",
		ThumbnailURL: "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?ixlib=rb-4.1.0&auto=format&fit=crop&w=600&h=400&q=80",
		VideoURL:     "https://player.vimeo.com/video/325545609",
	},
}

// Seed inserts SeedProjects through the normal CreateProject path, so the
// seeds consume the project counter exactly like any other create.
func Seed(ctx context.Context, projects ProjectRepository) error {
	for _, p := range SeedProjects {
		if _, err := projects.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}
	return nil
}
