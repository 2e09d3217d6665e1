package store

import (
	"context"
	"fmt"
	"slices"

	"campusconnect/internal/feed/models"
)

// seedPosts is the fixed development feed, newest first.
var seedPosts = []models.Post{
	{
		ID: "1",
		Author: models.Author{
			ID:      "1",
			Name:    "Rahul Sharma",
			Avatar:  "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
			Role:    "student",
			College: "IIT Delhi",
		},
		Content:    "Just submitted my research paper on machine learning algorithms for the IEEE conference! Excited to share my work with the academic community. 🎉",
		TimeAgo:    "2 hours ago",
		Likes:      24,
		Comments:   5,
		Tags:       []string{"research", "machinelearning", "academics"},
		Visibility: "public",
	},
	{
		ID: "2",
		Author: models.Author{
			ID:      "2",
			Name:    "Coding Club",
			Avatar:  "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=150",
			Role:    "club",
			College: "IIT Delhi",
		},
		Content:    `We're excited to announce our annual hackathon - CodeFest 2023! Mark your calendars for Sept 15-16. This year's theme: "Tech for Social Good". Registration opens next week!`,
		Image:      "https://images.pexels.com/photos/7103/writing-notes-idea-conference.jpg?auto=compress&cs=tinysrgb&w=1260&h=750",
		TimeAgo:    "5 hours ago",
		Likes:      145,
		Comments:   32,
		Tags:       []string{"hackathon", "coding", "techforsocialgood"},
		Visibility: "public",
	},
	{
		ID: "3",
		Author: models.Author{
			ID:     "3",
			Name:   "Delhi University",
			Avatar: "https://images.pexels.com/photos/256490/pexels-photo-256490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Role:   "college",
		},
		Content:    "Admissions for the 2023-24 academic year are now open! Visit our website for course details and application procedures. Last date to apply: July 31st.",
		TimeAgo:    "1 day ago",
		Likes:      210,
		Comments:   78,
		Tags:       []string{"admissions", "highereducation"},
		Visibility: "public",
	},
	{
		ID: "4",
		Author: models.Author{
			ID:      "1",
			Name:    "Rahul Sharma",
			Avatar:  "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
			Role:    "student",
			College: "IIT Delhi",
		},
		Content:    "Looking for team members for the upcoming hackathon. Need someone with UI/UX skills and a backend developer familiar with Node.js. DM if interested!",
		TimeAgo:    "2 days ago",
		Likes:      18,
		Comments:   7,
		Tags:       []string{"teamwork", "hackathon", "development"},
		Visibility: "public",
	},
	{
		ID: "5",
		Author: models.Author{
			ID:      "2",
			Name:    "Coding Club",
			Avatar:  "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=150",
			Role:    "club",
			College: "IIT Delhi",
		},
		Content:    "Yesterday's Python workshop was a huge success! Thanks to all 80+ participants who joined us. Special thanks to Prof. Gupta for the insightful keynote on AI applications.",
		Image:      "https://images.pexels.com/photos/7108/notebook-computer-chill-relax.jpg?auto=compress&cs=tinysrgb&w=1260&h=750",
		TimeAgo:    "3 days ago",
		Likes:      92,
		Comments:   14,
		Tags:       []string{"workshop", "python", "programming"},
		Visibility: "public",
	},
}

// Seed loads the fixed feed. Insert prepends, so the slice goes in backwards
// to keep the seed order.
func Seed(ctx context.Context, s PostStore) error {
	for _, post := range slices.Backward(seedPosts) {
		if err := s.Insert(ctx, &post); err != nil {
			return fmt.Errorf("seed post %s: %w", post.ID, err)
		}
	}
	return nil
}
