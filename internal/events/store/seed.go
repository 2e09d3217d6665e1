package store

import (
	"context"
	"fmt"
	"slices"

	"campusconnect/internal/events/models"
)

// seedEvents is the fixed development event list, newest first.
var seedEvents = []models.Event{
	{
		ID:          "1",
		Title:       "CodeFest 2023: Tech for Social Good",
		Description: "Annual hackathon focused on developing tech solutions for social challenges",
		Image:       "https://images.pexels.com/photos/7103/writing-notes-idea-conference.jpg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Sept 15-16, 2023",
		Time:        "9:00 AM - 6:00 PM",
		Location:    "Main Auditorium, IIT Delhi Campus",
		College:     "IIT Delhi",
		Organizer: models.Organizer{
			ID:     "2",
			Name:   "Coding Club",
			Avatar: "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 240,
		Type:      models.TypeHackathon,
		DateBadge: models.CalendarDate{Day: "15", Month: "SEP"},
	},
	{
		ID:          "2",
		Title:       "Annual Cultural Festival: Rendezvous",
		Description: "The biggest cultural festival in North India featuring music, dance, and drama performances",
		Image:       "https://images.pexels.com/photos/1190297/pexels-photo-1190297.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Oct 20-23, 2023",
		Time:        "All Day",
		Location:    "IIT Delhi Campus",
		College:     "IIT Delhi",
		Organizer: models.Organizer{
			ID:     "4",
			Name:   "Cultural Board",
			Avatar: "https://images.pexels.com/photos/7432/pexels-photo-7432.jpg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 1500,
		Type:      models.TypeCultural,
		DateBadge: models.CalendarDate{Day: "20", Month: "OCT"},
	},
	{
		ID:          "3",
		Title:       "AI Workshop: Deep Learning Fundamentals",
		Description: "Hands-on workshop covering the basics of deep learning and neural networks",
		Image:       "https://images.pexels.com/photos/8386434/pexels-photo-8386434.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Aug 25, 2023",
		Time:        "10:00 AM - 2:00 PM",
		Location:    "Computer Science Building, IIT Bombay",
		College:     "IIT Bombay",
		Organizer: models.Organizer{
			ID:     "5",
			Name:   "AI Research Group",
			Avatar: "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 85,
		Type:      models.TypeWorkshop,
		DateBadge: models.CalendarDate{Day: "25", Month: "AUG"},
	},
	{
		ID:          "4",
		Title:       "Finance Conclave 2023",
		Description: "Annual event bringing together industry leaders to discuss the future of finance and economics",
		Image:       "https://images.pexels.com/photos/6694543/pexels-photo-6694543.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Sept 8, 2023",
		Time:        "9:30 AM - 5:30 PM",
		Location:    "Management Building, IIM Ahmedabad",
		College:     "IIM Ahmedabad",
		Organizer: models.Organizer{
			ID:     "6",
			Name:   "Finance Club",
			Avatar: "https://images.pexels.com/photos/210607/pexels-photo-210607.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 120,
		Type:      models.TypeSeminar,
		DateBadge: models.CalendarDate{Day: "08", Month: "SEP"},
	},
	{
		ID:          "5",
		Title:       "Robotics Competition: TechTronics",
		Description: "Inter-college robotics competition featuring autonomous and manual robot challenges",
		Image:       "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Nov 12-13, 2023",
		Time:        "10:00 AM - 4:00 PM",
		Location:    "Engineering Block, BITS Pilani",
		College:     "BITS Pilani",
		Organizer: models.Organizer{
			ID:     "7",
			Name:   "Robotics Club",
			Avatar: "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 150,
		Type:      models.TypeWorkshop,
		DateBadge: models.CalendarDate{Day: "12", Month: "NOV"},
	},
	{
		ID:          "6",
		Title:       "Literary Festival: WordCraft",
		Description: "Celebrating the art of writing with competitions, workshops, and guest author sessions",
		Image:       "https://images.pexels.com/photos/159866/books-book-pages-story-literature-159866.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750",
		Date:        "Oct 5-6, 2023",
		Time:        "11:00 AM - 7:00 PM",
		Location:    "Arts Faculty, Delhi University",
		College:     "Delhi University",
		Organizer: models.Organizer{
			ID:     "8",
			Name:   "Literary Society",
			Avatar: "https://images.pexels.com/photos/256450/pexels-photo-256450.jpeg?auto=compress&cs=tinysrgb&w=150",
		},
		Attendees: 200,
		Type:      models.TypeCultural,
		DateBadge: models.CalendarDate{Day: "05", Month: "OCT"},
	},
}

// Seed loads the fixed event list. Insert prepends, so the slice goes in
// backwards to keep the seed order.
func Seed(ctx context.Context, s EventStore) error {
	for _, event := range slices.Backward(seedEvents) {
		if err := s.Insert(ctx, &event); err != nil {
			return fmt.Errorf("seed event %s: %w", event.ID, err)
		}
	}
	return nil
}
