package store

import (
	"slices"

	"campusconnect/internal/directory/models"
)

var (
	seedColleges = []models.College{
		{
			ID:          "1",
			Name:        "Indian Institute of Technology Delhi",
			Logo:        "https://images.pexels.com/photos/256490/pexels-photo-256490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Delhi",
			Type:        "Engineering",
			Students:    8500,
			Established: 1961,
		},
		{
			ID:          "2",
			Name:        "Indian Institute of Technology Bombay",
			Logo:        "https://images.pexels.com/photos/256490/pexels-photo-256490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Mumbai",
			Type:        "Engineering",
			Students:    10000,
			Established: 1958,
		},
		{
			ID:          "3",
			Name:        "Delhi University",
			Logo:        "https://images.pexels.com/photos/159490/yale-university-landscape-universities-schools-159490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Delhi",
			Type:        "Multidisciplinary",
			Students:    132000,
			Established: 1922,
		},
		{
			ID:          "4",
			Name:        "BITS Pilani",
			Logo:        "https://images.pexels.com/photos/159490/yale-university-landscape-universities-schools-159490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Rajasthan",
			Type:        "Engineering",
			Students:    4500,
			Established: 1964,
		},
		{
			ID:          "5",
			Name:        "NIT Trichy",
			Logo:        "https://images.pexels.com/photos/159490/yale-university-landscape-universities-schools-159490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Tamil Nadu",
			Type:        "Engineering",
			Students:    6500,
			Established: 1964,
		},
		{
			ID:          "6",
			Name:        "IIM Ahmedabad",
			Logo:        "https://images.pexels.com/photos/256490/pexels-photo-256490.jpeg?auto=compress&cs=tinysrgb&w=150",
			Location:    "Gujarat",
			Type:        "Management",
			Students:    1100,
			Established: 1961,
		},
	}

	seedClubs = []models.Club{
		{
			ID:          "1",
			Name:        "Coding Club IIT Delhi",
			Logo:        "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg?auto=compress&cs=tinysrgb&w=150",
			College:     "IIT Delhi",
			Location:    "Delhi",
			Members:     250,
			Category:    "Technical",
			Established: 2005,
		},
		{
			ID:          "2",
			Name:        "Entrepreneurship Cell",
			Logo:        "https://images.pexels.com/photos/6224/hands-people-woman-working.jpg?auto=compress&cs=tinysrgb&w=150",
			College:     "IIT Bombay",
			Location:    "Mumbai",
			Members:     180,
			Category:    "Business",
			Established: 1998,
		},
		{
			ID:          "3",
			Name:        "Music Society",
			Logo:        "https://images.pexels.com/photos/164693/pexels-photo-164693.jpeg?auto=compress&cs=tinysrgb&w=150",
			College:     "Delhi University",
			Location:    "Delhi",
			Members:     120,
			Category:    "Cultural",
			Established: 1985,
		},
		{
			ID:          "4",
			Name:        "Robotics Club",
			Logo:        "https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg?auto=compress&cs=tinysrgb&w=150",
			College:     "BITS Pilani",
			Location:    "Rajasthan",
			Members:     85,
			Category:    "Technical",
			Established: 2001,
		},
		{
			ID:          "5",
			Name:        "Drama Club",
			Logo:        "https://images.pexels.com/photos/236171/pexels-photo-236171.jpeg?auto=compress&cs=tinysrgb&w=150",
			College:     "NIT Trichy",
			Location:    "Tamil Nadu",
			Members:     60,
			Category:    "Cultural",
			Established: 1995,
		},
		{
			ID:          "6",
			Name:        "Finance Club",
			Logo:        "https://images.pexels.com/photos/210607/pexels-photo-210607.jpeg?auto=compress&cs=tinysrgb&w=150",
			College:     "IIM Ahmedabad",
			Location:    "Gujarat",
			Members:     110,
			Category:    "Business",
			Established: 1980,
		},
	}
)

// NewSeededDirectoryStore returns a memory store preloaded with the fixed
// college and club listings.
func NewSeededDirectoryStore() *InMemoryDirectoryStore {
	return &InMemoryDirectoryStore{
		colleges: slices.Clone(seedColleges),
		clubs:    slices.Clone(seedClubs),
	}
}
