package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"activities-signup/internal/model"
)

// seedFile описывает YAML-файл начального каталога:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [michael@mergington.edu]
type seedFile struct {
	Activities []model.NamedActivity `yaml:"activities"`
}

// LoadSeedFile читает каталог из YAML-файла. Порядок кружков берётся из файла.
func LoadSeedFile(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed разбирает YAML-каталог и проверяет имена кружков.
func ParseSeed(data []byte) (model.Catalog, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Activities))
	catalog := make(model.Catalog, 0, len(f.Activities))
	for i, a := range f.Activities {
		if a.Name == "" {
			return nil, fmt.Errorf("activities[%d].name is required", i)
		}
		if _, dup := seen[a.Name]; dup {
			return nil, fmt.Errorf("activities[%d]: duplicate activity %q", i, a.Name)
		}
		seen[a.Name] = struct{}{}
		if a.Participants == nil {
			a.Participants = []string{}
		}
		catalog = append(catalog, a)
	}
	return catalog, nil
}

// DefaultCatalog возвращает встроенный каталог кружков Mergington High School.
func DefaultCatalog() model.Catalog {
	return model.Catalog{
		{Name: "Chess Club", Activity: model.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Programming Class", Activity: model.Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{Name: "Gym Class", Activity: model.Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
		{Name: "Soccer Team", Activity: model.Activity{
			Description:     "Join the varsity soccer team and compete in regional tournaments",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu", "ryan@mergington.edu"},
		}},
		{Name: "Swimming Club", Activity: model.Activity{
			Description:     "Improve swimming techniques and train for competitions",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"lisa@mergington.edu", "kevin@mergington.edu"},
		}},
		{Name: "Pirate Theater Troupe", Activity: model.Activity{
			Description:     "Perform swashbuckling plays and pirate-themed productions",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"sarah@mergington.edu", "james@mergington.edu"},
		}},
		{Name: "Pirate Art Workshop", Activity: model.Activity{
			Description:     "Create nautical art, treasure maps, and pirate ship models",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"anna@mergington.edu", "david@mergington.edu"},
		}},
		{Name: "Particle Physics Club", Activity: model.Activity{
			Description:     "Explore quantum mechanics, particle accelerators, and subatomic particles",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"steven@mergington.edu", "rachel@mergington.edu"},
		}},
		{Name: "High Energy Physics Lab", Activity: model.Activity{
			Description:     "Study collider experiments and analyze particle interaction data",
			Schedule:        "Fridays, 3:30 PM - 5:30 PM",
			MaxParticipants: 8,
			Participants:    []string{"peter@mergington.edu", "maria@mergington.edu"},
		}},
	}
}
