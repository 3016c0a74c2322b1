package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jobexecutive/jobboard/internal/schemas"
	"github.com/jobexecutive/jobboard/internal/types"
)

// SeedSchemaPath is the repo-relative path of the seed file schema.
const SeedSchemaPath = "schemas/seed.schema.json"

// Seed is the initial dataset a store starts from.
type Seed struct {
	Seekers   []types.JobSeeker `json:"seekers"`
	Companies []types.Company   `json:"companies"`
	Admins    []types.Admin     `json:"admins"`
	Jobs      []types.Job       `json:"jobs"`
	BlogPosts []types.BlogPost  `json:"blogPosts"`
}

// LoadSeed reads a seed file, validates it against the seed schema, and
// parses it. Validation is skipped with a warning-free pass when the schema
// file cannot be located (e.g. installed binaries running far from the repo).
func LoadSeed(path string) (*Seed, error) {
	if schemaPath := schemas.ResolveSchemaPath(SeedSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("seed file %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// DefaultSeed returns the built-in dataset: two companies, one seeker, one
// admin, three jobs and one blog post.
func DefaultSeed() *Seed {
	now := time.Now()
	return &Seed{
		Companies: []types.Company{
			{
				ID:            "company1",
				Name:          "Innovate Inc.",
				Email:         "contact@innovate.com",
				Logo:          "https://i.pravatar.cc/150?u=contact@innovate.com",
				Description:   "A leading tech company building innovative solutions for the modern world.",
				Website:       "https://innovate.com",
				ContactInfo:   "555-0101",
				OfficeAddress: "123 Tech Avenue, Silicon Valley, CA",
				Reviews: []types.Review{
					{
						ID:           "review1",
						AuthorID:     "seeker1",
						ReviewerName: "Alex Doe",
						Rating:       5,
						Comment:      "Great company culture and challenging projects!",
						Date:         now.Add(-5 * 24 * time.Hour),
					},
				},
				Jobs: []string{"job1", "job2"},
			},
			{
				ID:            "company2",
				Name:          "Creative Solutions",
				Email:         "hr@creative.com",
				Logo:          "https://i.pravatar.cc/150?u=hr@creative.com",
				Description:   "A design-focused agency helping brands tell their stories.",
				Website:       "https://creative.com",
				ContactInfo:   "555-0102",
				OfficeAddress: "456 Design Blvd, New York, NY",
				Reviews: []types.Review{
					{
						ID:           "review2",
						AuthorID:     "some-other-user",
						ReviewerName: "Jane Smith",
						Rating:       4,
						Comment:      "Good work-life balance, but management can be a bit disorganized.",
						Date:         now.Add(-10 * 24 * time.Hour),
					},
				},
				Jobs: []string{"job3"},
			},
		},
		Seekers: []types.JobSeeker{
			{
				ID:               "seeker1",
				Name:             "Alex Doe",
				Email:            "alex.doe@example.com",
				Phone:            "123-456-7890",
				PhotoURL:         "https://i.pravatar.cc/150?u=alex.doe@example.com",
				Skills:           []string{"React", "TypeScript", "Node.js", "GraphQL"},
				ResumeURL:        "#",
				ExpectedSalary:   90000,
				AppliedJobs:      []string{"job1"},
				JobAlertsEnabled: true,
				JobAlertsPreferences: types.JobAlertsPreferences{
					Keywords:      []string{"react", "frontend"},
					JobTypes:      []types.JobType{types.JobTypeFullTime},
					LocationTypes: []types.LocationType{types.LocationRemote, types.LocationHybrid},
					MinSalary:     80000,
				},
			},
		},
		Admins: []types.Admin{
			{ID: "admin1", Email: "admin@jobexecutive.com"},
		},
		Jobs: []types.Job{
			{
				ID:              "job1",
				CompanyID:       "company1",
				Title:           "Senior Frontend Developer",
				Description:     "Build the client side of our web applications and translate customer needs into functional, appealing interfaces.",
				Location:        "Remote",
				ExperienceLevel: "Senior",
				SalaryMin:       120000,
				SalaryMax:       150000,
				JobType:         types.JobTypeFullTime,
				LocationType:    types.LocationRemote,
				Applicants:      []string{"seeker1"},
			},
			{
				ID:              "job2",
				CompanyID:       "company1",
				Title:           "Product Manager",
				Description:     "Own product planning and execution across the lifecycle, from gathering requirements to defining the product vision.",
				Location:        "Silicon Valley, CA",
				ExperienceLevel: "Mid-Level",
				SalaryMin:       100000,
				SalaryMax:       130000,
				JobType:         types.JobTypeFullTime,
				LocationType:    types.LocationOnsite,
			},
			{
				ID:              "job3",
				CompanyID:       "company2",
				Title:           "UI/UX Designer",
				Description:     "Create intuitive user experiences and turn high-level requirements into beautiful, functional interfaces.",
				Location:        "New York, NY",
				ExperienceLevel: "Entry-Level",
				SalaryMin:       60000,
				SalaryMax:       80000,
				JobType:         types.JobTypeContract,
				LocationType:    types.LocationHybrid,
			},
		},
		BlogPosts: []types.BlogPost{
			{
				ID:             "post1",
				AuthorID:       "seeker1",
				AuthorName:     "Alex Doe",
				AuthorRole:     types.RoleSeeker,
				AuthorPhotoURL: "https://i.pravatar.cc/150?u=alex.doe@example.com",
				Content:        "Just had a great interview experience with Innovate Inc. Very professional team!",
				Timestamp:      now.Add(-2 * 24 * time.Hour),
				Reactions: []types.Reaction{
					{UserID: "company1", Type: types.ReactionLike},
				},
				Comments: []types.Comment{
					{
						ID:             "comment1",
						AuthorID:       "company1",
						AuthorName:     "Innovate Inc.",
						AuthorPhotoURL: "https://i.pravatar.cc/150?u=contact@innovate.com",
						Content:        "Glad to hear that, Alex! We enjoyed our conversation as well.",
						Timestamp:      now.Add(-24 * time.Hour),
					},
				},
			},
		},
	}
}
