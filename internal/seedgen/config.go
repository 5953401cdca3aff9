package seedgen

// Default generation parameters.
const (
	defaultFreelancers = 50
	defaultClients     = 12
	defaultJobs        = 10
	defaultSeed        = 42
)

// Config controls corpus generation.
type Config struct {
	// NumFreelancers is the number of freelancer profiles to generate.
	NumFreelancers int

	// NumClients is the size of the client pool engagements draw from.
	NumClients int

	// NumJobs is the number of sample job postings to generate.
	NumJobs int

	// Seed fixes the random source so repeated runs produce the same corpus.
	Seed int64

	// FreelancersPath and JobsPath are the output JSON files.
	FreelancersPath string
	JobsPath        string
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		NumFreelancers:  defaultFreelancers,
		NumClients:      defaultClients,
		NumJobs:         defaultJobs,
		Seed:            defaultSeed,
		FreelancersPath: "data/freelancers.json",
		JobsPath:        "data/jobs.json",
	}
}

// Stats tracks generation results for reporting.
type Stats struct {
	FreelancersGenerated int
	JobsGenerated        int
	EngagementsGenerated int
}
