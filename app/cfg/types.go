package cfg

type Cfg struct {
	// Source feed configuration
	FeedURL         string
	RefreshInterval int
	Timeout         int

	// Application configuration
	Port         string
	DBPath       string
	RulesFile    string
	APIAccessKey string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
