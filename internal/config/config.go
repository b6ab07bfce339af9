package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Source identifies one Markdown listing document on GitHub.
type Source struct {
	Repo string `yaml:"repo"`
	Path string `yaml:"path"`
}

// Query is one keywords/location pair for the search-card path.
type Query struct {
	Keywords string `yaml:"keywords"`
	Location string `yaml:"location"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Sources []Source `yaml:"sources"`

	LinkedIn struct {
		Enabled          bool     `yaml:"enabled"`
		Queries          []Query  `yaml:"queries"`
		Pages            int      `yaml:"pages"`
		Timespan         string   `yaml:"timespan"` // f_TPR token, r604800 = last 7 days
		UserAgent        string   `yaml:"user_agent"`
		CompanyWhitelist []string `yaml:"company_whitelist"`
		UseTopCompanies  bool     `yaml:"use_top_companies"`
		TitleInclude     []string `yaml:"title_include"`
		TitleExclude     []string `yaml:"title_exclude"`
		RequireNewGrad   bool     `yaml:"require_newgrad"`
	} `yaml:"linkedin"`

	Notify struct {
		TelegramChatID    string `yaml:"telegram_chat_id"`
		IMessageRecipient string `yaml:"imessage_recipient"`
	} `yaml:"notify"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default is the config written on first run.
func Default() Config {
	var cfg Config
	cfg.App.DataDir = "."
	cfg.Sources = []Source{
		{Repo: "SimplifyJobs/New-Grad-Positions", Path: "README.md"},
		{Repo: "vanshb03/New-Grad-2026", Path: "README.md"},
		// Uses Markdown tables heavily:
		{Repo: "speedyapply/2026-SWE-College-Jobs", Path: "NEW_GRAD_USA.md"},
	}
	cfg.LinkedIn.Pages = 1
	cfg.LinkedIn.Timespan = "r604800"
	cfg.LinkedIn.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	cfg.LinkedIn.RequireNewGrad = true
	cfg.LinkedIn.Queries = []Query{
		{Keywords: "Software Engineer New Grad", Location: "United States"},
		{Keywords: "Software Engineer I", Location: "United States"},
	}
	return cfg
}

// Whitelist returns the effective company whitelist for the search-card
// path: the configured list, or the built-in top-companies list when that
// fallback is enabled, or nil (keep everything).
func (c Config) Whitelist() []string {
	if len(c.LinkedIn.CompanyWhitelist) > 0 {
		return c.LinkedIn.CompanyWhitelist
	}
	if c.LinkedIn.UseTopCompanies {
		return TopCompanies
	}
	return nil
}

// TopCompanies is the built-in whitelist fallback.
var TopCompanies = []string{
	"Google", "Meta", "Amazon", "Microsoft", "Apple", "Uber", "Tesla", "LinkedIn",
	"IBM", "Stripe", "Slack", "Oracle", "Adobe", "Palantir", "VMware", "Airbnb",
	"Salesforce", "Spotify", "DeepMind", "Bloomberg", "Snap", "Square", "Dropbox",
	"PayPal", "Lyft", "Twilio", "Splunk", "Atlassian", "Fitbit", "Workday", "MongoDB",
	"NetApp", "ServiceNow", "GitHub", "Zendesk", "Snowflake", "SAP", "Intuit",
	"Red Hat", "Coinbase", "Shopify", "Asana", "Flexport", "Tripadvisor", "Samsara",
	"Instacart", "Autodesk", "Yelp", "Cloudera",
}
