package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotenv pulls in .env files before the environment is read: first from
// the working directory, then from dataDir, neither overriding variables
// already set.
func LoadDotenv(dataDir string) {
	_ = godotenv.Load()
	if dataDir != "" && dataDir != "." {
		_ = godotenv.Load(filepath.Join(dataDir, ".env"))
	}
}

// ApplyEnv overlays environment variables onto cfg. The variable names are
// the deployment surface and stay stable; unset variables leave the file
// values alone.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("JOBRADAR_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}

	if v, ok := envBool("LINKEDIN_ENABLE"); ok {
		cfg.LinkedIn.Enabled = v
	}
	if v := os.Getenv("LINKEDIN_QUERIES"); strings.TrimSpace(v) != "" {
		cfg.LinkedIn.Queries = ParseQueries(v)
	}
	if v := os.Getenv("LINKEDIN_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LinkedIn.Pages = n
		}
	}
	if v := os.Getenv("LINKEDIN_TIMESPAN"); v != "" {
		cfg.LinkedIn.Timespan = v
	}
	if v := os.Getenv("LINKEDIN_USER_AGENT"); v != "" {
		cfg.LinkedIn.UserAgent = v
	}
	if v := os.Getenv("LINKEDIN_COMPANY_WHITELIST"); v != "" {
		cfg.LinkedIn.CompanyWhitelist = splitList(v)
	}
	if v, ok := envBool("LINKEDIN_USE_TOP_COMPANIES"); ok {
		cfg.LinkedIn.UseTopCompanies = v
	}
	if v := os.Getenv("LINKEDIN_TITLE_INCLUDE"); v != "" {
		cfg.LinkedIn.TitleInclude = lowerList(splitList(v))
	}
	if v := os.Getenv("LINKEDIN_TITLE_EXCLUDE"); v != "" {
		cfg.LinkedIn.TitleExclude = lowerList(splitList(v))
	}
	if v, ok := envBool("LINKEDIN_REQUIRE_NEWGRAD"); ok {
		cfg.LinkedIn.RequireNewGrad = v
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Notify.TelegramChatID = v
	}
	if v := os.Getenv("IMESSAGE_RECIPIENT"); v != "" {
		cfg.Notify.IMessageRecipient = v
	}
}

// ParseQueries splits a semicolon-separated list of "keywords|location"
// pairs. Entries without a pipe are keywords with an empty location.
func ParseQueries(raw string) []Query {
	var out []Query
	for _, p := range strings.Split(raw, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		q := Query{Keywords: p}
		if k, loc, ok := strings.Cut(p, "|"); ok {
			q.Keywords = strings.TrimSpace(k)
			q.Location = strings.TrimSpace(loc)
		}
		out = append(out, q)
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func lowerList(xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = strings.ToLower(x)
	}
	return out
}

func envBool(name string) (value, set bool) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if v == "" {
		return false, false
	}
	return v == "true" || v == "1" || v == "yes", true
}
