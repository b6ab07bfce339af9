package markdown

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulletDialect(t *testing.T) {
	jobs := Parse("- [Acme Corp](https://acme.com/careers/123)", "org/repo", "README.md")

	require.Len(t, jobs, 1)
	j := jobs[0]
	assert.Equal(t, "Acme Corp", j.Company)
	assert.Equal(t, "Acme Corp", j.Title, "bullet lines have no distinct title")
	assert.Equal(t, "", j.Location)
	assert.Equal(t, "https://acme.com/careers/123", j.URL)
	assert.Equal(t, "org/repo/README.md", j.Source)
	assert.Nil(t, j.Posted)
}

func TestParseTableDialect(t *testing.T) {
	row := `| <a href="https://acme.com"><strong>Acme</strong></a> | Senior SWE | Remote | $150k | <a href="https://boards.greenhouse.io/acme/123">Apply</a> | 2d |`
	jobs := Parse(row, "speedyapply/2026-SWE-College-Jobs", "NEW_GRAD_USA.md")

	require.Len(t, jobs, 1)
	j := jobs[0]
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "Senior SWE", j.Title)
	assert.Equal(t, "Remote", j.Location)
	assert.Equal(t, "https://boards.greenhouse.io/acme/123", j.URL, "posting cell link wins over company cell link")
	assert.Equal(t, "speedyapply/2026-SWE-College-Jobs/NEW_GRAD_USA.md", j.Source)
	assert.Nil(t, j.Posted, "the age column is not a timestamp")
}

func TestParseTableFallbacks(t *testing.T) {
	t.Run("link falls back to title then company cell", func(t *testing.T) {
		row := `| Acme | <a href="https://acme.com/jobs/9">SWE</a> | NYC | - | - | 1d |`
		jobs := Parse(row, "r", "p")
		require.Len(t, jobs, 1)
		assert.Equal(t, "https://acme.com/jobs/9", jobs[0].URL)

		row = `| <a href="https://acme.com/careers">Acme</a> | SWE | NYC | - | - | 1d |`
		jobs = Parse(row, "r", "p")
		require.Len(t, jobs, 1)
		assert.Equal(t, "https://acme.com/careers", jobs[0].URL)
	})

	t.Run("row without any link is skipped", func(t *testing.T) {
		assert.Empty(t, Parse("| Acme | SWE href= | NYC | - | - | 1d |", "r", "p"))
	})

	t.Run("short rows are skipped", func(t *testing.T) {
		assert.Empty(t, Parse(`| <a href="https://a.com">A</a> | SWE |`, "r", "p"))
	})

	t.Run("title falls back to company", func(t *testing.T) {
		row := `| <a href="https://acme.com/j/1"><strong>Acme</strong></a> |  | Remote | - | - | 1d |`
		jobs := Parse(row, "r", "p")
		require.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].Title)
	})
}

func TestParseDeduplicatesWithinDocument(t *testing.T) {
	text := `- [Acme](https://acme.com/careers/123)
- [Acme Again](https://acme.com/careers/123)
| <a href="https://acme.com/careers/123">Acme</a> | SWE | NYC | - | - | 1d |
`
	jobs := Parse(text, "r", "p")
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)
}

func TestParseMixedDialects(t *testing.T) {
	text := `# Listings
- [Acme](https://acme.com/careers/1)

| Company | Position | Location | Salary | Posting | Age |
| ------- | -------- | -------- | ------ | ------- | --- |
| <a href="https://globex.com"><strong>Globex</strong></a> | SWE I | Austin, TX | $120k | <a href="https://jobs.lever.co/globex/42">Apply</a> | 3d |
`
	jobs := Parse(text, "r", "p")
	require.Len(t, jobs, 2)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "Globex", jobs[1].Company)
	assert.Equal(t, "https://jobs.lever.co/globex/42", jobs[1].URL)
}

func TestFetchTriesBothBranches(t *testing.T) {
	var gotPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		if r.URL.Path == "/org/repo/main/README.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("- [Acme](https://acme.com/careers/1)"))
	}))
	defer srv.Close()

	f := NewWithBase(srv.Client(), srv.URL)
	jobs := f.Fetch("org/repo", "README.md")

	require.Len(t, jobs, 1)
	assert.Equal(t, []string{"/org/repo/main/README.md", "/org/repo/master/README.md"}, gotPaths)
}

func TestFetchFailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewWithBase(srv.Client(), srv.URL)
	assert.Empty(t, f.Fetch("org/repo", "README.md"), "fetch failure is not fatal")
}
